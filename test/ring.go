// This file is part of cycle6502.
//
// cycle6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cycle6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cycle6502.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"fmt"
)

// RingWriter is an implementation of io.Writer that keeps only the most
// recent output. Useful for keeping a trace of recent CPU activity that can be
// printed when a long running test fails.
type RingWriter struct {
	data []byte

	// index of the oldest byte and the number of bytes held
	start int
	n     int
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size for RingWriter (%d)", size)
	}
	return &RingWriter{
		data: make([]byte, size),
	}, nil
}

func (r *RingWriter) String() string {
	size := len(r.data)
	if r.start+r.n <= size {
		return string(r.data[r.start : r.start+r.n])
	}
	return string(r.data[r.start:]) + string(r.data[:(r.start+r.n)%size])
}

// Reset empties the buffer.
func (r *RingWriter) Reset() {
	r.start = 0
	r.n = 0
}

// Write implements io.Writer. Writes never fail.
func (r *RingWriter) Write(p []byte) (int, error) {
	written := len(p)
	size := len(r.data)

	// only the tail of an oversized write can survive
	if len(p) > size {
		p = p[len(p)-size:]
	}

	end := (r.start + r.n) % size
	c := copy(r.data[end:], p)
	copy(r.data, p[c:])

	r.n += len(p)
	if r.n > size {
		r.start = (r.start + r.n - size) % size
		r.n = size
	}

	return written, nil
}
