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

// Package tracer implements the cpu.Observer interface and logs every
// instruction executed by the CPU. Log entries have the "trace" tag and
// contain the disassembly of the instruction, as returned by
// execution.Result.String(), followed by the state of the registers after
// the instruction has completed.
//
// Logging is controlled by the logger.Permission given to NewTracer(). The
// Limit field stops logging after the specified number of instructions.
package tracer

import (
	"github.com/cycle6502/cycle6502/hardware/cpu"
	"github.com/cycle6502/cycle6502/logger"
)

// Tracer logs instructions as they are executed.
type Tracer struct {
	perm logger.Permission

	// the maximum number of instructions to log. a value of zero means there
	// is no limit
	Limit int

	count int
}

// NewTracer is the preferred method of initialisation for the Tracer type.
func NewTracer(perm logger.Permission) *Tracer {
	return &Tracer{
		perm: perm,
	}
}

// Observe implements the cpu.Observer interface. It never returns an error.
func (tr *Tracer) Observe(mc *cpu.CPU) error {
	if tr.Limit > 0 && tr.count >= tr.Limit {
		return nil
	}
	if !tr.perm.AllowLogging() {
		return nil
	}
	tr.count++
	logger.Logf(tr.perm, "trace", "%s  %s", mc.LastResult.String(), mc.String())
	return nil
}

// Count returns the number of instructions that have been logged.
func (tr *Tracer) Count() int {
	return tr.count
}
