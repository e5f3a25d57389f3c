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

package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cycle6502/cycle6502/curated"
	"github.com/cycle6502/cycle6502/hardware/cpu"
	"github.com/cycle6502/cycle6502/modalflag"
	"github.com/cycle6502/cycle6502/performance/limiter"
	"github.com/cycle6502/cycle6502/script"
	"github.com/cycle6502/cycle6502/test"
)

// LDA #$05; STA $10; JMP $0004
var trapProgram = []byte{0xa9, 0x05, 0x85, 0x10, 0x4c, 0x04, 0x00}

func writeBinary(t *testing.T, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "program.bin")
	err := os.WriteFile(fn, data, 0o644)
	test.DemandSuccess(t, err)
	return fn
}

func TestSessionFlags(t *testing.T) {
	md := &modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"-pc", "0200", "-origin", "$0100", "-decimal", "program.bin"})
	md.NewMode()
	sf := addSessionFlags(md)
	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, p, modalflag.ParseContinue)

	args := sf.args(md, md.GetArg(0))
	test.ExpectEquality(t, args.filename, "program.bin")
	test.ExpectEquality(t, args.setPC, true)
	test.ExpectEquality(t, args.pc, uint16(0x0200))
	test.ExpectEquality(t, args.origin, uint16(0x0100))
	test.ExpectEquality(t, args.decimal, true)
	test.ExpectEquality(t, args.trace, false)

	md.NewArgs([]string{"program.bin"})
	md.NewMode()
	sf = addSessionFlags(md)
	_, err = md.Parse()
	test.DemandSuccess(t, err)

	args = sf.args(md, md.GetArg(0))
	test.ExpectEquality(t, args.setPC, false)
	test.ExpectEquality(t, args.origin, uint16(0x0000))
}

func TestTrapped(t *testing.T) {
	sess, err := newSession(sessionArgs{filename: writeBinary(t, trapProgram)})
	test.DemandSuccess(t, err)
	defer sess.end()

	test.ExpectEquality(t, sess.mc.Model(), cpu.MOS6502)

	consumed, err := sess.run(1000, 0, limiter.NewClock(0))
	test.ExpectEquality(t, curated.Is(err, cpu.ProgramCounterStuck), true)
	test.ExpectEquality(t, consumed, 2+3+(cpu.WatchdogLimit*3))
	test.ExpectEquality(t, sess.mem.Read(0x0010), uint8(0x05))

	w := &strings.Builder{}
	err = sess.report(w, consumed, err)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.HasPrefix(w.String(), "halted: cpu: program counter stuck at ($0004)"), true)
	test.ExpectEquality(t, strings.Contains(w.String(), "\n20 cycles\n"), true)
	test.ExpectEquality(t, strings.Contains(w.String(), "PC=0004 A=05"), true)
}

func TestBudget(t *testing.T) {
	sess, err := newSession(sessionArgs{filename: writeBinary(t, trapProgram)})
	test.DemandSuccess(t, err)
	defer sess.end()

	// LDA and STA. the STA overruns the budget by one cycle
	consumed, err := sess.run(4, 0, limiter.NewClock(0))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, consumed, 5)
	test.ExpectEquality(t, sess.mc.PC.Address(), uint16(0x0004))
}

func TestPacedRun(t *testing.T) {
	sess, err := newSession(sessionArgs{filename: writeBinary(t, trapProgram)})
	test.DemandSuccess(t, err)
	defer sess.end()

	// slices of two cycles. the JMP instructions overrun every slice
	consumed, err := sess.run(11, 2, limiter.NewClock(100000))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, consumed, 11)
}

func TestUnknownOpcodeHalt(t *testing.T) {
	sess, err := newSession(sessionArgs{filename: writeBinary(t, []byte{0x02})})
	test.DemandSuccess(t, err)
	defer sess.end()

	consumed, err := sess.run(1000, 0, limiter.NewClock(0))
	test.ExpectEquality(t, curated.Is(err, cpu.UnknownOpcode), true)
	test.ExpectEquality(t, consumed, 1)

	w := &strings.Builder{}
	err = sess.report(w, consumed, err)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.HasPrefix(w.String(), "halted: cpu: unknown opcode ($02) at ($0000)"), true)
	test.ExpectEquality(t, strings.Contains(w.String(), "???"), true)
}

func TestStartAddress(t *testing.T) {
	fn := writeBinary(t, trapProgram)
	sess, err := newSession(sessionArgs{filename: fn, origin: 0x0200, pc: 0x0200, setPC: true, decimal: true})
	test.DemandSuccess(t, err)
	defer sess.end()

	test.ExpectEquality(t, sess.mc.Model(), cpu.MOS6502Decimal)
	test.ExpectEquality(t, sess.mc.PC.Address(), uint16(0x0200))
	test.ExpectEquality(t, sess.mem.Read(0x0200), uint8(0xa9))
}

// the PC comes from the reset vector of the loaded program when no start
// address is given
func TestResetVector(t *testing.T) {
	fn := writeBinary(t, []byte{0x00, 0x02})
	sess, err := newSession(sessionArgs{filename: fn, origin: 0xfffc})
	test.DemandSuccess(t, err)
	defer sess.end()

	test.ExpectEquality(t, sess.mc.PC.Address(), uint16(0x0200))
	test.ExpectEquality(t, sess.mem.Read(0xfffd), uint8(0x02))
}

func TestScriptSession(t *testing.T) {
	scr := filepath.Join(t.TempDir(), "break.lua")
	err := os.WriteFile(scr, []byte("function step(pc, a) return a == 5 end\n"), 0o644)
	test.DemandSuccess(t, err)

	sess, err := newSession(sessionArgs{filename: writeBinary(t, trapProgram), scriptFile: scr, trace: true})
	test.DemandSuccess(t, err)
	defer sess.end()

	consumed, err := sess.run(1000, 0, limiter.NewClock(0))
	test.ExpectEquality(t, curated.Is(err, script.Break), true)
	test.ExpectEquality(t, isHalt(err), true)
	test.ExpectEquality(t, consumed, 2)
	test.ExpectEquality(t, sess.tracer.Count(), 1)

	_, err = newSession(sessionArgs{filename: writeBinary(t, trapProgram), scriptFile: scr + ".missing"})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, isHalt(err), false)
}

func TestMissingBinary(t *testing.T) {
	_, err := newSession(sessionArgs{filename: filepath.Join(t.TempDir(), "missing.bin")})
	test.ExpectFailure(t, err)
}

func TestMemviz(t *testing.T) {
	sess, err := newSession(sessionArgs{filename: writeBinary(t, trapProgram)})
	test.DemandSuccess(t, err)
	defer sess.end()

	_, err = sess.run(2, 0, limiter.NewClock(0))
	test.DemandSuccess(t, err)

	fn := filepath.Join(t.TempDir(), "cpu.dot")
	err = sess.writeMemviz(fn)
	test.DemandSuccess(t, err)

	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(string(b), "digraph"), true)
}

func TestReadKeys(t *testing.T) {
	// an endless supply of keys
	read := func() (byte, error) {
		return 'x', nil
	}

	done := make(chan struct{})
	keys := readKeys(read, done)
	test.ExpectEquality(t, <-keys, byte('x'))

	// nobody is receiving so the goroutine must notice done and close the
	// channel
	close(done)
	for range keys {
	}

	// a read error closes the channel
	keys = readKeys(func() (byte, error) {
		return 0, io.EOF
	}, make(chan struct{}))
	_, ok := <-keys
	test.ExpectEquality(t, ok, false)
}
