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
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/cycle6502/cycle6502/curated"
	"github.com/cycle6502/cycle6502/hardware/cpu"
	"github.com/cycle6502/cycle6502/hardware/cpu/execution"
	"github.com/cycle6502/cycle6502/hardware/cpu/tracer"
	"github.com/cycle6502/cycle6502/hardware/memory"
	"github.com/cycle6502/cycle6502/hardware/memory/cpubus"
	"github.com/cycle6502/cycle6502/logger"
	"github.com/cycle6502/cycle6502/modalflag"
	"github.com/cycle6502/cycle6502/performance/limiter"
	"github.com/cycle6502/cycle6502/script"
)

// sessionArgs are the arguments common to every mode that runs a program.
type sessionArgs struct {
	filename string
	origin   uint16

	// the PC is only loaded if setPC is true. otherwise the PC is loaded from
	// the reset vector
	pc    uint16
	setPC bool

	decimal    bool
	trace      bool
	scriptFile string
}

// sessionFlags are the flags that populate a sessionArgs instance.
type sessionFlags struct {
	origin  *uint16
	pc      *uint16
	decimal *bool
	trace   *bool
	script  *string
}

func addSessionFlags(md *modalflag.Modes) sessionFlags {
	return sessionFlags{
		origin:  md.AddHex16("origin", 0x0000, "address at which the program is loaded (hex)"),
		pc:      md.AddHex16("pc", 0x0000, "start address (hex). defaults to the contents of the reset vector"),
		decimal: md.AddBool("decimal", false, "decimal mode affects ADC and SBC"),
		trace:   md.AddBool("trace", false, "log every instruction"),
		script:  md.AddString("script", "", "lua script to observe the CPU"),
	}
}

// args should only be called after the flags have been parsed.
func (f sessionFlags) args(md *modalflag.Modes, filename string) sessionArgs {
	args := sessionArgs{
		filename:   filename,
		origin:     *f.origin,
		pc:         *f.pc,
		decimal:    *f.decimal,
		trace:      *f.trace,
		scriptFile: *f.script,
	}
	md.Visit(func(flag string) {
		if flag == "pc" {
			args.setPC = true
		}
	})
	return args
}

// session is a CPU and memory ready to run a program.
type session struct {
	mc  *cpu.CPU
	mem *memory.Memory

	// observers attached to the CPU. either of these may be nil
	tracer *tracer.Tracer
	script *script.Script
}

func newSession(args sessionArgs) (*session, error) {
	model := cpu.MOS6502
	if args.decimal {
		model = cpu.MOS6502Decimal
	}

	sess := &session{
		mc:  cpu.NewCPU(model),
		mem: memory.NewMemory(),
	}

	// reset zeroes memory so the program must be loaded afterwards
	sess.mc.Reset(sess.mem)

	n, err := sess.mem.LoadFile(args.filename, args.origin)
	if err != nil {
		return nil, err
	}
	logger.Logf(logger.Allow, "load", "%d bytes loaded from %s at $%04x", n, args.filename, args.origin)

	if args.setPC {
		sess.mc.LoadPC(args.pc)
	} else {
		sess.mc.LoadPCIndirect(sess.mem, cpubus.Reset)
	}
	logger.Logf(logger.Allow, "cpu", "%s starting at $%04x", model, sess.mc.PC.Address())

	var obs cpu.Observers

	if args.trace {
		sess.tracer = tracer.NewTracer(logger.Allow)
		obs = append(obs, sess.tracer)
	}

	if args.scriptFile != "" {
		sess.script, err = script.NewScript(args.scriptFile)
		if err != nil {
			return nil, err
		}
		sess.script.Plumb(sess.mem)
		obs = append(obs, sess.script)
	}

	if len(obs) > 0 {
		sess.mc.SetObserver(obs)
	}

	return sess, nil
}

func (sess *session) end() {
	if sess.script != nil {
		sess.script.Close()
	}
}

// run the CPU until the budget has been consumed. if slice is greater than
// zero the budget is split into slices of that size and the clock is
// consulted after each slice.
//
// returns the number of cycles consumed.
func (sess *session) run(budget int, slice int, clk *limiter.Clock) (int, error) {
	if slice <= 0 || clk.Unlimited() {
		slice = budget
	}

	var consumed int
	for consumed < budget {
		n, err := sess.mc.Execute(min(slice, budget-consumed), sess.mem)
		consumed += n
		if err != nil {
			return consumed, err
		}
		clk.Wait(n)
	}

	return consumed, nil
}

// isHalt returns true if the error is one of the conditions that normally
// end a program.
func isHalt(err error) bool {
	return curated.Is(err, cpu.UnknownOpcode) ||
		curated.Is(err, cpu.ProgramCounterStuck) ||
		curated.Is(err, script.Break)
}

// report the result of running the session. halting conditions are written
// to output. any other error is returned.
func (sess *session) report(output io.Writer, consumed int, err error) error {
	if err != nil {
		if !isHalt(err) {
			return err
		}
		fmt.Fprintf(output, "halted: %v\n", err)
	}

	fmt.Fprintf(output, "%d cycles\n", consumed)
	if sess.mc.LastResult.Defn != nil || sess.mc.LastResult.Final {
		fmt.Fprintf(output, "%s\n", sess.mc.LastResult.String())
	}
	fmt.Fprintf(output, "%s\n", sess.mc.String())

	return nil
}

// snapshot of the CPU suitable for rendering with memviz. the CPU type itself
// holds the entire instruction table, which makes for a very large graph.
type snapshot struct {
	Model      string
	PC         uint16
	A          uint8
	X          uint8
	Y          uint8
	SP         uint8
	Status     uint8
	Halted     bool
	LastResult execution.Result
}

// writeMemviz writes a graphviz rendering of the CPU state to the named file.
func (sess *session) writeMemviz(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	s := &snapshot{
		Model:      sess.mc.Model().String(),
		PC:         sess.mc.PC.Address(),
		A:          sess.mc.A.Value(),
		X:          sess.mc.X.Value(),
		Y:          sess.mc.Y.Value(),
		SP:         sess.mc.SP.Value(),
		Status:     sess.mc.Status.Value(),
		Halted:     sess.mc.Halted,
		LastResult: sess.mc.LastResult,
	}
	memviz.Map(f, s)

	logger.Logf(logger.Allow, "memviz", "cpu state written to %s", filename)
	return nil
}
