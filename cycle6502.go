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
	"os"
	"os/signal"

	"github.com/cycle6502/cycle6502/disassembly"
	"github.com/cycle6502/cycle6502/easyterm"
	"github.com/cycle6502/cycle6502/hardware/memory"
	"github.com/cycle6502/cycle6502/logger"
	"github.com/cycle6502/cycle6502/modalflag"
	"github.com/cycle6502/cycle6502/performance"
	"github.com/cycle6502/cycle6502/performance/limiter"
	"github.com/cycle6502/cycle6502/statsview"
	"github.com/cycle6502/cycle6502/version"
	"golang.org/x/term"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate. for example, STEP mode restores the terminal before
	// quitting.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state chan stateRequest
}

func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// default ctrl-c handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through the
	// mainSync instance
	go launch(sync)

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "STEP", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "STEP":
		err = step(md, sync)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	sf := addSessionFlags(md)
	cycles := md.AddHex("cycles", 0x3e8, "cycle budget (hex)")
	hz := md.AddInt("hz", 0, "clock rate in Hz (0 is unlimited)")
	slice := md.AddInt("slice", 1000, "cycles executed between clock checks when -hz is not 0")
	dump := md.AddRange("dump", "memory range to dump after running (hex begin:end)")
	viz := md.AddString("memviz", "", "write graphviz rendering of the final CPU state to file")
	log := md.AddBool("log", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("binary file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// trace entries are only useful if they are seen
	if *log || *sf.trace {
		logger.SetEcho(md.Output)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	sess, err := newSession(sf.args(md, md.GetArg(0)))
	if err != nil {
		return err
	}
	defer sess.end()

	consumed, err := sess.run(*cycles, *slice, limiter.NewClock(*hz))
	err = sess.report(md.Output, consumed, err)
	if err != nil {
		return err
	}

	if dump.Specified {
		err = sess.mem.Dump(md.Output, dump.Begin, dump.End)
		if err != nil {
			return err
		}
	}

	if *viz != "" {
		err = sess.writeMemviz(*viz)
		if err != nil {
			return err
		}
	}

	return nil
}

func step(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	sf := addSessionFlags(md)
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("binary file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("%s mode requires a terminal", md)
	}

	if *log || *sf.trace {
		logger.SetEcho(md.Output)
	} else {
		logger.SetEcho(nil)
	}

	sess, err := newSession(sf.args(md, md.GetArg(0)))
	if err != nil {
		return err
	}
	defer sess.end()

	var pt easyterm.Terminal
	err = pt.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer pt.CleanUp()

	err = pt.CBreakMode()
	if err != nil {
		return err
	}

	// ctrl-c is handled here so that the terminal is restored before quitting
	sync.state <- stateRequest{req: reqNoIntSig}
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	// keypresses are read in a separate goroutine so that the interrupt
	// signal can be serviced while waiting
	done := make(chan struct{})
	defer close(done)
	keys := readKeys(pt.ReadKey, done)

	// lines are truncated to fit the terminal
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width = 0
	}
	fit := func(s string) string {
		if width > 0 && len(s) > width {
			return s[:width]
		}
		return s
	}

	pt.Print("%s\n", fit("press any key to step. q to quit"))
	pt.Print("%s\n", fit(sess.mc.String()))

	var consumed int
	for {
		select {
		case <-intChan:
			pt.Print("\n")
			return nil

		case k, ok := <-keys:
			if !ok || easyterm.IsQuit(k) {
				return nil
			}

			// a budget of one cycle executes exactly one instruction
			n, err := sess.mc.Execute(1, sess.mem)
			consumed += n
			pt.Print("%s\n", fit(fmt.Sprintf("%s  %s", sess.mc.LastResult.String(), sess.mc.String())))

			if err != nil {
				return sess.report(md.Output, consumed, err)
			}
		}
	}
}

// readKeys calls read repeatedly and sends each key to the returned channel.
// The channel is closed when read returns an error. The goroutine also ends
// once done is closed, even if nothing is receiving from the channel.
func readKeys(read func() (byte, error), done <-chan struct{}) <-chan byte {
	keys := make(chan byte)
	go func() {
		defer close(keys)
		for {
			k, err := read()
			if err != nil {
				return
			}
			select {
			case keys <- k:
			case <-done:
				return
			}
		}
	}()
	return keys
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	sf := addSessionFlags(md)
	hz := md.AddInt("hz", 0, "clock rate in Hz (0 is unlimited)")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "create profile reports: none, cpu, mem, trace, all")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("binary file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	sess, err := newSession(sf.args(md, md.GetArg(0)))
	if err != nil {
		return err
	}
	defer sess.end()

	return performance.Check(md.Output, prf, sess.mc, sess.mem, *hz, *duration)
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddHex16("origin", 0x0000, "address at which the program is loaded (hex)")
	rng := md.AddRange("range", "range of addresses to disassemble (hex begin:end). defaults to the loaded program")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("binary file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	mem := memory.NewMemory()
	n, err := mem.LoadFile(md.GetArg(0), *origin)
	if err != nil {
		return err
	}

	if rng.Specified {
		return disassembly.Write(md.Output, mem, rng.Begin, rng.End)
	}

	if n == 0 {
		return nil
	}
	return disassembly.Write(md.Output, mem, *origin, *origin+uint16(n-1))
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *revision {
		fmt.Fprintln(md.Output, version.String())
		return nil
	}

	v, _, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	return nil
}
