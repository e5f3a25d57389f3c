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

package thomharte

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/cycle6502/cycle6502/hardware/cpu"
	"github.com/cycle6502/cycle6502/hardware/cpu/instructions"
	"github.com/cycle6502/cycle6502/test"
)

// the posible memory events recorded by the memory implementation. also used
// to seal the memEvent types in the BusCycle test data
type memEvent string

const (
	read  = memEvent("read")
	write = memEvent("write")
)

// testMem records every access made by the CPU
type testMem struct {
	internal [0x10000]uint8
	cycles   []BusCycle
}

func (mem *testMem) Read(address uint16) uint8 {
	data := mem.internal[address]
	mem.cycles = append(mem.cycles, BusCycle{Address: address, Data: data, Event: read})
	return data
}

func (mem *testMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
	mem.cycles = append(mem.cycles, BusCycle{Address: address, Data: data, Event: write})
}

func (mem *testMem) Init() {
	clear(mem.internal[:])
	mem.cycles = mem.cycles[:0]
}

type RAMEntry struct {
	Address uint16
	Value   uint8
}

func (r *RAMEntry) UnmarshalJSON(data []byte) error {
	var raw [2]uint64
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}
	r.Address = uint16(raw[0])
	r.Value = uint8(raw[1])
	return nil
}

type BusCycle struct {
	Address uint16
	Data    uint8
	Event   memEvent
}

func (b *BusCycle) UnmarshalJSON(data []byte) error {
	var raw [3]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	addr, _ := raw[0].(float64)
	dat, _ := raw[1].(float64)
	ev, _ := raw[2].(string)

	b.Address = uint16(addr)
	b.Data = uint8(dat)
	b.Event = memEvent(ev)

	switch b.Event {
	case read, write:
	default:
		return fmt.Errorf("unexpected memory event: %q", b.Event)
	}

	return nil
}

type State struct {
	PC  uint64     `json:"pc"`
	S   uint64     `json:"s"`
	A   uint64     `json:"a"`
	X   uint64     `json:"x"`
	Y   uint64     `json:"y"`
	P   uint64     `json:"p"`
	RAM []RAMEntry `json:"ram"`
}

type Tests struct {
	Name    string     `json:"name"`
	Initial State      `json:"initial"`
	Final   State      `json:"final"`
	Cycles  []BusCycle `json:"cycles"`
}

func (d *Tests) UnmarshalJSON(data []byte) error {
	// alias type to prevent recursion
	type norecurse Tests

	var tmp norecurse
	if err := json.Unmarshal(data, &tmp); err != nil {
		return fmt.Errorf("error unmarshalling test %q: %w", tmp.Name, err)
	}
	*d = Tests(tmp)
	return nil
}

var testsPath = filepath.Join("6502", "v1")

// the break and unused bits are not compared
const statusMask = 0xcf

func TestThomHarte(t *testing.T) {
	d, err := os.ReadDir(testsPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			t.Skipf("%s not present", testsPath)
		}
		t.Fatal(err)
	}

	defns := instructions.GetDefinitions()

	for _, e := range d {
		if !e.Type().IsRegular() || filepath.Ext(e.Name()) != ".json" {
			continue
		}

		// files are named after the opcode being tested
		opcode, err := strconv.ParseUint(strings.TrimSuffix(e.Name(), ".json"), 16, 8)
		if err != nil || defns[opcode] == nil {
			continue
		}

		t.Run(e.Name(), func(t *testing.T) {
			testThomHarte(t, filepath.Join(testsPath, e.Name()))
		})
	}
}

func testThomHarte(t *testing.T, testFile string) {
	f, err := os.Open(testFile)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var tests []Tests
	if err := json.NewDecoder(f).Decode(&tests); err != nil {
		t.Fatalf("%s: %v", testFile, err)
	}

	mem := &testMem{}
	mc := cpu.NewCPU(cpu.MOS6502Decimal)
	mc.Reset(mem)

	for i, s := range tests {
		mc.LoadPC(uint16(s.Initial.PC))
		mc.A.Load(uint8(s.Initial.A))
		mc.X.Load(uint8(s.Initial.X))
		mc.Y.Load(uint8(s.Initial.Y))
		mc.SP.Load(uint8(s.Initial.S))
		mc.Status.Load(uint8(s.Initial.P))
		for _, r := range s.Initial.RAM {
			mem.internal[r.Address] = r.Value
		}
		mem.cycles = mem.cycles[:0]

		err := mc.ExecuteInstruction(mem)
		if err != nil {
			t.Fatal(err)
		}

		var fail bool

		fail = !test.ExpectEquality(t, mc.PC.Address(), uint16(s.Final.PC), s.Name, "PC") || fail
		fail = !test.ExpectEquality(t, mc.A.Value(), uint8(s.Final.A), s.Name, "A") || fail
		fail = !test.ExpectEquality(t, mc.X.Value(), uint8(s.Final.X), s.Name, "X") || fail
		fail = !test.ExpectEquality(t, mc.Y.Value(), uint8(s.Final.Y), s.Name, "Y") || fail
		fail = !test.ExpectEquality(t, mc.SP.Value(), uint8(s.Final.S), s.Name, "SP") || fail
		fail = !test.ExpectEquality(t, mc.Status.Value()&statusMask, uint8(s.Final.P)&statusMask, s.Name, "Status") || fail
		for _, r := range s.Final.RAM {
			fail = !test.ExpectEquality(t, mem.internal[r.Address], r.Value, s.Name, fmt.Sprintf("RAM %04x", r.Address)) || fail
		}

		fail = !test.ExpectEquality(t, len(mem.cycles), len(s.Cycles), s.Name, "cycles") || fail
		fail = !test.ExpectEquality(t, mc.LastResult.Cycles, len(s.Cycles), s.Name, "result cycles") || fail
		if len(mem.cycles) == len(s.Cycles) {
			for c := range s.Cycles {
				fail = !test.ExpectEquality(t, mem.cycles[c], s.Cycles[c], s.Name, "bus cycle", c) || fail
			}
		}

		if fail {
			t.Logf("last instruction: %s", mc.LastResult.String())
			t.Fatalf("%s: failed on test %d", testFile, i)
		}
	}
}
