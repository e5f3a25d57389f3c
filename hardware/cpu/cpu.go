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

package cpu

import (
	"fmt"
	"strings"

	"github.com/cycle6502/cycle6502/curated"
	"github.com/cycle6502/cycle6502/hardware/cpu/execution"
	"github.com/cycle6502/cycle6502/hardware/cpu/instructions"
	"github.com/cycle6502/cycle6502/hardware/cpu/registers"
	"github.com/cycle6502/cycle6502/hardware/memory/cpubus"
	"github.com/cycle6502/cycle6502/logger"
)

// Sentinal error patterns returned by ExecuteInstruction() and Execute().
const (
	UnknownOpcode       = "cpu: unknown opcode ($%02x) at ($%04x)"
	ProgramCounterStuck = "cpu: program counter stuck at ($%04x) for %d instructions"
)

// CPU implements the 6502 as found in many home computers and consoles
// of the late 1970s and 1980s.
type CPU struct {
	model Model

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8  registers.Register
	acc16 registers.ProgramCounter

	// memory is only attached for the duration of ExecuteInstruction()
	mem cpubus.Memory

	instructions [256]*instructions.Definition

	// LastResult describes the most recently executed instruction
	LastResult execution.Result

	// Halted is true after an unknown opcode has been encountered. The CPU
	// will not execute any more instructions until Reset() is called
	Halted bool
	halt   error

	observer Observer
	watchdog watchdog
}

// NewCPU is the preferred method of initialisation for the CPU structure. Note
// that the CPU will be in an unknown state until Reset() or LoadPC() has been
// called.
func NewCPU(model Model) *CPU {
	return &CPU{
		model:        model,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0),
		Status:       registers.NewStatusRegister(),
		acc8:         registers.NewRegister(0, "accumulator"),
		acc16:        registers.NewProgramCounter(0),
		instructions: instructions.GetDefinitions(),
	}
}

// Model returns the model the CPU was created with.
func (mc *CPU) Model() Model {
	return mc.model
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	for _, r := range []interface {
		Label() string
		String() string
	}{mc.PC, mc.A, mc.X, mc.Y, mc.SP, mc.Status} {
		if s.Len() > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%s=%s", r.Label(), r))
	}
	return s.String()
}

// SetObserver sets the Observer that will be notified after every instruction
// executed by Execute(). A nil value removes the existing observer.
func (mc *CPU) SetObserver(obs Observer) {
	mc.observer = obs
}

// Reset CPU. Registers and flags are cleared, the stack pointer is set to the
// top of the stack and memory is zeroed. The PC is loaded from the reset
// vector, which after zeroing memory means the PC will be zero. Programs
// should be loaded after the reset and the PC set with LoadPC() or
// LoadPCIndirect().
func (mc *CPU) Reset(mem cpubus.Initialiser) {
	mc.LastResult.Reset()
	mc.Halted = false
	mc.halt = nil
	mc.watchdog.reset()

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xff)
	mc.Status.Reset()

	mem.Init()
	mc.LoadPCIndirect(mem, cpubus.Reset)
}

// LoadPCIndirect loads the contents of indirectAddress into the PC. The
// memory accesses do not count towards the cycles of any instruction.
func (mc *CPU) LoadPCIndirect(mem cpubus.Memory, indirectAddress uint16) {
	lo := mem.Read(indirectAddress)
	hi := mem.Read(indirectAddress + 1)
	mc.LoadPC((uint16(hi) << 8) | uint16(lo))
}

// LoadPC loads the contents of directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) {
	mc.PC.Load(directAddress)
	mc.watchdog.reset()
}

// read8Bit returns 8bit value from the specified address.
//
// side-effects:
//   - +1 cycle
func (mc *CPU) read8Bit(address uint16) uint8 {
	mc.LastResult.Cycles++
	return mc.mem.Read(address)
}

// phantomRead is a read that the CPU performs but the value of which is not
// used. The cycle still counts.
func (mc *CPU) phantomRead(address uint16) {
	mc.LastResult.Cycles++
	_ = mc.mem.Read(address)
}

// write8Bit writes 8 bits to the specified address.
//
// side-effects:
//   - +1 cycle
func (mc *CPU) write8Bit(address uint16, value uint8) {
	mc.LastResult.Cycles++
	mc.mem.Write(address, value)
}

// read16BitZeroPage returns the 16bit value stored at the zero page address.
// The high byte is read from the start of the zero page if address is 0xff.
//
// side-effects:
//   - +2 cycles
func (mc *CPU) read16BitZeroPage(address uint8) uint16 {
	lo := mc.read8Bit(uint16(address))
	hi := mc.read8Bit(uint16(address + 1))
	return (uint16(hi) << 8) | uint16(lo)
}

// read 8bits from the PC location has a variety of additional side-effects
// depending on context.
type read8BitPCeffect int

const (
	brk read8BitPCeffect = iota
	newOpcode
	loNibble
	hiNibble
)

// read8BitPC reads 8 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount
//   - additional side effect updates LastResult as appropriate
//   - +1 cycle
func (mc *CPU) read8BitPC(effect read8BitPCeffect) {
	v := mc.read8Bit(mc.PC.Address())
	mc.PC.Add(1)
	mc.LastResult.ByteCount++

	switch effect {
	case brk:
		// BRK advances the PC by two but the padding byte is not part of
		// the instruction definition
		mc.LastResult.ByteCount--

	case newOpcode:
		mc.LastResult.OpCode = v
		mc.LastResult.Defn = mc.instructions[v]

	case loNibble:
		mc.LastResult.InstructionData = uint16(v)

	case hiNibble:
		mc.LastResult.InstructionData = (uint16(v) << 8) | mc.LastResult.InstructionData
	}
}

// read16BitPC reads 16 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount and LastResult.InstructionData
//   - +2 cycles
func (mc *CPU) read16BitPC() {
	mc.read8BitPC(loNibble)
	mc.read8BitPC(hiNibble)
}

// push value onto the stack. the stack pointer wraps within the stack page.
//
// side-effects:
//   - +1 cycle
func (mc *CPU) push(value uint8) {
	mc.write8Bit(mc.SP.Address(), value)
	mc.SP.Decrement()
}

// pull value from the stack.
//
// side-effects:
//   - +1 cycle
func (mc *CPU) pull() uint8 {
	mc.SP.Increment()
	return mc.read8Bit(mc.SP.Address())
}

func (mc *CPU) branch(flag bool, address uint16) {
	// the offset is a signed 8bit value that must be sign extended before
	// being added to the 16bit PC
	if address&0x0080 == 0x0080 {
		address |= 0xff00
	}

	mc.LastResult.BranchSuccess = flag
	if !flag {
		return
	}

	oldPC := mc.PC.Address()

	// +1 cycle
	mc.phantomRead(mc.PC.Address())

	// the new low byte is added to the PC while leaving the high byte as it
	// is. a page fault is when the high byte needs correcting
	mc.PC.Add(address)
	mc.LastResult.PageFault = oldPC&0xff00 != mc.PC.Address()&0xff00
	mc.PC.Load(oldPC&0xff00 | mc.PC.Address()&0x00ff)

	if mc.LastResult.PageFault {
		// +1 cycle
		mc.phantomRead(mc.PC.Address())

		// correct program counter
		if address&0xff00 == 0xff00 {
			mc.PC.Add(0xff00)
		} else {
			mc.PC.Add(0x0100)
		}
	}
}

// setZN sets the zero and sign flags according to the value in the register.
func (mc *CPU) setZN(r registers.Register) {
	mc.Status.Zero = r.IsZero()
	mc.Status.Sign = r.IsNegative()
}

// ExecuteInstruction steps CPU forward one instruction. The basic process when
// executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read operands (if any) according to the addressing mode of the instruction
//  3. using the operator as a guide, perform the instruction on the data
//
// Every memory access costs one cycle. The number of cycles taken, along
// with other information about the instruction, is in LastResult after the
// function returns.
//
// An unknown opcode halts the CPU. The returned error can be tested with
// curated.Is(err, UnknownOpcode).
func (mc *CPU) ExecuteInstruction(mem cpubus.Memory) error {
	if mc.Halted {
		return mc.halt
	}

	mc.mem = mem
	defer func() {
		mc.mem = nil
	}()

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// +1 cycle
	mc.read8BitPC(newOpcode)

	defn := mc.LastResult.Defn
	if defn == nil {
		// the opcode fetch counts as a cycle but the PC is left pointing at the
		// opcode
		mc.PC.Load(mc.LastResult.Address)
		mc.LastResult.Final = true
		mc.Halted = true
		mc.halt = curated.Errorf(UnknownOpcode, mc.LastResult.OpCode, mc.LastResult.Address)
		logger.Log(logger.Allow, "cpu", mc.halt)
		return mc.halt
	}

	address, value := mc.resolve(defn)

	// read value from memory using address found in resolve() only when the
	// addressing mode is not implied or immediate, and the instruction is a
	// Read or RMW instruction. Flow instructions use the address directly and
	// write instructions don't need a value
	if !(defn.AddressingMode == instructions.Implied || defn.AddressingMode == instructions.Immediate) {
		switch defn.Effect {
		case instructions.Read:
			// +1 cycle
			value = mc.read8Bit(address)

		case instructions.RMW:
			// +1 cycle
			value = mc.read8Bit(address)

			// the original value is written back while the new value is
			// being calculated
			// +1 cycle
			mc.write8Bit(address, value)
		}
	}

	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		// +1 cycle
		mc.push(mc.A.Value())

	case instructions.Pla:
		// +1 cycle
		mc.phantomRead(mc.SP.Address())

		// +1 cycle
		mc.A.Load(mc.pull())
		mc.setZN(mc.A)

	case instructions.Php:
		// the break and unused bits are always set in the pushed value
		// +1 cycle
		mc.push(mc.Status.Value() | registers.Break | registers.Unused)

	case instructions.Plp:
		// +1 cycle
		mc.phantomRead(mc.SP.Address())

		// +1 cycle
		mc.Status.Load(mc.pull())
		mc.Status.Break = false

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.setZN(mc.A)

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.setZN(mc.X)

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.setZN(mc.Y)

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.setZN(mc.A)

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.setZN(mc.X)

	case instructions.Txs:
		// does not affect status register
		mc.SP.Load(mc.X.Value())

	case instructions.Eor:
		mc.A.EOR(value)
		mc.setZN(mc.A)

	case instructions.Ora:
		mc.A.ORA(value)
		mc.setZN(mc.A)

	case instructions.And:
		mc.A.AND(value)
		mc.setZN(mc.A)

	case instructions.Lda:
		mc.A.Load(value)
		mc.setZN(mc.A)

	case instructions.Ldx:
		mc.X.Load(value)
		mc.setZN(mc.X)

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.setZN(mc.Y)

	case instructions.Sta:
		// +1 cycle
		mc.write8Bit(address, mc.A.Value())

	case instructions.Stx:
		// +1 cycle
		mc.write8Bit(address, mc.X.Value())

	case instructions.Sty:
		// +1 cycle
		mc.write8Bit(address, mc.Y.Value())

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.setZN(mc.X)

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.setZN(mc.Y)

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.setZN(mc.X)

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.setZN(mc.Y)

	case instructions.Asl:
		r := mc.shiftTarget(defn, value)
		mc.Status.Carry = r.ASL()
		mc.setZN(*r)
		value = r.Value()

	case instructions.Lsr:
		r := mc.shiftTarget(defn, value)
		mc.Status.Carry = r.LSR()
		mc.setZN(*r)
		value = r.Value()

	case instructions.Rol:
		r := mc.shiftTarget(defn, value)
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.setZN(*r)
		value = r.Value()

	case instructions.Ror:
		r := mc.shiftTarget(defn, value)
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.setZN(*r)
		value = r.Value()

	case instructions.Adc:
		if mc.model.DecimalArithmetic && mc.Status.DecimalMode {
			mc.Status.Carry,
				mc.Status.Zero,
				mc.Status.Overflow,
				mc.Status.Sign = mc.A.AddDecimal(value, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
			mc.setZN(mc.A)
		}

	case instructions.Sbc:
		if mc.model.DecimalArithmetic && mc.Status.DecimalMode {
			mc.Status.Carry,
				mc.Status.Zero,
				mc.Status.Overflow,
				mc.Status.Sign = mc.A.SubtractDecimal(value, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
			mc.setZN(mc.A)
		}

	case instructions.Inc:
		mc.acc8.Load(value)
		mc.acc8.Add(1, false)
		mc.setZN(mc.acc8)
		value = mc.acc8.Value()

	case instructions.Dec:
		mc.acc8.Load(value)
		mc.acc8.Add(0xff, false)
		mc.setZN(mc.acc8)
		value = mc.acc8.Value()

	case instructions.Cmp:
		mc.compare(mc.A, value)

	case instructions.Cpx:
		mc.compare(mc.X, value)

	case instructions.Cpy:
		mc.compare(mc.Y, value)

	case instructions.Bit:
		mc.acc8.Load(value)
		mc.Status.Sign = mc.acc8.IsNegative()
		mc.Status.Overflow = mc.acc8.IsBitV()
		mc.acc8.AND(mc.A.Value())
		mc.Status.Zero = mc.acc8.IsZero()

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, address)

	case instructions.Bcs:
		mc.branch(mc.Status.Carry, address)

	case instructions.Beq:
		mc.branch(mc.Status.Zero, address)

	case instructions.Bmi:
		mc.branch(mc.Status.Sign, address)

	case instructions.Bne:
		mc.branch(!mc.Status.Zero, address)

	case instructions.Bpl:
		mc.branch(!mc.Status.Sign, address)

	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, address)

	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, address)

	case instructions.Jsr:
		// +1 cycle
		mc.read8BitPC(loNibble)

		// the PC now points to the last byte of the JSR instruction. this is
		// the address pushed onto the stack. RTS corrects for it

		// internal operation. the stack is read but the value is not used
		// +1 cycle
		mc.phantomRead(mc.SP.Address())

		// +2 cycles
		mc.push(uint8(mc.PC.Address() >> 8))
		mc.push(uint8(mc.PC.Address()))

		// +1 cycle
		mc.read8BitPC(hiNibble)

		mc.PC.Load(mc.LastResult.InstructionData)

	case instructions.Rts:
		// +1 cycle
		mc.phantomRead(mc.SP.Address())

		// +2 cycles
		lo := mc.pull()
		hi := mc.pull()
		mc.PC.Load((uint16(hi) << 8) | uint16(lo))

		// +1 cycle
		mc.phantomRead(mc.PC.Address())
		mc.PC.Add(1)

	case instructions.Brk:
		// +3 cycles
		mc.push(uint8(mc.PC.Address() >> 8))
		mc.push(uint8(mc.PC.Address()))
		mc.push(mc.Status.Value() | registers.Break | registers.Unused)

		mc.Status.InterruptDisable = true

		// +2 cycles
		lo := mc.read8Bit(cpubus.BRK)
		hi := mc.read8Bit(cpubus.BRK + 1)
		mc.PC.Load((uint16(hi) << 8) | uint16(lo))

	case instructions.Rti:
		// +1 cycle
		mc.phantomRead(mc.SP.Address())

		// +1 cycle
		mc.Status.Load(mc.pull())
		mc.Status.Break = false

		// unlike RTS there is no need to add one to return address
		// +2 cycles
		lo := mc.pull()
		hi := mc.pull()
		mc.PC.Load((uint16(hi) << 8) | uint16(lo))
	}

	// write altered value back to memory for RMW instructions
	if defn.Effect == instructions.RMW {
		// +1 cycle
		mc.write8Bit(address, value)
	}

	mc.LastResult.Final = true

	return nil
}

// shiftTarget returns the register to be used by the shift and rotate
// instructions. The accumulator forms of these instructions are implied
// addressing and Read effect.
func (mc *CPU) shiftTarget(defn *instructions.Definition, value uint8) *registers.Register {
	if defn.Effect == instructions.RMW {
		mc.acc8.Load(value)
		return &mc.acc8
	}
	return &mc.A
}

// compare is used by CMP, CPX and CPY. The carry flag is set if the register
// value is greater than or equal to value.
func (mc *CPU) compare(r registers.Register, value uint8) {
	mc.acc8.Load(r.Value())

	// binary subtraction even if decimal mode is active. the meaning of the
	// flags is the same
	mc.Status.Carry, _ = mc.acc8.Subtract(value, true)
	mc.setZN(mc.acc8)
}

// Execute instructions until the budget has been spent. Instructions always
// run to completion so the number of cycles consumed, which is returned, can
// be greater than the budget.
//
// Execution also stops if: an unknown opcode is encountered; the PC hasn't
// changed for WatchdogLimit instructions; or the Observer returns an error.
func (mc *CPU) Execute(budget int, mem cpubus.Memory) (int, error) {
	if mc.Halted {
		return 0, mc.halt
	}

	var consumed int

	for budget > 0 {
		err := mc.ExecuteInstruction(mem)
		consumed += mc.LastResult.Cycles
		budget = max(budget-mc.LastResult.Cycles, 0)
		if err != nil {
			return consumed, err
		}

		if mc.observer != nil {
			err = mc.observer.Observe(mc)
			if err != nil {
				return consumed, err
			}
		}

		err = mc.watchdog.check(mc.LastResult.Address, mc.PC.Address())
		if err != nil {
			logger.Log(logger.Allow, "cpu", err)
			return consumed, err
		}
	}

	return consumed, nil
}
