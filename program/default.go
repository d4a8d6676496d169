package program

import "github.com/sarchlab/ttasm/instr"

// Sample returns the demonstration program: compute 0x666 + 0x123 on the
// ALU and store the result at 0x543, then copy 0x543 to 0x666.
func Sample() Program {
	return Program{
		instr.MustNew(instr.AbsoluteImmediate, 0x666, instr.Register, 0),
		instr.MustNew(instr.Register, 0, instr.AluLeft, 0),
		instr.MustNew(instr.AbsoluteImmediate, 0x123, instr.AluRight, 0),
		instr.MustNew(instr.AbsoluteImmediate, uint16(instr.ALUAdd), instr.AluOperator, 0),
		instr.MustNew(instr.AluResult, 0, instr.Register, 1),
		instr.MustNew(instr.Register, 1, instr.MemoryOperand, 0, 0x543),
		instr.MustNew(instr.MemoryImmediate, 0x543, instr.MemoryImmediate, 0x666),
	}
}
