package instr

import "fmt"

// Disassemble renders the instruction in assignment form, "<dst> := <src>".
// A move to None is NOP, a move to the stack is "PUSH <src>" and a move to
// the program counter is "JMP <src>".
func Disassemble(i Inst) string {
	src := sourceText(i.src)

	switch i.dst.Unit {
	case None:
		return "NOP"
	case StackPushPop:
		return "PUSH " + src
	case ProgramCounter:
		return "JMP " + src
	}

	return destinationText(i.dst) + " := " + src
}

func (i Inst) String() string {
	return Disassemble(i)
}

func destinationText(e Endpoint) string {
	switch e.Unit {
	case StackIndex:
		return fmt.Sprintf("S%06x", e.Index)
	case Register:
		return fmt.Sprintf("R%02x", e.Index)
	case AluLeft:
		return "ALU:LEFT"
	case AluRight:
		return "ALU:RIGHT"
	case AluOperator:
		return "ALU:OPERATOR"
	case MemoryImmediate:
		return fmt.Sprintf("*(%06x)", e.Index)
	case MemoryOperand:
		return fmt.Sprintf("*(%08x)", e.Operand)
	}

	panic(fmt.Sprintf("unit %s cannot be a destination", e.Unit))
}

func sourceText(e Endpoint) string {
	switch e.Unit {
	case None:
		return "#0"
	case StackPushPop:
		return "POP"
	case AluResult:
		return "ALU:RESULT"
	case ProgramCounter:
		return "PC"
	case AbsoluteImmediate:
		return fmt.Sprintf("#%06x", e.Index)
	case AbsoluteOperand:
		return fmt.Sprintf("#%08x", e.Operand)
	}

	return destinationText(e)
}
