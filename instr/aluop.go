package instr

import (
	"fmt"
	"strings"
)

// ALUOp is an operator code. Writing it to the AluOperator unit selects the
// operation whose result appears on AluResult.
type ALUOp uint16

const (
	ALUNop ALUOp = iota
	ALUAdd
	ALUSub
	ALUMul
	ALUDiv
	ALUMod
	ALUEql
	ALUSl
	ALUSr
	ALUSra
	ALUNot
	ALUAnd
	ALUOr
	ALUXor
	ALUGt
	ALULt

	numALUOps
)

var aluOpNames = [numALUOps]string{
	"NOP", "ADD", "SUB", "MUL", "DIV", "MOD", "EQL", "SL",
	"SR", "SRA", "NOT", "AND", "OR", "XOR", "GT", "LT",
}

// Valid reports whether op is a defined operator.
func (op ALUOp) Valid() bool {
	return op < numALUOps
}

func (op ALUOp) String() string {
	if !op.Valid() {
		return fmt.Sprintf("ALUOp(%d)", uint16(op))
	}

	return aluOpNames[op]
}

// ParseALUOp accepts an operator mnemonic, case insensitive, with or without
// the ALU_ prefix.
func ParseALUOp(name string) (ALUOp, error) {
	n := strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(name)), "ALU_")
	for op, mn := range aluOpNames {
		if mn == n {
			return ALUOp(op), nil
		}
	}

	return 0, fmt.Errorf("unknown ALU operator %q", name)
}
