package verify

import (
	"fmt"

	"github.com/sarchlab/ttasm/instr"
	"github.com/sarchlab/ttasm/program"
)

// RunLint performs static checks on a program and returns the issues found,
// in program order.
func RunLint(p program.Program) []Issue {
	var issues []Issue

	img := program.NewImage(p)
	operatorChosen := false

	for n, i := range p {
		addr := img.InstAddr(n)
		src, dst := i.Src(), i.Dst()

		// STRUCT: a NOP ignores its source
		if dst.Unit == instr.None && src.Unit != instr.None {
			issues = append(issues, Issue{
				Type:    IssueStruct,
				Addr:    addr,
				Index:   n,
				Message: fmt.Sprintf("NOP ignores its %s source", src.Unit),
				Details: map[string]interface{}{"src": src.Unit.String()},
			})
		}

		// STRUCT: constant operator codes must be defined
		if dst.Unit == instr.AluOperator {
			if v, ok := constantValue(src); ok && !instr.ALUOp(v).Valid() {
				issues = append(issues, Issue{
					Type:    IssueStruct,
					Addr:    addr,
					Index:   n,
					Message: fmt.Sprintf("undefined ALU operator 0x%x", v),
					Details: map[string]interface{}{"operator": v},
				})
			}
			operatorChosen = true
		}

		// FLOW: constant jump targets must start an instruction
		if dst.Unit == instr.ProgramCounter {
			if target, ok := constantValue(src); ok && !img.IsInstStart(target) {
				msg := fmt.Sprintf("jump to 0x%x is not an instruction start", target)
				if int(target) >= img.Len() {
					msg = fmt.Sprintf("jump to 0x%x is past the end of the image (%d words)",
						target, img.Len())
				}
				issues = append(issues, Issue{
					Type:    IssueFlow,
					Addr:    addr,
					Index:   n,
					Message: msg,
					Details: map[string]interface{}{"target": target},
				})
			}
		}

		// FLOW: the result port is undefined until an operator is chosen
		if src.Unit == instr.AluResult && !operatorChosen {
			issues = append(issues, Issue{
				Type:    IssueFlow,
				Addr:    addr,
				Index:   n,
				Message: "ALU:RESULT read before any write to ALU:OPERATOR",
			})
		}
	}

	return issues
}

// constantValue returns the value a constant source unit provides.
func constantValue(e instr.Endpoint) (uint32, bool) {
	switch e.Unit {
	case instr.AbsoluteImmediate:
		return uint32(e.Index), true
	case instr.AbsoluteOperand:
		return e.Operand, true
	case instr.None:
		return 0, true
	}

	return 0, false
}
