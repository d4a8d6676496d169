// Package verify provides static checks for transport-triggered programs.
//
// The checks look at the instruction stream only; nothing is executed.
//
//   - STRUCT checks: instruction fields that encode fine but mean nothing,
//     such as an undefined ALU operator code or a NOP with a source.
//   - FLOW checks: program-order problems, such as a jump into the middle of
//     an instruction or a read of ALU:RESULT before any operator was chosen.
//
// Issues carry the word address and instruction number they refer to.
package verify

// IssueType classifies lint issues.
type IssueType string

const (
	IssueStruct IssueType = "STRUCT" // Field content error (bad operator, ignored source)
	IssueFlow   IssueType = "FLOW"   // Program-order error (bad jump target, early result read)
)

// Issue represents a single lint issue
type Issue struct {
	Type    IssueType              // STRUCT or FLOW
	Addr    uint32                 // Word address of the instruction
	Index   int                    // Instruction number in the program
	Message string                 // Human-readable description
	Details map[string]interface{} // Additional context
}
