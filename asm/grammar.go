// Package asm reads the textual instruction form produced by
// instr.Disassemble back into instructions.
//
// One instruction per line:
//
//	NOP
//	PUSH <src>
//	JMP <src>
//	<dst> := <src>
//
// Operands are R<hex> registers, S<hex> stack slots, ALU:LEFT, ALU:RIGHT,
// ALU:OPERATOR, ALU:RESULT, *(<hex>) memory, #<hex> constants, POP and PC.
// Eight hex digits select the operand-carrying form of memory and constant
// operands. "#0" is the zero source. Text after ';' is a comment.
package asm

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type line struct {
	Nop  bool    `  @"NOP"`
	Push *source `| "PUSH" @@`
	Jmp  *source `| "JMP" @@`
	Move *move   `| @@`
}

type move struct {
	Dst *operand `@@ ":="`
	Src *source  `@@`
}

type source struct {
	Pop     bool     `  @"POP"`
	PC      bool     `| @"PC"`
	Operand *operand `| @@`
}

type operand struct {
	ALU   *string `  @ALU`
	Reg   *string `| @Reg`
	Stack *string `| @Stack`
	Mem   *string `| "*" "(" @Hex ")"`
	Const *string `| "#" @Hex`
}

var ttaLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
	{Name: "Comment", Pattern: `;[^\n]*`},
	{Name: "ALU", Pattern: `ALU:(LEFT|RIGHT|OPERATOR|RESULT)`},
	{Name: "Keyword", Pattern: `(NOP|PUSH|JMP|POP|PC)\b`},
	{Name: "Reg", Pattern: `R[0-9a-fA-F]+`},
	{Name: "Stack", Pattern: `S[0-9a-fA-F]+`},
	{Name: "Hex", Pattern: `[0-9a-fA-F]+`},
	{Name: "Punct", Pattern: `:=|[*()#]`},
})

var parser = participle.MustBuild[line](
	participle.Lexer(ttaLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)
