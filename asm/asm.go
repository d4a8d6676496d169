package asm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sarchlab/ttasm/instr"
)

// operandDigits is the width at which memory and constant operands switch to
// the extension-word form.
const operandDigits = 8

// ParseLine assembles a single instruction.
func ParseLine(text string) (instr.Inst, error) {
	ast, err := parser.ParseString("", text)
	if err != nil {
		return instr.Inst{}, fmt.Errorf("%q: %w", text, err)
	}

	i, err := ast.inst()
	if err != nil {
		return instr.Inst{}, fmt.Errorf("%q: %w", text, err)
	}

	return i, nil
}

// Parse assembles a listing, one instruction per line. Blank lines and
// comment-only lines are skipped.
func Parse(text string) ([]instr.Inst, error) {
	return ParseReader(strings.NewReader(text))
}

// ParseReader is Parse over a reader.
func ParseReader(r io.Reader) ([]instr.Inst, error) {
	var insts []instr.Inst

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		text := scanner.Text()
		code, _, _ := strings.Cut(text, ";")
		if strings.TrimSpace(code) == "" {
			continue
		}

		i, err := ParseLine(text)
		if err != nil {
			return insts, fmt.Errorf("line %d: %w", lineNo, err)
		}
		insts = append(insts, i)
	}

	if err := scanner.Err(); err != nil {
		return insts, err
	}

	return insts, nil
}

func (l *line) inst() (instr.Inst, error) {
	b := instr.Builder{}

	switch {
	case l.Nop:
		return b.Build()
	case l.Push != nil:
		b = b.WithDst(instr.StackPushPop, 0)
		return l.Push.apply(b)
	case l.Jmp != nil:
		b = b.WithDst(instr.ProgramCounter, 0)
		return l.Jmp.apply(b)
	}

	dst, err := l.Move.Dst.endpoint()
	if err != nil {
		return instr.Inst{}, err
	}
	if dst.Unit == instr.None {
		return instr.Inst{}, fmt.Errorf("#0 as destination: %w",
			instr.ErrUnwritableDestination)
	}

	b = b.WithDst(dst.Unit, dst.Index)
	if dst.Unit.NeedsOperand() {
		b = b.WithDstOperand(dst.Operand)
	}

	return l.Move.Src.apply(b)
}

func (s *source) apply(b instr.Builder) (instr.Inst, error) {
	switch {
	case s.Pop:
		b = b.WithSrc(instr.StackPushPop, 0)
	case s.PC:
		b = b.WithSrc(instr.ProgramCounter, 0)
	default:
		e, err := s.Operand.endpoint()
		if err != nil {
			return instr.Inst{}, err
		}

		b = b.WithSrc(e.Unit, e.Index)
		if e.Unit.NeedsOperand() {
			b = b.WithSrcOperand(e.Operand)
		}
	}

	return b.Build()
}

func (o *operand) endpoint() (instr.Endpoint, error) {
	switch {
	case o.ALU != nil:
		return aluEndpoint(*o.ALU), nil
	case o.Reg != nil:
		return indexed(instr.Register, (*o.Reg)[1:])
	case o.Stack != nil:
		return indexed(instr.StackIndex, (*o.Stack)[1:])
	case o.Mem != nil:
		return wide(instr.MemoryImmediate, instr.MemoryOperand, *o.Mem)
	case o.Const != nil:
		if *o.Const == "0" {
			return instr.Endpoint{Unit: instr.None}, nil
		}
		return wide(instr.AbsoluteImmediate, instr.AbsoluteOperand, *o.Const)
	}

	panic("empty operand")
}

func aluEndpoint(text string) instr.Endpoint {
	switch text {
	case "ALU:LEFT":
		return instr.Endpoint{Unit: instr.AluLeft}
	case "ALU:RIGHT":
		return instr.Endpoint{Unit: instr.AluRight}
	case "ALU:OPERATOR":
		return instr.Endpoint{Unit: instr.AluOperator}
	}

	return instr.Endpoint{Unit: instr.AluResult}
}

func indexed(unit instr.Unit, digits string) (instr.Endpoint, error) {
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return instr.Endpoint{}, err
	}

	if v > instr.MaxIndex {
		return instr.Endpoint{}, fmt.Errorf("%s index 0x%x: %w",
			unit, v, instr.ErrIndexOutOfRange)
	}

	return instr.Endpoint{Unit: unit, Index: uint16(v)}, nil
}

func wide(short, long instr.Unit, digits string) (instr.Endpoint, error) {
	if len(digits) != operandDigits {
		return indexed(short, digits)
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return instr.Endpoint{}, err
	}

	return instr.Endpoint{Unit: long, Operand: uint32(v)}, nil
}
