// Package instr defines the instruction format of the transport-triggered
// machine: the unit table, the instruction value, its binary encoding and its
// textual form.
package instr

import "fmt"

const (
	// IndexBits is the width of the source and destination index fields.
	IndexBits = 12

	// MaxIndex is the largest index that fits in an index field.
	MaxIndex = 1<<IndexBits - 1
)

// IndexPolicy decides what Build does with an index wider than 12 bits.
type IndexPolicy int

const (
	// RejectIndex fails the build with ErrIndexOutOfRange.
	RejectIndex IndexPolicy = iota

	// MaskIndex keeps the low 12 bits of the index.
	MaskIndex
)

// Endpoint is one side of a move: the unit, its 12-bit index and the
// extension operand. Operand only has meaning when Unit.NeedsOperand().
type Endpoint struct {
	Unit    Unit
	Index   uint16
	Operand uint32
}

// Inst moves a value from a source endpoint to a destination endpoint. An
// Inst is immutable; the zero value is a NOP.
type Inst struct {
	src Endpoint
	dst Endpoint
}

// Src returns the source endpoint.
func (i Inst) Src() Endpoint {
	return i.src
}

// Dst returns the destination endpoint.
func (i Inst) Dst() Endpoint {
	return i.dst
}

// IsNop reports whether the instruction moves nothing.
func (i Inst) IsNop() bool {
	return i.dst.Unit == None
}

// Len returns the number of 32-bit words the instruction encodes to.
func (i Inst) Len() int {
	n := 1
	if i.src.Unit.NeedsOperand() {
		n++
	}
	if i.dst.Unit.NeedsOperand() {
		n++
	}

	return n
}

// Builder constructs instructions field by field.
type Builder struct {
	src, dst   Endpoint
	srcOperand bool
	dstOperand bool
	policy     IndexPolicy
}

// WithSrc sets the source unit and index.
func (b Builder) WithSrc(unit Unit, index uint16) Builder {
	b.src.Unit = unit
	b.src.Index = index
	return b
}

// WithDst sets the destination unit and index.
func (b Builder) WithDst(unit Unit, index uint16) Builder {
	b.dst.Unit = unit
	b.dst.Index = index
	return b
}

// WithSrcOperand sets the source extension operand.
func (b Builder) WithSrcOperand(operand uint32) Builder {
	b.src.Operand = operand
	b.srcOperand = true
	return b
}

// WithDstOperand sets the destination extension operand.
func (b Builder) WithDstOperand(operand uint32) Builder {
	b.dst.Operand = operand
	b.dstOperand = true
	return b
}

// WithIndexPolicy sets how indices wider than 12 bits are handled.
func (b Builder) WithIndexPolicy(policy IndexPolicy) Builder {
	b.policy = policy
	return b
}

// Build validates the fields and returns the instruction.
func (b Builder) Build() (Inst, error) {
	src, err := b.endpoint("source", b.src, b.srcOperand)
	if err != nil {
		return Inst{}, err
	}

	dst, err := b.endpoint("destination", b.dst, b.dstOperand)
	if err != nil {
		return Inst{}, err
	}

	if !dst.Unit.Writable() {
		return Inst{}, fmt.Errorf("destination %s: %w",
			dst.Unit, ErrUnwritableDestination)
	}

	return Inst{src: src, dst: dst}, nil
}

// MustBuild is like Build but panics on invalid fields.
func (b Builder) MustBuild() Inst {
	i, err := b.Build()
	if err != nil {
		panic(err)
	}

	return i
}

func (b Builder) endpoint(
	side string,
	e Endpoint,
	hasOperand bool,
) (Endpoint, error) {
	if err := checkUnit(e.Unit); err != nil {
		return Endpoint{}, fmt.Errorf("%s: %w", side, err)
	}

	if e.Index > MaxIndex {
		if b.policy != MaskIndex {
			return Endpoint{}, fmt.Errorf("%s index 0x%x: %w",
				side, e.Index, ErrIndexOutOfRange)
		}
		e.Index &= MaxIndex
	}

	if e.Unit.NeedsOperand() != hasOperand {
		if hasOperand {
			return Endpoint{}, fmt.Errorf("%s unit %s takes no operand: %w",
				side, e.Unit, ErrInvalidOperandPresence)
		}
		return Endpoint{}, fmt.Errorf("%s unit %s requires an operand: %w",
			side, e.Unit, ErrInvalidOperandPresence)
	}

	return e, nil
}

// New builds an instruction from positional fields. Operands are handed out
// in order to the source and then the destination, each only when its unit
// needs one; extra or missing operands fail with ErrInvalidOperandPresence.
func New(
	src Unit, si uint16,
	dst Unit, di uint16,
	operands ...uint32,
) (Inst, error) {
	b := Builder{}.WithSrc(src, si).WithDst(dst, di)

	if src.NeedsOperand() && len(operands) > 0 {
		b = b.WithSrcOperand(operands[0])
		operands = operands[1:]
	}

	if dst.NeedsOperand() && len(operands) > 0 {
		b = b.WithDstOperand(operands[0])
		operands = operands[1:]
	}

	if len(operands) > 0 {
		return Inst{}, fmt.Errorf("%d unused operand(s): %w",
			len(operands), ErrInvalidOperandPresence)
	}

	return b.Build()
}

// MustNew is like New but panics on invalid fields.
func MustNew(
	src Unit, si uint16,
	dst Unit, di uint16,
	operands ...uint32,
) Inst {
	i, err := New(src, si, dst, di, operands...)
	if err != nil {
		panic(err)
	}

	return i
}
