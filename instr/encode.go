package instr

import (
	"fmt"
	"strings"
)

// Primary word layout, least significant bit first.
const (
	srcUnitShift  = 0
	srcIndexShift = 4
	dstUnitShift  = 16
	dstIndexShift = 20

	unitMask = 0xF
)

// Encode returns the primary word followed by the source extension word and
// then the destination extension word, each present only when the unit
// needs an operand.
func Encode(i Inst) []uint32 {
	words := make([]uint32, 1, i.Len())
	words[0] = primaryWord(i)

	if i.src.Unit.NeedsOperand() {
		words = append(words, i.src.Operand)
	}
	if i.dst.Unit.NeedsOperand() {
		words = append(words, i.dst.Operand)
	}

	return words
}

// Words returns the binary encoding of the instruction.
func (i Inst) Words() []uint32 {
	return Encode(i)
}

func primaryWord(i Inst) uint32 {
	return uint32(i.src.Unit)&unitMask<<srcUnitShift |
		uint32(i.src.Index)&MaxIndex<<srcIndexShift |
		uint32(i.dst.Unit)&unitMask<<dstUnitShift |
		uint32(i.dst.Index)&MaxIndex<<dstIndexShift
}

// Hex renders the encoded words as 8-digit lowercase hex groups separated by
// single spaces.
func Hex(i Inst) string {
	return HexWords(Encode(i))
}

// HexWords renders words the way Hex does.
func HexWords(words []uint32) string {
	var sb strings.Builder
	for n, w := range words {
		if n > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%08x", w)
	}

	return sb.String()
}

type header struct {
	src, dst Endpoint
}

func splitPrimary(word uint32) header {
	return header{
		src: Endpoint{
			Unit:  Unit(word >> srcUnitShift & unitMask),
			Index: uint16(word >> srcIndexShift & MaxIndex),
		},
		dst: Endpoint{
			Unit:  Unit(word >> dstUnitShift & unitMask),
			Index: uint16(word >> dstIndexShift & MaxIndex),
		},
	}
}

func (h header) extensionWords() int {
	n := 0
	if h.src.Unit.NeedsOperand() {
		n++
	}
	if h.dst.Unit.NeedsOperand() {
		n++
	}

	return n
}

func (h header) build(ext []uint32) (Inst, error) {
	b := Builder{}.
		WithSrc(h.src.Unit, h.src.Index).
		WithDst(h.dst.Unit, h.dst.Index)

	if h.src.Unit.NeedsOperand() {
		b = b.WithSrcOperand(ext[0])
		ext = ext[1:]
	}
	if h.dst.Unit.NeedsOperand() {
		b = b.WithDstOperand(ext[0])
	}

	return b.Build()
}

// Decode reads one instruction from the front of words and reports how many
// words it used.
func Decode(words []uint32) (Inst, int, error) {
	if len(words) == 0 {
		return Inst{}, 0, fmt.Errorf("empty word stream: %w", ErrTruncated)
	}

	h := splitPrimary(words[0])
	n := 1 + h.extensionWords()
	if len(words) < n {
		return Inst{}, 0, fmt.Errorf(
			"word %08x needs %d extension word(s), %d left: %w",
			words[0], n-1, len(words)-1, ErrTruncated)
	}

	i, err := h.build(words[1:n])
	if err != nil {
		return Inst{}, 0, fmt.Errorf("decode %08x: %w", words[0], err)
	}

	return i, n, nil
}

// DecodeAll decodes a complete word image.
func DecodeAll(words []uint32) ([]Inst, error) {
	var insts []Inst
	for addr := 0; addr < len(words); {
		i, n, err := Decode(words[addr:])
		if err != nil {
			return insts, fmt.Errorf("at word %d: %w", addr, err)
		}
		insts = append(insts, i)
		addr += n
	}

	return insts, nil
}

// Decoder reassembles instructions from words arriving one at a time.
type Decoder struct {
	pending []uint32
	need    int
}

// Push feeds the next word. It returns the instruction once its last word has
// arrived.
func (d *Decoder) Push(word uint32) (Inst, bool, error) {
	d.pending = append(d.pending, word)
	if len(d.pending) == 1 {
		d.need = 1 + splitPrimary(word).extensionWords()
	}

	if len(d.pending) < d.need {
		return Inst{}, false, nil
	}

	i, _, err := Decode(d.pending)
	d.pending = d.pending[:0]
	d.need = 0
	if err != nil {
		return Inst{}, false, err
	}

	return i, true, nil
}

// Pending reports whether the decoder is in the middle of an instruction.
func (d *Decoder) Pending() bool {
	return len(d.pending) > 0
}
