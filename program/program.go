// Package program groups instructions into programs and lays them out as
// flat word images, boot memory files and listings.
package program

import (
	"strings"

	"github.com/sarchlab/ttasm/instr"
)

// Program is an ordered list of instructions.
type Program []instr.Inst

// Append adds instructions at the end of the program.
func (p *Program) Append(insts ...instr.Inst) {
	*p = append(*p, insts...)
}

// Words returns the encoding of the whole program.
func (p Program) Words() []uint32 {
	var words []uint32
	for _, i := range p {
		words = append(words, instr.Encode(i)...)
	}

	return words
}

// Listing returns the disassembly of every instruction, joined by newlines.
func (p Program) Listing() string {
	lines := make([]string, len(p))
	for n, i := range p {
		lines[n] = instr.Disassemble(i)
	}

	return strings.Join(lines, "\n")
}

// Image is a program laid out in word memory, starting at address 0.
type Image struct {
	words  []uint32
	starts []uint32
	isInst map[uint32]int
}

// NewImage lays out the program.
func NewImage(p Program) *Image {
	img := &Image{
		starts: make([]uint32, 0, len(p)),
		isInst: make(map[uint32]int, len(p)),
	}

	for n, i := range p {
		addr := uint32(len(img.words))
		img.starts = append(img.starts, addr)
		img.isInst[addr] = n
		img.words = append(img.words, instr.Encode(i)...)
	}

	return img
}

// WordAt returns the word stored at addr.
func (img *Image) WordAt(addr uint32) (uint32, bool) {
	if uint64(addr) >= uint64(len(img.words)) {
		return 0, false
	}

	return img.words[addr], true
}

// Len returns the number of words in the image.
func (img *Image) Len() int {
	return len(img.words)
}

// Words returns the image contents.
func (img *Image) Words() []uint32 {
	return img.words
}

// InstAddr returns the address of the n-th instruction.
func (img *Image) InstAddr(n int) uint32 {
	return img.starts[n]
}

// InstAt returns which instruction starts at addr, if any.
func (img *Image) InstAt(addr uint32) (int, bool) {
	n, ok := img.isInst[addr]
	return n, ok
}

// IsInstStart reports whether an instruction begins at addr. Addresses of
// extension words are not instruction starts.
func (img *Image) IsInstStart(addr uint32) bool {
	_, ok := img.isInst[addr]
	return ok
}
