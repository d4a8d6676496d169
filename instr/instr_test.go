package instr_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/ttasm/instr"
)

var _ = Describe("Builder", func() {
	It("should build a register move", func() {
		i, err := instr.Builder{}.
			WithSrc(instr.Register, 5).
			WithDst(instr.Register, 10).
			Build()

		Expect(err).NotTo(HaveOccurred())
		Expect(i.Src()).To(Equal(instr.Endpoint{Unit: instr.Register, Index: 5}))
		Expect(i.Dst()).To(Equal(instr.Endpoint{Unit: instr.Register, Index: 10}))
		Expect(i.Len()).To(Equal(1))
	})

	It("should treat the zero value as NOP", func() {
		var i instr.Inst
		Expect(i.IsNop()).To(BeTrue())
		Expect(instr.Builder{}.MustBuild()).To(Equal(i))
	})

	It("should reject an operand on a unit without one", func() {
		_, err := instr.Builder{}.
			WithSrc(instr.Register, 0).
			WithSrcOperand(1).
			WithDst(instr.Register, 1).
			Build()

		Expect(err).To(MatchError(instr.ErrInvalidOperandPresence))
	})

	It("should reject a missing operand", func() {
		_, err := instr.Builder{}.
			WithSrc(instr.Register, 0).
			WithDst(instr.MemoryOperand, 0).
			Build()

		Expect(err).To(MatchError(instr.ErrInvalidOperandPresence))
	})

	It("should reject wide indices by default", func() {
		_, err := instr.Builder{}.
			WithSrc(instr.AbsoluteImmediate, 0x1000).
			WithDst(instr.Register, 0).
			Build()

		Expect(err).To(MatchError(instr.ErrIndexOutOfRange))
	})

	It("should mask wide indices when asked to", func() {
		i, err := instr.Builder{}.
			WithIndexPolicy(instr.MaskIndex).
			WithSrc(instr.AbsoluteImmediate, 0x1234).
			WithDst(instr.Register, 0xF001).
			Build()

		Expect(err).NotTo(HaveOccurred())
		Expect(i.Src().Index).To(Equal(uint16(0x234)))
		Expect(i.Dst().Index).To(Equal(uint16(0x001)))
	})

	It("should reject unknown unit codes", func() {
		_, err := instr.Builder{}.
			WithSrc(instr.Unit(13), 0).
			WithDst(instr.Register, 0).
			Build()

		Expect(err).To(MatchError(instr.ErrUnknownUnit))
	})

	It("should reject read-only destinations", func() {
		_, err := instr.Builder{}.
			WithSrc(instr.Register, 0).
			WithDst(instr.AluResult, 0).
			Build()

		Expect(err).To(MatchError(instr.ErrUnwritableDestination))
	})

	It("should panic from MustBuild on invalid fields", func() {
		Expect(func() {
			instr.Builder{}.WithDst(instr.AbsoluteImmediate, 0).MustBuild()
		}).To(Panic())
	})
})

var _ = Describe("New", func() {
	It("should hand the operand to the destination", func() {
		i, err := instr.New(instr.Register, 1, instr.MemoryOperand, 0, 0x543)

		Expect(err).NotTo(HaveOccurred())
		Expect(i.Dst().Operand).To(Equal(uint32(0x543)))
		Expect(i.Src().Operand).To(BeZero())
	})

	It("should hand operands to the source first", func() {
		i, err := instr.New(
			instr.MemoryOperand, 0, instr.MemoryOperand, 0, 0x1234, 0x5678)

		Expect(err).NotTo(HaveOccurred())
		Expect(i.Src().Operand).To(Equal(uint32(0x1234)))
		Expect(i.Dst().Operand).To(Equal(uint32(0x5678)))
		Expect(i.Len()).To(Equal(3))
	})

	It("should reject unused operands", func() {
		_, err := instr.New(instr.Register, 0, instr.Register, 1, 7)
		Expect(err).To(MatchError(instr.ErrInvalidOperandPresence))
	})

	It("should reject missing operands", func() {
		_, err := instr.New(instr.AbsoluteOperand, 0, instr.Register, 1)
		Expect(err).To(MatchError(instr.ErrInvalidOperandPresence))
	})
})
