package program_test

import (
	"os"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/ttasm/asm"
	"github.com/sarchlab/ttasm/instr"
	"github.com/sarchlab/ttasm/program"
)

const sampleYAML = `
name: sample
program:
  - asm: "R00 := #000666"
  - src: {unit: Register, index: 0}
    dst: {unit: AluLeft}
  - src: {unit: AbsoluteImmediate, index: 0x123}
    dst: {unit: AluRight}
  - src: {unit: AbsoluteImmediate, index: ADD}
    dst: {unit: AluOperator}
  - src: {unit: AluResult}
    dst: {unit: Register, index: 1}
  - src: {unit: Register, index: 1}
    dst: {unit: MemoryOperand, operand: 0x543}
  - asm: "*(000666) := *(000543)"
`

var _ = Describe("LoadYAML", func() {
	It("should load the sample program", func() {
		p, err := program.LoadYAML(strings.NewReader(sampleYAML))

		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(Equal(program.Sample()))
	})

	It("should load an explicit NOP", func() {
		p, err := program.LoadYAML(strings.NewReader(`
program:
  - dst: {unit: None}
`))

		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(HaveLen(1))
		Expect(p[0].IsNop()).To(BeTrue())
	})

	DescribeTable("statements without a destination",
		func(doc string) {
			_, err := program.LoadYAML(strings.NewReader(doc))
			Expect(err).To(MatchError(ContainSubstring("needs asm or dst")))
		},
		Entry("empty statement", "program:\n  - {}\n"),
		Entry("source only", "program:\n  - src: {unit: Register, index: 3}\n"),
	)

	It("should mask wide indices when configured", func() {
		p, err := program.LoadYAML(strings.NewReader(`
index_policy: mask
program:
  - src: {unit: AbsoluteImmediate, index: 0x1666}
    dst: {unit: Register}
`))

		Expect(err).NotTo(HaveOccurred())
		Expect(p[0].Src().Index).To(Equal(uint16(0x666)))
	})

	It("should mask indices wider than 16 bits", func() {
		p, err := program.LoadYAML(strings.NewReader(`
index_policy: mask
program:
  - src: {unit: AbsoluteImmediate, index: 0x11666}
    dst: {unit: Register, index: 0x20001}
`))

		Expect(err).NotTo(HaveOccurred())
		Expect(p[0].Src().Index).To(Equal(uint16(0x666)))
		Expect(p[0].Dst().Index).To(Equal(uint16(1)))
	})

	It("should reject indices wider than 16 bits by default", func() {
		_, err := program.LoadYAML(strings.NewReader(`
program:
  - src: {unit: AbsoluteImmediate, index: 0x11666}
    dst: {unit: Register}
`))

		Expect(err).To(MatchError(instr.ErrIndexOutOfRange))
	})

	It("should reject wide indices by default", func() {
		_, err := program.LoadYAML(strings.NewReader(`
program:
  - src: {unit: AbsoluteImmediate, index: 0x1666}
    dst: {unit: Register}
`))

		Expect(err).To(MatchError(instr.ErrIndexOutOfRange))
		Expect(err).To(MatchError(ContainSubstring("instruction 0")))
	})

	It("should reject a missing operand", func() {
		_, err := program.LoadYAML(strings.NewReader(`
program:
  - src: {unit: Register}
    dst: {unit: MemoryOperand}
`))

		Expect(err).To(MatchError(instr.ErrInvalidOperandPresence))
	})

	It("should reject unknown units", func() {
		_, err := program.LoadYAML(strings.NewReader(`
program:
  - src: {unit: RegisterPointer}
    dst: {unit: Register}
`))

		Expect(err).To(MatchError(instr.ErrUnknownUnit))
	})

	It("should only accept operator names for the operator unit", func() {
		_, err := program.LoadYAML(strings.NewReader(`
program:
  - src: {unit: AbsoluteImmediate, index: ADD}
    dst: {unit: Register}
`))

		Expect(err).To(HaveOccurred())
	})

	It("should reject unknown policies", func() {
		_, err := program.LoadYAML(strings.NewReader("index_policy: wrap\n"))
		Expect(err).To(MatchError(ContainSubstring("index policy")))
	})

	It("should agree with the assembly form of the countdown sample", func() {
		fromYAML, err := program.LoadYAMLFile("../samples/countdown/countdown.yaml")
		Expect(err).NotTo(HaveOccurred())

		f, err := os.Open("../samples/countdown/countdown.tta")
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()

		fromAsm, err := asm.ParseReader(f)
		Expect(err).NotTo(HaveOccurred())

		Expect(fromYAML).To(HaveLen(7))
		Expect([]instr.Inst(fromYAML)).To(Equal(fromAsm))
	})
})
