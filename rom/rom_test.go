package rom_test

import (
	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/ttasm/instr"
	"github.com/sarchlab/ttasm/program"
	"github.com/sarchlab/ttasm/rom"
)

var _ = Describe("Bench", func() {
	var (
		mockCtrl *gomock.Controller
		source   *MockWordSource
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		source = NewMockWordSource(mockCtrl)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	expectWords := func(words []uint32) {
		source.EXPECT().Len().Return(len(words)).AnyTimes()
		source.EXPECT().
			WordAt(gomock.Any()).
			DoAndReturn(func(addr uint32) (uint32, bool) {
				if int(addr) >= len(words) {
					return 0, false
				}
				return words[addr], true
			}).
			AnyTimes()
	}

	It("should fetch a single word instruction", func() {
		expectWords([]uint32{0x0003666b})

		bench := rom.BenchBuilder{}.Build("Bench", source)
		insts, err := bench.Run()

		Expect(err).NotTo(HaveOccurred())
		Expect(insts).To(HaveLen(1))
		Expect(insts[0].String()).To(Equal("R00 := #000666"))
		Expect(bench.ROM.Served()).To(Equal(1))
	})

	It("should reassemble extension words", func() {
		expectWords([]uint32{0x00090013, 0x00000543, 0x0003666b})

		bench := rom.BenchBuilder{}.Build("Bench", source)
		insts, err := bench.Run()

		Expect(err).NotTo(HaveOccurred())
		Expect(insts).To(HaveLen(2))
		Expect(insts[0].String()).To(Equal("*(00000543) := R01"))
		Expect(insts[1].String()).To(Equal("R00 := #000666"))
	})

	It("should report words the ROM does not hold", func() {
		source.EXPECT().Len().Return(3).AnyTimes()
		source.EXPECT().WordAt(uint32(0)).
			Return(uint32(0x0003666b), true).AnyTimes()
		source.EXPECT().WordAt(gomock.Not(uint32(0))).
			Return(uint32(0), false).AnyTimes()

		bench := rom.BenchBuilder{}.Build("Bench", source)
		_, err := bench.Run()

		Expect(err).To(MatchError(ContainSubstring("outside the ROM")))
	})

	It("should report a truncated image", func() {
		expectWords([]uint32{0x00090013})

		bench := rom.BenchBuilder{}.Build("Bench", source)
		_, err := bench.Run()

		Expect(err).To(MatchError(instr.ErrTruncated))
	})

	It("should report undecodable words", func() {
		expectWords([]uint32{0x0000000d})

		bench := rom.BenchBuilder{}.Build("Bench", source)
		_, err := bench.Run()

		Expect(err).To(MatchError(instr.ErrUnknownUnit))
	})

	It("should read back the sample program", func() {
		p := program.Sample()
		img := program.NewImage(p)

		bench := rom.BenchBuilder{}.
			WithEngine(sim.NewSerialEngine()).
			WithWidth(2).
			Build("Bench", img)
		insts, err := bench.Run()

		Expect(err).NotTo(HaveOccurred())
		Expect(insts).To(Equal([]instr.Inst(p)))
		Expect(bench.ROM.Served()).To(Equal(img.Len()))
	})

	It("should record where each instruction starts", func() {
		p := program.Sample()
		img := program.NewImage(p)

		bench := rom.BenchBuilder{}.Build("Bench", img)
		_, err := bench.Run()
		Expect(err).NotTo(HaveOccurred())

		addrs := bench.Fetcher.InstAddrs()
		Expect(addrs).To(HaveLen(len(p)))
		for n := range p {
			Expect(addrs[n]).To(Equal(img.InstAddr(n)))
		}
		Expect(addrs[6]).To(Equal(uint32(7)))
	})
})

var _ = Describe("Messages", func() {
	It("should build a fetch response", func() {
		req := rom.FetchReqBuilder{}.
			WithSrc(sim.RemotePort("Fetcher.Mem")).
			WithDst(sim.RemotePort("ROM.Top")).
			WithAddr(7).
			Build()

		rsp := rom.FetchRspBuilder{}.
			WithSrc(req.Dst).
			WithDst(req.Src).
			WithRspTo(req.ID).
			WithAddr(req.Addr).
			WithData(0xdeadbeef, true).
			Build()

		Expect(rsp.Src).To(Equal(sim.RemotePort("ROM.Top")))
		Expect(rsp.Dst).To(Equal(sim.RemotePort("Fetcher.Mem")))
		Expect(rsp.GetRspTo()).To(Equal(req.ID))
		Expect(rsp.Addr).To(Equal(uint32(7)))
		Expect(rsp.Data).To(Equal(uint32(0xdeadbeef)))
		Expect(rsp.Valid).To(BeTrue())
	})

	It("should give clones a new ID", func() {
		req := rom.FetchReqBuilder{}.WithAddr(3).Build()
		clone := req.Clone().(*rom.FetchReq)

		Expect(clone.ID).NotTo(Equal(req.ID))
		Expect(clone.Addr).To(Equal(req.Addr))
	})
})

var _ = Describe("Builder", func() {
	It("should reject a ROM without a source", func() {
		Expect(func() {
			rom.MakeBuilder().Build("ROM", nil)
		}).To(Panic())
	})

	It("should reject a zero width", func() {
		Expect(func() {
			rom.MakeBuilder().WithWidth(0)
		}).To(Panic())
	})
})
