package rom

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/ttasm/instr"
)

// Fetcher reads a fixed number of words from the ROM in address order and
// reassembles them into instructions.
type Fetcher struct {
	*sim.TickingComponent

	memPort     sim.Port
	rom         sim.RemotePort
	length      uint32
	maxInflight int

	nextReq    uint32
	inflight   int
	nextDecode uint32
	arrived    map[uint32]uint32

	decoder   instr.Decoder
	instStart uint32
	insts     []instr.Inst
	addrs     []uint32
	err       error
}

// MemPort returns the port that talks to the ROM.
func (f *Fetcher) MemPort() sim.Port {
	return f.memPort
}

// SetROM sets the port that fetch requests are sent to.
func (f *Fetcher) SetROM(rom sim.RemotePort) {
	f.rom = rom
}

// Start schedules the first tick.
func (f *Fetcher) Start() {
	f.TickLater()
}

// Done reports whether every word has been fetched or a fetch failed.
func (f *Fetcher) Done() bool {
	return f.err != nil || f.nextDecode >= f.length
}

// Insts returns the instructions decoded so far.
func (f *Fetcher) Insts() []instr.Inst {
	return f.insts
}

// InstAddrs returns the start address of each decoded instruction.
func (f *Fetcher) InstAddrs() []uint32 {
	return f.addrs
}

// Err returns the first fetch or decode error.
func (f *Fetcher) Err() error {
	if f.err == nil && f.Done() && f.decoder.Pending() {
		return fmt.Errorf("image ends at word %d: %w",
			f.length, instr.ErrTruncated)
	}

	return f.err
}

// Tick receives responses and issues new requests.
func (f *Fetcher) Tick() (madeProgress bool) {
	if f.Done() {
		return false
	}

	madeProgress = f.recv() || madeProgress
	madeProgress = f.send() || madeProgress

	return madeProgress
}

func (f *Fetcher) send() bool {
	if f.nextReq >= f.length || f.inflight >= f.maxInflight {
		return false
	}

	req := FetchReqBuilder{}.
		WithSrc(f.memPort.AsRemote()).
		WithDst(f.rom).
		WithAddr(f.nextReq).
		Build()

	if err := f.memPort.Send(req); err != nil {
		return false
	}

	f.nextReq++
	f.inflight++

	return true
}

func (f *Fetcher) recv() bool {
	msg := f.memPort.RetrieveIncoming()
	if msg == nil {
		return false
	}

	rsp, ok := msg.(*FetchRsp)
	if !ok {
		panic("Fetcher only accepts FetchRsp")
	}

	f.inflight--
	if !rsp.Valid {
		f.err = fmt.Errorf("word %d is outside the ROM", rsp.Addr)
		return true
	}

	f.arrived[rsp.Addr] = rsp.Data
	f.decodeArrived()

	return true
}

func (f *Fetcher) decodeArrived() {
	for f.err == nil {
		word, ok := f.arrived[f.nextDecode]
		if !ok {
			return
		}
		delete(f.arrived, f.nextDecode)

		if !f.decoder.Pending() {
			f.instStart = f.nextDecode
		}

		i, complete, err := f.decoder.Push(word)
		if err != nil {
			f.err = fmt.Errorf("word %d: %w", f.nextDecode, err)
			return
		}
		f.nextDecode++

		if complete {
			f.insts = append(f.insts, i)
			f.addrs = append(f.addrs, f.instStart)
			Trace("Fetcher",
				"Behavior", "Decode",
				"Name", f.Name(),
				"Addr", f.instStart,
				"Inst", i.String(),
			)
		}
	}
}
