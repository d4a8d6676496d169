package rom

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/akita/v4/sim/directconnection"

	"github.com/sarchlab/ttasm/instr"
)

// Bench connects a ROM and a Fetcher that reads the whole ROM back.
type Bench struct {
	Engine  sim.Engine
	ROM     *ROM
	Fetcher *Fetcher
	Conn    *directconnection.Comp
}

// BenchBuilder can create benches.
type BenchBuilder struct {
	engine sim.Engine
	freq   sim.Freq
	width  int
}

// WithEngine sets the engine that drives the bench.
func (b BenchBuilder) WithEngine(engine sim.Engine) BenchBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of every component.
func (b BenchBuilder) WithFreq(freq sim.Freq) BenchBuilder {
	b.freq = freq
	return b
}

// WithWidth sets the ROM width.
func (b BenchBuilder) WithWidth(width int) BenchBuilder {
	b.width = width
	return b
}

// Build creates the ROM, the fetcher and the connection between them.
func (b BenchBuilder) Build(name string, source WordSource) *Bench {
	if b.engine == nil {
		b.engine = sim.NewSerialEngine()
	}
	if b.freq == 0 {
		b.freq = 1 * sim.GHz
	}
	if b.width == 0 {
		b.width = 1
	}

	r := MakeBuilder().
		WithEngine(b.engine).
		WithFreq(b.freq).
		WithWidth(b.width).
		Build(name+".ROM", source)

	f := MakeFetcherBuilder().
		WithEngine(b.engine).
		WithFreq(b.freq).
		WithMaxInflight(2*b.width).
		Build(name+".Fetcher", source.Len())
	f.SetROM(r.TopPort().AsRemote())

	conn := directconnection.MakeBuilder().
		WithEngine(b.engine).
		WithFreq(b.freq).
		Build(name + ".Conn")
	conn.PlugIn(r.TopPort())
	conn.PlugIn(f.MemPort())

	return &Bench{
		Engine:  b.engine,
		ROM:     r,
		Fetcher: f,
		Conn:    conn,
	}
}

// Run fetches the whole ROM and returns the decoded instructions.
func (b *Bench) Run() ([]instr.Inst, error) {
	b.Fetcher.Start()

	if err := b.Engine.Run(); err != nil {
		return b.Fetcher.Insts(), err
	}

	return b.Fetcher.Insts(), b.Fetcher.Err()
}
