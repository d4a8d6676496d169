package rom

import (
	"github.com/sarchlab/akita/v4/sim"
)

// Builder can create ROMs.
type Builder struct {
	engine sim.Engine
	freq   sim.Freq
	width  int
	bufCap int
}

// MakeBuilder returns a builder with a one-word-per-cycle ROM.
func MakeBuilder() Builder {
	return Builder{
		freq:   1 * sim.GHz,
		width:  1,
		bufCap: 4,
	}
}

// WithEngine sets the engine.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the ROM.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithWidth sets how many requests the ROM serves per cycle.
func (b Builder) WithWidth(width int) Builder {
	if width < 1 {
		panic("ROM width must be at least 1")
	}
	b.width = width
	return b
}

// WithBufferCapacity sets the port buffer capacity.
func (b Builder) WithBufferCapacity(capacity int) Builder {
	b.bufCap = capacity
	return b
}

// Build creates a ROM that serves words from source.
func (b Builder) Build(name string, source WordSource) *ROM {
	sourceMustNotBeNil(source)

	r := &ROM{
		source: source,
		width:  b.width,
	}

	r.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, r)
	r.topPort = sim.NewPort(r, b.bufCap, b.bufCap, name+".Top")
	r.AddPort("Top", r.topPort)

	return r
}

// FetcherBuilder can create fetch front-ends.
type FetcherBuilder struct {
	engine      sim.Engine
	freq        sim.Freq
	maxInflight int
	bufCap      int
}

// MakeFetcherBuilder returns a builder with default settings.
func MakeFetcherBuilder() FetcherBuilder {
	return FetcherBuilder{
		freq:        1 * sim.GHz,
		maxInflight: 4,
		bufCap:      4,
	}
}

// WithEngine sets the engine.
func (b FetcherBuilder) WithEngine(engine sim.Engine) FetcherBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the fetcher.
func (b FetcherBuilder) WithFreq(freq sim.Freq) FetcherBuilder {
	b.freq = freq
	return b
}

// WithMaxInflight sets how many requests may be outstanding.
func (b FetcherBuilder) WithMaxInflight(n int) FetcherBuilder {
	b.maxInflight = n
	return b
}

// Build creates a fetcher that reads length words.
func (b FetcherBuilder) Build(name string, length int) *Fetcher {
	f := &Fetcher{
		length:      uint32(length),
		maxInflight: b.maxInflight,
		arrived:     make(map[uint32]uint32),
	}

	f.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, f)
	f.memPort = sim.NewPort(f, b.bufCap, b.bufCap, name+".Mem")
	f.AddPort("Mem", f.memPort)

	return f
}

func sourceMustNotBeNil(source WordSource) {
	if source == nil {
		panic("ROM needs a word source")
	}
}
