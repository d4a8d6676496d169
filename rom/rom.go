// Package rom models the boot ROM of the transport-triggered machine as an
// akita component, together with a fetch front-end that reads a program back
// through it.
package rom

import (
	"github.com/sarchlab/akita/v4/sim"
)

// WordSource provides the ROM contents. program.Image implements it.
type WordSource interface {
	WordAt(addr uint32) (uint32, bool)
	Len() int
}

// ROM answers FetchReq messages arriving on its top port.
type ROM struct {
	*sim.TickingComponent

	topPort sim.Port
	source  WordSource
	width   int

	served int
}

// TopPort returns the port that receives fetch requests.
func (r *ROM) TopPort() sim.Port {
	return r.topPort
}

// Served returns the number of requests answered so far.
func (r *ROM) Served() int {
	return r.served
}

// Tick serves up to width requests.
func (r *ROM) Tick() (madeProgress bool) {
	for i := 0; i < r.width; i++ {
		if !r.serveOne() {
			break
		}
		madeProgress = true
	}

	return madeProgress
}

func (r *ROM) serveOne() bool {
	msg := r.topPort.PeekIncoming()
	if msg == nil {
		return false
	}

	req := msgMustBeFetchReq(msg)
	data, ok := r.source.WordAt(req.Addr)

	rsp := FetchRspBuilder{}.
		WithSrc(r.topPort.AsRemote()).
		WithDst(req.Src).
		WithRspTo(req.ID).
		WithAddr(req.Addr).
		WithData(data, ok).
		Build()

	if err := r.topPort.Send(rsp); err != nil {
		return false
	}

	r.topPort.RetrieveIncoming()
	r.served++

	Trace("ROM",
		"Behavior", "Serve",
		"Name", r.Name(),
		"Addr", req.Addr,
		"Data", data,
		"Valid", ok,
	)

	return true
}

func msgMustBeFetchReq(msg sim.Msg) *FetchReq {
	req, ok := msg.(*FetchReq)
	if !ok {
		panic("ROM only accepts FetchReq")
	}

	return req
}
