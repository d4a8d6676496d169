package rom

import "github.com/sarchlab/akita/v4/sim"

// FetchReq asks the ROM for the word at Addr.
type FetchReq struct {
	sim.MsgMeta

	Addr uint32
}

// Meta returns the meta data of the msg.
func (m *FetchReq) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone returns a copy of the msg with a new ID.
func (m *FetchReq) Clone() sim.Msg {
	clone := *m
	clone.ID = sim.GetIDGenerator().Generate()
	return &clone
}

// FetchReqBuilder is a factory for FetchReq.
type FetchReqBuilder struct {
	src, dst sim.RemotePort
	addr     uint32
}

// WithSrc sets the source port of the msg.
func (b FetchReqBuilder) WithSrc(src sim.RemotePort) FetchReqBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the msg.
func (b FetchReqBuilder) WithDst(dst sim.RemotePort) FetchReqBuilder {
	b.dst = dst
	return b
}

// WithAddr sets the word address to fetch.
func (b FetchReqBuilder) WithAddr(addr uint32) FetchReqBuilder {
	b.addr = addr
	return b
}

// Build creates a FetchReq.
func (b FetchReqBuilder) Build() *FetchReq {
	return &FetchReq{
		MsgMeta: sim.MsgMeta{
			ID:  sim.GetIDGenerator().Generate(),
			Src: b.src,
			Dst: b.dst,
		},
		Addr: b.addr,
	}
}

// FetchRsp carries the word stored at Addr. Valid is false when the address
// is outside the ROM; Data is zero then.
type FetchRsp struct {
	sim.MsgMeta

	RespondTo string
	Addr      uint32
	Data      uint32
	Valid     bool
}

// Meta returns the meta data of the msg.
func (m *FetchRsp) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone returns a copy of the msg with a new ID.
func (m *FetchRsp) Clone() sim.Msg {
	clone := *m
	clone.ID = sim.GetIDGenerator().Generate()
	return &clone
}

// GetRspTo returns the ID of the request this msg answers.
func (m *FetchRsp) GetRspTo() string {
	return m.RespondTo
}

// FetchRspBuilder is a factory for FetchRsp.
type FetchRspBuilder struct {
	src, dst  sim.RemotePort
	respondTo string
	addr      uint32
	data      uint32
	valid     bool
}

// WithSrc sets the source port of the msg.
func (b FetchRspBuilder) WithSrc(src sim.RemotePort) FetchRspBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the msg.
func (b FetchRspBuilder) WithDst(dst sim.RemotePort) FetchRspBuilder {
	b.dst = dst
	return b
}

// WithRspTo sets the ID of the request being answered.
func (b FetchRspBuilder) WithRspTo(id string) FetchRspBuilder {
	b.respondTo = id
	return b
}

// WithAddr sets the word address.
func (b FetchRspBuilder) WithAddr(addr uint32) FetchRspBuilder {
	b.addr = addr
	return b
}

// WithData sets the fetched word.
func (b FetchRspBuilder) WithData(data uint32, valid bool) FetchRspBuilder {
	b.data = data
	b.valid = valid
	return b
}

// Build creates a FetchRsp.
func (b FetchRspBuilder) Build() *FetchRsp {
	return &FetchRsp{
		MsgMeta: sim.MsgMeta{
			ID:  sim.GetIDGenerator().Generate(),
			Src: b.src,
			Dst: b.dst,
		},
		RespondTo: b.respondTo,
		Addr:      b.addr,
		Data:      b.data,
		Valid:     b.valid,
	}
}
