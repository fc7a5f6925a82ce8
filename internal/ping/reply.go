package ping

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/zxhio/xping/pkg/netaddr"
	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"
)

const protocolICMP = 1

// Reply is the outcome of a successful probe.
type Reply struct {
	Host string           // destination as given by the caller
	Addr netaddr.IPv4Addr // source of the accepted datagram
	RTT  time.Duration
	Len  int // bytes received, IPv4 header included

	// Decoded is false when the datagram did not parse as IPv4 + ICMP.
	Decoded bool
	TTL     int
	Type    ipv4.ICMPType
	Code    int
	ID      int
	Seq     int
}

// Millis is the RTT in fractional milliseconds.
func (r *Reply) Millis() float64 {
	return float64(r.RTT) / float64(time.Millisecond)
}

func (r *Reply) String() string {
	return fmt.Sprintf("%sからの応答: 時間=%.3f ms", r.Host, r.Millis())
}

type message struct {
	ttl  int
	icmp *icmp.Message
}

// parseMessage decodes a datagram read from a raw ICMP socket.
func parseMessage(b []byte) (*message, error) {
	h, err := ipv4.ParseHeader(b)
	if err != nil {
		return nil, errors.Wrap(err, "ipv4.ParseHeader")
	}
	if h.Len > len(b) {
		return nil, errors.Errorf("ipv4 header length %d exceeds datagram length %d", h.Len, len(b))
	}
	msg, err := icmp.ParseMessage(protocolICMP, b[h.Len:])
	if err != nil {
		return nil, errors.Wrap(err, "icmp.ParseMessage")
	}
	return &message{ttl: h.TTL, icmp: msg}, nil
}

func (m *message) fill(r *Reply) {
	r.Decoded = true
	r.TTL = m.ttl
	r.Type, _ = m.icmp.Type.(ipv4.ICMPType)
	r.Code = m.icmp.Code
	if echo, ok := m.icmp.Body.(*icmp.Echo); ok {
		r.ID = echo.ID
		r.Seq = echo.Seq
	}
}

// isEchoReplyFor reports whether m answers the request with id and seq.
func (m *message) isEchoReplyFor(id, seq int) bool {
	if m.icmp.Type != ipv4.ICMPTypeEchoReply {
		return false
	}
	echo, ok := m.icmp.Body.(*icmp.Echo)
	return ok && echo.ID == id && echo.Seq == seq
}
