package fastpkt

import (
	"unsafe"

	"github.com/zxhio/xping/pkg/netutil"
)

// <linux/icmp.h>
//
// struct icmphdr {
//     __u8 type;
//     __u8 code;
//     __sum16 checksum;
//     union {
//         struct {
//             __be16 id;
//             __be16 sequence;
//         } echo;
//         __be32 gateway;
//         struct {
//             __be16 mtu;
//             __u8 void;
//         } frag;
//     };
// };

const (
	ICMPv4TypeEchoRequest = 0x8
	ICMPv4TypeEchoReply   = 0x0
)

const (
	SizeofICMP        = int(unsafe.Sizeof(ICMPHeader{}))  // sizeof(struct icmphdr)
	SizeofEchoRequest = int(unsafe.Sizeof(EchoRequest{})) // header and payload on the wire
)

// ICMPHeader keeps multi-byte fields in network byte order.
type ICMPHeader struct {
	Type     uint8
	Code     uint8
	Checksum uint16

	// Echo
	ID  uint16
	Seq uint16
}

// ComputeChecksum returns the checksum of the header followed by payloadLen
// bytes, computed with the checksum field zeroed. The header must be backed
// by at least SizeofICMP+payloadLen bytes.
func (icmp *ICMPHeader) ComputeChecksum(payloadLen uint16) uint16 {
	data := unsafe.Slice((*byte)(unsafe.Pointer(icmp)), SizeofICMP+int(payloadLen))

	old := icmp.Checksum
	icmp.Checksum = 0
	csum := Checksum(data)
	icmp.Checksum = old
	return csum
}

func (icmp *ICMPHeader) SetChecksum(payloadLen uint16) {
	icmp.Checksum = netutil.Htons(icmp.ComputeChecksum(payloadLen))
}

// EchoRequest is the fixed 32 byte echo request sent by a probe.
// The payload is left zero.
type EchoRequest struct {
	ICMPHeader
	Payload [24]byte
}

// NewEchoRequest builds a request for id and seq with its checksum set.
func NewEchoRequest(id, seq uint16) *EchoRequest {
	req := &EchoRequest{}
	req.Type = ICMPv4TypeEchoRequest
	req.Code = 0
	req.ID = netutil.Htons(id)
	req.Seq = netutil.Htons(seq)
	req.SetChecksum(uint16(len(req.Payload)))
	return req
}

func (req *EchoRequest) EchoID() uint16  { return netutil.Ntohs(req.ID) }
func (req *EchoRequest) EchoSeq() uint16 { return netutil.Ntohs(req.Seq) }

// Bytes returns the wire form of req. The slice aliases req.
func (req *EchoRequest) Bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(req)), SizeofEchoRequest)
}
