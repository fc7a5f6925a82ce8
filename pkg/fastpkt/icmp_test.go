package fastpkt

import (
	"testing"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/stretchr/testify/assert"
	"github.com/zxhio/xping/pkg/netutil"
	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"
)

func serialize(layers ...gopacket.SerializableLayer) ([]byte, error) {
	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}
	err := gopacket.SerializeLayers(buf, opts, layers...)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func TestICMPChecksum(t *testing.T) {
	testCases := []struct {
		payload []byte
	}{
		{},
		{payload: []byte{0x01, 0x02, 0x03, 0x04}},
		{payload: []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}},
		{payload: []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09}},
	}

	layerICMPv4 := &layers.ICMPv4{TypeCode: layers.CreateICMPv4TypeCode(layers.ICMPv4TypeEchoRequest, 0), Id: 0x1234, Seq: 7}
	for _, testCase := range testCases {
		buf, err := serialize(layerICMPv4, gopacket.Payload(testCase.payload))
		if err != nil {
			t.Fatalf("serialize: %v", err)
		}

		pkt := gopacket.NewPacket(buf, layers.LayerTypeICMPv4, gopacket.Default)
		csum := DataPtrICMPHeader(buf, 0).ComputeChecksum(uint16(len(testCase.payload)))
		assert.Equal(t, pkt.Layers()[0].(*layers.ICMPv4).Checksum, csum)
		assert.True(t, ValidChecksum(buf))
	}
}

func TestNewEchoRequest(t *testing.T) {
	testCases := []struct {
		id  uint16
		seq uint16
	}{
		{id: 0, seq: 0},
		{id: 1, seq: 0},
		{id: 0x1234, seq: 0},
		{id: 0xffff, seq: 0},
		{id: 0x0102, seq: 0x0304},
	}

	for _, tc := range testCases {
		req := NewEchoRequest(tc.id, tc.seq)
		data := req.Bytes()

		assert.Equal(t, 32, SizeofEchoRequest)
		assert.Len(t, data, 32)
		assert.Equal(t, uint8(ICMPv4TypeEchoRequest), data[0])
		assert.Equal(t, uint8(0), data[1])
		assert.Equal(t, byte(tc.id>>8), data[4])
		assert.Equal(t, byte(tc.id), data[5])
		assert.Equal(t, tc.id, req.EchoID())
		assert.Equal(t, tc.seq, req.EchoSeq())
		assert.True(t, ValidChecksum(data))
		assert.Equal(t, netutil.Ntohs(req.Checksum), req.ComputeChecksum(uint16(len(req.Payload))))

		// gopacket must compute the same checksum for the same fields.
		want, err := serialize(
			&layers.ICMPv4{TypeCode: layers.CreateICMPv4TypeCode(layers.ICMPv4TypeEchoRequest, 0), Id: tc.id, Seq: tc.seq},
			gopacket.Payload(make([]byte, len(req.Payload))),
		)
		if err != nil {
			t.Fatalf("serialize: %v", err)
		}
		assert.Equal(t, want, data)

		msg, err := icmp.ParseMessage(1, data)
		if !assert.NoError(t, err) {
			continue
		}
		assert.Equal(t, ipv4.ICMPTypeEcho, msg.Type)
		echo, ok := msg.Body.(*icmp.Echo)
		if assert.True(t, ok) {
			assert.Equal(t, int(tc.id), echo.ID)
			assert.Equal(t, int(tc.seq), echo.Seq)
		}
	}
}

func TestEchoRequestGolden(t *testing.T) {
	req := NewEchoRequest(0, 0)
	data := req.Bytes()
	assert.Equal(t, []byte{0x08, 0x00, 0xf7, 0xff}, data[:4])
}
