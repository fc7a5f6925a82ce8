package ping

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipUnlessRaw(t *testing.T) {
	if os.Geteuid() != 0 {
		t.Skip("raw ICMP socket requires root")
	}
	conn, err := DialRaw()
	if err != nil {
		t.Skipf("raw ICMP socket unavailable: %v", err)
	}
	conn.Close()
}

func TestRawConnLoopback(t *testing.T) {
	skipUnlessRaw(t)

	p := NewProber(WithTimeout(time.Second))
	for i := 0; i < 3; i++ {
		reply, err := p.Probe("127.0.0.1")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, reply.RTT, time.Duration(0))
		assert.Equal(t, "127.0.0.1", reply.Addr.String())
	}
}

func TestRawConnLoopbackStrict(t *testing.T) {
	skipUnlessRaw(t)

	p := NewProber(WithTimeout(time.Second), WithStrict(true))
	reply, err := p.Probe("127.0.0.1")
	if err != nil {
		t.Skipf("loopback echo reply disabled: %v", err)
	}
	assert.Equal(t, int(p.ID()), reply.ID)
	assert.Equal(t, 0, reply.Seq)
}
