package ping

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/zxhio/xping/pkg/netaddr"
	"golang.org/x/sys/unix"
)

// ErrTimeout is returned by Conn.ReadFrom when the read timeout expires.
var ErrTimeout = errors.New("i/o timeout")

// Conn is a raw ICMP endpoint owned by a single probe.
type Conn interface {
	SetReadTimeout(time.Duration) error
	WriteTo([]byte, netaddr.IPv4Addr) (int, error)
	ReadFrom([]byte) (int, netaddr.IPv4Addr, error)
	Close() error
}

// Dialer opens a fresh Conn.
type Dialer func() (Conn, error)

type rawConn struct {
	fd int
}

// DialRaw opens an AF_INET SOCK_RAW IPPROTO_ICMP socket. It usually needs
// CAP_NET_RAW. Received datagrams start with the IPv4 header.
func DialRaw() (Conn, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_RAW|unix.SOCK_CLOEXEC, unix.IPPROTO_ICMP)
	if err != nil {
		return nil, errors.Wrap(err, "unix.Socket")
	}
	logrus.WithField("fd", fd).Debug("New raw ICMP socket")
	return &rawConn{fd: fd}, nil
}

func (c *rawConn) SetReadTimeout(d time.Duration) error {
	// A zero SO_RCVTIMEO blocks forever.
	if d <= 0 {
		d = time.Microsecond
	}
	tv := unix.NsecToTimeval(d.Nanoseconds())
	return errors.Wrap(unix.SetsockoptTimeval(c.fd, unix.SOL_SOCKET, unix.SO_RCVTIMEO, &tv), "unix.SetsockoptTimeval")
}

func (c *rawConn) WriteTo(b []byte, dst netaddr.IPv4Addr) (int, error) {
	n, err := unix.SendmsgN(c.fd, b, nil, &unix.SockaddrInet4{Addr: dst.As4()}, 0)
	if err != nil {
		return n, errors.Wrap(err, "unix.SendmsgN")
	}
	return n, nil
}

func (c *rawConn) ReadFrom(b []byte) (int, netaddr.IPv4Addr, error) {
	for {
		n, from, err := unix.Recvfrom(c.fd, b, 0)
		switch err {
		case nil:
		case unix.EINTR:
			continue
		case unix.EAGAIN:
			return 0, 0, ErrTimeout
		default:
			return 0, 0, errors.Wrap(err, "unix.Recvfrom")
		}

		var addr netaddr.IPv4Addr
		if sa, ok := from.(*unix.SockaddrInet4); ok {
			addr = netaddr.NewIPv4AddrFrom4(sa.Addr)
		}
		return n, addr, nil
	}
}

func (c *rawConn) Close() error {
	return unix.Close(c.fd)
}
