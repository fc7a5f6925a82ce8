package netaddr

import (
	"fmt"
	"net"
)

// IPv4Addr 32-bit address int value
type IPv4Addr uint32

func (v4 IPv4Addr) ToIP() net.IP {
	return net.IPv4(byte(v4>>24), byte(v4>>16), byte(v4>>8), byte(v4))
}

// As4 returns the address in network byte order.
func (v4 IPv4Addr) As4() [4]byte {
	return [4]byte{byte(v4 >> 24), byte(v4 >> 16), byte(v4 >> 8), byte(v4)}
}

func (v4 IPv4Addr) IsUnspecified() bool { return v4 == 0 }

func (v4 IPv4Addr) String() string {
	return v4.ToIP().String()
}

// Set parses dotted-decimal text. IPv6 and host names are rejected.
func (v4 *IPv4Addr) Set(s string) error {
	ip := net.ParseIP(s).To4()
	if ip == nil {
		return fmt.Errorf("invalid ipv4: %s", s)
	}
	*v4 = NewIPv4AddrFromIP(ip)
	return nil
}

func NewIPv4AddrFromIP(ip net.IP) IPv4Addr {
	ip = ip.To4()
	return IPv4Addr(uint32(ip[0])<<24 | uint32(ip[1])<<16 | uint32(ip[2])<<8 | uint32(ip[3]))
}

func NewIPv4AddrFrom4(b [4]byte) IPv4Addr {
	return IPv4Addr(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]))
}

// ParseIPv4Lax parses s like Set but yields the zero address on malformed
// input instead of an error.
func ParseIPv4Lax(s string) IPv4Addr {
	var v4 IPv4Addr
	if v4.Set(s) != nil {
		return 0
	}
	return v4
}
