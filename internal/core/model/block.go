package model

import (
	"math"
	"math/bits"
	"net"
	"strconv"
)

// Block is a validated IPv4 network: the network address with all host
// bits cleared plus the prefix length. Everything else (netmask, broadcast,
// address counts) is derived on demand.
type Block struct {
	Addr      Addr
	PrefixLen uint8
}

func (b Block) Netmask() Addr {
	return Addr(bits.Reverse32(math.MaxUint32 >> (32 - b.PrefixLen)))
}

func (b Block) Hostmask() Addr {
	return ^b.Netmask()
}

func (b Block) Broadcast() Addr {
	return b.Addr | b.Hostmask()
}

func (b Block) TotalAddresses() uint64 {
	return 1 << (32 - b.PrefixLen)
}

func (b Block) Contains(ip Addr) bool {
	return ip&b.Netmask() == b.Addr
}

// String renders canonical CIDR notation, e.g. "192.168.1.0/24".
func (b Block) String() string {
	return b.Addr.String() + "/" + strconv.Itoa(int(b.PrefixLen))
}

// IPNet converts to the stdlib form expected by subnet arithmetic helpers.
func (b Block) IPNet() *net.IPNet {
	o := b.Addr.Octets()
	return &net.IPNet{
		IP:   net.IPv4(o[0], o[1], o[2], o[3]).To4(),
		Mask: net.CIDRMask(int(b.PrefixLen), 32),
	}
}
