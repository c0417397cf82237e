package model

import (
	"fmt"
	"net/netip"
)

// Addr is an IPv4 address held as a big-endian 32-bit value.
type Addr uint32

func AddrFrom4(a, b, c, d byte) Addr {
	return Addr(uint32(a)<<24 | uint32(b)<<16 | uint32(c)<<8 | uint32(d))
}

func (a Addr) Octets() [4]byte {
	return [4]byte{byte(a >> 24), byte(a >> 16), byte(a >> 8), byte(a)}
}

// String renders the address as a dotted quad.
func (a Addr) String() string {
	o := a.Octets()
	return fmt.Sprintf("%d.%d.%d.%d", o[0], o[1], o[2], o[3])
}

// Binary renders the address as four dot-separated 8-bit groups,
// e.g. "11000000.10101000.00000001.00000000".
func (a Addr) Binary() string {
	o := a.Octets()
	return fmt.Sprintf("%08b.%08b.%08b.%08b", o[0], o[1], o[2], o[3])
}

// Hex renders the address as a 0x-prefixed 8-digit value, e.g. "0xC0A80100".
func (a Addr) Hex() string {
	return fmt.Sprintf("0x%08X", uint32(a))
}

// Netip converts to a netip.Addr for membership tests against IPSet registries.
func (a Addr) Netip() netip.Addr {
	return netip.AddrFrom4(a.Octets())
}
