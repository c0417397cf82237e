package model

import (
	"net/netip"

	"go4.org/netipx"
)

// Classification is the descriptive metadata derived from a block's network
// address and prefix length. The class letter follows the historical classful
// scheme and is informational only; it does not affect any computation.
type Classification struct {
	Class       string
	TypeLabel   string
	IsPrivate   bool
	IsGlobal    bool
	IsReserved  bool
	IsMulticast bool
	IsLoopback  bool
	IsLinkLocal bool
}

// IANA IPv4 special-purpose registry, held as immutable merged sets.
var (
	privateSet   = mustIPSet("10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16")
	loopbackSet  = mustIPSet("127.0.0.0/8")
	linkLocalSet = mustIPSet("169.254.0.0/16")
	multicastSet = mustIPSet("224.0.0.0/4")
	reservedSet  = mustIPSet("240.0.0.0/4")

	// Everything with a special-purpose assignment; an address is globally
	// routable only if it belongs to none of these blocks.
	specialSet = mustIPSet(
		"0.0.0.0/8",
		"10.0.0.0/8",
		"100.64.0.0/10",
		"127.0.0.0/8",
		"169.254.0.0/16",
		"172.16.0.0/12",
		"192.0.0.0/24",
		"192.0.2.0/24",
		"192.88.99.0/24",
		"192.168.0.0/16",
		"198.18.0.0/15",
		"198.51.100.0/24",
		"203.0.113.0/24",
		"224.0.0.0/4",
		"240.0.0.0/4",
	)
)

func mustIPSet(prefixes ...string) *netipx.IPSet {
	var b netipx.IPSetBuilder
	for _, p := range prefixes {
		b.AddPrefix(netip.MustParsePrefix(p))
	}
	set, err := b.IPSet()
	if err != nil {
		panic(err)
	}
	return set
}

func Classify(b Block) Classification {
	addr := b.Addr.Netip()
	return Classification{
		Class:       ClassOf(b.Addr),
		TypeLabel:   TypeLabel(b.PrefixLen),
		IsPrivate:   privateSet.Contains(addr),
		IsGlobal:    !specialSet.Contains(addr),
		IsReserved:  reservedSet.Contains(addr),
		IsMulticast: multicastSet.Contains(addr),
		IsLoopback:  loopbackSet.Contains(addr),
		IsLinkLocal: linkLocalSet.Contains(addr),
	}
}

// ClassOf maps the first octet to the historical address class letter.
func ClassOf(a Addr) string {
	switch first := a.Octets()[0]; {
	case first <= 127:
		return "A"
	case first <= 191:
		return "B"
	case first <= 223:
		return "C"
	case first <= 239:
		return "D (multicast)"
	default:
		return "E (reserved)"
	}
}

// TypeLabel maps a prefix length to a human network-size label.
func TypeLabel(prefixLen uint8) string {
	switch {
	case prefixLen == 32:
		return "single host"
	case prefixLen == 31:
		return "point-to-point link"
	case prefixLen >= 30:
		return "ultra-small network"
	case prefixLen >= 24:
		return "small network"
	case prefixLen >= 16:
		return "medium network"
	case prefixLen >= 8:
		return "large network"
	default:
		return "very large network"
	}
}
