package model

import "math"

// UsableRange is the span of host-assignable addresses within a block.
//
// Policy by prefix length:
//
//	/32  single address        count 1
//	/31  both addresses (RFC 3021 point-to-point)  count 2
//	/30 and shorter: network and broadcast are reserved, count = total-2
type UsableRange struct {
	First Addr
	Last  Addr
	Count uint64
}

// ComputeRange is total over valid blocks: invalid input never reaches here
// because parsing already rejected it.
func ComputeRange(b Block) UsableRange {
	switch b.PrefixLen {
	case 32:
		return UsableRange{First: b.Addr, Last: b.Addr, Count: 1}
	case 31:
		return UsableRange{First: b.Addr, Last: b.Broadcast(), Count: 2}
	default:
		return UsableRange{
			First: b.Addr + 1,
			Last:  b.Broadcast() - 1,
			Count: b.TotalAddresses() - 2,
		}
	}
}

// PercentOf reports the usable share of total addresses, rounded to 2 decimals.
func (r UsableRange) PercentOf(total uint64) float64 {
	return math.Round(float64(r.Count)/float64(total)*100*100) / 100
}

// UsableCount gives the usable-host count a block would have at the given
// prefix length, without materializing the block.
func UsableCount(prefixLen uint8) uint64 {
	switch prefixLen {
	case 32:
		return 1
	case 31:
		return 2
	default:
		return (uint64(1) << (32 - prefixLen)) - 2
	}
}
