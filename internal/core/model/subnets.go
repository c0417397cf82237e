package model

import (
	"fmt"

	"github.com/apparentlymart/go-cidr/cidr"
)

const (
	// Finest prefix worth suggesting: /31 and /32 subnets are not general
	// purpose networks.
	maxSuggestPrefix = 30
	// How many finer prefixes to enumerate past the block's own.
	suggestDepth = 4
)

// SubnetSuggestion describes one way to split a block into equal subnets.
type SubnetSuggestion struct {
	PrefixLen      uint8  `json:"prefix_length"`
	CIDRNotation   string `json:"cidr_notation"`
	SubnetCount    uint64 `json:"subnet_count"`
	HostsPerSubnet uint64 `json:"hosts_per_subnet"`
	FirstSubnet    string `json:"first_subnet"`
}

// SuggestSubnets enumerates candidate finer prefixes for the block: up to 4
// prefixes in (PrefixLen, min(30, PrefixLen+4)]. Blocks at /30 and finer get
// no suggestions.
func SuggestSubnets(b Block) []SubnetSuggestion {
	if b.PrefixLen >= maxSuggestPrefix {
		return nil
	}

	limit := b.PrefixLen + suggestDepth
	if limit > maxSuggestPrefix {
		limit = maxSuggestPrefix
	}

	suggestions := make([]SubnetSuggestion, 0, limit-b.PrefixLen)
	for p := b.PrefixLen + 1; p <= limit; p++ {
		first, err := cidr.Subnet(b.IPNet(), int(p-b.PrefixLen), 0)
		if err != nil {
			continue
		}
		suggestions = append(suggestions, SubnetSuggestion{
			PrefixLen:      p,
			CIDRNotation:   fmt.Sprintf("/%d", p),
			SubnetCount:    1 << (p - b.PrefixLen),
			HostsPerSubnet: UsableCount(p),
			FirstSubnet:    first.String(),
		})
	}

	return suggestions
}

// Recommendation is the usage guidance attached to a report.
type Recommendation struct {
	PrimaryUse   string   `json:"primary_use"`
	Scenarios    []string `json:"typical_scenarios"`
	TypicalHosts string   `json:"typical_hosts"`
}

// Recommend maps a prefix length to its usage band.
func Recommend(prefixLen uint8) Recommendation {
	switch {
	case prefixLen == 32:
		return Recommendation{
			PrimaryUse:   "single device",
			Scenarios:    []string{"host route", "loopback service address", "single-host firewall rule"},
			TypicalHosts: "1",
		}
	case prefixLen == 31:
		return Recommendation{
			PrimaryUse:   "point-to-point link",
			Scenarios:    []string{"router-to-router link", "WAN uplink"},
			TypicalHosts: "2",
		}
	case prefixLen >= 29:
		return Recommendation{
			PrimaryUse:   "small network",
			Scenarios:    []string{"home lab", "small office segment", "DMZ with a few servers"},
			TypicalHosts: "2-6",
		}
	case prefixLen >= 25:
		return Recommendation{
			PrimaryUse:   "office network",
			Scenarios:    []string{"branch office LAN", "server rack segment", "VoIP VLAN"},
			TypicalHosts: "14-126",
		}
	case prefixLen >= 22:
		return Recommendation{
			PrimaryUse:   "campus network",
			Scenarios:    []string{"office building LAN", "campus access layer", "wireless client pool"},
			TypicalHosts: "254-1022",
		}
	default:
		return Recommendation{
			PrimaryUse:   "large infrastructure",
			Scenarios:    []string{"data center fabric", "ISP allocation", "cloud VPC supernet"},
			TypicalHosts: "2046 and up",
		}
	}
}
