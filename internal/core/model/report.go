package model

import "fmt"

// Report schema. Field names are part of the contract: callers consume these
// documents by key, so renaming a tag is a breaking change.

type NetworkInfo struct {
	NetworkAddress   string `json:"network_address"`
	BroadcastAddress string `json:"broadcast_address"`
	Netmask          string `json:"netmask"`
	Hostmask         string `json:"hostmask"`
	CIDRNotation     string `json:"cidr_notation"`
	PrefixLength     uint8  `json:"prefix_length"`
	TotalAddresses   uint64 `json:"total_addresses"`
}

type UsableIPRange struct {
	FirstUsableIP  string  `json:"first_usable_ip"`
	LastUsableIP   string  `json:"last_usable_ip"`
	TotalUsableIPs uint64  `json:"total_usable_ips"`
	UsablePercent  float64 `json:"usable_percent"`
}

type ClassificationInfo struct {
	NetworkClass string `json:"network_class"`
	NetworkType  string `json:"network_type"`
	IsPrivate    bool   `json:"is_private"`
	IsGlobal     bool   `json:"is_global"`
	IsReserved   bool   `json:"is_reserved"`
	IsMulticast  bool   `json:"is_multicast"`
	IsLoopback   bool   `json:"is_loopback"`
	IsLinkLocal  bool   `json:"is_link_local"`
}

// TripleRender is one rendering (binary or hex) of the three headline addresses.
type TripleRender struct {
	NetworkAddress   string `json:"network_address"`
	Netmask          string `json:"netmask"`
	BroadcastAddress string `json:"broadcast_address"`
}

type Representations struct {
	Binary TripleRender `json:"binary"`
	Hex    TripleRender `json:"hex"`
}

// AddressListing is the usable-address section of a full report. Included is
// "full", "preview" or "sampled"; only the fields of the matching shape are set.
type AddressListing struct {
	Count     uint64   `json:"count"`
	Included  string   `json:"included"`
	Addresses []string `json:"addresses,omitempty"`
	First     []string `json:"first,omitempty"`
	Last      []string `json:"last,omitempty"`
	Sample    []string `json:"sample,omitempty"`
	Note      string   `json:"note,omitempty"`
}

type NetworkReport struct {
	Input           string             `json:"input"`
	NetworkInfo     NetworkInfo        `json:"network_info"`
	UsableIPRange   UsableIPRange      `json:"usable_ip_range"`
	Classification  ClassificationInfo `json:"classification"`
	Representations Representations    `json:"representations"`
	Subnetting      []SubnetSuggestion `json:"subnetting"`
	Recommendation  Recommendation     `json:"recommendation"`
	UsableAddresses AddressListing     `json:"usable_addresses"`
}

type SummaryReport struct {
	Input        string `json:"input"`
	Network      string `json:"network"`
	Netmask      string `json:"netmask"`
	CIDR         string `json:"cidr"`
	UsableRange  string `json:"usable_range"`
	TotalIPs     uint64 `json:"total_ips"`
	UsableIPs    uint64 `json:"usable_ips"`
	Broadcast    string `json:"broadcast"`
	NetworkClass string `json:"network_class"`
	NetworkType  string `json:"network_type"`
	IsPrivate    bool   `json:"is_private"`
	IsGlobal     bool   `json:"is_global"`
}

// AddressForms are the alternate renderings of a single validated address.
type AddressForms struct {
	Dotted  string `json:"dotted"`
	Decimal uint32 `json:"decimal"`
	Binary  string `json:"binary"`
	Hex     string `json:"hex"`
}

type AddressFlags struct {
	IsPrivate   bool `json:"is_private"`
	IsGlobal    bool `json:"is_global"`
	IsReserved  bool `json:"is_reserved"`
	IsMulticast bool `json:"is_multicast"`
	IsLoopback  bool `json:"is_loopback"`
	IsLinkLocal bool `json:"is_link_local"`
}

type ValidatedNetwork struct {
	Network      string `json:"network"`
	CIDR         string `json:"cidr"`
	Netmask      string `json:"netmask"`
	Broadcast    string `json:"broadcast"`
	PrefixLength uint8  `json:"prefix_length"`
	TotalIPs     uint64 `json:"total_ips"`
	UsableIPs    uint64 `json:"usable_ips"`
	NetworkClass string `json:"network_class"`
	NetworkType  string `json:"network_type"`
	IsPrivate    bool   `json:"is_private"`
	IsGlobal     bool   `json:"is_global"`
}

type ValidationError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ValidationReport never carries a transport-level error: invalid input is a
// valid report with Valid=false.
type ValidationReport struct {
	Valid       bool              `json:"valid"`
	Input       string            `json:"input"`
	Kind        string            `json:"kind,omitempty"`
	Version     int               `json:"version,omitempty"`
	Address     *AddressForms     `json:"address,omitempty"`
	Flags       *AddressFlags     `json:"flags,omitempty"`
	Network     *ValidatedNetwork `json:"network,omitempty"`
	Error       *ValidationError  `json:"error,omitempty"`
	Suggestions []string          `json:"suggestions,omitempty"`
}

// ErrorDocument is the structured failure shape for report operations.
type ErrorDocument struct {
	Error         string   `json:"error"`
	Message       string   `json:"message"`
	Input         string   `json:"input"`
	ValidExamples []string `json:"valid_examples"`
}

// Listing policy bounds. Above listingThreshold the full list is never
// materialized regardless of what the caller asked for.
const (
	listingThreshold = 1000
	previewLimit     = 10
	edgeLimit        = 50
	sampleLimit      = 20
)

// BuildListing applies the display policy to the usable range. The sampled
// shape bounds output size independent of network size, so a near-/0 block
// costs the same to report as a /24.
func BuildListing(r UsableRange, showAll bool) AddressListing {
	switch {
	case !showAll:
		n := r.Count
		if n > previewLimit {
			n = previewLimit
		}
		listing := AddressListing{
			Count:     r.Count,
			Included:  "preview",
			Addresses: addrsFrom(r.First, n),
		}
		if r.Count > previewLimit {
			listing.Note = fmt.Sprintf(
				"showing first %d of %d usable addresses; request the full list with show_all_ips=true",
				previewLimit, r.Count)
		}
		return listing

	case r.Count <= listingThreshold:
		return AddressListing{
			Count:     r.Count,
			Included:  "full",
			Addresses: addrsFrom(r.First, r.Count),
		}

	default:
		return AddressListing{
			Count:    r.Count,
			Included: "sampled",
			First:    addrsFrom(r.First, edgeLimit),
			Last:     addrsEndingAt(r.Last, edgeLimit),
			Sample:   sampleAddrs(r),
			Note: fmt.Sprintf(
				"%d usable addresses exceeds the %d-address display threshold; listing is truncated",
				r.Count, listingThreshold),
		}
	}
}

func addrsFrom(start Addr, count uint64) []string {
	addrs := make([]string, 0, count)
	for i := uint64(0); i < count; i++ {
		addrs = append(addrs, Addr(uint64(start)+i).String())
	}
	return addrs
}

func addrsEndingAt(end Addr, count uint64) []string {
	return addrsFrom(Addr(uint64(end)-count+1), count)
}

// sampleAddrs picks up to sampleLimit evenly spaced interior addresses.
// The step is deterministic, so the same block always samples the same way.
func sampleAddrs(r UsableRange) []string {
	step := r.Count / (sampleLimit + 1)
	if step == 0 {
		return nil
	}
	addrs := make([]string, 0, sampleLimit)
	for i := uint64(1); i <= sampleLimit; i++ {
		addrs = append(addrs, Addr(uint64(r.First)+i*step).String())
	}
	return addrs
}
