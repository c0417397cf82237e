package service

import (
	"fmt"

	"github.com/dotquad/ipcalc-service/internal/core/model"
)

// Analyzer implements core.NetworkAnalyzer. It holds no state: every report
// is assembled fresh from its input.
type Analyzer struct{}

func New() *Analyzer {
	return &Analyzer{}
}

func (a *Analyzer) FullReport(cidr string, showAllIPs bool) (*model.NetworkReport, *model.ParseError) {
	block, perr := model.ParseBlock(cidr)
	if perr != nil {
		return nil, perr
	}

	usable := model.ComputeRange(block)
	facts := model.Classify(block)

	return &model.NetworkReport{
		Input: cidr,
		NetworkInfo: model.NetworkInfo{
			NetworkAddress:   block.Addr.String(),
			BroadcastAddress: block.Broadcast().String(),
			Netmask:          block.Netmask().String(),
			Hostmask:         block.Hostmask().String(),
			CIDRNotation:     fmt.Sprintf("/%d", block.PrefixLen),
			PrefixLength:     block.PrefixLen,
			TotalAddresses:   block.TotalAddresses(),
		},
		UsableIPRange: model.UsableIPRange{
			FirstUsableIP:  usable.First.String(),
			LastUsableIP:   usable.Last.String(),
			TotalUsableIPs: usable.Count,
			UsablePercent:  usable.PercentOf(block.TotalAddresses()),
		},
		Classification: classificationInfo(facts),
		Representations: model.Representations{
			Binary: model.TripleRender{
				NetworkAddress:   block.Addr.Binary(),
				Netmask:          block.Netmask().Binary(),
				BroadcastAddress: block.Broadcast().Binary(),
			},
			Hex: model.TripleRender{
				NetworkAddress:   block.Addr.Hex(),
				Netmask:          block.Netmask().Hex(),
				BroadcastAddress: block.Broadcast().Hex(),
			},
		},
		Subnetting:      model.SuggestSubnets(block),
		Recommendation:  model.Recommend(block.PrefixLen),
		UsableAddresses: model.BuildListing(usable, showAllIPs),
	}, nil
}

func (a *Analyzer) Summary(cidr string) (*model.SummaryReport, *model.ParseError) {
	block, perr := model.ParseBlock(cidr)
	if perr != nil {
		return nil, perr
	}

	usable := model.ComputeRange(block)
	facts := model.Classify(block)

	return &model.SummaryReport{
		Input:        cidr,
		Network:      block.Addr.String(),
		Netmask:      block.Netmask().String(),
		CIDR:         fmt.Sprintf("/%d", block.PrefixLen),
		UsableRange:  fmt.Sprintf("%s - %s", usable.First, usable.Last),
		TotalIPs:     block.TotalAddresses(),
		UsableIPs:    usable.Count,
		Broadcast:    block.Broadcast().String(),
		NetworkClass: facts.Class,
		NetworkType:  facts.TypeLabel,
		IsPrivate:    facts.IsPrivate,
		IsGlobal:     facts.IsGlobal,
	}, nil
}

func (a *Analyzer) Validate(input string) *model.ValidationReport {
	if addr, perr := model.ParseAddr(input); perr == nil {
		facts := model.Classify(model.Block{Addr: addr, PrefixLen: 32})
		return &model.ValidationReport{
			Valid:   true,
			Input:   input,
			Kind:    "address",
			Version: 4,
			Address: &model.AddressForms{
				Dotted:  addr.String(),
				Decimal: uint32(addr),
				Binary:  addr.Binary(),
				Hex:     addr.Hex(),
			},
			Flags: addressFlags(facts),
		}
	}

	block, perr := model.ParseBlock(input)
	if perr == nil {
		usable := model.ComputeRange(block)
		facts := model.Classify(block)
		return &model.ValidationReport{
			Valid: true,
			Input: input,
			Kind:  "network",
			Network: &model.ValidatedNetwork{
				Network:      block.Addr.String(),
				CIDR:         block.String(),
				Netmask:      block.Netmask().String(),
				Broadcast:    block.Broadcast().String(),
				PrefixLength: block.PrefixLen,
				TotalIPs:     block.TotalAddresses(),
				UsableIPs:    usable.Count,
				NetworkClass: facts.Class,
				NetworkType:  facts.TypeLabel,
				IsPrivate:    facts.IsPrivate,
				IsGlobal:     facts.IsGlobal,
			},
		}
	}

	return &model.ValidationReport{
		Valid: false,
		Input: input,
		Error: &model.ValidationError{
			Kind:    perr.Kind,
			Message: perr.Message(),
		},
		Suggestions: model.ValidExamples,
	}
}

func classificationInfo(facts model.Classification) model.ClassificationInfo {
	return model.ClassificationInfo{
		NetworkClass: facts.Class,
		NetworkType:  facts.TypeLabel,
		IsPrivate:    facts.IsPrivate,
		IsGlobal:     facts.IsGlobal,
		IsReserved:   facts.IsReserved,
		IsMulticast:  facts.IsMulticast,
		IsLoopback:   facts.IsLoopback,
		IsLinkLocal:  facts.IsLinkLocal,
	}
}

func addressFlags(facts model.Classification) *model.AddressFlags {
	return &model.AddressFlags{
		IsPrivate:   facts.IsPrivate,
		IsGlobal:    facts.IsGlobal,
		IsReserved:  facts.IsReserved,
		IsMulticast: facts.IsMulticast,
		IsLoopback:  facts.IsLoopback,
		IsLinkLocal: facts.IsLinkLocal,
	}
}
