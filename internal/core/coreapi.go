package core

import "github.com/dotquad/ipcalc-service/internal/core/model"

// NetworkAnalyzer is the computational surface consumed by the dispatch
// layer. Every operation is a pure function of its input: no state, no I/O.
type NetworkAnalyzer interface {
	// FullReport derives the complete fact set for a CIDR block, including
	// the usable-address listing governed by the display policy.
	FullReport(cidr string, showAllIPs bool) (*model.NetworkReport, *model.ParseError)

	// Summary derives the condensed fact set for a CIDR block.
	Summary(cidr string) (*model.SummaryReport, *model.ParseError)

	// Validate classifies arbitrary input: a single address, a network
	// block, or neither. It never fails; bad input yields Valid=false.
	Validate(input string) *model.ValidationReport
}
