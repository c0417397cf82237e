package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse error kinds, part of the structured error contract.
const (
	KindInvalidFormat   = "invalid_format"
	KindOutOfRangeOctet = "out_of_range_octet"
	KindInvalidPrefix   = "invalid_prefix"
)

var (
	ErrInvalidFormat = errors.New("invalid address format")
	ErrOctetRange    = errors.New("octet out of range")
	ErrInvalidPrefix = errors.New("invalid prefix length")
)

// ValidExamples is the canonical example list attached to every error document.
var ValidExamples = []string{
	"192.168.1.0/24",
	"10.0.0.0/16",
	"172.16.0.0/12",
	"192.168.1.100/28",
}

// ParseError describes a rejected input. Kind is one of the Kind* constants,
// Detail carries the offending substring, Input the original string.
type ParseError struct {
	Kind   string
	Detail string
	Input  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message())
}

// Message is the human-readable form used in error documents.
func (e *ParseError) Message() string {
	switch e.Kind {
	case KindOutOfRangeOctet:
		return fmt.Sprintf("octet '%s' is outside the range 0-255", e.Detail)
	case KindInvalidPrefix:
		return fmt.Sprintf("prefix length '%s' must be an integer between 0 and 32", e.Detail)
	default:
		if e.Detail != "" {
			return fmt.Sprintf("'%s' is not a valid IPv4 address or CIDR block", e.Detail)
		}
		return fmt.Sprintf("'%s' is not a valid IPv4 address or CIDR block", e.Input)
	}
}

// Is reports sentinel membership. An out-of-range octet is a format problem
// too, so it matches both ErrOctetRange and ErrInvalidFormat.
func (e *ParseError) Is(target error) bool {
	switch e.Kind {
	case KindInvalidFormat:
		return target == ErrInvalidFormat
	case KindOutOfRangeOctet:
		return target == ErrOctetRange || target == ErrInvalidFormat
	case KindInvalidPrefix:
		return target == ErrInvalidPrefix
	}
	return false
}

// Document converts the error into the serializable form returned to callers.
func (e *ParseError) Document() *ErrorDocument {
	return &ErrorDocument{
		Error:         e.Kind,
		Message:       e.Message(),
		Input:         e.Input,
		ValidExamples: ValidExamples,
	}
}

// ParseAddr parses a bare dotted quad: exactly four octets, each 0-255,
// no prefix part allowed.
func ParseAddr(s string) (Addr, *ParseError) {
	if strings.Contains(s, "/") {
		return 0, &ParseError{Kind: KindInvalidFormat, Detail: s, Input: s}
	}
	return parseQuad(s, s)
}

// ParseBlock parses CIDR notation, dotted quad plus optional "/prefix".
// A missing prefix means /32. Host bits of the supplied address are cleared,
// so "10.0.0.5/8" yields the block 10.0.0.0/8 (non-strict semantics).
func ParseBlock(s string) (Block, *ParseError) {
	addrPart := s
	prefixLen := uint8(32)

	if idx := strings.Index(s, "/"); idx >= 0 {
		addrPart = s[:idx]
		prefixPart := s[idx+1:]
		n, err := strconv.ParseUint(prefixPart, 10, 8)
		if err != nil || n > 32 {
			return Block{}, &ParseError{Kind: KindInvalidPrefix, Detail: prefixPart, Input: s}
		}
		prefixLen = uint8(n)
	}

	addr, perr := parseQuad(addrPart, s)
	if perr != nil {
		return Block{}, perr
	}

	block := Block{PrefixLen: prefixLen}
	block.Addr = addr & block.Netmask()
	return block, nil
}

func parseQuad(quad, input string) (Addr, *ParseError) {
	parts := strings.Split(quad, ".")
	if len(parts) != 4 {
		return 0, &ParseError{Kind: KindInvalidFormat, Detail: quad, Input: input}
	}

	var addr uint32
	for _, p := range parts {
		octet, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return 0, &ParseError{Kind: KindOutOfRangeOctet, Detail: p, Input: input}
			}
			return 0, &ParseError{Kind: KindInvalidFormat, Detail: p, Input: input}
		}
		addr = addr<<8 | uint32(octet)
	}

	return Addr(addr), nil
}
