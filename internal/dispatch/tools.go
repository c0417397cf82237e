package dispatch

import (
	"fmt"

	"github.com/dotquad/ipcalc-service/internal/core"
	"github.com/dotquad/ipcalc-service/internal/mcp"
)

// RegisterNetworkTools binds the analyzer's three operations as callable
// tools. Names and argument keys are the wire contract.
func RegisterNetworkTools(reg *Registry, analyzer core.NetworkAnalyzer) error {
	tools := []*Tool{
		{
			Name:        "get_ip_range",
			Description: "Full report for an IPv4 CIDR block: network facts, usable range, classification, binary/hex forms, subnetting suggestions and usage recommendation.",
			InputSchema: mcp.InputSchema{
				Type: "object",
				Properties: map[string]mcp.Property{
					"ip_with_cidr": {Type: "string", Description: "IPv4 address with optional /prefix, e.g. 192.168.1.0/24"},
					"show_all_ips": {Type: "boolean", Description: "Include the full usable-address list (bounded by the display policy)", Default: false},
				},
				Required: []string{"ip_with_cidr"},
			},
			Handler: func(args map[string]any) (any, bool, error) {
				cidr, err := stringArg(args, "ip_with_cidr")
				if err != nil {
					return nil, false, err
				}
				showAll, err := boolArg(args, "show_all_ips", false)
				if err != nil {
					return nil, false, err
				}
				report, perr := analyzer.FullReport(cidr, showAll)
				if perr != nil {
					return perr.Document(), true, nil
				}
				return report, false, nil
			},
		},
		{
			Name:        "get_ip_range_summary",
			Description: "Condensed report for an IPv4 CIDR block: network, netmask, usable range, counts, broadcast, class and type.",
			InputSchema: mcp.InputSchema{
				Type: "object",
				Properties: map[string]mcp.Property{
					"ip_with_cidr": {Type: "string", Description: "IPv4 address with optional /prefix, e.g. 192.168.1.0/24"},
				},
				Required: []string{"ip_with_cidr"},
			},
			Handler: func(args map[string]any) (any, bool, error) {
				cidr, err := stringArg(args, "ip_with_cidr")
				if err != nil {
					return nil, false, err
				}
				summary, perr := analyzer.Summary(cidr)
				if perr != nil {
					return perr.Document(), true, nil
				}
				return summary, false, nil
			},
		},
		{
			Name:        "validate_ip",
			Description: "Validate arbitrary input as an IPv4 address or network block; never fails, invalid input yields valid=false with suggestions.",
			InputSchema: mcp.InputSchema{
				Type: "object",
				Properties: map[string]mcp.Property{
					"address": {Type: "string", Description: "IPv4 address or CIDR block to validate"},
				},
				Required: []string{"address"},
			},
			Handler: func(args map[string]any) (any, bool, error) {
				input, err := stringArg(args, "address")
				if err != nil {
					return nil, false, err
				}
				return analyzer.Validate(input), false, nil
			},
		},
	}

	for _, tool := range tools {
		if err := reg.Register(tool); err != nil {
			return fmt.Errorf("failed to register network tools: %w", err)
		}
	}
	return nil
}

func stringArg(args map[string]any, key string) (string, error) {
	raw, found := args[key]
	if !found {
		return "", fmt.Errorf("%w: missing required argument '%s'", ErrBadArgument, key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: argument '%s' must be a string", ErrBadArgument, key)
	}
	return s, nil
}

// boolArg tolerates the scalar encodings JSON callers actually send:
// a bool or the strings "true"/"false".
func boolArg(args map[string]any, key string, def bool) (bool, error) {
	raw, found := args[key]
	if !found {
		return def, nil
	}
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		switch v {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return false, fmt.Errorf("%w: argument '%s' must be a boolean", ErrBadArgument, key)
}
