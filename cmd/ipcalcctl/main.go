// ipcalcctl is the command-line client of the ipcalcd tool server.
//
// Usage:
//
//	ipcalcctl [global options] <command> [arguments]
//
// Global options:
//
//	-s, --server   server endpoint (default: http://127.0.0.1:8000/mcp)
//	-t, --timeout  request timeout (default: 30s)
//
// Commands:
//
//	tools                     list the tools the server exposes
//	call <name> [--arg k=v]   invoke a tool with raw arguments
//	range <cidr> [--all]      full report for a CIDR block
//	summary <cidr>            condensed report for a CIDR block
//	validate <input>          validate an address or block
//
// Exit codes:
//
//	0: success
//	1: remote or tool error
//	2: usage error
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	mcpclient "github.com/dotquad/ipcalc-service/internal/mcp/client"
)

const defaultEndpoint = "http://127.0.0.1:8000/mcp"

const defaultTimeout = 30 * time.Second

var errToolFailed = errors.New("tool reported an error")

type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func main() {
	os.Exit(run())
}

func run() int {
	cmd := rootCommand()

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		var uerr *usageError
		if errors.As(err, &uerr) {
			fmt.Fprintf(os.Stderr, "usage error: %v\n", uerr)
			return 2
		}
		if errors.Is(err, errToolFailed) {
			return 1
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

func rootCommand() *cli.Command {
	return &cli.Command{
		Name:  "ipcalcctl",
		Usage: "client for the ip-range-calculator tool server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Aliases: []string{"s"},
				Usage:   "server endpoint",
				Value:   defaultEndpoint,
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Aliases: []string{"t"},
				Usage:   "request timeout",
				Value:   defaultTimeout,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "tools",
				Usage: "list the tools the server exposes",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					client, err := connect(ctx, cmd)
					if err != nil {
						return err
					}
					tools, err := client.ListTools(ctx)
					if err != nil {
						return err
					}
					for _, tool := range tools {
						fmt.Printf("%s\n    %s\n", tool.Name, tool.Description)
					}
					return nil
				},
			},
			{
				Name:      "call",
				Usage:     "invoke a tool with raw arguments",
				ArgsUsage: "<name>",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:  "arg",
						Usage: "tool argument as key=value (repeatable)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					name := cmd.Args().First()
					if name == "" {
						return &usageError{msg: "call requires a tool name"}
					}
					args := map[string]any{}
					for _, kv := range cmd.StringSlice("arg") {
						key, value, found := strings.Cut(kv, "=")
						if !found || key == "" {
							return &usageError{msg: fmt.Sprintf("argument %q is not key=value", kv)}
						}
						args[key] = value
					}
					return invoke(ctx, cmd, name, args)
				},
			},
			{
				Name:      "range",
				Usage:     "full report for a CIDR block",
				ArgsUsage: "<cidr>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "all",
						Usage: "request the full usable-address list",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cidr := cmd.Args().First()
					if cidr == "" {
						return &usageError{msg: "range requires a CIDR block"}
					}
					return invoke(ctx, cmd, "get_ip_range", map[string]any{
						"ip_with_cidr": cidr,
						"show_all_ips": cmd.Bool("all"),
					})
				},
			},
			{
				Name:      "summary",
				Usage:     "condensed report for a CIDR block",
				ArgsUsage: "<cidr>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cidr := cmd.Args().First()
					if cidr == "" {
						return &usageError{msg: "summary requires a CIDR block"}
					}
					return invoke(ctx, cmd, "get_ip_range_summary", map[string]any{
						"ip_with_cidr": cidr,
					})
				},
			},
			{
				Name:      "validate",
				Usage:     "validate an address or block",
				ArgsUsage: "<input>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					input := cmd.Args().First()
					if input == "" {
						return &usageError{msg: "validate requires an address or block"}
					}
					return invoke(ctx, cmd, "validate_ip", map[string]any{
						"address": input,
					})
				},
			},
		},
	}
}

func connect(ctx context.Context, cmd *cli.Command) (*mcpclient.Client, error) {
	client := mcpclient.New(cmd.String("server"), cmd.Duration("timeout"))
	if _, err := client.Initialize(ctx); err != nil {
		return nil, err
	}
	return client, nil
}

func invoke(ctx context.Context, cmd *cli.Command, name string, args map[string]any) error {
	client, err := connect(ctx, cmd)
	if err != nil {
		return err
	}

	text, isError, err := client.CallTool(ctx, name, args)
	if err != nil {
		return err
	}

	fmt.Println(text)
	if isError {
		return errToolFailed
	}
	return nil
}
