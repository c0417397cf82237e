// Package mcpclient is the HTTP client side of the tool-invocation protocol,
// used by the ipcalcctl CLI.
package mcpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/dotquad/ipcalc-service/internal/mcp"
)

type Client struct {
	endpoint   string
	httpClient *http.Client
	sessionID  string
	nextID     atomic.Int64
}

func New(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Initialize performs the protocol handshake and remembers the session id
// the server issues, echoing it on later calls.
func (c *Client) Initialize(ctx context.Context) (*mcp.InitializeResult, error) {
	var result mcp.InitializeResult
	sessionID, err := c.call(ctx, "initialize", map[string]any{
		"protocolVersion": mcp.ProtocolVersion,
		"clientInfo":      map[string]any{"name": "ipcalcctl", "version": mcp.ServerVersion},
	}, &result)
	if err != nil {
		return nil, err
	}
	if sessionID != "" {
		c.sessionID = sessionID
	}
	return &result, nil
}

func (c *Client) ListTools(ctx context.Context) ([]mcp.ToolDescriptor, error) {
	var result mcp.ListToolsResult
	if _, err := c.call(ctx, "tools/list", struct{}{}, &result); err != nil {
		return nil, err
	}
	return result.Tools, nil
}

// CallTool invokes a named tool and unwraps the text content of the result.
// The bool reports the tool's is-error flag.
func (c *Client) CallTool(ctx context.Context, name string, args map[string]any) (string, bool, error) {
	var result mcp.CallResult
	params := mcp.CallParams{Name: name, Arguments: args}
	if _, err := c.call(ctx, "tools/call", params, &result); err != nil {
		return "", false, err
	}
	if len(result.Content) == 0 {
		return "", result.IsError, nil
	}
	return result.Content[0].Text, result.IsError, nil
}

func (c *Client) call(ctx context.Context, method string, params any, result any) (string, error) {
	rawParams, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("failed to encode params for %s: %w", method, err)
	}

	req := mcp.Request{
		JSONRPC: "2.0",
		ID:      json.RawMessage(strconv.FormatInt(c.nextID.Add(1), 10)),
		Method:  method,
		Params:  rawParams,
	}
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to encode request for %s: %w", method, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request for %s: %w", method, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.sessionID != "" {
		httpReq.Header.Set(mcp.SessionHeader, c.sessionID)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("rpc %s failed: %w", method, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("rpc %s failed: unexpected status %d", method, httpResp.StatusCode)
	}

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("rpc %s failed: %w", method, err)
	}

	var resp struct {
		JSONRPC string          `json:"jsonrpc"`
		Result  json.RawMessage `json:"result"`
		Error   *mcp.RPCError   `json:"error"`
	}
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("rpc %s failed: malformed response: %w", method, err)
	}
	if resp.Error != nil {
		return "", fmt.Errorf("rpc %s failed: %w", method, resp.Error)
	}

	if result != nil && len(resp.Result) > 0 {
		if err := json.Unmarshal(resp.Result, result); err != nil {
			return "", fmt.Errorf("rpc %s failed: malformed result: %w", method, err)
		}
	}

	return httpResp.Header.Get(mcp.SessionHeader), nil
}
