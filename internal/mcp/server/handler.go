package mcpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/dotquad/ipcalc-service/internal/dispatch"
	"github.com/dotquad/ipcalc-service/internal/mcp"
)

// rpcHandler decodes JSON-RPC envelopes from the single POST endpoint and
// routes methods to the tool registry. The handler holds no per-session
// state: the session id issued on initialize is advisory.
type rpcHandler struct {
	reg *dispatch.Registry
}

func newHandler(reg *dispatch.Registry) *rpcHandler {
	return &rpcHandler{reg: reg}
}

func (h *rpcHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req mcp.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeResponse(w, mcp.Response{
			JSONRPC: "2.0",
			ID:      json.RawMessage("null"),
			Error:   &mcp.RPCError{Code: mcp.CodeParseError, Message: "parse error"},
		})
		return
	}

	if req.JSONRPC != "2.0" || req.Method == "" {
		writeResponse(w, mcp.Response{
			JSONRPC: "2.0",
			ID:      requestID(req),
			Error:   &mcp.RPCError{Code: mcp.CodeInvalidRequest, Message: "invalid request"},
		})
		return
	}

	if req.Method == "initialize" {
		w.Header().Set(mcp.SessionHeader, uuid.NewString())
	}

	result, rpcErr := h.handle(&req)

	if req.IsNotification() {
		w.WriteHeader(http.StatusAccepted)
		return
	}

	writeResponse(w, mcp.Response{
		JSONRPC: "2.0",
		ID:      requestID(req),
		Result:  result,
		Error:   rpcErr,
	})
}

func (h *rpcHandler) handle(req *mcp.Request) (any, *mcp.RPCError) {
	switch req.Method {
	case "initialize":
		return mcp.InitializeResult{
			ProtocolVersion: mcp.ProtocolVersion,
			ServerInfo:      mcp.ServerInfo{Name: mcp.ServerName, Version: mcp.ServerVersion},
			Capabilities:    mcp.Capabilities{Tools: mcp.ToolsCapability{ListChanged: false}},
		}, nil

	case "ping":
		return struct{}{}, nil

	case "tools/list":
		tools := h.reg.List()
		descriptors := make([]mcp.ToolDescriptor, 0, len(tools))
		for _, tool := range tools {
			descriptors = append(descriptors, tool.Descriptor())
		}
		return mcp.ListToolsResult{Tools: descriptors}, nil

	case "tools/call":
		return h.callTool(req.Params)

	default:
		return nil, &mcp.RPCError{
			Code:    mcp.CodeMethodNotFound,
			Message: fmt.Sprintf("method not found: %s", req.Method),
		}
	}
}

func (h *rpcHandler) callTool(rawParams json.RawMessage) (any, *mcp.RPCError) {
	var params mcp.CallParams
	if err := json.Unmarshal(rawParams, &params); err != nil {
		return nil, &mcp.RPCError{Code: mcp.CodeInvalidParams, Message: "invalid params"}
	}

	tool, found := h.reg.Get(params.Name)
	if !found {
		return nil, &mcp.RPCError{
			Code:    mcp.CodeInvalidParams,
			Message: fmt.Sprintf("unknown tool: %s", params.Name),
		}
	}

	document, isError, err := tool.Handler(params.Arguments)
	if err != nil {
		if errors.Is(err, dispatch.ErrBadArgument) {
			return nil, &mcp.RPCError{Code: mcp.CodeInvalidParams, Message: err.Error()}
		}
		return nil, &mcp.RPCError{Code: mcp.CodeInternalError, Message: err.Error()}
	}

	text, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return nil, &mcp.RPCError{Code: mcp.CodeInternalError, Message: "failed to encode tool result"}
	}

	return mcp.CallResult{
		Content: []mcp.Content{{Type: "text", Text: string(text)}},
		IsError: isError,
	}, nil
}

func requestID(req mcp.Request) json.RawMessage {
	if len(req.ID) == 0 {
		return json.RawMessage("null")
	}
	return req.ID
}

func writeResponse(w http.ResponseWriter, resp mcp.Response) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
