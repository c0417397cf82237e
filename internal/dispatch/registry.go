package dispatch

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dotquad/ipcalc-service/internal/mcp"
)

var (
	ErrNoToolName  = errors.New("tool name is empty")
	ErrToolExists  = errors.New("tool already registered")
	ErrBadArgument = errors.New("invalid tool argument")
)

// Tool binds a name and argument schema to a handler. The handler returns
// the result document and an is-error flag (true when the document is a
// structured operation error); a non-nil error means the arguments
// themselves were unusable.
type Tool struct {
	Name        string
	Description string
	InputSchema mcp.InputSchema
	Handler     func(args map[string]any) (any, bool, error)
}

func (t *Tool) Descriptor() mcp.ToolDescriptor {
	return mcp.ToolDescriptor{
		Name:        t.Name,
		Description: t.Description,
		InputSchema: t.InputSchema,
	}
}

// Registry maps tool names to tools. It is the only shared state in the
// process and is safe for concurrent use.
type Registry struct {
	mtx   sync.RWMutex
	tools map[string]*Tool
}

func NewRegistry() *Registry {
	return &Registry{tools: map[string]*Tool{}}
}

func (r *Registry) Register(tool *Tool) error {
	if tool.Name == "" {
		return ErrNoToolName
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()
	if _, found := r.tools[tool.Name]; found {
		return fmt.Errorf("%w: %s", ErrToolExists, tool.Name)
	}
	r.tools[tool.Name] = tool
	return nil
}

func (r *Registry) Get(name string) (*Tool, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	tool, found := r.tools[name]
	return tool, found
}

// List returns the registered tools sorted by name.
func (r *Registry) List() []*Tool {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	toolList := make([]*Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		toolList = append(toolList, tool)
	}
	sort.Slice(toolList, func(i, j int) bool { return toolList[i].Name < toolList[j].Name })

	return toolList
}
