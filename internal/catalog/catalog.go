// Package catalog keeps the metadata of every tool the gateway exposes and
// serves it as a manifest for the calling platform.
package catalog

import (
	"net/http"
	"sort"
	"sync"

	"Atelier/internal/httpx"
)

// Text is a string in the two locales the platform displays.
type Text struct {
	EN string `json:"en-US,omitempty"`
	ZH string `json:"zh-CN,omitempty"`
}

type Field struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Label       Text   `json:"displayName"`
	Description Text   `json:"description,omitempty"`
	Required    bool   `json:"required,omitempty"`
	Default     any    `json:"default,omitempty"`
}

type Tool struct {
	Name        string   `json:"name"`
	DisplayName Text     `json:"displayName"`
	Description Text     `json:"description,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	Icon        string   `json:"icon,omitempty"`
	Method      string   `json:"method"`
	Path        string   `json:"path"`
	Input       []Field  `json:"input"`
	Output      []Field  `json:"output,omitempty"`
	// EstimateMs hints the caller how long a run usually takes.
	EstimateMs int `json:"estimateTime,omitempty"`
}

// DataOutput is the single "data" output shared by forwarding tools.
var DataOutput = []Field{{Name: "data", Type: "string", Label: Text{EN: "Result", ZH: "结果"}, Required: true}}

type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds tools keyed by path; a later registration for the same path wins.
func (r *Registry) Register(tools ...Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range tools {
		if t.Method == "" {
			t.Method = http.MethodPost
		}
		r.tools[t.Path] = t
	}
}

// Tools returns the registered tools ordered by path.
func (r *Registry) Tools() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

type Auth struct {
	Type              string `json:"type"`
	AuthorizationType string `json:"authorization_type,omitempty"`
}

type Manifest struct {
	SchemaVersion string `json:"schema_version"`
	DisplayName   string `json:"display_name"`
	BaseURL       string `json:"base_url"`
	Auth          Auth   `json:"auth"`
	Tools         []Tool `json:"tools"`
}

func (r *Registry) Manifest(displayName, baseURL, authType string) Manifest {
	auth := Auth{Type: authType}
	if authType != "none" {
		auth.AuthorizationType = "bearer"
	}
	return Manifest{
		SchemaVersion: "v1",
		DisplayName:   displayName,
		BaseURL:       baseURL,
		Auth:          auth,
		Tools:         r.Tools(),
	}
}

// Handler serves GET /manifest.json.
func (r *Registry) Handler(displayName, baseURL, authType string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, r.Manifest(displayName, baseURL, authType))
	}
}
