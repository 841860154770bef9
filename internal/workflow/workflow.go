// Package workflow exposes design-process steps that are implemented as
// workflows on the orchestration backend. The gateway only forwards.
package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"Atelier/internal/catalog"
	"Atelier/internal/httpx"
	"Atelier/internal/upstream"

	"github.com/gorilla/mux"
)

type Route struct {
	Group      string
	Route      string
	WorkflowID string
	Title      catalog.Text
	Icon       string
	Categories []string
	Inputs     []catalog.Field
}

func (r Route) Path() string {
	return "/workflow/" + r.Group + "/" + r.Route
}

func (r Route) Tool() catalog.Tool {
	return catalog.Tool{
		Name:        r.Route,
		DisplayName: r.Title,
		Categories:  r.Categories,
		Icon:        r.Icon,
		Method:      http.MethodPost,
		Path:        r.Path(),
		Input:       r.Inputs,
		Output:      catalog.DataOutput,
	}
}

// Routes returns a copy of the route table.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

type Service struct {
	Client *upstream.Client
}

// Start runs a workflow synchronously and returns the backend's JSON answer.
func (s *Service) Start(ctx context.Context, workflowID string, input map[string]any) (json.RawMessage, error) {
	path := fmt.Sprintf("/api/workflow/executions/%s/start-sync", url.PathEscape(workflowID))
	return s.Client.PostJSON(ctx, path, "", map[string]any{"inputData": input})
}

type Handler struct {
	Service *Service
}

// Forward builds the handler for one route.
func (h *Handler) Forward(rt Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := httpx.ReadObject(r)
		if err != nil {
			httpx.WriteFault(w, err)
			return
		}
		out, err := h.Service.Start(r.Context(), rt.WorkflowID, body)
		if err != nil {
			log.Printf("[workflow] %s/%s (%s) failed: %v", rt.Group, rt.Route, rt.WorkflowID, err)
			httpx.WriteFault(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(out)
	}
}

// Register mounts every route on router and records it in the catalog.
func (h *Handler) Register(router *mux.Router, reg *catalog.Registry) {
	for _, rt := range routes {
		router.HandleFunc(rt.Path(), h.Forward(rt)).Methods("POST")
		if reg != nil {
			reg.Register(rt.Tool())
		}
	}
}
