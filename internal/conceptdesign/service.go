// Package conceptdesign forwards parametric modeling, SLDPRT conversion and
// FEA requests to the CAD backend and publishes the images it produces.
package conceptdesign

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"

	"Atelier/internal/fault"
	"Atelier/internal/publish"
	"Atelier/internal/upstream"
)

// Credential is the per-request secret a workflow engine may attach.
type Credential struct {
	APIKey        string `json:"api_key"`
	EncryptedData string `json:"encryptedData"`
	Type          string `json:"type"`
}

// Bearer picks the token sent upstream; empty means the configured one.
func (c *Credential) Bearer() string {
	if c == nil {
		return ""
	}
	if c.APIKey != "" {
		return c.APIKey
	}
	return c.EncryptedData
}

type Service struct {
	Client    *upstream.Client
	Publisher *publish.Publisher
}

// ModelPayload is what the backend's model endpoint accepts.
type ModelPayload struct {
	It      any `json:"it"`
	Name    any `json:"name"`
	ModelID any `json:"modelid"`
	Params  any `json:"params"`
}

// NewModelPayload cleans workflow inputs: numbers are coerced, missing or
// empty params replaced by the model's defaults and string params parsed.
// A string that parses to an empty object is forwarded as sent.
func NewModelPayload(inputs map[string]any) ModelPayload {
	p := ModelPayload{
		It:      number(inputs["it"]),
		Name:    inputs["name"],
		ModelID: number(inputs["modelid"]),
		Params:  inputs["params"],
	}
	if emptyParams(p.Params) {
		p.Params = DefaultParams(modelID(p.ModelID, ModelMultiLeg))
	} else if raw, ok := p.Params.(string); ok {
		p.Params = parseParams(raw)
	}
	return p
}

func (s *Service) Model(ctx context.Context, inputs map[string]any, cred *Credential) (json.RawMessage, error) {
	return s.post(ctx, "/api/v1/model", NewModelPayload(inputs), cred)
}

func (s *Service) Transform(ctx context.Context, inputs map[string]any, cred *Credential) (json.RawMessage, error) {
	payload := map[string]any{
		"it":   number(inputs["it"]),
		"name": inputs["name"],
	}
	return s.post(ctx, "/api/v1/transform", payload, cred)
}

func (s *Service) Analyze(ctx context.Context, inputs map[string]any, cred *Credential) (json.RawMessage, error) {
	payload := map[string]any{
		"it":       number(inputs["it"]),
		"filename": inputs["filename"],
		"force":    number(inputs["force"]),
		"m_n":      inputs["m_n"],
	}
	return s.post(ctx, "/api/v1/analyze", payload, cred)
}

func (s *Service) post(ctx context.Context, path string, payload any, cred *Credential) (json.RawMessage, error) {
	log.Printf("[concept-design] POST %s", path)
	return s.Client.PostJSON(ctx, path, cred.Bearer(), payload)
}

// ImageQuery names an image produced by a modeling or analysis run.
type ImageQuery struct {
	Name      string
	It        string
	ModelID   string
	ImageType string
}

func NewImageQuery(inputs map[string]any) ImageQuery {
	q := ImageQuery{
		Name:      text(inputs["name"]),
		It:        text(number(inputs["it"])),
		ModelID:   text(number(inputs["modelid"])),
		ImageType: text(inputs["imageType"]),
	}
	if q.ModelID == "" {
		q.ModelID = "0"
	}
	if q.ImageType == "" {
		q.ImageType = "final"
	}
	return q
}

// Candidates lists the file names the backend has used for this image,
// newest naming scheme first.
func (q ImageQuery) Candidates() []string {
	return []string{
		fmt.Sprintf("%s%s_%s_%s.jpg", q.Name, q.It, q.ModelID, q.ImageType),
		q.ImageType + ".jpg",
		fmt.Sprintf("%s%s_%s.jpg", q.Name, q.It, q.ImageType),
		fmt.Sprintf("%s_%s.jpg", q.Name, q.ImageType),
		q.Name + q.It + ".jpg",
		fmt.Sprintf("%s_%s%s.jpg", q.ImageType, q.Name, q.It),
	}
}

type Image struct {
	Name string
	URL  string
}

// FindImage resolves the first candidate the backend has and publishes it.
func (s *Service) FindImage(ctx context.Context, q ImageQuery) (Image, error) {
	if s.Client.BaseURL == "" {
		return Image{}, fault.New(fault.KindConfig, "%s base url is not configured", s.Client.Name)
	}
	found, err := publish.Lookup(ctx, s.fetch, q.Candidates())
	if err != nil {
		return Image{}, err
	}
	ct := found.ContentType
	if ct == "" || ct == "application/octet-stream" {
		ct = publish.ContentTypeFor(found.Name)
	}
	url := s.Publisher.Publish(ctx, publish.Artifact{
		Data:        found.Data,
		Key:         "concept-design/" + found.Name,
		ContentType: ct,
	})
	return Image{Name: found.Name, URL: url}, nil
}

// Fetch returns one result file from the backend.
func (s *Service) Fetch(ctx context.Context, name string) ([]byte, string, error) {
	return s.fetch(ctx, name)
}

func (s *Service) fetch(ctx context.Context, name string) ([]byte, string, error) {
	return s.Client.Get(ctx, "/api/v1/results/"+url.PathEscape(name), "")
}
