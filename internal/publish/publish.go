// Package publish makes rendered artifacts reachable by URL: object storage
// when it is configured and healthy, an inline data URL otherwise.
package publish

import (
	"context"
	"encoding/base64"
	"log"
	"mime"
	"strings"
)

// Store uploads bytes under a stable key, overwriting, and returns a public URL.
type Store interface {
	Upload(ctx context.Context, data []byte, key, contentType string) (string, error)
}

type Artifact struct {
	Data        []byte
	Key         string
	ContentType string
}

type Publisher struct {
	// Store may be nil, in which case every artifact is inlined.
	Store Store
}

func New(store Store) *Publisher {
	return &Publisher{Store: store}
}

// Publish never fails: upload errors are logged and the content is inlined.
func (p *Publisher) Publish(ctx context.Context, a Artifact) string {
	if p != nil && p.Store != nil {
		url, err := p.Store.Upload(ctx, a.Data, a.Key, a.ContentType)
		if err == nil && url != "" {
			return url
		}
		log.Printf("[storage] upload %s failed, falling back to data url: %v", a.Key, err)
	}
	return DataURL(a.ContentType, a.Data)
}

// DataURL inlines data under its bare media type; parameters such as
// charset are dropped.
func DataURL(contentType string, data []byte) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType, _, _ = strings.Cut(contentType, ";")
		mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	}
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
