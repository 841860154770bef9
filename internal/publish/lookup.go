package publish

import (
	"context"
	"errors"
	"strings"

	"Atelier/internal/fault"
)

// FetchFunc retrieves one named object, returning its bytes and content type.
type FetchFunc func(ctx context.Context, name string) ([]byte, string, error)

type Found struct {
	Name        string
	Data        []byte
	ContentType string
}

// Lookup tries names in order and returns the first one fetch resolves.
// A timeout or cancelled context stops the search; other failures move on.
// When nothing matches the error lists every name tried.
func Lookup(ctx context.Context, fetch FetchFunc, names []string) (Found, error) {
	tried := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		tried = append(tried, name)
		data, ct, err := fetch(ctx, name)
		if err == nil {
			return Found{Name: name, Data: data, ContentType: ct}, nil
		}
		if ctx.Err() != nil || errors.Is(err, fault.Timeout) {
			return Found{}, err
		}
	}
	return Found{}, fault.New(fault.KindNotFound, "image not found, tried: %s", strings.Join(tried, ", "))
}

// ContentTypeFor guesses an image content type from a file name.
func ContentTypeFor(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".png"):
		return "image/png"
	case strings.HasSuffix(lower, ".gif"):
		return "image/gif"
	case strings.HasSuffix(lower, ".webp"):
		return "image/webp"
	case strings.HasSuffix(lower, ".jpg"), strings.HasSuffix(lower, ".jpeg"):
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
