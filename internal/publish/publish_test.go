package publish

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"Atelier/internal/config"
	"Atelier/internal/fault"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type memStore struct {
	objects map[string][]byte
	fail    error
}

func (m *memStore) Upload(_ context.Context, data []byte, key, _ string) (string, error) {
	if m.fail != nil {
		return "", m.fail
	}
	if m.objects == nil {
		m.objects = map[string][]byte{}
	}
	m.objects[key] = data
	return "https://cdn.example/" + key, nil
}

func TestPublishUploads(t *testing.T) {
	store := &memStore{}
	url := New(store).Publish(context.Background(), Artifact{Data: []byte("<html/>"), Key: "plotly/a.html", ContentType: "text/html"})
	if url != "https://cdn.example/plotly/a.html" {
		t.Errorf("url = %q", url)
	}
	if string(store.objects["plotly/a.html"]) != "<html/>" {
		t.Error("object not stored")
	}
}

func TestDataURLDropsParameters(t *testing.T) {
	tests := []struct {
		contentType string
		want        string
	}{
		{"text/html; charset=utf-8", "data:text/html;base64,"},
		{"image/jpeg;quality=high", "data:image/jpeg;base64,"},
		{"Image/PNG", "data:image/png;base64,"},
		{"", "data:application/octet-stream;base64,"},
	}
	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			url := New(nil).Publish(context.Background(), Artifact{Data: []byte("<html></html>"), Key: "k", ContentType: tt.contentType})
			if !strings.HasPrefix(url, tt.want) {
				t.Fatalf("url = %q, want prefix %q", url, tt.want)
			}
			if strings.ContainsAny(url, " \t") {
				t.Errorf("data url must not contain whitespace: %q", url)
			}
		})
	}
}

func TestPublishFallsBackToDataURL(t *testing.T) {
	tests := []struct {
		name string
		p    *Publisher
	}{
		{"no store", New(nil)},
		{"failing store", New(&memStore{fail: errors.New("connection refused")})},
		{"nil publisher", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := tt.p.Publish(context.Background(), Artifact{Data: []byte("<html/>"), Key: "k", ContentType: "text/html"})
			prefix := "data:text/html;base64,"
			if !strings.HasPrefix(url, prefix) {
				t.Fatalf("url = %q", url)
			}
			raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, prefix))
			if err != nil || string(raw) != "<html/>" {
				t.Errorf("payload = %q, %v", raw, err)
			}
		})
	}
}

func TestLookupOrder(t *testing.T) {
	var calls []string
	fetch := func(_ context.Context, name string) ([]byte, string, error) {
		calls = append(calls, name)
		if name == "b.jpg" || name == "c.jpg" {
			return []byte(name), "image/jpeg", nil
		}
		return nil, "", fault.New(fault.KindNotFound, "missing")
	}
	found, err := Lookup(context.Background(), fetch, []string{"a.jpg", "", "b.jpg", "c.jpg"})
	if err != nil {
		t.Fatal(err)
	}
	if found.Name != "b.jpg" {
		t.Errorf("found %q, want first hit b.jpg", found.Name)
	}
	if strings.Join(calls, ",") != "a.jpg,b.jpg" {
		t.Errorf("calls = %v", calls)
	}
}

func TestLookupNothingFound(t *testing.T) {
	fetch := func(context.Context, string) ([]byte, string, error) {
		return nil, "", errors.New("404")
	}
	_, err := Lookup(context.Background(), fetch, []string{"a.jpg", "b.jpg"})
	if !errors.Is(err, fault.NotFound) {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(err.Error(), "a.jpg, b.jpg") {
		t.Errorf("error should list tried names: %v", err)
	}
}

func TestLookupStopsOnTimeout(t *testing.T) {
	n := 0
	fetch := func(context.Context, string) ([]byte, string, error) {
		n++
		return nil, "", fault.New(fault.KindTimeout, "slow")
	}
	_, err := Lookup(context.Background(), fetch, []string{"a.jpg", "b.jpg"})
	if !errors.Is(err, fault.Timeout) || n != 1 {
		t.Errorf("err = %v after %d calls", err, n)
	}
}

type fakePutter struct {
	in  *s3.PutObjectInput
	err error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	return &s3.PutObjectOutput{}, f.err
}

func TestS3StoreURLs(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.S3Config
		want string
	}{
		{"public url", config.S3Config{Bucket: "b", PublicURL: "https://files.example/"}, "https://files.example/plotly/x.html"},
		{"endpoint", config.S3Config{Bucket: "b", Endpoint: "http://minio:9000"}, "http://minio:9000/b/plotly/x.html"},
		{"aws", config.S3Config{Bucket: "b", Region: "eu-west-1"}, "https://b.s3.eu-west-1.amazonaws.com/plotly/x.html"},
		{"prefix", config.S3Config{Bucket: "b", Region: "us-east-1", Prefix: "tools/"}, "https://b.s3.us-east-1.amazonaws.com/tools/plotly/x.html"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			put := &fakePutter{}
			store := &S3Store{client: put, cfg: tt.cfg}
			got, err := store.Upload(context.Background(), []byte("x"), "plotly/x.html", "text/html")
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("url = %q, want %q", got, tt.want)
			}
			if *put.in.Bucket != "b" || *put.in.ContentType != "text/html" {
				t.Errorf("put input = %+v", put.in)
			}
		})
	}
}

func TestS3StoreError(t *testing.T) {
	store := &S3Store{client: &fakePutter{err: errors.New("denied")}, cfg: config.S3Config{Bucket: "b"}}
	if _, err := store.Upload(context.Background(), nil, "k", "text/html"); !errors.Is(err, fault.Upstream) {
		t.Errorf("err = %v", err)
	}
}

func TestNewS3StoreDisabled(t *testing.T) {
	if NewS3Store(config.S3Config{Bucket: "b"}) != nil {
		t.Error("store without keys should be disabled")
	}
	if FromConfig(config.S3Config{}).Store != nil {
		t.Error("publisher should have no store")
	}
}

func TestContentTypeFor(t *testing.T) {
	if ContentTypeFor("A.JPG") != "image/jpeg" || ContentTypeFor("a.png") != "image/png" {
		t.Error("unexpected content types")
	}
}
