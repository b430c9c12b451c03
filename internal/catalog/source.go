package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

var (
	// ErrUnexpectedStatus is returned when the HTTP source answers with a non-2xx code.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrDocumentTooLarge is returned when the document exceeds maxDocumentBytes.
	ErrDocumentTooLarge = errors.New("catalog document too large")
)

var maxDocumentBytes int64 = 32 << 20

// Source yields the raw JSON document holding the glossary.
type Source interface {
	Fetch(ctx context.Context) (io.ReadCloser, error)
	String() string
}

// HTTPSource issues a single GET against URL.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// Fetch implements Source.
func (s HTTPSource) Fetch(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", s.URL, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("get %s: %w %d", s.URL, ErrUnexpectedStatus, resp.StatusCode)
	}
	return resp.Body, nil
}

func (s HTTPSource) String() string {
	return s.URL
}

// FileSource reads the glossary from a local file.
type FileSource struct {
	Path string
}

// Fetch implements Source.
func (s FileSource) Fetch(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.Path, err)
	}
	return f, nil
}

func (s FileSource) String() string {
	return s.Path
}

// NewSource picks an implementation from the location's scheme. http and https
// URLs are fetched over the network; file URLs and bare paths are read from disk.
func NewSource(location string, client *http.Client) (Source, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, errors.New("empty catalog source")
	}
	if !strings.Contains(location, "://") {
		return FileSource{Path: location}, nil
	}
	u, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("parse source %q: %w", location, err)
	}
	switch u.Scheme {
	case "http", "https":
		return HTTPSource{URL: location, Client: client}, nil
	case "file":
		path := u.Path
		if u.Host != "" {
			path = u.Host + path
		}
		return FileSource{Path: path}, nil
	default:
		return nil, fmt.Errorf("unsupported source scheme %q", u.Scheme)
	}
}

// Decode parses a JSON array of terms. Any malformed element fails the whole
// document, and reading stops once the size limit is exceeded.
func Decode(r io.Reader) ([]Term, error) {
	limited := &io.LimitedReader{R: r, N: maxDocumentBytes + 1}
	var terms []Term
	err := json.NewDecoder(limited).Decode(&terms)
	if limited.N <= 0 {
		return nil, fmt.Errorf("decode catalog: %w (limit %d bytes)", ErrDocumentTooLarge, maxDocumentBytes)
	}
	if err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if terms == nil {
		terms = []Term{}
	}
	return terms, nil
}

// Load fetches and decodes the catalog from src.
func Load(ctx context.Context, src Source) ([]Term, error) {
	if src == nil {
		return nil, errors.New("nil catalog source")
	}
	body, err := src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer body.Close()
	return Decode(body)
}
