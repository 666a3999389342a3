package cv

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Zachkp/cvsite/internal/logger"
)

const defaultLoadTimeout = 10 * time.Second

// LoadError is the single failure kind of the data loader: the document could
// not be fetched, read or parsed.
type LoadError struct {
	Source string
	Status int // HTTP status for remote sources that answered
	Err    error
}

func (e *LoadError) Error() string {
	name := e.Source
	if u, err := url.Parse(e.Source); err == nil && u.Path != "" {
		name = u.Path
	}
	switch {
	case e.Status != 0:
		return fmt.Sprintf("failed to load %s: %d %s", name, e.Status, http.StatusText(e.Status))
	case e.Err != nil:
		return fmt.Sprintf("failed to load %s: %v", name, e.Err)
	}
	return "failed to load " + name
}

func (e *LoadError) Unwrap() error { return e.Err }

type loadOptions struct {
	timeout time.Duration
	client  *http.Client
}

type LoadOption func(*loadOptions)

// WithTimeout bounds a remote fetch.
func WithTimeout(d time.Duration) LoadOption {
	return func(o *loadOptions) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithHTTPClient replaces the transport used for remote sources.
func WithHTTPClient(c *http.Client) LoadOption {
	return func(o *loadOptions) { o.client = c }
}

// Load reads the CV document from a local path or fetches it from an http(s)
// URL. Remote fetches bypass caches and are never retried.
func Load(ctx context.Context, source string, opts ...LoadOption) (*Document, error) {
	o := loadOptions{timeout: defaultLoadTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	var (
		data []byte
		err  error
	)
	if IsRemote(source) {
		data, err = fetch(ctx, source, o)
	} else {
		data, err = os.ReadFile(source)
		if err != nil {
			err = &LoadError{Source: source, Err: err}
		}
	}
	if err != nil {
		return nil, err
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	logger.Debug().
		Str("source", source).
		Int("bytes", len(data)).
		Int("jobs", len(doc.Experience)).
		Str("technical_skills", doc.TechnicalSkills.Shape.String()).
		Msg("cv document loaded")
	return doc, nil
}

// IsRemote reports whether source is an http or https URL.
func IsRemote(source string) bool {
	u, err := url.Parse(source)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func fetch(ctx context.Context, source string, o loadOptions) ([]byte, error) {
	client := resty.New()
	if o.client != nil {
		client = resty.NewWithClient(o.client)
	}
	client.
		SetTimeout(o.timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("Cache-Control", "no-store").
		SetHeader("Pragma", "no-cache")

	resp, err := client.R().SetContext(ctx).Get(source)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &LoadError{Source: source, Status: resp.StatusCode()}
	}
	return resp.Body(), nil
}
