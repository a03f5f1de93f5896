// Package source loads the text an infographic is generated from. Text comes
// from exactly one of an inline string, a local file or an http(s) URL.
package source

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	apperrors "github.com/ankek/terraform-provider-infographic/internal/errors"
	"github.com/ankek/terraform-provider-infographic/internal/validation"
)

// Kind names where text came from
type Kind string

const (
	KindInline Kind = "inline"
	KindFile   Kind = "file"
	KindURL    Kind = "url"
)

// Input selects a text source. Exactly one of Text, File and URL must be set.
type Input struct {
	Text string
	File string
	URL  string

	// Token is sent as a bearer token with URL requests when set
	Token string
}

// Kind reports which source is selected, or an INVALID_SOURCE error when
// none or more than one is.
func (in Input) Kind() (Kind, error) {
	var kinds []Kind
	if in.Text != "" {
		kinds = append(kinds, KindInline)
	}
	if in.File != "" {
		kinds = append(kinds, KindFile)
	}
	if in.URL != "" {
		kinds = append(kinds, KindURL)
	}
	switch len(kinds) {
	case 0:
		return "", apperrors.New(apperrors.ErrCodeInvalidSource, "one of text, text file or source URL is required")
	case 1:
		return kinds[0], nil
	default:
		return "", apperrors.New(apperrors.ErrCodeInvalidSource, "only one of text, text file or source URL may be set, got %v", kinds)
	}
}

// Loader reads text from any source kind
type Loader struct {
	Client   *retryablehttp.Client
	MaxBytes int64
}

// NewLoader returns a loader that retries URL fetches three times and
// accepts up to validation.MaxTextBytes of text.
func NewLoader() *Loader {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.Logger = nil // Disable logging

	return &Loader{
		Client:   client,
		MaxBytes: validation.MaxTextBytes,
	}
}

// Load returns the text of in. Inline text is returned as is.
// It respects the provided context for cancellation.
func (l *Loader) Load(ctx context.Context, in Input) (string, error) {
	kind, err := in.Kind()
	if err != nil {
		return "", err
	}

	switch kind {
	case KindFile:
		return l.readFile(in.File)
	case KindURL:
		return l.fetch(ctx, in.URL, in.Token)
	default:
		return in.Text, nil
	}
}

// Load reads text with a default Loader
func Load(ctx context.Context, in Input) (string, error) {
	return NewLoader().Load(ctx, in)
}

func (l *Loader) readFile(path string) (string, error) {
	if err := validation.ValidateInputPath(path, false); err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "failed to stat %s", path)
	}
	if info.Size() > l.MaxBytes {
		return "", apperrors.New(apperrors.ErrCodeInvalidSource, "%s is %d bytes, the limit is %d", path, info.Size(), l.MaxBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "failed to read %s", path)
	}
	return string(data), nil
}

func (l *Loader) fetch(ctx context.Context, address, token string) (string, error) {
	u, err := url.Parse(address)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", apperrors.New(apperrors.ErrCodeInvalidSource, "source URL must be an http or https URL: %s", address)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, address, nil)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeInvalidSource, err, "failed to create HTTP request")
	}
	req.Header.Set("Accept", "text/plain, text/markdown;q=0.9, */*;q=0.5")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := l.Client.Do(req)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeNetwork, err, "failed to fetch %s", redact(u))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", apperrors.New(apperrors.ErrCodeNetwork, "failed to fetch %s (status %d): %s", redact(u), resp.StatusCode, strings.TrimSpace(string(body)))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, l.MaxBytes+1))
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeNetwork, err, "failed to read response from %s", redact(u))
	}
	if int64(len(data)) > l.MaxBytes {
		return "", apperrors.New(apperrors.ErrCodeInvalidSource, "response from %s exceeds %d bytes", redact(u), l.MaxBytes)
	}
	return string(data), nil
}

// redact hides the password of a URL before it is shown to the user
func redact(u *url.URL) string {
	return u.Redacted()
}
