package source

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pinguimprofissional/hosts/internal/hosts"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// DefaultTimeout bounds a single blocklist download.
const DefaultTimeout = 30 * time.Second

// Client downloads blocklists over HTTP.
type Client struct {
	http *http.Client
}

// NewClient returns a Client whose requests give up after timeout
// (DefaultTimeout when zero or negative).
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch implements the Fetcher interface.
// It returns the body of url split into lines, decoded to UTF-8 when the
// response declares another charset.
func (c *Client) Fetch(ctx context.Context, url string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return hosts.SplitLines(decodeBody(body, resp.Header.Get("Content-Type"))), nil
}

// decodeBody converts body to UTF-8. A declared charset is decoded through
// htmlindex; a body with no charset that is not UTF-8 is read as ISO-8859-1.
// Whatever still fails to decode has its invalid bytes replaced with U+FFFD,
// so the result is always valid UTF-8.
func decodeBody(body []byte, contentType string) string {
	switch name := charsetOf(contentType); name {
	case "":
		if utf8.Valid(body) {
			return string(body)
		}
		if decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(body); err == nil {
			return string(decoded)
		}
	case "utf-8", "utf8":
	default:
		if enc, err := htmlindex.Get(name); err == nil {
			if decoded, err := enc.NewDecoder().Bytes(body); err == nil && utf8.Valid(decoded) {
				return string(decoded)
			}
		}
	}

	if utf8.Valid(body) {
		return string(body)
	}
	decoded, err := unicode.UTF8.NewDecoder().Bytes(body)
	if err != nil {
		return strings.ToValidUTF8(string(body), "\uFFFD")
	}
	return string(decoded)
}

// charsetOf returns the lowercase charset parameter of contentType, if any.
func charsetOf(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(params["charset"]))
}
