package rdapkit

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ClientConfig is the request-level configuration surface named in spec
// section 4.G, orthogonal to the bootstrap/cache/retry knobs on Client
// itself (those are configured once via Option at construction time).
type ClientConfig struct {
	HTTPSOnly                 bool
	FollowRedirects            bool
	MaxRedirects               int // default 5 when FollowRedirects is true
	AcceptInvalidHostNames     bool
	AcceptInvalidCertificates  bool
	UserAgent                  string
	ClientName                 string
	ClientVersion              string
	TimeoutSeconds             int
}

// DefaultClientConfig returns a ClientConfig with the defaults spec section
// 4.G names: redirects followed up to 5 hops, HTTPS not required.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{FollowRedirects: true, MaxRedirects: 5}
}

// HTTPData carries the transport-level facts of a Request call alongside
// the parsed RDAP response.
type HTTPData struct {
	StatusCode  int
	Headers     http.Header
	Location    string
	ReceivedURL string
	ContentType string
}

// Response pairs a parsed RDAP response with its transport metadata.
type Response struct {
	RDAP     any
	HTTPData HTTPData
}

// ErrTooManyRedirects is returned when a redirect chain exceeds config.MaxRedirects.
type ErrTooManyRedirects struct{ Limit int }

func (e ErrTooManyRedirects) Error() string {
	return fmt.Sprintf("rdap: too many redirects (limit %d)", e.Limit)
}

// ErrRedirectLoop is returned when a redirect chain revisits a URL.
type ErrRedirectLoop struct{ URL string }

func (e ErrRedirectLoop) Error() string { return "rdap: redirect loop at " + e.URL }

// Request issues q against base using cfg, following redirects up to
// cfg.MaxRedirects with loop detection when cfg.FollowRedirects is set.
// When it is false, a 3xx is returned as a Response whose HTTPData.Location
// is populated and RDAP is nil, for the caller to act on.
func (c *Client) Request(ctx context.Context, base string, q QueryType, cfg ClientConfig) (*Response, error) {
	if cfg.MaxRedirects == 0 && cfg.FollowRedirects {
		cfg.MaxRedirects = 5
	}
	path, err := q.URLPath()
	if err != nil {
		return nil, err
	}
	u := mustJoin(base, "/"+path)
	visited := make(map[string]struct{})

	for hop := 0; ; hop++ {
		if cfg.HTTPSOnly && !strings.HasPrefix(u, "https://") {
			return nil, fmt.Errorf("rdap: refusing non-HTTPS request to %s (HTTPSOnly set)", u)
		}
		if _, seen := visited[u]; seen {
			return nil, ErrRedirectLoop{URL: u}
		}
		visited[u] = struct{}{}

		resp, err := c.doOnce(ctx, u, cfg)
		if err != nil {
			return nil, err
		}

		if resp.HTTPData.StatusCode >= 300 && resp.HTTPData.StatusCode < 400 && resp.HTTPData.Location != "" {
			if !cfg.FollowRedirects {
				return resp, nil
			}
			if hop >= cfg.MaxRedirects {
				return nil, ErrTooManyRedirects{Limit: cfg.MaxRedirects}
			}
			next, err := url.Parse(resp.HTTPData.Location)
			if err != nil {
				return nil, fmt.Errorf("rdap: invalid redirect location %q: %w", resp.HTTPData.Location, err)
			}
			base, err := url.Parse(u)
			if err != nil {
				return nil, err
			}
			u = base.ResolveReference(next).String()
			continue
		}

		return resp, nil
	}
}

// doOnce issues a single GET against u through getJSON (http_request.go), so
// every Request call shares the same conditional-GET caching, retry/backoff,
// and negative-caching behavior as the bootstrap-driven convenience methods
// in the endpoints_*.go files, rather than re-implementing transport here.
func (c *Client) doOnce(ctx context.Context, u string, cfg ClientConfig) (*Response, error) {
	m, hdr, status, err := c.getJSON(ctx, u, c.requestUserAgent(cfg), c.requestTimeout(cfg))
	if err != nil {
		return nil, err
	}

	data := HTTPData{
		StatusCode:  status,
		Headers:     hdr,
		Location:    hdr.Get("Location"),
		ReceivedURL: u,
		ContentType: hdr.Get("Content-Type"),
	}

	if status >= 300 && status < 400 {
		return &Response{HTTPData: data}, nil
	}

	rdap, err := ParseResponse(m)
	if err != nil {
		return nil, err
	}
	return &Response{RDAP: rdap, HTTPData: data}, nil
}

func (c *Client) requestTimeout(cfg ClientConfig) time.Duration {
	if cfg.TimeoutSeconds > 0 {
		return time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return c.baseTimeout
}

func (c *Client) requestUserAgent(cfg ClientConfig) string {
	if cfg.UserAgent != "" {
		return cfg.UserAgent
	}
	if cfg.ClientName != "" {
		if cfg.ClientVersion != "" {
			return cfg.ClientName + "/" + cfg.ClientVersion
		}
		return cfg.ClientName
	}
	return c.ua
}
