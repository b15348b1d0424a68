//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"kitten/backend/internal/config"
	"kitten/backend/internal/hostpolicy"
	"kitten/backend/internal/metrics"
	"kitten/backend/internal/quota"
	"kitten/backend/internal/urlutil"
	"kitten/backend/pkg/logger"
	"kitten/backend/pkg/network"
)

const (
	proxyTimeout        = 20 * time.Second
	defaultCacheControl = "public, max-age=60, s-maxage=300"
	maxRedirects        = 10
)

var (
	ErrMissingIdentity = errors.New("missing identity")
	ErrMissingURL      = errors.New("missing url")
	ErrInvalidURL      = errors.New("invalid URL")
	ErrInvalidProtocol = errors.New("invalid protocol")
	ErrHostNotAllowed  = errors.New("host not allowed")
	ErrQuotaExceeded   = errors.New("quota exceeded")
	ErrRequestTimeout  = errors.New("request timeout")
	ErrFetchFailed     = errors.New("fetch failed")
	ErrUpstreamStatus  = errors.New("upstream error status")
)

// strippedHeaders never leave the proxy: hop-by-hop, credentials, reporting
// endpoints and anything that would prevent framing.
var strippedHeaders = map[string]struct{}{
	"connection":                          {},
	"keep-alive":                          {},
	"proxy-authenticate":                  {},
	"proxy-authorization":                 {},
	"te":                                  {},
	"trailers":                            {},
	"transfer-encoding":                   {},
	"upgrade":                             {},
	"set-cookie":                          {},
	"cookie":                              {},
	"authorization":                       {},
	"alt-svc":                             {},
	"report-to":                           {},
	"nel":                                 {},
	"content-security-policy":             {},
	"content-security-policy-report-only": {},
	"x-frame-options":                     {},
	"frame-ancestors":                     {},
}

// ProxyError carries the target host (and upstream status) for a failed proxy call.
type ProxyError struct {
	Kind       error
	Host       string
	StatusCode int
	Err        error
}

func (e *ProxyError) Error() string {
	msg := e.Kind.Error()
	if e.Host != "" {
		msg += ": " + e.Host
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ProxyError) Unwrap() error { return e.Kind }

type ProxyRequest struct {
	TargetURL      string
	Identity       string
	Accept         string
	AcceptLanguage string
}

// ProxyResponse is an upstream answer ready to be streamed. The caller must
// close Body.
type ProxyResponse struct {
	StatusCode int
	Header     http.Header
	Body       io.ReadCloser
	Host       string
	Remaining  int
}

// ProxyPolicy lists the normalised host rules the proxy enforces.
type ProxyPolicy struct {
	Allow []string
	Deny  []string
}

type ProxyService interface {
	Fetch(ctx context.Context, req ProxyRequest) (*ProxyResponse, error)
	// Remaining reports today's unused quota for identity without charging it.
	Remaining(identity string) int
	Usage() []quota.Usage
	PruneUsage() int
	Policy() ProxyPolicy
}

type proxyService struct {
	client  *http.Client
	policy  *hostpolicy.Policy
	quota   *quota.Daily
	metrics *metrics.Metrics
	timeout time.Duration
}

func NewProxyService(clientFactory *network.ClientFactory, policy *hostpolicy.Policy, daily *quota.Daily, m *metrics.Metrics) ProxyService {
	return &proxyService{
		client:  newProxyClient(clientFactory, policy),
		policy:  policy,
		quota:   daily,
		metrics: m,
		timeout: proxyTimeout,
	}
}

func (s *proxyService) Remaining(identity string) int {
	return s.quota.Remaining(strings.TrimSpace(identity))
}

func (s *proxyService) Policy() ProxyPolicy {
	return ProxyPolicy{Allow: s.policy.AllowList(), Deny: s.policy.DenyList()}
}

func (s *proxyService) Usage() []quota.Usage {
	return s.quota.Snapshot()
}

func (s *proxyService) PruneUsage() int {
	return s.quota.Prune()
}

// Fetch validates the request, charges the caller's quota and opens the
// upstream response. Validation happens before charging so rejected requests
// do not consume quota.
func (s *proxyService) Fetch(ctx context.Context, req ProxyRequest) (*ProxyResponse, error) {
	identity := strings.TrimSpace(req.Identity)
	if identity == "" {
		s.metrics.ProxyRequest("unauthenticated")
		return nil, ErrMissingIdentity
	}

	target, err := s.parseTarget(req.TargetURL)
	if err != nil {
		s.metrics.ProxyRequest("invalid")
		return nil, err
	}
	host := target.Hostname()

	if decision := s.policy.Check(host); decision != hostpolicy.Allowed {
		s.metrics.ProxyRequest(decision.String())
		logger.Info("proxy host rejected", "module", "service", "action", "fetch", "resource", "proxy", "result", "rejected", "host", host, "decision", decision.String())
		return nil, &ProxyError{Kind: ErrHostNotAllowed, Host: host}
	}

	res := s.quota.Take(identity)
	if !res.Allowed {
		s.metrics.ProxyRequest("quota_exceeded")
		return nil, ErrQuotaExceeded
	}

	resp, err := s.doFetch(ctx, target, req)
	if err != nil {
		return nil, err
	}
	resp.Remaining = res.Remaining
	return resp, nil
}

func (s *proxyService) parseTarget(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrMissingURL
	}
	parsed, err := url.Parse(urlutil.StripFragment(raw))
	if err != nil || parsed.Host == "" {
		return nil, ErrInvalidURL
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, ErrInvalidProtocol
	}
	return parsed, nil
}

func (s *proxyService) doFetch(ctx context.Context, target *url.URL, req ProxyRequest) (*ProxyResponse, error) {
	host := target.Hostname()

	ctx, cancel := context.WithCancel(ctx)
	var timedOut atomic.Bool
	timer := time.AfterFunc(s.timeout, func() {
		timedOut.Store(true)
		cancel()
	})

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		timer.Stop()
		cancel()
		return nil, ErrInvalidURL
	}
	if req.Accept != "" {
		httpReq.Header.Set("Accept", req.Accept)
	}
	acceptLanguage := req.AcceptLanguage
	if acceptLanguage == "" {
		acceptLanguage = config.ProxyAcceptLanguage
	}
	httpReq.Header.Set("Accept-Language", acceptLanguage)
	httpReq.Header.Set("User-Agent", config.ProxyUserAgent)

	start := time.Now()
	resp, err := s.client.Do(httpReq)
	timer.Stop()
	if err != nil {
		cancel()
		var pe *ProxyError
		if errors.As(err, &pe) {
			s.metrics.ProxyRequest("redirect_rejected")
			logger.Info("proxy redirect rejected", "module", "service", "action", "fetch", "resource", "proxy", "result", "rejected", "host", pe.Host)
			return nil, pe
		}
		if timedOut.Load() {
			s.metrics.ProxyRequest("timeout")
			logger.Warn("proxy fetch timed out", "module", "service", "action", "fetch", "resource", "proxy", "result", "failed", "host", host)
			return nil, &ProxyError{Kind: ErrRequestTimeout, Host: host, Err: err}
		}
		s.metrics.ProxyRequest("fetch_failed")
		logger.Warn("proxy fetch failed", "module", "service", "action", "fetch", "resource", "proxy", "result", "failed", "host", host, "error", err)
		return nil, &ProxyError{Kind: ErrFetchFailed, Host: host, Err: err}
	}
	s.metrics.UpstreamLatency(host, time.Since(start))

	if resp.StatusCode >= 500 {
		_ = resp.Body.Close()
		cancel()
		s.metrics.ProxyRequest("upstream_error")
		logger.Error("proxy http error", "module", "service", "action", "fetch", "resource", "proxy", "result", "failed", "host", host, "status_code", resp.StatusCode)
		return nil, &ProxyError{Kind: ErrUpstreamStatus, Host: host, StatusCode: resp.StatusCode}
	}

	s.metrics.ProxyRequest("ok")
	logger.Debug("proxy fetched", "module", "service", "action", "fetch", "resource", "proxy", "result", "ok", "host", host, "status_code", resp.StatusCode)
	return &ProxyResponse{
		StatusCode: resp.StatusCode,
		Header:     FilterProxyHeaders(resp.Header),
		Body:       &cancelOnClose{ReadCloser: resp.Body, cancel: cancel},
		Host:       host,
	}, nil
}

// newProxyClient copies the factory client once so every request shares its
// transport. Each redirect hop must pass the same host policy as the target.
func newProxyClient(clientFactory *network.ClientFactory, policy *hostpolicy.Policy) *http.Client {
	client := *clientFactory.NewHTTPClient(context.Background(), 0)
	client.CheckRedirect = func(r *http.Request, via []*http.Request) error {
		if len(via) >= maxRedirects {
			return fmt.Errorf("stopped after %d redirects", maxRedirects)
		}
		host := r.URL.Hostname()
		if r.URL.Scheme != "http" && r.URL.Scheme != "https" {
			return &ProxyError{Kind: ErrInvalidProtocol, Host: host}
		}
		if policy.Check(host) != hostpolicy.Allowed {
			return &ProxyError{Kind: ErrHostNotAllowed, Host: host}
		}
		return nil
	}
	return &client
}

// FilterProxyHeaders copies upstream headers minus the stripped set, adds the
// default cache policy when upstream sent none and opens CORS.
func FilterProxyHeaders(upstream http.Header) http.Header {
	out := make(http.Header, len(upstream)+2)
	for k, vs := range upstream {
		if _, skip := strippedHeaders[strings.ToLower(k)]; skip {
			continue
		}
		out[http.CanonicalHeaderKey(k)] = append([]string(nil), vs...)
	}
	if out.Get("Cache-Control") == "" {
		out.Set("Cache-Control", defaultCacheControl)
	}
	out.Set("Access-Control-Allow-Origin", "*")
	return out
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
