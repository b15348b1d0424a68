//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Noooste/azuretls-client"
	"golang.org/x/sync/errgroup"

	"kitten/backend/internal/catalog"
	"kitten/backend/internal/config"
	"kitten/backend/pkg/logger"
	"kitten/backend/pkg/network"
)

const (
	probeTimeout     = 8 * time.Second
	probeConcurrency = 4
	directLabel      = "direct"
)

// InstanceStatus is the probe result for one site instance.
type InstanceStatus struct {
	Label      string `json:"label"`
	URL        string `json:"url"`
	Up         bool   `json:"up"`
	StatusCode int    `json:"statusCode,omitempty"`
	LatencyMS  int64  `json:"latencyMs"`
	Error      string `json:"error,omitempty"`
}

type SiteStatus struct {
	SiteID    string           `json:"siteId"`
	CheckedAt time.Time        `json:"checkedAt"`
	Instances []InstanceStatus `json:"instances"`
}

// InstanceProber performs one liveness request and reports the HTTP status.
type InstanceProber interface {
	Probe(ctx context.Context, rawURL string) (int, error)
}

type SiteService interface {
	List(ctx context.Context) []catalog.Site
	Get(ctx context.Context, id string) (*catalog.Site, error)
	// Status probes every instance of the site, or its direct URL when it
	// lists no instances.
	Status(ctx context.Context, id string) (*SiteStatus, error)
}

type siteService struct {
	catalog *catalog.Catalog
	prober  InstanceProber
}

func NewSiteService(c *catalog.Catalog, prober InstanceProber) SiteService {
	return &siteService{catalog: c, prober: prober}
}

func (s *siteService) List(ctx context.Context) []catalog.Site {
	return s.catalog.Sites()
}

func (s *siteService) Get(ctx context.Context, id string) (*catalog.Site, error) {
	site, err := s.catalog.Get(id)
	if err != nil {
		if errors.Is(err, catalog.ErrSiteNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &site, nil
}

func (s *siteService) Status(ctx context.Context, id string) (*SiteStatus, error) {
	site, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	targets := site.Instances
	if len(targets) == 0 && site.DirectURL != "" {
		targets = []catalog.Instance{{Label: directLabel, URL: site.DirectURL}}
	}

	results := make([]InstanceStatus, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(probeConcurrency)
	for i, inst := range targets {
		g.Go(func() error {
			results[i] = s.probe(gctx, inst)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &SiteStatus{SiteID: site.ID, CheckedAt: time.Now().UTC(), Instances: results}, nil
}

func (s *siteService) probe(ctx context.Context, inst catalog.Instance) InstanceStatus {
	status := InstanceStatus{Label: inst.Label, URL: inst.URL}
	start := time.Now()
	code, err := s.prober.Probe(ctx, inst.URL)
	status.LatencyMS = time.Since(start).Milliseconds()
	status.StatusCode = code
	if err != nil {
		status.Error = err.Error()
		logger.Debug("site probe failed", "module", "service", "action", "probe", "resource", "site", "result", "failed", "url", inst.URL, "error", err)
		return status
	}
	status.Up = code >= 200 && code < 400
	return status
}

type azureProber struct {
	clientFactory *network.ClientFactory
	timeout       time.Duration
}

// NewAzureProber probes instances with a Chrome TLS fingerprint so frontends
// behind bot filters answer the way they answer browsers.
func NewAzureProber(clientFactory *network.ClientFactory) InstanceProber {
	return &azureProber{clientFactory: clientFactory, timeout: probeTimeout}
}

func (p *azureProber) Probe(ctx context.Context, rawURL string) (int, error) {
	session := p.clientFactory.NewAzureSession(ctx, p.timeout)
	defer session.Close()

	headers := azuretls.OrderedHeaders{
		{"accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"},
		{"accept-language", config.ProxyAcceptLanguage},
		{"sec-ch-ua", config.ChromeSecChUa},
		{"sec-ch-ua-mobile", "?0"},
		{"sec-ch-ua-platform", `"Windows"`},
		{"sec-fetch-dest", "document"},
		{"sec-fetch-mode", "navigate"},
		{"sec-fetch-site", "none"},
		{"user-agent", config.ChromeUserAgent},
	}

	resp, err := session.Do(&azuretls.Request{
		Method:         http.MethodGet,
		Url:            rawURL,
		OrderedHeaders: headers,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return resp.StatusCode, nil
}
