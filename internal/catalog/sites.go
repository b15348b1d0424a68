// Package catalog holds the proxy site catalog and the host lists derived from it.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"kitten/backend/internal/hostpolicy"

	"gopkg.in/yaml.v3"
)

//go:embed sites.yaml
var defaultDocument []byte

var ErrSiteNotFound = errors.New("site not found")

type Instance struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

type Site struct {
	ID          string     `yaml:"id" json:"id"`
	Title       string     `yaml:"title" json:"title"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
	DirectURL   string     `yaml:"direct_url" json:"directUrl"`
	Tags        []string   `yaml:"tags,omitempty" json:"tags,omitempty"`
	Instances   []Instance `yaml:"instances,omitempty" json:"instances,omitempty"`
}

type document struct {
	Sites []Site   `yaml:"sites"`
	Allow []string `yaml:"allow"`
	Deny  []string `yaml:"deny"`
}

// Catalog is the immutable, de-duplicated site list with its host policy.
type Catalog struct {
	sites  []Site
	byID   map[string]int
	policy *hostpolicy.Policy
}

// Default parses the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultDocument)
}

// Load reads the catalog from path, or the embedded document when path is empty.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site catalog %q: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document. When several sites share an id the
// first one wins.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse site catalog: %w", err)
	}

	c := &Catalog{
		sites:  make([]Site, 0, len(doc.Sites)),
		byID:   make(map[string]int, len(doc.Sites)),
		policy: hostpolicy.New(doc.Allow, doc.Deny),
	}
	for _, s := range doc.Sites {
		s.ID = strings.TrimSpace(s.ID)
		if s.ID == "" {
			continue
		}
		if _, dup := c.byID[s.ID]; dup {
			continue
		}
		for _, inst := range s.Instances {
			if _, err := url.ParseRequestURI(inst.URL); err != nil {
				return nil, fmt.Errorf("site %q: invalid instance url %q: %w", s.ID, inst.URL, err)
			}
		}
		c.byID[s.ID] = len(c.sites)
		c.sites = append(c.sites, s)
	}
	return c, nil
}

// Sites returns the catalog in document order.
func (c *Catalog) Sites() []Site {
	return append([]Site(nil), c.sites...)
}

func (c *Catalog) Get(id string) (Site, error) {
	i, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return Site{}, ErrSiteNotFound
	}
	return c.sites[i], nil
}

// Policy returns the proxy host policy declared by the catalog.
func (c *Catalog) Policy() *hostpolicy.Policy {
	return c.policy
}
