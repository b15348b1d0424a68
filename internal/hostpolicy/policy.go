// Package hostpolicy decides which upstream hosts the reverse proxy may reach.
//
// A host matches a rule when it equals the rule or ends with "." + rule, so
// "en.wikipedia.org" matches "wikipedia.org" but "notwikipedia.org" does not.
// Deny rules always win over allow rules.
package hostpolicy

import (
	"sort"
	"strings"

	"golang.org/x/net/idna"
)

// Decision is the outcome of a policy check.
type Decision int

const (
	Allowed Decision = iota
	Denied
	NotAllowed
)

func (d Decision) String() string {
	switch d {
	case Allowed:
		return "allowed"
	case Denied:
		return "denied"
	default:
		return "not_allowed"
	}
}

// Policy is an immutable allow/deny host list.
type Policy struct {
	allow []string
	deny  []string
}

// New builds a policy. Entries are normalised; empty or invalid entries are dropped.
func New(allow, deny []string) *Policy {
	return &Policy{
		allow: normalizeList(allow),
		deny:  normalizeList(deny),
	}
}

// Check classifies hostname. The hostname may carry a port, a trailing dot
// or Unicode labels.
func (p *Policy) Check(hostname string) Decision {
	h, ok := Normalize(hostname)
	if !ok {
		return NotAllowed
	}
	if matchesAny(h, p.deny) {
		return Denied
	}
	if matchesAny(h, p.allow) {
		return Allowed
	}
	return NotAllowed
}

// AllowList returns a sorted copy of the normalised allow entries.
func (p *Policy) AllowList() []string { return sortedCopy(p.allow) }

// DenyList returns a sorted copy of the normalised deny entries.
func (p *Policy) DenyList() []string { return sortedCopy(p.deny) }

// Normalize lower-cases hostname, strips a port and trailing dot and converts
// Unicode labels to their ASCII (punycode) form.
func Normalize(hostname string) (string, bool) {
	h := strings.TrimSpace(hostname)
	if h == "" {
		return "", false
	}
	if i := strings.LastIndexByte(h, ':'); i >= 0 && !strings.Contains(h[:i], ":") {
		h = h[:i]
	}
	h = strings.TrimSuffix(h, ".")
	ascii, err := idna.Lookup.ToASCII(h)
	if err != nil || ascii == "" {
		return "", false
	}
	return strings.ToLower(ascii), true
}

func matchesAny(h string, rules []string) bool {
	for _, r := range rules {
		if h == r || strings.HasSuffix(h, "."+r) {
			return true
		}
	}
	return false
}

func normalizeList(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, raw := range in {
		h, ok := Normalize(raw)
		if !ok {
			continue
		}
		if _, dup := seen[h]; dup {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, h)
	}
	return out
}

func sortedCopy(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	return out
}
