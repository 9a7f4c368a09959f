// Package catalog provides the static technology taxonomy used to relate skills to each other.
package catalog

import (
	"sort"
	"strings"
	"sync"
)

const (
	// DefaultCompensationFactor applies to related matches when a group does not set one
	DefaultCompensationFactor = 0.8
	// DefaultRelevance is returned for tokens the catalog does not know
	DefaultRelevance = 0.5
)

// TechnologyGroup is an immutable set of skills that can stand in for each other
type TechnologyGroup struct {
	PrimaryName        string
	RelatedNames       []string
	Category           string
	CompensationFactor float64
	ContextTags        []string
}

// Members returns the primary name followed by the related names
func (g *TechnologyGroup) Members() []string {
	members := make([]string, 0, len(g.RelatedNames)+1)
	members = append(members, g.PrimaryName)
	members = append(members, g.RelatedNames...)
	return members
}

// Factor returns the group's compensation factor, falling back to the default
func (g *TechnologyGroup) Factor() float64 {
	if g.CompensationFactor <= 0 || g.CompensationFactor > 1 {
		return DefaultCompensationFactor
	}
	return g.CompensationFactor
}

// Catalog indexes technology groups by member token.
// A token belongs to at most one group; the first group registering it wins.
type Catalog struct {
	groups []TechnologyGroup
	index  map[string]int
	tokens []string
}

// New builds a catalog from the given groups. Tokens are lowercased.
func New(groups []TechnologyGroup) *Catalog {
	c := &Catalog{
		groups: make([]TechnologyGroup, 0, len(groups)),
		index:  make(map[string]int),
	}

	for _, g := range groups {
		group := TechnologyGroup{
			PrimaryName:        strings.ToLower(strings.TrimSpace(g.PrimaryName)),
			Category:           g.Category,
			CompensationFactor: g.CompensationFactor,
			ContextTags:        append([]string(nil), g.ContextTags...),
		}
		for _, related := range g.RelatedNames {
			group.RelatedNames = append(group.RelatedNames, strings.ToLower(strings.TrimSpace(related)))
		}

		idx := len(c.groups)
		c.groups = append(c.groups, group)
		for _, member := range group.Members() {
			if member == "" {
				continue
			}
			if _, exists := c.index[member]; exists {
				continue
			}
			c.index[member] = idx
			c.tokens = append(c.tokens, member)
		}
	}

	// Longest first so multi-word tokens are preferred during extraction
	sort.SliceStable(c.tokens, func(i, j int) bool {
		if len(c.tokens[i]) != len(c.tokens[j]) {
			return len(c.tokens[i]) > len(c.tokens[j])
		}
		return c.tokens[i] < c.tokens[j]
	})

	return c
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide catalog built from the built-in groups
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = New(defaultGroups)
	})
	return defaultCatalog
}

// Group returns a copy of the technology group a token belongs to
func (c *Catalog) Group(token string) (TechnologyGroup, bool) {
	idx, ok := c.index[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		return TechnologyGroup{}, false
	}
	g := c.groups[idx]
	g.RelatedNames = append([]string(nil), g.RelatedNames...)
	g.ContextTags = append([]string(nil), g.ContextTags...)
	return g, true
}

// Contains reports whether the token is a known technology
func (c *Catalog) Contains(token string) bool {
	_, ok := c.index[strings.ToLower(strings.TrimSpace(token))]
	return ok
}

// Related returns the other members of the token's group, in catalog order
func (c *Catalog) Related(token string) []string {
	group, ok := c.Group(token)
	if !ok {
		return nil
	}
	token = strings.ToLower(strings.TrimSpace(token))
	related := make([]string, 0, len(group.RelatedNames))
	for _, member := range group.Members() {
		if member != token {
			related = append(related, member)
		}
	}
	return related
}

// AreRelated reports whether two distinct tokens share a group
func (c *Catalog) AreRelated(a, b string) bool {
	ga, okA := c.index[strings.ToLower(strings.TrimSpace(a))]
	gb, okB := c.index[strings.ToLower(strings.TrimSpace(b))]
	return okA && okB && ga == gb
}

// CompensationFactor returns how much a related match counts for the token
func (c *Catalog) CompensationFactor(token string) float64 {
	group, ok := c.Group(token)
	if !ok {
		return DefaultCompensationFactor
	}
	return group.Factor()
}

// Category returns the token's category, or "" when unknown
func (c *Catalog) Category(token string) string {
	group, ok := c.Group(token)
	if !ok {
		return ""
	}
	return group.Category
}

// Relevance returns 1.0 for known technologies and DefaultRelevance otherwise
func (c *Catalog) Relevance(token string) float64 {
	if c.Contains(token) {
		return 1.0
	}
	return DefaultRelevance
}

// Tokens returns every known token, longest first
func (c *Catalog) Tokens() []string {
	out := make([]string, len(c.tokens))
	copy(out, c.tokens)
	return out
}

