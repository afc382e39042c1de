// Package rules turns located policy rules into set commands.
package rules

import (
	"strings"

	"panorama/panos"
)

// Group aggregates the rules that share one profile signature
type Group struct {
	Signature string
	Count     int
	Rules     []string
	// Profiles of the first rule seen with this signature
	Profiles []panos.ProfileRef
}

// Groups is a signature-keyed collection that iterates in first-seen order
type Groups struct {
	order []*Group
	index map[string]*Group
}

// Signature concatenates the member names of the profile references, each
// followed by a newline. Categories are not part of the key.
func Signature(refs []panos.ProfileRef) string {
	var b strings.Builder
	for _, ref := range refs {
		b.WriteString(ref.Member)
		b.WriteByte('\n')
	}
	return b.String()
}

// GroupBySignature partitions the rules by profile signature. Rules without
// profiles share the empty signature and form a group like any other.
func GroupBySignature(rules []panos.Rule) *Groups {
	groups := &Groups{index: make(map[string]*Group)}
	for _, rule := range rules {
		profiles := rule.Profiles()
		groups.add(Signature(profiles), rule.Name, profiles)
	}
	return groups
}

func (g *Groups) add(signature, ruleName string, profiles []panos.ProfileRef) {
	if group, ok := g.index[signature]; ok {
		group.Count++
		group.Rules = append(group.Rules, ruleName)
		return
	}
	group := &Group{
		Signature: signature,
		Count:     1,
		Rules:     []string{ruleName},
		Profiles:  profiles,
	}
	g.index[signature] = group
	g.order = append(g.order, group)
}

// All returns every group in first-seen order
func (g *Groups) All() []*Group {
	return g.order
}

// Qualifying returns the groups seen at least threshold times, in first-seen order
func (g *Groups) Qualifying(threshold int) []*Group {
	var qualifying []*Group
	for _, group := range g.order {
		if group.Count >= threshold {
			qualifying = append(qualifying, group)
		}
	}
	return qualifying
}
