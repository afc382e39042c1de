package panos

import (
	"errors"
	"fmt"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// Policy types that hold rules under a rulebase
const (
	PolicyDecryption = "decryption"
	PolicySecurity   = "security"
)

var (
	// ErrNoRules is returned when the rule query matches nothing
	ErrNoRules = errors.New("no rules found")
	// ErrInvalidSelector is returned when the selectors do not form a valid path expression
	ErrInvalidSelector = errors.New("invalid device-group or rulebase selector")
)

// ProfileRef is one entry under a rule's profile-setting/profiles
type ProfileRef struct {
	Category string `yaml:"category"` // virus, spyware, vulnerability, ...
	Member   string `yaml:"member"`
}

// Rule is a single policy rule entry
type Rule struct {
	Name string
	Node *xmlquery.Node
}

// RulePath builds the path expression for rules of a policy type. The device
// group is inserted without escaping.
func RulePath(deviceGroup, rulebase, policy string) string {
	return fmt.Sprintf("devices/entry/device-group/*[@name='%s']/%s/%s/rules/*", deviceGroup, rulebase, policy)
}

// FindRules returns the rule entries in document order. Zero matches is an error.
func (d *Document) FindRules(deviceGroup, rulebase, policy string) ([]Rule, error) {
	expr, err := xpath.Compile(RulePath(deviceGroup, rulebase, policy))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSelector, err)
	}

	var found []Rule
	for _, n := range xmlquery.QuerySelectorAll(d.Root, expr) {
		if n.Type != xmlquery.ElementNode {
			continue
		}
		found = append(found, Rule{Name: n.SelectAttr("name"), Node: n})
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%w in the %s %s for device-group: %s", ErrNoRules, policy, rulebase, deviceGroup)
	}
	return found, nil
}

// Profiles returns the rule's profile references in document order
func (r Rule) Profiles() []ProfileRef {
	var refs []ProfileRef
	profiles := xmlquery.FindOne(r.Node, "profile-setting/profiles")
	if profiles == nil {
		return refs
	}
	for n := profiles.FirstChild; n != nil; n = n.NextSibling {
		if n.Type != xmlquery.ElementNode {
			continue
		}
		ref := ProfileRef{Category: n.Data}
		if member := n.SelectElement("member"); member != nil {
			ref.Member = member.InnerText()
		}
		refs = append(refs, ref)
	}
	return refs
}
