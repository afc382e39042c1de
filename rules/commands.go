package rules

import (
	"fmt"
	"strings"
)

// CommandBlock holds the set commands for one profile group
type CommandBlock struct {
	GroupName string
	Create    string   // creates the profile group
	Assign    []string // points each rule at the profile group
}

// ProfileGroupName returns the name minted for the n-th qualifying group (1-based)
func ProfileGroupName(n int) string {
	return fmt.Sprintf("sec_prof_%d", n)
}

// GroupCommands builds the commands that replace each group's individual
// profiles with a new profile group. Numbering follows the order of groups.
func GroupCommands(deviceGroup, rulebase string, groups []*Group) []CommandBlock {
	blocks := make([]CommandBlock, 0, len(groups))
	for i, group := range groups {
		name := ProfileGroupName(i + 1)

		profiles := make([]string, 0, len(group.Profiles))
		for _, ref := range group.Profiles {
			profiles = append(profiles, ref.Category+" "+ref.Member)
		}

		block := CommandBlock{
			GroupName: name,
			Create:    fmt.Sprintf("set device-group %s profile-group %s %s", deviceGroup, name, strings.Join(profiles, " ")),
		}
		for _, rule := range group.Rules {
			block.Assign = append(block.Assign,
				fmt.Sprintf(`set device-group %s %s security rules "%s" profile-setting group %s`, deviceGroup, rulebase, rule, name))
		}
		blocks = append(blocks, block)
	}
	return blocks
}

// FormatRuleList renders rule names as a bracketed, quoted list: ['R1', 'R2']
func FormatRuleList(names []string) string {
	quoted := make([]string, 0, len(names))
	for _, name := range names {
		quoted = append(quoted, quoteName(name))
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// quoteName prefers single quotes and switches to double quotes when the
// name contains a single quote but no double quote.
func quoteName(name string) string {
	quote := byte('\'')
	if strings.ContainsRune(name, '\'') && !strings.ContainsRune(name, '"') {
		quote = '"'
	}

	var b strings.Builder
	b.WriteByte(quote)
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '\\' || c == quote:
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(quote)
	return b.String()
}
