package rules

import "fmt"

// DecryptionCommands returns one set command per rule name assigning the
// decryption profile. Duplicate names are kept. The command always targets
// pre-rulebase, whichever rulebase the rules were read from.
func DecryptionCommands(deviceGroup, profile string, ruleNames []string) []string {
	commands := make([]string, 0, len(ruleNames))
	for _, name := range ruleNames {
		commands = append(commands, fmt.Sprintf(`set device-group %s pre-rulebase decryption rules "%s" profile %s`, deviceGroup, name, profile))
	}
	return commands
}
