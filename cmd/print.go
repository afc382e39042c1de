package cmd

import (
	"fmt"
	"io"

	"panorama/panos"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// printedRule is the YAML form of a located rule
type printedRule struct {
	Name     string             `yaml:"name"`
	Profiles []panos.ProfileRef `yaml:"profiles,omitempty"`
}

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the rules of a device group and their profiles",
	Long: `Display the rules found under the given device group and rulebase,
with the profile attached for each category, as YAML. Nothing is written
to disk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		policy, _ := cmd.Flags().GetString("policy")

		sel := selectorFlags(cmd)
		if err := sel.Validate(); err != nil {
			return err
		}
		if policy != panos.PolicySecurity && policy != panos.PolicyDecryption {
			return fmt.Errorf("invalid policy: %s, must be '%s' or '%s'", policy, panos.PolicySecurity, panos.PolicyDecryption)
		}

		doc, err := panos.LoadDocument(sel.ConfigPath)
		if err != nil {
			return err
		}
		return printRules(cmd.OutOrStdout(), doc, sel.DeviceGroup, sel.Rulebase, policy)
	},
}

func init() {
	printCmd.Flags().String("policy", panos.PolicySecurity, "Policy type to print (security or decryption)")
}

func printRules(w io.Writer, doc *panos.Document, deviceGroup, rulebase, policy string) error {
	found, err := doc.FindRules(deviceGroup, rulebase, policy)
	if err != nil {
		return err
	}

	printed := make([]printedRule, 0, len(found))
	for _, rule := range found {
		printed = append(printed, printedRule{Name: rule.Name, Profiles: rule.Profiles()})
	}
	out, err := yaml.Marshal(printed)
	if err != nil {
		return fmt.Errorf("error marshaling to YAML: %v", err)
	}
	_, err = w.Write(out)
	return err
}
