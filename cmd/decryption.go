package cmd

import (
	"panorama/config"
	"panorama/panos"
	"panorama/report"
	"panorama/rules"

	"github.com/spf13/cobra"
)

var decryptionCmd = &cobra.Command{
	Use:   "decryption-profile",
	Short: "Create set commands adding a decryption profile to each decryption rule",
	Long: `Create set commands that update each decryption rule of a device group
with the decryption profile given. The profile must already exist on the
firewall. One command per rule is written to the output file.

Example:
  panorama decryption-profile --config config.xml --profile "Recommended-Decryption-Profile" \
    --rulebase pre-rulebase --devicegroup MyDG`,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, _ := cmd.Flags().GetString("profile")
		output, _ := cmd.Flags().GetString("output")

		defaults, err := loadDefaults(cmd)
		if err != nil {
			return err
		}
		opts, err := config.NewDecryptionOptions(selectorFlags(cmd), profile, output, defaults)
		if err != nil {
			return err
		}
		return runDecryption(opts)
	},
}

func init() {
	decryptionCmd.Flags().StringP("profile", "p", "", "Name of the decryption profile to apply")
	decryptionCmd.Flags().StringP("output", "o", "", "Output filename to be created (default "+config.DefaultOutput+")")
}

func runDecryption(opts config.DecryptionOptions) error {
	doc, err := panos.LoadDocument(opts.ConfigPath)
	if err != nil {
		return err
	}
	found, err := doc.FindRules(opts.DeviceGroup, opts.Rulebase, panos.PolicyDecryption)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(found))
	for _, rule := range found {
		names = append(names, rule.Name)
	}
	if err := report.WriteLines(opts.Output, rules.DecryptionCommands(opts.DeviceGroup, opts.Profile, names)); err != nil {
		return err
	}

	success("Wrote %d set commands to %s\n", len(names), opts.Output)
	return nil
}
