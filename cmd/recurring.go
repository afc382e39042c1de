package cmd

import (
	"panorama/config"
	"panorama/panos"
	"panorama/report"
	"panorama/rules"

	"github.com/spf13/cobra"
)

var recurringCmd = &cobra.Command{
	Use:   "recurring-profiles",
	Short: "Find security rules repeating the same profiles without a profile group",
	Long: `Look through the security rules of a device group for profile
configurations that are not using a security profile group. Every
configuration seen at least --threshold times (default 10) is reported.

The workbook has two sheets: a review of the findings, and the set commands
that create a profile group for each finding and point its rules at it.

Example:
  panorama recurring-profiles --config config.xml --threshold 5 \
    --rulebase pre-rulebase --devicegroup MyDG`,
	RunE: func(cmd *cobra.Command, args []string) error {
		threshold, _ := cmd.Flags().GetInt("threshold")
		thresholdSet := cmd.Flags().Changed("threshold")
		reportPath, _ := cmd.Flags().GetString("report")

		defaults, err := loadDefaults(cmd)
		if err != nil {
			return err
		}
		opts, err := config.NewRecurringOptions(selectorFlags(cmd), threshold, thresholdSet, reportPath, defaults)
		if err != nil {
			return err
		}
		return runRecurring(opts)
	},
}

func init() {
	recurringCmd.Flags().IntP("threshold", "t", 0, "Minimum number of times a profile configuration is seen to be included; 0 means 10")
	recurringCmd.Flags().String("report", "", "Workbook to create; its directory must exist (default "+config.DefaultReport+")")
}

func runRecurring(opts config.RecurringOptions) error {
	doc, err := panos.LoadDocument(opts.ConfigPath)
	if err != nil {
		return err
	}
	found, err := doc.FindRules(opts.DeviceGroup, opts.Rulebase, panos.PolicySecurity)
	if err != nil {
		return err
	}

	groups := rules.GroupBySignature(found)
	qualifying := groups.Qualifying(opts.Threshold)
	blocks := rules.GroupCommands(opts.DeviceGroup, opts.Rulebase, qualifying)
	if err := report.WriteRecurringWorkbook(opts.Report, qualifying, blocks); err != nil {
		return err
	}

	info("%d rules, %d profile configurations, %d seen at least %d times\n",
		len(found), len(groups.All()), len(qualifying), opts.Threshold)
	for i, block := range blocks {
		info("  %s: %d rules\n", block.GroupName, qualifying[i].Count)
	}
	success("Wrote %s\n", opts.Report)
	return nil
}
