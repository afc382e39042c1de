package cmd

import (
	"panorama/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Initialize colored output
var (
	info    = color.New(color.FgBlue).PrintfFunc()
	success = color.New(color.FgGreen).PrintfFunc()
)

var rootCmd = &cobra.Command{
	Use:   "panorama",
	Short: "Generate set commands from a Panorama configuration export",
	Long: `Tools that read an exported Panorama XML configuration, select the
rules of one device group and rulebase, and produce set commands for them.

decryption-profile assigns a decryption profile to every decryption rule.
recurring-profiles finds security rules that repeat the same profiles and
proposes a profile group for them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Source Panorama XML configuration")
	rootCmd.PersistentFlags().StringP("rulebase", "r", "", "pre-rulebase or post-rulebase")
	rootCmd.PersistentFlags().StringP("devicegroup", "d", "", "Device group to configure")
	rootCmd.PersistentFlags().String("defaults", "", "YAML file with default values for optional flags")

	// Add commands to root
	rootCmd.AddCommand(decryptionCmd)
	rootCmd.AddCommand(recurringCmd)
	rootCmd.AddCommand(printCmd)
}

func selectorFlags(cmd *cobra.Command) config.Selector {
	configPath, _ := cmd.Flags().GetString("config")
	rulebase, _ := cmd.Flags().GetString("rulebase")
	deviceGroup, _ := cmd.Flags().GetString("devicegroup")
	return config.Selector{
		ConfigPath:  configPath,
		Rulebase:    rulebase,
		DeviceGroup: deviceGroup,
	}
}

func loadDefaults(cmd *cobra.Command) (*config.Defaults, error) {
	path, _ := cmd.Flags().GetString("defaults")
	return config.LoadDefaults(path)
}
