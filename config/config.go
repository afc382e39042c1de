package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// LoadDefaults reads and parses the YAML defaults file.
// An empty path yields zero-valued defaults.
func LoadDefaults(filePath string) (*Defaults, error) {
	var defaults Defaults
	if filePath == "" {
		return &defaults, nil
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read defaults file: %v", err)
	}
	if err := yaml.Unmarshal(data, &defaults); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %v", err)
	}
	return &defaults, nil
}

// Validate checks that every required selector is present.
// Only presence is checked; the rulebase is not matched against known names.
func (s Selector) Validate() error {
	if s.ConfigPath == "" {
		return &MissingArgumentError{Flag: "config", Message: "Panorama XML configuration is required."}
	}
	if s.Rulebase == "" {
		return &MissingArgumentError{Flag: "rulebase", Message: "pre-rulebase or post-rulebase name is required."}
	}
	if s.DeviceGroup == "" {
		return &MissingArgumentError{Flag: "devicegroup", Message: "Device group is required."}
	}
	return nil
}

// NewDecryptionOptions builds validated options for the decryption profile emitter
func NewDecryptionOptions(sel Selector, profile, output string, defaults *Defaults) (DecryptionOptions, error) {
	if defaults == nil {
		defaults = &Defaults{}
	}
	// The profile is reported missing before the rulebase and device group
	profile = firstNonEmpty(profile, defaults.Profile)
	if sel.ConfigPath != "" && profile == "" {
		return DecryptionOptions{}, &MissingArgumentError{Flag: "profile", Message: "Decryption profile name is required."}
	}
	if err := sel.Validate(); err != nil {
		return DecryptionOptions{}, err
	}
	return DecryptionOptions{
		Selector: sel,
		Profile:  profile,
		Output:   firstNonEmpty(output, defaults.Output, DefaultOutput),
	}, nil
}

// NewRecurringOptions builds validated options for the recurring profile analyzer.
// thresholdSet reports whether the threshold was given on the command line;
// only an unset threshold falls back to the defaults file.
func NewRecurringOptions(sel Selector, threshold int, thresholdSet bool, report string, defaults *Defaults) (RecurringOptions, error) {
	if defaults == nil {
		defaults = &Defaults{}
	}
	if err := sel.Validate(); err != nil {
		return RecurringOptions{}, err
	}
	if !thresholdSet {
		threshold = defaults.Threshold
	}
	return RecurringOptions{
		Selector:  sel,
		Threshold: EffectiveThreshold(threshold),
		Report:    firstNonEmpty(report, defaults.Report, DefaultReport),
	}, nil
}

// EffectiveThreshold substitutes the default for a zero threshold, including
// an explicitly supplied 0. Negative values are kept and match every group.
func EffectiveThreshold(threshold int) int {
	if threshold == 0 {
		return DefaultThreshold
	}
	return threshold
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
