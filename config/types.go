package config

// Default values used when neither a flag nor the defaults file supplies one
const (
	DefaultOutput    = "decryption-profile-output.txt"
	DefaultThreshold = 10
	DefaultReport    = "output/recurring-sec-profiles.xlsx"
)

// Selector identifies the rules a run operates on
type Selector struct {
	ConfigPath  string // Panorama XML export
	Rulebase    string // pre-rulebase or post-rulebase
	DeviceGroup string
}

// DecryptionOptions holds the settings for the decryption profile emitter
type DecryptionOptions struct {
	Selector
	Profile string
	Output  string
}

// RecurringOptions holds the settings for the recurring profile analyzer
type RecurringOptions struct {
	Selector
	Threshold int
	Report    string
}

// Defaults represents the optional YAML defaults file
type Defaults struct {
	Profile   string `yaml:"profile"`
	Output    string `yaml:"output"`
	Threshold int    `yaml:"threshold"`
	Report    string `yaml:"report"`
}

// MissingArgumentError reports a required CLI input that was not supplied
type MissingArgumentError struct {
	Flag    string
	Message string
}

func (e *MissingArgumentError) Error() string {
	return e.Message
}
