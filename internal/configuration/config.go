package configuration

import "time"

const (
	// DefaultConfigPath is used when no --config flag is given.
	DefaultConfigPath = "checkconnect.json"

	// DefaultTimeout applies when the config omits "timeout".
	DefaultTimeout = 5 * time.Second
)

// AppConfig holds flag-level settings shared by all commands.
type AppConfig struct {
	ConfigFile string
	LogLevel   string
	LogFile    string
}

var App AppConfig

// Config is the parsed connectivity-check configuration. It is loaded once
// at startup and never mutated afterwards.
type Config struct {
	Websites   []string      `json:"websites"`
	NTPServers []string      `json:"ntp_servers"`
	Timeout    time.Duration `json:"-"`

	// TimeoutSeconds mirrors Timeout for JSON round-tripping.
	TimeoutSeconds float64 `json:"timeout"`
}

// TargetCount is the number of probe results a run of this config produces.
func (c Config) TargetCount() int {
	return len(c.Websites) + len(c.NTPServers)
}
