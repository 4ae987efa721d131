package config

// Config holds runtime settings for the Mesto CLI.
type Config struct {
	AuthEndpoint     string
	APIEndpoint      string
	APIAuthorization string
	DatabaseDSN      string
	LogLevel         string
}

// LoadDefaults populates c with sensible defaults. The API authorization
// value has no default: it is deployment-specific and must come from the
// environment, the JSON file, or a flag.
func (c *Config) LoadDefaults() {
	c.AuthEndpoint = "https://auth.nomoreparties.co"
	c.APIEndpoint = "https://mesto.nomoreparties.co/v1/cohort-15"
	c.APIAuthorization = ""
	c.DatabaseDSN = "mesto.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
