package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/mesto-cli/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Only keys
// present in the file overlay the runtime Config.
type jsonConfig struct {
	AuthEndpoint     *string `json:"auth_endpoint"`
	APIEndpoint      *string `json:"api_endpoint"`
	APIAuthorization *string `json:"api_authorization"`
	DatabaseDSN      *string `json:"database_dsn"`
	LogLevel         *string `json:"log_level"`
}

// parseJSON overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when absent, nothing is loaded.
// Read or unmarshal errors panic: a config file that was explicitly named
// must be usable.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.AuthEndpoint != nil {
		cfg.AuthEndpoint = *jc.AuthEndpoint
	}
	if jc.APIEndpoint != nil {
		cfg.APIEndpoint = *jc.APIEndpoint
	}
	if jc.APIAuthorization != nil {
		cfg.APIAuthorization = *jc.APIAuthorization
	}
	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
