package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/opencampus/campusctl/internal/flagx"
	"github.com/opencampus/campusctl/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "24h"
// or as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL       string         `json:"api_base_url"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
	CredentialDBPath string         `json:"credential_db_path"`
	CredentialTTL    timex.Duration `json:"credential_ttl"`
	ListingCacheTTL  timex.Duration `json:"listing_cache_ttl"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path is resolved from the -c/-config flags; when neither is given, no JSON
// is loaded. Read or unmarshal errors panic (caller should recover if
// desired). Zero-valued JSON fields leave the existing Config value in place.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.CredentialDBPath != "" {
		cfg.CredentialDBPath = jc.CredentialDBPath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.CredentialTTL.Duration != 0 {
		cfg.CredentialTTL = time.Duration(jc.CredentialTTL.Duration)
	}
	if jc.ListingCacheTTL.Duration != 0 {
		cfg.ListingCacheTTL = time.Duration(jc.ListingCacheTTL.Duration)
	}
}
