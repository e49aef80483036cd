package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// GlobalSections are consulted in order. Later sections only fill keys the
// earlier ones left unset.
var GlobalSections = []string{"promptly", "promptly-cli", "pmt"}

var keyAliases = map[string]string{
	"apikey":     EnvAPIKey,
	"api_key":    EnvAPIKey,
	"api-key":    EnvAPIKey,
	"baseurl":    EnvBaseURL,
	"base_url":   EnvBaseURL,
	"base-url":   EnvBaseURL,
	"projectid":  EnvProjectID,
	"project_id": EnvProjectID,
	"project-id": EnvProjectID,
}

// readGlobalConfig returns one map per section present in the file, in
// GlobalSections order. A missing file yields no sections.
func readGlobalConfig(path string) ([]map[string]string, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading global config %s: %w", path, err)
	}

	var sections []map[string]string
	for _, name := range GlobalSections {
		if !v.IsSet(name) {
			continue
		}
		raw := v.GetStringMapString(name)
		section := make(map[string]string, len(raw))
		for key, value := range raw {
			section[normalizeKey(key)] = value
		}
		sections = append(sections, section)
	}
	return sections, nil
}

// viper lowercases keys, so env-style names are restored here.
func normalizeKey(key string) string {
	if alias, ok := keyAliases[strings.ToLower(key)]; ok {
		return alias
	}
	return strings.ToUpper(key)
}
