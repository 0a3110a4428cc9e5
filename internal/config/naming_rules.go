package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/content-planner/internal/refine"
)

// namingRulesFile is the YAML shape of a site's naming-rule table.
type namingRulesFile struct {
	Rules []refine.NamingRule `yaml:"rules"`
}

// LoadNamingRules reads the site-specific title-suffix table from a
// YAML file. An empty path means no rules, which is not an error.
func LoadNamingRules(path string) ([]refine.NamingRule, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read naming rules %s: %w", path, err)
	}

	var file namingRulesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse naming rules %s: %w", path, err)
	}

	return file.Rules, nil
}
