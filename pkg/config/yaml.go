package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML format.
func (c *LinterConfig) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// ParseYAML parses a LinterConfig from YAML bytes. Per spec §1's
// non-goal ("configuration file resolution walk" is out of scope), this
// deliberately does not look at the filesystem — callers read the bytes
// themselves (directly, or via the out-of-core CLI's file discovery).
func ParseYAML(data []byte) (*LinterConfig, error) {
	cfg := &LinterConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if cfg.Rules == nil {
		cfg.Rules = make(map[string]any)
	}
	if cfg.Format == "" {
		cfg.Format = FormatText
	}
	if cfg.RuleFormat == "" {
		cfg.RuleFormat = RuleFormatName
	}

	return cfg, nil
}
