// cmd/profile.go
package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/asterixkit/getafix/asterix"
	"github.com/asterixkit/getafix/schema"
)

// Profile is the per-stream decoder configuration. ASTERIX frames carry no
// edition tag, so the profile is where a deployment pins the edition used
// for each category.
type Profile struct {
	Editions       map[uint8]string `yaml:"editions"`
	DefaultEdition string           `yaml:"default_edition"`
	PreferLatest   *bool            `yaml:"prefer_latest"`

	UnknownItem   string `yaml:"unknown_item"`   // record | skip | abort
	TrailingBytes string `yaml:"trailing_bytes"` // warn | ignore | error

	MaxFspecBytes      int `yaml:"max_fspec_bytes"`
	MaxVariableParts   int `yaml:"max_variable_parts"`
	MaxErrorsPerRecord int `yaml:"max_errors_per_record"`
}

// LoadProfile reads and checks a stream profile file
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}

	switch p.UnknownItem {
	case "", "record", "skip", "abort":
	default:
		return nil, fmt.Errorf("profile %s: unknown_item must be record, skip or abort", path)
	}
	switch p.TrailingBytes {
	case "", "warn", "ignore", "error":
	default:
		return nil, fmt.Errorf("profile %s: trailing_bytes must be warn, ignore or error", path)
	}

	return &p, nil
}

// Options translates the profile into decoder options
func (p *Profile) Options() []asterix.Option {
	policy := asterix.EditionPolicy{
		PerCategory:  make(map[schema.Category]string, len(p.Editions)),
		Default:      p.DefaultEdition,
		PreferLatest: true,
	}
	for cat, tag := range p.Editions {
		policy.PerCategory[schema.Category(cat)] = tag
	}
	if p.PreferLatest != nil {
		policy.PreferLatest = *p.PreferLatest
	}

	opts := []asterix.Option{asterix.WithEditionPolicy(policy)}

	switch p.UnknownItem {
	case "skip":
		opts = append(opts, asterix.WithUnknownItemPolicy(asterix.UnknownItemSkip))
	case "abort":
		opts = append(opts, asterix.WithUnknownItemPolicy(asterix.UnknownItemAbort))
	}
	switch p.TrailingBytes {
	case "ignore":
		opts = append(opts, asterix.WithTrailingBytesPolicy(asterix.TrailingIgnore))
	case "error":
		opts = append(opts, asterix.WithTrailingBytesPolicy(asterix.TrailingError))
	}

	if p.MaxFspecBytes > 0 {
		opts = append(opts, asterix.WithMaxFspecBytes(p.MaxFspecBytes))
	}
	if p.MaxVariableParts > 0 {
		opts = append(opts, asterix.WithMaxVariableParts(p.MaxVariableParts))
	}
	if p.MaxErrorsPerRecord > 0 {
		opts = append(opts, asterix.WithMaxErrorsPerRecord(p.MaxErrorsPerRecord))
	}

	return opts
}
