package checker

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/hakanyildizphd/vplc/internal/apperr"
)

// Settings are the deployment-chosen display knobs of a checker variant.
// The original checkers baked these in per build; here they come from an
// optional YAML file and environment overrides, with per-variant defaults.
type Settings struct {
	ShowDiff   bool `yaml:"show_diff"`
	ShowOutput bool `yaml:"show_output"`
	Lookahead  int  `yaml:"lookahead"`
}

// DefaultSettings returns the settings a variant ships with: full
// diagnostics and its own lookahead window.
func DefaultSettings(lookahead int) Settings {
	return Settings{
		ShowDiff:   true,
		ShowOutput: true,
		Lookahead:  lookahead,
	}
}

// LoadSettings reads a settings YAML file. Keys absent from the file keep
// the variant defaults.
func LoadSettings(path string, defaults Settings) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings file: %w", err)
	}
	return ParseSettings(data, defaults)
}

// ParseSettings parses settings YAML on top of the given defaults.
func ParseSettings(data []byte, defaults Settings) (Settings, error) {
	s := defaults
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings YAML: %w", err)
	}
	if err := s.validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// ApplyEnv overlays CHECKER_SHOW_DIFF, CHECKER_SHOW_OUTPUT, and
// CHECKER_LOOKAHEAD when set. A malformed value is a usage error: it
// means the grading environment, not the submission, is misconfigured.
func (s *Settings) ApplyEnv() error {
	if v, ok := os.LookupEnv("CHECKER_SHOW_DIFF"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return apperr.NewUsage(fmt.Sprintf("CHECKER_SHOW_DIFF must be a boolean, got %q", v))
		}
		s.ShowDiff = b
	}
	if v, ok := os.LookupEnv("CHECKER_SHOW_OUTPUT"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return apperr.NewUsage(fmt.Sprintf("CHECKER_SHOW_OUTPUT must be a boolean, got %q", v))
		}
		s.ShowOutput = b
	}
	if v, ok := os.LookupEnv("CHECKER_LOOKAHEAD"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return apperr.NewUsage(fmt.Sprintf("CHECKER_LOOKAHEAD must be an integer, got %q", v))
		}
		s.Lookahead = n
	}
	return s.validate()
}

func (s *Settings) validate() error {
	if s.Lookahead < 0 {
		return fmt.Errorf("lookahead must be non-negative, got %d", s.Lookahead)
	}
	return nil
}
