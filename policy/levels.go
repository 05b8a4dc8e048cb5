package policy

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPolicyLogPath is used when the levels file does not configure
// a policy log location.
const DefaultPolicyLogPath = "logs/policy.jsonl"

// maxInheritDepth guards against inheritance cycles between levels.
const maxInheritDepth = 8

// LevelEntry is one allowed-command entry for a level: either a plain
// command name, or an inheritance reference to another level.
type LevelEntry struct {
	Command string
	Inherit string
}

// UnmarshalYAML accepts both `- ls` and `- {inherit: READ_ONLY}` forms.
func (e *LevelEntry) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		e.Command = value.Value
		return nil
	}
	var aux struct {
		Inherit string `yaml:"inherit"`
	}
	if err := value.Decode(&aux); err != nil {
		return fmt.Errorf("invalid allowed_commands entry: %w", err)
	}
	e.Inherit = aux.Inherit
	return nil
}

// LevelsLogging configures where gate decisions are logged.
type LevelsLogging struct {
	PolicyLog string `yaml:"policy_log"`
}

// Levels is the parsed configs/policy.yaml: the active level, the
// allowed commands and hosts per level, and logging configuration.
type Levels struct {
	Level           string                  `yaml:"level"`
	AllowedCommands map[string][]LevelEntry `yaml:"allowed_commands"`
	AllowedHosts    map[string][]string     `yaml:"allowed_hosts"`
	Logging         *LevelsLogging          `yaml:"logging"`
}

// LoadLevels parses a policy levels file.
func LoadLevels(path string) (*Levels, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var levels Levels
	if err := yaml.Unmarshal(contents, &levels); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &levels, nil
}

// LoadLevelsFromRepo loads configs/policy.yaml under cwd. A missing
// file yields (nil, nil): levels are optional.
func LoadLevelsFromRepo(cwd string) (*Levels, error) {
	levels, err := LoadLevels(filepath.Join(cwd, "configs", "policy.yaml"))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return levels, err
}

// ActiveLevel returns the configured level name, or "" when unset.
func (l *Levels) ActiveLevel() string {
	if l == nil {
		return ""
	}
	return l.Level
}

// AllowedForLevel resolves the allowed command set for a level,
// following inherit references up to a bounded depth.
func (l *Levels) AllowedForLevel(level string) map[string]struct{} {
	out := make(map[string]struct{})
	l.collectForLevel(level, out, 0)
	return out
}

func (l *Levels) collectForLevel(level string, out map[string]struct{}, depth int) {
	if l == nil || depth > maxInheritDepth {
		return
	}
	for _, entry := range l.AllowedCommands[level] {
		if entry.Inherit != "" {
			l.collectForLevel(entry.Inherit, out, depth+1)
			continue
		}
		if entry.Command != "" {
			out[entry.Command] = struct{}{}
		}
	}
}

// PolicyLogPath resolves the policy log location relative to cwd.
func (l *Levels) PolicyLogPath(cwd string) string {
	rel := DefaultPolicyLogPath
	if l != nil && l.Logging != nil && l.Logging.PolicyLog != "" {
		rel = l.Logging.PolicyLog
	}
	return filepath.Join(cwd, rel)
}

// AppendPolicyLog appends one JSON line describing a gate event to the
// policy log, creating parent directories as needed.
func AppendPolicyLog(path string, event map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	line, err := json.Marshal(event)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.Write(append(line, '\n')); err != nil {
		return err
	}
	return nil
}
