package data

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed rulesets/*.yaml
var embedded embed.FS

// ErrRulesetNotFound is returned when no data directory nor the embedded
// defaults hold the requested ruleset.
var ErrRulesetNotFound = errors.New("ruleset not found")

// Loader handles reading rulesets from the data directories, falling back to
// the rulesets shipped with the binary.
type Loader struct {
	dataDirs []string
}

// NewLoader initializes a new Loader with the given data directory fallback hierarchy
func NewLoader(dataDirs []string) *Loader {
	return &Loader{
		dataDirs: dataDirs,
	}
}

// LoadRuleset resolves ref as a YAML file path when it looks like one, or else
// as a ruleset name searched through the data directories and then the
// embedded defaults.
func (l *Loader) LoadRuleset(ref string) (*Ruleset, error) {
	if ref == "" {
		ref = "standard"
	}

	if isPath(ref) {
		return l.loadFile(ref)
	}

	name := strings.ToLower(ref)
	for _, dir := range l.dataDirs {
		for _, path := range []string{
			filepath.Join(dir, "rulesets", name+".yaml"),
			filepath.Join(dir, name+".yaml"),
		} {
			if _, err := os.Stat(path); err == nil {
				return l.loadFile(path)
			}
		}
	}

	f, err := embedded.Open("rulesets/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRulesetNotFound, ref)
	}
	defer f.Close()

	log.Trace().Str("ruleset", name).Msg("using embedded ruleset")
	return decode(f, name)
}

// Names lists the rulesets available from the data directories and the
// embedded defaults, without duplicates.
func (l *Loader) Names() []string {
	seen := map[string]bool{}
	var names []string
	add := func(file string) {
		name := strings.TrimSuffix(filepath.Base(file), ".yaml")
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	for _, dir := range l.dataDirs {
		matches, _ := filepath.Glob(filepath.Join(dir, "rulesets", "*.yaml"))
		for _, m := range matches {
			add(m)
		}
	}

	entries, _ := fs.ReadDir(embedded, "rulesets")
	for _, e := range entries {
		add(e.Name())
	}
	return names
}

func (l *Loader) loadFile(path string) (*Ruleset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRulesetNotFound, path)
		}
		return nil, fmt.Errorf("failed to open ruleset %s: %w", path, err)
	}
	defer f.Close()

	log.Trace().Str("path", path).Msg("loading ruleset")
	return decode(f, path)
}

func decode(r io.Reader, ref string) (*Ruleset, error) {
	var rs Ruleset
	if err := yaml.NewDecoder(r).Decode(&rs); err != nil {
		return nil, fmt.Errorf("failed to decode ruleset %s: %w", ref, err)
	}
	if rs.Name == "" {
		rs.Name = strings.TrimSuffix(filepath.Base(ref), ".yaml")
	}
	return &rs, nil
}

func isPath(ref string) bool {
	return strings.HasSuffix(ref, ".yaml") || strings.HasSuffix(ref, ".yml") || strings.ContainsRune(ref, filepath.Separator)
}
