// Package keywords provides the reserved word lists used to classify
// tokens and to decide when a dialect must quote an identifier.
//
// Lists are embedded YAML files, one per dialect, each holding one list
// per database version:
//
//	dialect: postgres
//	versions:
//	  "16": [ALL, ANALYSE, ...]
package keywords

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var files embed.FS

// ErrNotFound is returned when no list exists for a dialect or version.
var ErrNotFound = errors.New("keyword list not found")

// resource is the on-disk shape of one dialect file.
type resource struct {
	Dialect  string              `yaml:"dialect"`
	Versions map[string][]string `yaml:"versions"`
}

// Set is an immutable set of upper-case reserved words.
type Set map[string]struct{}

// NewSet builds a Set from words, normalizing them to upper case.
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			s[strings.ToUpper(w)] = struct{}{}
		}
	}
	return s
}

// Contains reports whether word is reserved, ignoring case.
func (s Set) Contains(word string) bool {
	_, ok := s[strings.ToUpper(word)]
	return ok
}

// IsKeyword is Contains under the name the lexer expects.
func (s Set) IsKeyword(word string) bool { return s.Contains(word) }

// Len returns the number of words in the set.
func (s Set) Len() int { return len(s) }

// Words returns the words in the set, sorted.
func (s Set) Words() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Load returns the reserved words of dialect at version. An empty version
// selects the newest list in the file.
func Load(dialect, version string) (Set, error) {
	res, err := read(dialect)
	if err != nil {
		return nil, err
	}
	if version == "" {
		versions := sortedVersions(res)
		if len(versions) == 0 {
			return nil, fmt.Errorf("%w: %s has no versions", ErrNotFound, dialect)
		}
		version = versions[len(versions)-1]
	}
	words, ok := res.Versions[version]
	if !ok {
		return nil, fmt.Errorf("%w: %s version %q", ErrNotFound, dialect, version)
	}
	return NewSet(words...), nil
}

// Versions returns the versions available for dialect, oldest first.
func Versions(dialect string) ([]string, error) {
	res, err := read(dialect)
	if err != nil {
		return nil, err
	}
	return sortedVersions(res), nil
}

// Dialects returns the names of all embedded keyword lists.
func Dialects() []string {
	entries, err := files.ReadDir("data")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

func read(dialect string) (*resource, error) {
	name := strings.ToLower(strings.TrimSpace(dialect))
	data, err := files.ReadFile(path.Join("data", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, dialect)
	}
	var res resource
	if err := yaml.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("failed to decode keywords for %s: %w", dialect, err)
	}
	return &res, nil
}

// sortedVersions orders versions numerically where they parse as dotted
// numbers, falling back to string order.
func sortedVersions(res *resource) []string {
	versions := make([]string, 0, len(res.Versions))
	for v := range res.Versions {
		versions = append(versions, v)
	}
	sort.Slice(versions, func(i, j int) bool {
		return compareVersions(versions[i], versions[j]) < 0
	})
	return versions
}

func compareVersions(a, b string) int {
	as, bs := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		x, y := leadingNumber(as[i]), leadingNumber(bs[i])
		if x != y {
			if x < y {
				return -1
			}
			return 1
		}
		if as[i] != bs[i] {
			return strings.Compare(as[i], bs[i])
		}
	}
	return len(as) - len(bs)
}

// leadingNumber parses the decimal prefix of s ("19c" -> 19).
func leadingNumber(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
	}
	return n
}
