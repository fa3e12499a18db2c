package duckdb

import (
	"maps"
	"slices"
	"strings"
)

// Params holds DuckDB-specific configuration.
// Parsed from adapter.Config.Options.
type Params struct {
	// Extensions to install and load (e.g., "httpfs", "json"), given as the
	// comma-separated "extensions" option.
	Extensions []string

	// Settings to apply at session level (e.g., memory_limit, threads).
	// Every option other than "extensions" is a setting.
	Settings map[string]string
}

// ParseParams splits connection options into extensions and settings.
func ParseParams(opts map[string]string) *Params {
	p := &Params{}
	for k, v := range opts {
		if k == "extensions" {
			for _, ext := range strings.Split(v, ",") {
				if ext = strings.TrimSpace(ext); ext != "" {
					p.Extensions = append(p.Extensions, ext)
				}
			}
			continue
		}
		if p.Settings == nil {
			p.Settings = make(map[string]string)
		}
		p.Settings[k] = v
	}
	return p
}

// SettingNames returns the setting names in a stable order.
func (p *Params) SettingNames() []string {
	return slices.Sorted(maps.Keys(p.Settings))
}
