// Package config loads gridmsg.toml documents: the grid settings a render
// needs plus the notices to replay into its registry.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"

	"gridmsg/internal/notice"
)

// FileName is the config file discovered by Find.
const FileName = "gridmsg.toml"

// Theme names the CSS framework the host page uses.
type Theme uint8

const (
	ThemePlain Theme = iota
	ThemeJQueryUI
)

func (t Theme) String() string {
	if t == ThemeJQueryUI {
		return "jquery-ui"
	}
	return "plain"
}

// ParseTheme converts a theme name to Theme.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plain":
		return ThemePlain, nil
	case "jquery-ui", "jqueryui":
		return ThemeJQueryUI, nil
	default:
		return ThemePlain, fmt.Errorf("invalid theme: %q (expected: plain|jquery-ui)", s)
	}
}

// Grid is the validated grid section.
type Grid struct {
	ID           string
	Width        int
	Theme        Theme
	DefaultStyle notice.Style
	Locale       string
	Dedupe       bool // drop repeated notices while replaying
}

// Notice is one configured notice.
type Notice struct {
	Text     string
	Critical bool
	Style    *notice.Style // nil: grid default
	Row      string
	Column   string
}

// Location returns the composite key, or "" when the notice has no row.
func (n Notice) Location() string {
	if n.Row == "" && n.Column == "" {
		return ""
	}
	return notice.LocationKey(n.Row, n.Column)
}

// Config is a loaded gridmsg.toml.
type Config struct {
	Path    string
	Grid    Grid
	Labels  map[string]string
	Notices []Notice
}

type fileConfig struct {
	Grid    gridSection       `toml:"grid"`
	Labels  map[string]string `toml:"labels"`
	Notices []noticeSection   `toml:"notice"`
}

type gridSection struct {
	ID           string `toml:"id"`
	Width        int64  `toml:"width"`
	Theme        string `toml:"theme"`
	DefaultStyle string `toml:"default_style"`
	Locale       string `toml:"locale"`
	Dedupe       bool   `toml:"dedupe"`
}

type noticeSection struct {
	Text     string `toml:"text"`
	Critical bool   `toml:"critical"`
	Style    string `toml:"style"`
	Row      string `toml:"row"`
	Column   string `toml:"column"`
}

// Find walks from startDir up to the filesystem root looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads and validates the config at path.
func Load(path string) (*Config, error) {
	var fc fileConfig
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	cfg, err := build(path, meta, fc)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Str("grid", cfg.Grid.ID).Int("notices", len(cfg.Notices)).Msg("config loaded")
	return cfg, nil
}

// Parse decodes a config from TOML text; name is used in error messages.
func Parse(name, data string) (*Config, error) {
	var fc fileConfig
	meta, err := toml.Decode(data, &fc)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", name, err)
	}
	return build(name, meta, fc)
}

func build(path string, meta toml.MetaData, fc fileConfig) (*Config, error) {
	if !meta.IsDefined("grid") {
		return nil, fmt.Errorf("%s: missing [grid]", path)
	}
	if !meta.IsDefined("grid", "id") || strings.TrimSpace(fc.Grid.ID) == "" {
		return nil, fmt.Errorf("%s: missing [grid].id", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		log.Warn().Str("path", path).Str("key", undecoded[0].String()).Msg("unknown config key")
	}

	width, err := safecast.Conv[int](fc.Grid.Width)
	if err != nil || width < 0 {
		return nil, fmt.Errorf("%s: [grid].width out of range: %d", path, fc.Grid.Width)
	}

	theme, err := ParseTheme(fc.Grid.Theme)
	if err != nil {
		return nil, fmt.Errorf("%s: [grid].theme: %w", path, err)
	}

	defaultStyle := notice.StyleGrid
	if meta.IsDefined("grid", "default_style") {
		defaultStyle, err = notice.ParseStyle(fc.Grid.DefaultStyle)
		if err != nil {
			return nil, fmt.Errorf("%s: [grid].default_style: %w", path, err)
		}
	}

	cfg := &Config{
		Path: path,
		Grid: Grid{
			ID:           strings.TrimSpace(fc.Grid.ID),
			Width:        width,
			Theme:        theme,
			DefaultStyle: defaultStyle,
			Locale:       fc.Grid.Locale,
			Dedupe:       fc.Grid.Dedupe,
		},
		Labels:  fc.Labels,
		Notices: make([]Notice, 0, len(fc.Notices)),
	}

	for i, ns := range fc.Notices {
		n := Notice{
			Text:     ns.Text,
			Critical: ns.Critical,
			Row:      ns.Row,
			Column:   ns.Column,
		}
		if ns.Style != "" {
			style, err := notice.ParseStyle(ns.Style)
			if err != nil {
				return nil, fmt.Errorf("%s: notice %d: %w", path, i+1, err)
			}
			n.Style = &style
		}
		cfg.Notices = append(cfg.Notices, n)
	}
	return cfg, nil
}
