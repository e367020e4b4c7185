package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridmsg/internal/notice"
)

const sample = `
[grid]
id = "g1"
width = 300
theme = "jquery-ui"
default_style = "plain"
locale = "nb"
dedupe = true

[labels]
SystemMessage = "Messages"

[[notice]]
text = "Name required"
style = "grid"
row = "1"
column = "2"

[[notice]]
text = "DB timeout"
critical = true
`

func TestParse(t *testing.T) {
	cfg, err := Parse("sample.toml", sample)
	require.NoError(t, err)

	assert.Equal(t, "g1", cfg.Grid.ID)
	assert.Equal(t, 300, cfg.Grid.Width)
	assert.Equal(t, ThemeJQueryUI, cfg.Grid.Theme)
	assert.Equal(t, notice.StylePlain, cfg.Grid.DefaultStyle)
	assert.Equal(t, "nb", cfg.Grid.Locale)
	assert.True(t, cfg.Grid.Dedupe)
	assert.Equal(t, "Messages", cfg.Labels["SystemMessage"])

	require.Len(t, cfg.Notices, 2)
	first := cfg.Notices[0]
	require.NotNil(t, first.Style)
	assert.Equal(t, notice.StyleGrid, *first.Style)
	assert.Equal(t, "1;2", first.Location())

	second := cfg.Notices[1]
	assert.True(t, second.Critical)
	assert.Nil(t, second.Style)
	assert.Equal(t, "", second.Location())
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse("min.toml", "[grid]\nid = \"orders\"\n")
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Grid.Width)
	assert.Equal(t, ThemePlain, cfg.Grid.Theme)
	assert.Equal(t, notice.StyleGrid, cfg.Grid.DefaultStyle)
	assert.Empty(t, cfg.Notices)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"missing grid", "[labels]\nx = \"y\"\n", "missing [grid]"},
		{"missing id", "[grid]\nwidth = 10\n", "missing [grid].id"},
		{"blank id", "[grid]\nid = \"  \"\n", "missing [grid].id"},
		{"negative width", "[grid]\nid = \"g\"\nwidth = -1\n", "width out of range"},
		{"bad theme", "[grid]\nid = \"g\"\ntheme = \"bootstrap\"\n", "invalid theme"},
		{"bad default style", "[grid]\nid = \"g\"\ndefault_style = \"x\"\n", "default_style"},
		{"bad notice style", "[grid]\nid = \"g\"\n[[notice]]\ntext = \"a\"\nstyle = \"x\"\n", "notice 1"},
		{"bad toml", "[grid\n", "failed to parse TOML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("bad.toml", tt.data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), "bad.toml")
		})
	}
}

func TestLoadAndFind(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	path := filepath.Join(root, FileName)
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	found, ok, err := Find(nested)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, path, found)

	cfg, err := Load(found)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path)
	assert.Len(t, cfg.Notices, 2)

	_, err = Load(filepath.Join(root, "missing.toml"))
	assert.Error(t, err)
}

func TestParseTheme(t *testing.T) {
	for in, want := range map[string]Theme{"": ThemePlain, "Plain": ThemePlain, "jqueryui": ThemeJQueryUI} {
		got, err := ParseTheme(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	assert.Equal(t, "jquery-ui", ThemeJQueryUI.String())
}
