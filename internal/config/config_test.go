package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/OpenTraceLab/vhdlwrap/pkg/vhdl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, vhdl.ModeScan, cfg.ParserMode())
	opts := cfg.WrapperOptions("adder")
	assert.Equal(t, "Behavioral", opts.Architecture)
	assert.Equal(t, "work", opts.Library)
	assert.Equal(t, "adder_types_pkg", opts.PackageName)
	assert.Equal(t, "    ", opts.Indent)
}

func TestSaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg := DefaultConfig()
	cfg.Parser.Mode = "strict"
	cfg.Generator.Indent = 2
	cfg.Flatten = []string{"data=8", "ctl=2x3"}
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, vhdl.ModeStrict, loaded.ParserMode())
	assert.Equal(t, "  ", loaded.WrapperOptions("x").Indent)
}

func TestLoadFileAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"generator": {"architecture": "rtl"}}`), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "rtl", cfg.Generator.Architecture)
	assert.Equal(t, "work", cfg.Generator.Library)
	assert.Equal(t, "_types_pkg", cfg.Generator.PackageSuffix)
	assert.Equal(t, 4, cfg.Generator.Indent)
	assert.Equal(t, "scan", cfg.Parser.Mode)
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{not json`), 0644))
	_, err = LoadFile(bad)
	assert.Error(t, err)

	mode := filepath.Join(dir, "mode.json")
	require.NoError(t, os.WriteFile(mode, []byte(`{"parser": {"mode": "fuzzy"}}`), 0644))
	_, err = LoadFile(mode)
	assert.Error(t, err)
}

func TestLoadSearchOrder(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("APPDATA", "")
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	hidden := DefaultConfig()
	hidden.Generator.Architecture = "hidden"
	require.NoError(t, hidden.Save(filepath.Join(dir, "."+FileName)))

	cfg, err = Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "hidden", cfg.Generator.Architecture)

	visible := DefaultConfig()
	visible.Generator.Architecture = "visible"
	require.NoError(t, visible.Save(filepath.Join(dir, FileName)))

	cfg, err = Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "visible", cfg.Generator.Architecture)
}
