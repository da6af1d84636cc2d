package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Len(t, cfg.ModelTypes, 5)
	assert.Equal(t, []string{"Entity", "AggregateRoot", "ValueObject", "Model", "Domain"}, cfg.ModelTypes)
	assert.Equal(t, []string{"Response", "DTO"}, cfg.Markers())

	cfg.ModelTypes[0] = "Changed"
	assert.Equal(t, "Entity", Default().ModelTypes[0])
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FallsBackToDefault(t *testing.T) {
	dir := t.TempDir()

	tests := map[string]string{
		"missing":         filepath.Join(dir, "does-not-exist.json"),
		"malformed":       writeFile(t, dir, "malformed.json", `{"modelTypes": [`),
		"wrong type":      writeFile(t, dir, "wrong.json", `{"modelTypes": "Entity"}`),
		"empty list":      writeFile(t, dir, "empty.json", `{"modelTypes": []}`),
		"empty name":      writeFile(t, dir, "blank.json", `{"modelTypes": [""]}`),
		"no model types":  writeFile(t, dir, "none.json", `{}`),
		"malformed yaml":  writeFile(t, dir, "bad.yaml", "modelTypes: [Entity\n"),
		"empty yaml file": writeFile(t, dir, "empty.yml", ""),
	}

	for name, path := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := Load(path)
			require.Error(t, err)

			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, path, loadErr.Path)
			assert.Equal(t, Default(), cfg)
			assert.Len(t, cfg.ModelTypes, 5)
		})
	}
}

func TestLoad_SchemaErrorIsInvalid(t *testing.T) {
	path := writeFile(t, t.TempDir(), "wrong.json", `{"modelTypes": [1, 2]}`)
	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestLoad_ValidFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, FileName, `{
    // project specific names
    "modelTypes": ["TestModel", "TestEntity", "TestModel"],
    "exemptionMarkers": ["View"],
}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"TestModel", "TestEntity", "TestModel"}, cfg.ModelTypes)
	assert.Equal(t, []string{"View"}, cfg.Markers())
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "arch.yaml", "modelTypes:\n  - Aggregate\n  - Entity\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Aggregate", "Entity"}, cfg.ModelTypes)
	assert.Equal(t, []string{"Response", "DTO"}, cfg.Markers())
}

func TestLocate(t *testing.T) {
	dir := t.TempDir()

	_, ok := Locate(dir)
	assert.False(t, ok)

	nested := writeFile(t, dir, filepath.Join(".config", FileName), `{"modelTypes": ["A"]}`)
	got, ok := Locate(dir)
	require.True(t, ok)
	assert.Equal(t, nested, got)

	top := writeFile(t, dir, FileName, `{"modelTypes": ["B"]}`)
	got, ok = Locate(dir)
	require.True(t, ok)
	assert.Equal(t, top, got)
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "work", FileName)

	created, err := WriteDefault(path)
	require.NoError(t, err)
	assert.True(t, created)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	require.NoError(t, os.WriteFile(path, []byte(`{"modelTypes": ["Mine"]}`), 0o644))
	created, err = WriteDefault(path)
	require.NoError(t, err)
	assert.False(t, created)

	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mine"}, cfg.ModelTypes)
}
