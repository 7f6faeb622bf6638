package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Cards = []Card{
		{Name: "Nubank Roxinho", ImportModel: "nubank"},
		{Name: "Conta BB", ImportModel: "bb"},
	}

	path := filepath.Join(t.TempDir(), "statement-extractor.yaml")
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Server.Addr, got.Server.Addr)
	assert.Equal(t, cfg.Log.Level, got.Log.Level)
	require.Len(t, got.Cards, 2)
	assert.Equal(t, "Nubank Roxinho", got.Cards[0].Name)
	assert.Equal(t, "bb", got.Cards[1].ImportModel)
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 32, cfg.Server.MaxUploadMiB)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Cards)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoad_UnknownModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := "cards:\n  - name: Cartao\n    import_model: banco-x\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown import model")
}

func TestLoad_DuplicateCard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := "cards:\n  - name: Visa\n    import_model: itau\n  - name: visa\n    import_model: c6\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate card")
}

func TestLoadOrDefault_Missing(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestModelForCard(t *testing.T) {
	cfg := Default()
	cfg.Cards = []Card{{Name: "Itau Click", ImportModel: "itau"}}

	model, ok := cfg.ModelForCard("itau click")
	assert.True(t, ok)
	assert.Equal(t, "itau", model)

	_, ok = cfg.ModelForCard("other")
	assert.False(t, ok)
}
