package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLocale(t *testing.T, dir, lang, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, lang+".json"), []byte(body), 0o644))
}

func newTestBundle(t *testing.T) *Bundle {
	t.Helper()
	dir := t.TempDir()
	writeLocale(t, dir, "en", `{"nav.home":"Home","cta.enroll":"Enroll"}`)
	writeLocale(t, dir, "bn", `{"nav.home":"হোম"}`)
	b, err := Load(dir, "en", []string{"en", "bn"})
	require.NoError(t, err)
	return b
}

func TestLoadRequiresFallbackLocale(t *testing.T) {
	dir := t.TempDir()
	writeLocale(t, dir, "bn", `{}`)
	_, err := Load(dir, "en", []string{"en", "bn"})
	require.Error(t, err)
}

func TestLoadToleratesMissingSecondaryLocale(t *testing.T) {
	dir := t.TempDir()
	writeLocale(t, dir, "en", `{"nav.home":"Home"}`)
	b, err := Load(dir, "en", []string{"en", "bn"})
	require.NoError(t, err)
	assert.Equal(t, "Home", b.T("bn", "nav.home"))
}

func TestT(t *testing.T) {
	b := newTestBundle(t)
	assert.Equal(t, "হোম", b.T("bn", "nav.home"))
	assert.Equal(t, "Home", b.T("en", "nav.home"))
	// key missing in bn falls back to en
	assert.Equal(t, "Enroll", b.T("bn", "cta.enroll"))
	// key missing everywhere returns the key
	assert.Equal(t, "cta.missing", b.T("bn", "cta.missing"))
}

func TestSupportedAndFallback(t *testing.T) {
	b := newTestBundle(t)
	assert.Equal(t, []string{"en", "bn"}, b.Supported())
	assert.Equal(t, "en", b.Fallback())
	assert.True(t, b.IsSupported("BN"))
	assert.False(t, b.IsSupported("fr"))
}

func TestResolve(t *testing.T) {
	b := newTestBundle(t)

	assert.Equal(t, "bn", b.Resolve("bn-BD,bn;q=0.9,en;q=0.8"))
	assert.Equal(t, "en", b.Resolve("bn;q=0.8, en;q=0.9"), "higher q wins")
	assert.Equal(t, "en", b.Resolve("fr-FR,fr;q=0.9"))
	assert.Equal(t, "en", b.Resolve(""))
	assert.Equal(t, "en", b.Resolve("not a header"))
}
