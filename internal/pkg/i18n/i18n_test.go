package i18n

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTranslations(t *testing.T) {
	err := LoadTranslations(filepath.Join("..", "..", "..", "locales"))
	require.NoError(t, err)
	SetDefaultLocale("ro")

	assert.Equal(t, "Please sign in to continue.", Translate("en", "auth.sign_in_required"))
	assert.NotEqual(t, "auth.sign_in_required", Translate("ro", "auth.sign_in_required"))
	assert.Equal(t, "NON_EXISTENT_KEY", Translate("ro", "NON_EXISTENT_KEY"))
}

func TestResolve(t *testing.T) {
	require.NoError(t, Register("en", []byte("MESSAGES:\n  greeting: \"Hello\"\n")))
	require.NoError(t, Register("ro", []byte("MESSAGES:\n  greeting: \"Salut\"\n  only_ro: \"Doar\"\n")))
	SetDefaultLocale("ro")

	assert.Equal(t, "en", Resolve("en-GB,en;q=0.9"))
	assert.Equal(t, "en", Resolve("de-DE, en;q=0.5"))
	assert.Equal(t, "ro", Resolve("fr"))
	assert.Equal(t, "ro", Resolve(""))
	assert.Equal(t, "ro", Resolve(";;;=="))

	assert.Equal(t, "Doar", Translate("en", "only_ro"), "falls back to the default locale")
	assert.Equal(t, "Hello", TranslateOr("en", "missing", "greeting"))
}

func TestResolve_Weights(t *testing.T) {
	require.NoError(t, Register("en", []byte("MESSAGES:\n  greeting: \"Hello\"\n")))
	require.NoError(t, Register("ro", []byte("MESSAGES:\n  greeting: \"Salut\"\n")))
	SetDefaultLocale("ro")

	cases := []struct {
		header string
		want   string
	}{
		{"en;q=0.1, ro;q=0.9", "ro"},
		{"ro;q=0.2, en-US;q=0.8", "en"},
		{"fr, en;q=0.3, ro;q=0.1", "en"},
		{"ro-RO", "ro"},
		{"en;q=0, de", "ro"},
	}

	for _, tc := range cases {
		t.Run(tc.header, func(t *testing.T) {
			assert.Equal(t, tc.want, Resolve(tc.header))
		})
	}
}

func TestResolve_DefaultFollowsSetting(t *testing.T) {
	require.NoError(t, Register("en", []byte("MESSAGES:\n  greeting: \"Hello\"\n")))
	require.NoError(t, Register("ro", []byte("MESSAGES:\n  greeting: \"Salut\"\n")))
	t.Cleanup(func() { SetDefaultLocale("ro") })

	SetDefaultLocale("en")

	assert.Equal(t, "en", Resolve("it"))
	assert.Equal(t, "ro", Resolve("ro"))
}
