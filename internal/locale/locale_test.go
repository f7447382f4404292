package locale

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranslateKnownKey(t *testing.T) {
	l := New("en")
	require.Equal(t, "Pong!", l.Translate("core", "pong"))
}

func TestUnknownLocaleFallsBackToEnglish(t *testing.T) {
	l := New("xx")
	require.Equal(t, "Pong!", l.Translate("core", "pong"))
}

func TestUnknownKeyIsEmpty(t *testing.T) {
	l := New("en")
	require.Equal(t, "", l.Translate("core", "nope"))
	require.Equal(t, "", l.Translate("nope", "pong"))
}

func TestRegisterBundleExtendsLanguage(t *testing.T) {
	RegisterBundle("de", "core", map[string]string{"pong": "Pong, ja!"})
	l := New("de")
	require.Equal(t, "Pong, ja!", l.Translate("core", "pong"))
	// Keys missing from the new bundle still resolve through English.
	require.Equal(t, "Missing arguments", l.Translate("command", "missing_args"))
}
