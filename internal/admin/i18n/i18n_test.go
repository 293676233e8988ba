package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTResolvesLocales(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Close", T("en", "history.alert.close"))
	require.Equal(t, "閉じる", T("ja", "history.alert.close"))
}

func TestTFallsBackToEnglish(t *testing.T) {
	t.Parallel()

	require.Equal(t, T("en", "history.title"), T("fr", "history.title"))
}

func TestTMissingKeyStaysVisible(t *testing.T) {
	t.Parallel()

	require.Equal(t, "history.no.such.key", T("en", "history.no.such.key"))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"ja", "ja"},
		{"ja-JP", "ja"},
		{"JA_jp", "ja"},
		{"en-US", "en"},
		{"de", "en"},
		{"", "en"},
		{"  ja  ", "ja"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, Normalize(tc.in), "Normalize(%q)", tc.in)
	}
}
