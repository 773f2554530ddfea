package logger

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	for in, want := range map[string]zerolog.Level{
		"debug": zerolog.DebugLevel,
		"info":  zerolog.InfoLevel,
		"INFO":  zerolog.InfoLevel,
		"":      zerolog.InfoLevel,
		"warn":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
	} {
		l, err := New(in, true, "")
		require.NoError(t, err, in)
		require.Equal(t, want, l.GetLevel(), in)
	}

	_, err := New("verbose", true, "")
	require.ErrorContains(t, err, "unknown log level: verbose")
}

func TestNewFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l, err := New("info", true, path)
	require.NoError(t, err)

	l.Info().Str("component", "test").Msg("hello")
	require.FileExists(t, path)
}
