package logs

import (
	"context"
	"log/slog"
	"testing"

	"bazaar/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"Warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tc := range cases {
		level, err := parseLogLevel(tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, level)
	}

	_, err := parseLogLevel("verbose")
	require.Error(t, err)
}

func TestNew_TagsServiceIdentity(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "bazaar"
	cfg.Env.Env = "test"
	cfg.Env.Log.Level = "info"
	cfg.Env.Log.Pretty = true

	logger, err := New(Params{Config: cfg})
	require.NoError(t, err)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
}
