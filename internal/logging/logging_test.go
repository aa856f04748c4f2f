// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/cop-skills/pkg/types"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       types.LogConfig
		wantLevel zapcore.Level
		wantErr   bool
	}{
		{name: "default level", cfg: types.LogConfig{}, wantLevel: zapcore.InfoLevel},
		{name: "debug development", cfg: types.LogConfig{Level: "debug", Development: true}, wantLevel: zapcore.DebugLevel},
		{name: "warn", cfg: types.LogConfig{Level: "warn"}, wantLevel: zapcore.WarnLevel},
		{name: "invalid level", cfg: types.LogConfig{Level: "chatty"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.wantLevel))
			if tt.wantLevel > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.wantLevel-1))
			}
		})
	}
}
