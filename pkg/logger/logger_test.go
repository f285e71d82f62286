package logger

import (
	"testing"

	"github.com/GlebRadaev/digimon/internal/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name           string
		logLvl         string
		expectedError  bool
		expectedLogLvl zapcore.Level
	}{
		{name: "debug", logLvl: "debug", expectedLogLvl: zapcore.DebugLevel},
		{name: "info", logLvl: "info", expectedLogLvl: zapcore.InfoLevel},
		{name: "warn", logLvl: "warn", expectedLogLvl: zapcore.WarnLevel},
		{name: "error", logLvl: "error", expectedLogLvl: zapcore.ErrorLevel},
		{name: "Invalid log level", logLvl: "verbose", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(&config.Config{LogLvl: tt.logLvl})

			if tt.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.True(t, zap.L().Core().Enabled(tt.expectedLogLvl))
			if tt.expectedLogLvl > zapcore.DebugLevel {
				require.False(t, zap.L().Core().Enabled(tt.expectedLogLvl-1))
			}
		})
	}
}
