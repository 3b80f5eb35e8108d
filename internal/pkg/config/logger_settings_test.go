//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *LoggerSettings
		expectedError bool
	}{
		{
			name: "valid console settings",
			settings: &LoggerSettings{
				LogLevel: LogLevelInfo,
				LogType:  LogTypeConsole,
			},
			expectedError: false,
		},
		{
			name: "valid file settings",
			settings: &LoggerSettings{
				LogLevel:   LogLevelDebug,
				LogType:    LogTypeFile,
				FilePath:   "/var/log/mentor-match.log",
				MaxSize:    10,
				MaxBackups: 3,
				MaxAge:     30,
			},
			expectedError: false,
		},
		{
			name: "unknown level",
			settings: &LoggerSettings{
				LogLevel: "verbose",
				LogType:  LogTypeConsole,
			},
			expectedError: true,
		},
		{
			name: "file logger without path",
			settings: &LoggerSettings{
				LogLevel:   LogLevelInfo,
				LogType:    LogTypeFile,
				MaxSize:    10,
				MaxBackups: 3,
				MaxAge:     30,
			},
			expectedError: true,
		},
		{
			name: "file logger with bad rotation",
			settings: &LoggerSettings{
				LogLevel:   LogLevelInfo,
				LogType:    LogTypeFile,
				FilePath:   "/var/log/mentor-match.log",
				MaxSize:    500,
				MaxBackups: 3,
				MaxAge:     30,
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAuthSettingsValidation(t *testing.T) {
	disabled := &AuthSettings{Enabled: false}
	require.NoError(t, disabled.Validate())

	shortSecret := &AuthSettings{Enabled: true, Secret: "too-short"}
	require.Error(t, shortSecret.Validate())

	enabled := &AuthSettings{
		Enabled: true,
		Secret:  "0123456789abcdef0123456789abcdef",
		Issuer:  "underdog-devs",
	}
	require.NoError(t, enabled.Validate())
}
