package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv(EnvLoggingLevel, "")
	t.Setenv(EnvLoggingFormat, "")
	t.Setenv(EnvTraceEndpoint, "")
	t.Setenv(EnvServiceName, "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvLoggingLevel, "debug")
	t.Setenv(EnvLoggingFormat, "json")
	t.Setenv(EnvTraceEndpoint, "localhost:4318")
	t.Setenv(EnvServiceName, "wrapper")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		LogLevel:      "debug",
		LogFormat:     "json",
		TraceEndpoint: "localhost:4318",
		ServiceName:   "wrapper",
	}, cfg)
}

func TestFromEnvInvalid(t *testing.T) {
	t.Setenv(EnvLoggingLevel, "loud")

	_, err := FromEnv()
	require.ErrorIs(t, err, ErrInvalidLogLevel)
}

func TestFromBytes(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    Config
		wantErr error
	}{
		{
			name:    "empty",
			data:    "",
			wantErr: ErrCfgBytesEmpty,
		},
		{
			name: "partial keeps defaults",
			data: `{"logLevel":"info"}`,
			want: Config{LogLevel: "info", LogFormat: "text", ServiceName: "fna"},
		},
		{
			name:    "invalid format",
			data:    `{"logFormat":"xml"}`,
			wantErr: ErrInvalidLogFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := FromBytes([]byte(tt.data))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}

	_, err := FromBytes([]byte(`{`))
	require.Error(t, err)
}

func TestApply(t *testing.T) {
	l := logrus.New()

	require.NoError(t, Config{LogLevel: "error", LogFormat: "JSON"}.Apply(l))
	assert.Equal(t, logrus.ErrorLevel, l.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)

	require.ErrorIs(t, Config{LogLevel: "error", LogFormat: "xml"}.Apply(l), ErrInvalidLogFormat)
}
