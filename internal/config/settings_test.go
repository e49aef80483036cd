package config

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_ClientSettings(t *testing.T) {
	cases := []struct {
		name    string
		env     map[string]string
		want    ClientSettings
		wantErr string
	}{
		{
			name: "defaults",
			want: ClientSettings{Timeout: 30 * time.Second, StreamTimeout: 5 * time.Minute, MaxAttempts: 3},
		},
		{
			name: "overrides",
			env: map[string]string{
				EnvTimeout:       "45s",
				EnvStreamTimeout: "600",
				EnvMaxAttempts:   "5",
				EnvRateLimit:     "2.5",
			},
			want: ClientSettings{
				Timeout:       45 * time.Second,
				StreamTimeout: 10 * time.Minute,
				MaxAttempts:   5,
				RateLimit:     2.5,
			},
		},
		{
			name:    "invalid_timeout",
			env:     map[string]string{EnvTimeout: "soon"},
			wantErr: EnvTimeout,
		},
		{
			name:    "zero_timeout",
			env:     map[string]string{EnvTimeout: "0s"},
			wantErr: EnvTimeout,
		},
		{
			name:    "zero_attempts",
			env:     map[string]string{EnvMaxAttempts: "0"},
			wantErr: EnvMaxAttempts,
		},
		{
			name:    "negative_rate_limit",
			env:     map[string]string{EnvRateLimit: "-1"},
			wantErr: EnvRateLimit,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewResolver(Sources{
				LookupEnv:        envFunc(tc.env, nil),
				GlobalConfigPath: filepath.Join(t.TempDir(), "config.json"),
			})

			got, err := r.ClientSettings(context.Background())
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
