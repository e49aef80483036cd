// Package config resolves Promptly credentials and client settings from the
// process environment, a .env file, the per-user global config file and the
// OS keychain.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jbeshir/promptly-mcp/internal/apierr"
	"github.com/jbeshir/promptly-mcp/internal/domain"
	"github.com/joho/godotenv"
)

const (
	EnvAPIKey        = "PROMPTLY_API_KEY"
	EnvBaseURL       = "PROMPTLY_BASE_URL"
	EnvProjectID     = "PROMPTLY_PROJECT_ID"
	EnvConfigPath    = "PROMPTLY_CONFIG"
	EnvTimeout       = "PROMPTLY_TIMEOUT"
	EnvStreamTimeout = "PROMPTLY_STREAM_TIMEOUT"
	EnvMaxAttempts   = "PROMPTLY_MAX_ATTEMPTS"
	EnvRateLimit     = "PROMPTLY_RATE_LIMIT"

	DefaultBaseURL = "https://api.promptly.dev"
)

// KnownKeys are the keys read from the process environment. File layers may
// carry other keys too; those are only reachable through Lookup.
var KnownKeys = []string{
	EnvAPIKey,
	EnvBaseURL,
	EnvProjectID,
	EnvTimeout,
	EnvStreamTimeout,
	EnvMaxAttempts,
	EnvRateLimit,
}

// Source names the layer a value was taken from.
type Source string

const (
	SourceEnv          Source = "env"
	SourceDotenv       Source = "dotenv"
	SourceGlobalConfig Source = "global-config"
	SourceKeychain     Source = "keychain"
	SourceDefault      Source = "default"
)

// Credentials are resolved once and never change afterwards.
type Credentials struct {
	APIKey    string
	BaseURL   string
	ProjectID string

	// APIKeySource is reported by `auth status` and nothing else.
	APIKeySource Source
}

// SecretGetter supplies the stored API key. An empty value with a nil error
// means nothing is stored.
type SecretGetter interface {
	Get(ctx context.Context) (string, error)
}

// Sources are the inputs a Resolver reads from.
type Sources struct {
	LookupEnv func(key string) (string, bool)

	// DotenvPath is the .env file to read. Empty disables the layer.
	DotenvPath string

	// GlobalConfigPath overrides the global config file location. When empty
	// it is taken from PROMPTLY_CONFIG, then the user config directory.
	GlobalConfigPath string

	// Keychain may be nil.
	Keychain SecretGetter
}

// DefaultSources reads the real process environment, ./.env, the default
// global config file and the OS keychain.
func DefaultSources() Sources {
	return Sources{
		LookupEnv:  os.LookupEnv,
		DotenvPath: ".env",
		Keychain:   NewKeychain(),
	}
}

type snapshot struct {
	values  map[string]string
	origins map[string]Source
}

// set applies a value only when no higher layer already set the key.
func (s snapshot) set(key, value string, src Source) {
	if value == "" {
		return
	}
	if _, ok := s.values[key]; ok {
		return
	}
	s.values[key] = value
	s.origins[key] = src
}

// Resolver reads every layer at most once. All later calls are answered from
// the cached snapshot.
type Resolver struct {
	sources Sources

	once     sync.Once
	snapshot snapshot
	err      error
}

func NewResolver(sources Sources) *Resolver {
	if sources.LookupEnv == nil {
		sources.LookupEnv = os.LookupEnv
	}
	return &Resolver{sources: sources}
}

func (r *Resolver) load(ctx context.Context) error {
	r.once.Do(func() {
		r.snapshot, r.err = r.read(ctx)
	})
	return r.err
}

func (r *Resolver) read(ctx context.Context) (snapshot, error) {
	logger := domain.LoggerFromContext(ctx)
	s := snapshot{values: map[string]string{}, origins: map[string]Source{}}

	for _, key := range KnownKeys {
		if v, ok := r.sources.LookupEnv(key); ok {
			s.set(key, v, SourceEnv)
		}
	}

	if r.sources.DotenvPath != "" {
		values, err := godotenv.Read(r.sources.DotenvPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return snapshot{}, fmt.Errorf("reading %s: %w", r.sources.DotenvPath, err)
		default:
			for key, v := range values {
				s.set(key, v, SourceDotenv)
			}
		}
	}

	globalPath, err := r.globalConfigPath()
	if err != nil {
		logger.DebugContext(ctx, "no global config path", "error", err)
	} else {
		sections, err := readGlobalConfig(globalPath)
		if err != nil {
			return snapshot{}, err
		}
		for _, section := range sections {
			for key, v := range section {
				s.set(key, v, SourceGlobalConfig)
			}
		}
	}

	if _, ok := s.values[EnvAPIKey]; !ok && r.sources.Keychain != nil {
		key, err := r.sources.Keychain.Get(ctx)
		if err != nil {
			logger.DebugContext(ctx, "keychain unavailable, skipping", "error", err)
		} else {
			s.set(EnvAPIKey, key, SourceKeychain)
		}
	}

	return s, nil
}

func (r *Resolver) globalConfigPath() (string, error) {
	if r.sources.GlobalConfigPath != "" {
		return r.sources.GlobalConfigPath, nil
	}
	if p, ok := r.sources.LookupEnv(EnvConfigPath); ok && p != "" {
		return p, nil
	}
	return DefaultGlobalConfigPath()
}

// DefaultGlobalConfigPath is <user config dir>/promptly/config.json.
func DefaultGlobalConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("finding user config directory: %w", err)
	}
	return filepath.Join(dir, "promptly", "config.json"), nil
}

// Resolve returns the credentials, failing with an AuthMissing error when no
// layer supplies an API key.
func (r *Resolver) Resolve(ctx context.Context) (Credentials, error) {
	if err := r.load(ctx); err != nil {
		return Credentials{}, err
	}

	key := r.snapshot.values[EnvAPIKey]
	if key == "" {
		return Credentials{}, apierr.New(apierr.KindAuthMissing, EnvAPIKey+" is not set")
	}

	baseURL := r.snapshot.values[EnvBaseURL]
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return Credentials{
		APIKey:       key,
		BaseURL:      strings.TrimSuffix(baseURL, "/"),
		ProjectID:    r.snapshot.values[EnvProjectID],
		APIKeySource: r.snapshot.origins[EnvAPIKey],
	}, nil
}

// Lookup returns the layered value of key.
func (r *Resolver) Lookup(ctx context.Context, key string) (string, bool) {
	if err := r.load(ctx); err != nil {
		return "", false
	}
	v, ok := r.snapshot.values[key]
	return v, ok
}

// Origin reports which layer supplied key, or SourceDefault when none did.
func (r *Resolver) Origin(ctx context.Context, key string) Source {
	if err := r.load(ctx); err != nil {
		return SourceDefault
	}
	if src, ok := r.snapshot.origins[key]; ok {
		return src
	}
	return SourceDefault
}

// MaskKey hides all but the first and last four characters of key.
func MaskKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}
