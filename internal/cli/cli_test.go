package cli

import (
	"bytes"
	"context"
	"iter"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jbeshir/promptly-mcp/internal/client"
	"github.com/jbeshir/promptly-mcp/internal/config"
	"github.com/jbeshir/promptly-mcp/internal/datasources"
	"github.com/jbeshir/promptly-mcp/internal/datasources/mocks"
	"github.com/zalando/go-keyring"
)

const testAPIKey = "pk_live_1234567890"

type testEnv struct {
	t      *testing.T
	stdout bytes.Buffer
	stderr bytes.Buffer
	env    map[string]string
	repo   *mocks.MockPromptRepository
	deps   Deps

	// repoBuilt records whether a command asked for the API client.
	repoBuilt bool
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	keyring.MockInit()

	e := &testEnv{
		t:    t,
		env:  map[string]string{config.EnvAPIKey: testAPIKey},
		repo: mocks.NewMockPromptRepository(t),
	}
	globalPath := filepath.Join(t.TempDir(), "missing.json")

	e.deps = Deps{
		Stdin:  strings.NewReader(""),
		Stdout: &e.stdout,
		Stderr: &e.stderr,
		NewResolver: func() *config.Resolver {
			return config.NewResolver(config.Sources{
				LookupEnv: func(key string) (string, bool) {
					v, ok := e.env[key]
					return v, ok
				},
				GlobalConfigPath: globalPath,
			})
		},
		NewRepository: func(ctx context.Context, r *config.Resolver, _ ...client.Option) (datasources.PromptRepository, error) {
			e.repoBuilt = true
			if _, err := r.Resolve(ctx); err != nil {
				return nil, err
			}
			return e.repo, nil
		},
		Keychain:   config.NewKeychain(),
		ReadSecret: func(string) (string, error) { return "pk_prompted_abcdefgh", nil },
		Now:        func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) },
	}
	return e
}

func (e *testEnv) run(args ...string) int {
	e.t.Helper()
	return Execute(context.Background(), args, e.deps)
}

func chunks(parts []string, endErr error) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, p := range parts {
			if !yield(p, nil) {
				return
			}
		}
		if endErr != nil {
			yield("", endErr)
		}
	}
}
