package command

import (
	"context"
	"iter"
	"strings"
	"testing"

	"github.com/jbeshir/promptly-mcp/internal/apierr"
	"github.com/jbeshir/promptly-mcp/internal/datasources/mocks"
	"github.com/jbeshir/promptly-mcp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

func TestRunPrompt_Execute(t *testing.T) {
	input := domain.RunInput{Variables: map[string]string{"name": "Ada"}, VersionID: "ver_1"}

	cases := []struct {
		name        string
		stream      bool
		parts       []string
		streamErr   error
		runResult   domain.RunResult
		runErr      error
		wantOutput  string
		wantWritten string
		wantErrKind apierr.Kind
	}{
		{
			name:        "single_request",
			runResult:   domain.RunResult{RunID: "run_1", Output: "Hello Ada"},
			wantOutput:  "Hello Ada",
			wantWritten: "Hello Ada",
		},
		{
			name:        "single_request_error",
			runErr:      apierr.FromStatus(429, "slow"),
			wantErrKind: apierr.KindRateLimited,
		},
		{
			name:        "streamed",
			stream:      true,
			parts:       []string{"Hel", "lo ", "Ada"},
			wantOutput:  "Hello Ada",
			wantWritten: "Hello Ada",
		},
		{
			name:        "stream_interrupted_keeps_partial_output",
			stream:      true,
			parts:       []string{"Hel"},
			streamErr:   apierr.New(apierr.KindNetwork, "connection reset"),
			wantOutput:  "Hel",
			wantWritten: "Hel",
			wantErrKind: apierr.KindNetwork,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			runner := mocks.NewMockPromptRunner(t)
			streamer := mocks.NewMockPromptStreamer(t)

			if tc.stream {
				streamer.EXPECT().
					StreamRun(mock.Anything, "prm_1", input).
					Return(chunks(tc.parts, tc.streamErr))
			} else {
				runner.EXPECT().
					RunPrompt(mock.Anything, "prm_1", input).
					Return(tc.runResult, tc.runErr)
			}

			var written strings.Builder
			got, err := NewRunPrompt(runner, streamer).Execute(context.Background(), RunPromptRequest{
				PromptID: "prm_1",
				Input:    input,
				Stream:   tc.stream,
				Output:   &written,
			})

			assert.Equal(t, tc.wantOutput, got.Output)
			assert.Equal(t, tc.wantWritten, written.String())
			if tc.wantErrKind != "" {
				require.Error(t, err)
				assert.Equal(t, tc.wantErrKind, apierr.KindOf(err))
				return
			}
			require.NoError(t, err)
			if tc.stream {
				assert.Equal(t, "prm_1", got.PromptID)
				assert.Equal(t, "ver_1", got.VersionID)
			}
		})
	}
}
