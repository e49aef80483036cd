package command

import (
	"context"
	"errors"
	"testing"

	"github.com/jbeshir/promptly-mcp/internal/apierr"
	"github.com/jbeshir/promptly-mcp/internal/datasources/mocks"
	"github.com/jbeshir/promptly-mcp/internal/domain"
	"github.com/jbeshir/promptly-mcp/internal/promptfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPushPrompt_Execute(t *testing.T) {
	file := promptfile.File{Name: "greeting", Template: "Hello {{name}}", Variables: []string{"name"}}

	cases := []struct {
		name        string
		fileID      string
		remoteErr   error
		wantCreated bool
		wantErrKind apierr.Kind
	}{
		{name: "creates_without_id", wantCreated: true},
		{name: "updates_with_id", fileID: "prm_1"},
		{name: "create_failure", remoteErr: apierr.FromStatus(422, "bad"), wantErrKind: apierr.KindValidation},
		{name: "update_failure", fileID: "prm_1", remoteErr: apierr.FromStatus(404, "gone"), wantErrKind: apierr.KindNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			creator := mocks.NewMockPromptCreator(t)
			updater := mocks.NewMockPromptUpdater(t)

			f := file
			f.ID = tc.fileID
			remote := domain.Prompt{ID: "prm_1", Name: "greeting"}

			if tc.fileID == "" {
				creator.EXPECT().
					CreatePrompt(mock.Anything, f.CreateInput("proj_1")).
					Return(remote, tc.remoteErr)
			} else {
				updater.EXPECT().
					UpdatePrompt(mock.Anything, tc.fileID, mock.MatchedBy(func(in domain.UpdatePromptInput) bool {
						return in.Template != nil && *in.Template == f.Template && in.Tags == nil
					})).
					Return(remote, tc.remoteErr)
			}

			ctx := domain.ContextWithLogger(context.Background(), testLogger())
			got, err := NewPushPrompt(creator, updater).Execute(ctx, PushPromptRequest{File: f, ProjectID: "proj_1"})

			if tc.wantErrKind != "" {
				require.Error(t, err)
				assert.Equal(t, tc.wantErrKind, apierr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCreated, got.Created)
			assert.Equal(t, remote, got.Prompt)
		})
	}
}

func TestPullPrompt_Execute(t *testing.T) {
	fetcher := mocks.NewMockPromptFetcher(t)
	fetcher.EXPECT().
		GetPrompt(mock.Anything, "prm_1").
		Return(domain.Prompt{ID: "prm_1", Name: "greeting", Template: "Hi", Tags: []string{"x"}}, nil)

	got, err := NewPullPrompt(fetcher).Execute(context.Background(), "prm_1")
	require.NoError(t, err)
	assert.Equal(t, promptfile.File{ID: "prm_1", Name: "greeting", Template: "Hi", Tags: []string{"x"}}, got)
}

func TestPullPrompt_Execute_Error(t *testing.T) {
	fetcher := mocks.NewMockPromptFetcher(t)
	fetcher.EXPECT().
		GetPrompt(mock.Anything, "prm_1").
		Return(domain.Prompt{}, errors.New("boom"))

	_, err := NewPullPrompt(fetcher).Execute(context.Background(), "prm_1")
	assert.ErrorContains(t, err, "fetching prompt: boom")
}
