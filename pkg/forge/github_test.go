//go:build unit

package forge

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lerenn/create-branch/internal/githubmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*githubmock.Server, *GitHub) {
	t.Helper()

	config := githubmock.NewServerConfig()
	config.Owner = "acme"
	config.Repo = "widgets"
	config.Token = "tok"
	config.Refs["refs/heads/main"] = "abc123"

	server := githubmock.NewServer(t, config)

	client, err := NewGitHub(Params{Token: "tok", BaseURL: server.APIURL()})
	require.NoError(t, err)

	return server, client
}

func requireRemoteError(t *testing.T, err error) *RemoteOperationError {
	t.Helper()

	var rErr *RemoteOperationError
	require.True(t, errors.As(err, &rErr), "expected a RemoteOperationError, got %T", err)
	return rErr
}

func TestGitHub_ResolveBranchCommit(t *testing.T) {
	server, client := newTestServer(t)

	sha, err := client.ResolveBranchCommit(context.Background(), "acme", "widgets", "main")
	require.NoError(t, err)
	assert.Equal(t, "abc123", sha)

	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodGet, requests[0].Method)
	assert.Equal(t, "/repos/acme/widgets/git/ref/heads/main", requests[0].Path)
}

func TestGitHub_ResolveBranchCommit_NotFound(t *testing.T) {
	_, client := newTestServer(t)

	_, err := client.ResolveBranchCommit(context.Background(), "acme", "widgets", "develop")
	require.Error(t, err)

	rErr := requireRemoteError(t, err)
	assert.ErrorIs(t, err, ErrReferenceNotFound)
	assert.Equal(t, githubmock.MessageNotFound, err.Error())
	assert.Equal(t, http.StatusNotFound, rErr.StatusCode)
	assert.Equal(t, OperationResolve, rErr.Operation)
	assert.Equal(t, "heads/develop", rErr.Ref)
}

func TestGitHub_ResolveBranchCommit_DotSegments(t *testing.T) {
	server, client := newTestServer(t)

	for _, name := range []string{"nonexistent/../main", "./main", "feature/./main"} {
		sha, err := client.ResolveBranchCommit(context.Background(), "acme", "widgets", name)
		require.Error(t, err, name)
		assert.Empty(t, sha)

		rErr := requireRemoteError(t, err)
		assert.ErrorIs(t, err, ErrReferenceNotFound)
		assert.Equal(t, OperationResolve, rErr.Operation)
		assert.Equal(t, "heads/"+name, rErr.Ref)
	}

	assert.Empty(t, server.Requests())
}

func TestGitHub_ResolveBranchCommit_BadCredentials(t *testing.T) {
	server, _ := newTestServer(t)

	client, err := NewGitHub(Params{Token: "wrong", BaseURL: server.APIURL()})
	require.NoError(t, err)

	_, err = client.ResolveBranchCommit(context.Background(), "acme", "widgets", "main")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, githubmock.MessageBadCredentials, err.Error())
}

func TestGitHub_ResolveBranchCommit_RateLimited(t *testing.T) {
	server, client := newTestServer(t)
	server.SetErrorResponse("GET /repos/acme/widgets/git/ref/heads/main", githubmock.ErrorResponse{
		Status:  http.StatusForbidden,
		Message: "API rate limit exceeded",
		Header:  map[string]string{"X-RateLimit-Remaining": "0", "X-RateLimit-Limit": "5000"},
	})

	_, err := client.ResolveBranchCommit(context.Background(), "acme", "widgets", "main")
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, "API rate limit exceeded", err.Error())
}

func TestGitHub_ResolveBranchCommit_ServerError(t *testing.T) {
	server, client := newTestServer(t)
	server.SetErrorResponse("GET /repos/acme/widgets/git/ref/heads/main", githubmock.ErrorResponse{
		Status:  http.StatusBadGateway,
		Message: "Server Error",
	})

	_, err := client.ResolveBranchCommit(context.Background(), "acme", "widgets", "main")
	assert.ErrorIs(t, err, ErrServer)
	assert.Equal(t, "Server Error", err.Error())
}

func TestGitHub_ResolveBranchCommit_TransportFailure(t *testing.T) {
	server, client := newTestServer(t)
	server.Close()

	_, err := client.ResolveBranchCommit(context.Background(), "acme", "widgets", "main")
	require.Error(t, err)

	rErr := requireRemoteError(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Zero(t, rErr.StatusCode)
	assert.NotEmpty(t, err.Error())
}

func TestGitHub_ResolveBranchCommit_ContextCanceled(t *testing.T) {
	_, client := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ResolveBranchCommit(ctx, "acme", "widgets", "main")
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGitHub_CreateBranch(t *testing.T) {
	server, client := newTestServer(t)

	err := client.CreateBranch(context.Background(), "acme", "widgets", "feature/x", "abc123")
	require.NoError(t, err)

	sha, ok := server.Ref("refs/heads/feature/x")
	require.True(t, ok)
	assert.Equal(t, "abc123", sha)

	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodPost, requests[0].Method)
	assert.Equal(t, "/repos/acme/widgets/git/refs", requests[0].Path)
	assert.JSONEq(t, `{"ref":"refs/heads/feature/x","sha":"abc123"}`, requests[0].Body)
}

func TestGitHub_CreateBranch_AlreadyExists(t *testing.T) {
	_, client := newTestServer(t)

	require.NoError(t, client.CreateBranch(context.Background(), "acme", "widgets", "feature/x", "abc123"))

	err := client.CreateBranch(context.Background(), "acme", "widgets", "feature/x", "abc123")
	require.Error(t, err)

	rErr := requireRemoteError(t, err)
	assert.ErrorIs(t, err, ErrReferenceExists)
	assert.Equal(t, githubmock.MessageRefExists, err.Error())
	assert.Equal(t, http.StatusUnprocessableEntity, rErr.StatusCode)
	assert.Equal(t, OperationCreate, rErr.Operation)
	assert.Equal(t, "refs/heads/feature/x", rErr.Ref)
}

func TestGitHub_CreateBranch_UnknownRepository(t *testing.T) {
	_, client := newTestServer(t)

	err := client.CreateBranch(context.Background(), "acme", "gadgets", "feature/x", "abc123")
	assert.ErrorIs(t, err, ErrRepositoryNotFound)
	assert.Equal(t, githubmock.MessageNotFound, err.Error())
}

func TestGitHub_CreateBranch_EmptyRepository(t *testing.T) {
	server, client := newTestServer(t)
	server.SetErrorResponse("POST /repos/acme/widgets/git/refs", githubmock.ErrorResponse{
		Status:  http.StatusConflict,
		Message: "Git Repository is empty.",
	})

	err := client.CreateBranch(context.Background(), "acme", "widgets", "feature/x", "abc123")
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "Git Repository is empty.", err.Error())
}
