package github_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/vcsbus/domain"
	"github.com/rios0rios0/vcsbus/infrastructure/provider/github"
	testdoubles "github.com/rios0rios0/vcsbus/test"
)

func newStrategy(spy *testdoubles.SpyTransport) domain.Strategy {
	s := github.New(domain.Endpoint{Token: "token"})
	return s.(*github.Strategy).WithTransport(spy)
}

func decodeBody(t *testing.T, req *http.Request) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))
	return payload
}

func TestGitHubStrategy(t *testing.T) {
	t.Parallel()

	t.Run("Name", func(t *testing.T) {
		t.Parallel()

		t.Run("should return github", func(t *testing.T) {
			t.Parallel()

			// given
			s := newStrategy(&testdoubles.SpyTransport{})

			// then
			assert.Equal(t, "github", s.Name())
		})
	})

	t.Run("CreateProject", func(t *testing.T) {
		t.Parallel()

		t.Run("should default to a private project with issues and wiki disabled", func(t *testing.T) {
			t.Parallel()

			// given
			spy := &testdoubles.SpyTransport{}
			spy.Stub(http.MethodPost, "/user/repos", http.StatusCreated, `{"name": "my-project"}`)
			s := newStrategy(spy)

			// when
			resp, err := s.CreateProject(context.Background(), "My Project!", domain.ProjectOptions{})

			// then
			require.NoError(t, err)
			assert.Equal(t, http.StatusCreated, resp.StatusCode)
			payload := decodeBody(t, spy.Calls(http.MethodPost)[0])
			assert.Equal(t, "my-project", payload["name"])
			assert.Equal(t, true, payload["private"])
			assert.Equal(t, false, payload["has_issues"])
			assert.Equal(t, false, payload["has_wiki"])
		})

		t.Run("should prefer an explicit slug over the derived one", func(t *testing.T) {
			t.Parallel()

			// given
			spy := &testdoubles.SpyTransport{}
			spy.Stub(http.MethodPost, "/user/repos", http.StatusCreated, `{}`)
			s := newStrategy(spy)

			// when
			_, err := s.CreateProject(context.Background(), "My Project!", domain.ProjectOptions{Slug: "custom"})

			// then
			require.NoError(t, err)
			payload := decodeBody(t, spy.Calls(http.MethodPost)[0])
			assert.Equal(t, "custom", payload["name"])
		})

		t.Run("should let explicit fields override the defaults", func(t *testing.T) {
			t.Parallel()

			// given
			spy := &testdoubles.SpyTransport{}
			spy.Stub(http.MethodPost, "/user/repos", http.StatusCreated, `{}`)
			s := newStrategy(spy)
			opts := domain.ProjectOptions{Fields: map[string]any{"has_issues": true, "description": "demo"}}

			// when
			_, err := s.CreateProject(context.Background(), "demo", opts)

			// then
			require.NoError(t, err)
			payload := decodeBody(t, spy.Calls(http.MethodPost)[0])
			assert.Equal(t, true, payload["has_issues"])
			assert.Equal(t, "demo", payload["description"])
			assert.Equal(t, true, payload["private"])
		})

		t.Run("should send the accept header for the v3 media type", func(t *testing.T) {
			t.Parallel()

			// given
			spy := &testdoubles.SpyTransport{}
			spy.Stub(http.MethodPost, "/user/repos", http.StatusCreated, `{}`)
			s := newStrategy(spy)

			// when
			_, err := s.CreateProject(context.Background(), "demo", domain.ProjectOptions{})

			// then
			require.NoError(t, err)
			assert.Equal(t, "application/vnd.github.v3+json", spy.Requests[0].Header.Get("Accept"))
		})
	})

	t.Run("UpdateProject", func(t *testing.T) {
		t.Parallel()

		t.Run("should PUT the fields to the user's repository", func(t *testing.T) {
			t.Parallel()

			// given
			spy := &testdoubles.SpyTransport{}
			spy.Stub(http.MethodGet, "/user", http.StatusOK, `{"login": "jane"}`)
			spy.Stub(http.MethodPut, "/repos/jane/demo", http.StatusOK, `{}`)
			s := newStrategy(spy)
			opts := domain.ProjectOptions{Fields: map[string]any{"description": "updated"}}

			// when
			resp, err := s.UpdateProject(context.Background(), "demo", opts)

			// then
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			puts := spy.Calls(http.MethodPut)
			require.Len(t, puts, 1)
			assert.Equal(t, "/repos/jane/demo", puts[0].URL.Path)
		})
	})

	t.Run("DeleteProject", func(t *testing.T) {
		t.Parallel()

		t.Run("should delete when the slug matches", func(t *testing.T) {
			t.Parallel()

			// given
			spy := &testdoubles.SpyTransport{}
			spy.Stub(http.MethodGet, "/user", http.StatusOK, `{"login": "jane"}`)
			spy.Stub(http.MethodGet, "/repos/jane/123", http.StatusOK, `{"path": "demo"}`)
			spy.Stub(http.MethodDelete, "/repos/jane/123", http.StatusNoContent, `{}`)
			s := newStrategy(spy)

			// when
			resp, err := s.DeleteProject(context.Background(), "123", "demo")

			// then
			require.NoError(t, err)
			assert.Equal(t, http.StatusNoContent, resp.StatusCode)
			deletes := spy.Calls(http.MethodDelete)
			require.Len(t, deletes, 1)
			assert.Equal(t, "/repos/jane/123", deletes[0].URL.Path)
		})

		t.Run("should refuse deletion when the slug does not match", func(t *testing.T) {
			t.Parallel()

			// given
			spy := &testdoubles.SpyTransport{}
			spy.Stub(http.MethodGet, "/user", http.StatusOK, `{"login": "jane"}`)
			spy.Stub(http.MethodGet, "/repos/jane/123", http.StatusOK, `{"path": "demo"}`)
			s := newStrategy(spy)

			// when
			resp, err := s.DeleteProject(context.Background(), "123", "wrong")

			// then
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			body, _ := resp.JSONObject()
			assert.Equal(t, "Slug does not match project. Deletion refused.", body["message"])
			assert.Zero(t, spy.CallCount(http.MethodDelete))
		})

		t.Run("should raise when the details fetch fails", func(t *testing.T) {
			t.Parallel()

			// given
			spy := &testdoubles.SpyTransport{}
			spy.Stub(http.MethodGet, "/user", http.StatusOK, `{"login": "jane"}`)
			spy.Stub(http.MethodGet, "/repos/jane/123", http.StatusNotFound, `{"message": "Not Found"}`)
			s := newStrategy(spy)

			// when
			resp, err := s.DeleteProject(context.Background(), "123", "demo")

			// then
			require.Error(t, err)
			assert.Nil(t, resp)
			assert.Zero(t, spy.CallCount(http.MethodDelete))
		})

		t.Run("should raise when the details have no path field", func(t *testing.T) {
			t.Parallel()

			// given
			spy := &testdoubles.SpyTransport{}
			spy.Stub(http.MethodGet, "/user", http.StatusOK, `{"login": "jane"}`)
			spy.Stub(http.MethodGet, "/repos/jane/123", http.StatusOK, `{"id": 123}`)
			spy.Stub(http.MethodDelete, "/repos/jane/123", http.StatusNoContent, `{}`)
			s := newStrategy(spy)

			// when
			resp, err := s.DeleteProject(context.Background(), "123", "")

			// then
			require.Error(t, err)
			assert.Contains(t, err.Error(), "no path field")
			assert.Nil(t, resp)
			assert.Zero(t, spy.CallCount(http.MethodDelete))
		})
	})

	t.Run("ListProjects", func(t *testing.T) {
		t.Parallel()

		t.Run("should list the user's repositories", func(t *testing.T) {
			t.Parallel()

			// given
			spy := &testdoubles.SpyTransport{}
			spy.Stub(http.MethodGet, "/user/repos", http.StatusOK, `[{"name": "demo"}]`)
			s := newStrategy(spy)

			// when
			resp, err := s.ListProjects(context.Background())

			// then
			require.NoError(t, err)
			decoded, decodeErr := resp.JSON()
			require.NoError(t, decodeErr)
			assert.Len(t, decoded, 1)
		})
	})

	t.Run("AddDeployKey", func(t *testing.T) {
		t.Parallel()

		t.Run("should post the key to the repository keys endpoint", func(t *testing.T) {
			t.Parallel()

			// given
			spy := &testdoubles.SpyTransport{}
			spy.Stub(http.MethodGet, "/user", http.StatusOK, `{"login": "jane"}`)
			spy.Stub(http.MethodPost, "/repos/jane/demo/keys", http.StatusCreated, `{}`)
			s := newStrategy(spy)
			key := domain.DeployKey{Title: "deploy", Key: "ssh-ed25519 AAAA", ReadOnly: true}

			// when
			resp, err := s.AddDeployKey(context.Background(), "demo", key)

			// then
			require.NoError(t, err)
			assert.Equal(t, http.StatusCreated, resp.StatusCode)
			payload := decodeBody(t, spy.Calls(http.MethodPost)[0])
			assert.Equal(t, "deploy", payload["title"])
			assert.Equal(t, "ssh-ed25519 AAAA", payload["key"])
			assert.Equal(t, true, payload["read_only"])
		})
	})
}
