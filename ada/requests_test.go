package ada

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAPI(t *testing.T, server *httptest.Server) *API {
	t.Helper()

	api, err := NewAPI("acme-bot", "tok")
	require.NoError(t, err)

	base, err := url.Parse(server.URL)
	require.NoError(t, err)
	api.BaseURI = base

	return api
}

func TestNewAPIValidatesConfig(t *testing.T) {
	_, err := NewAPI("", "tok")
	assert.Error(t, err)

	_, err = NewAPI("acme-bot", "")
	assert.Error(t, err)

	api, err := NewAPI("acme-bot", "tok")
	require.NoError(t, err)
	assert.Equal(t, "https://acme-bot.ada.support", api.BaseURI.String())
}

func TestRequestSendsBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"data":[]}`)
	}))
	defer server.Close()

	api := testAPI(t, server)
	_, err := api.ListKnowledgeSources(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", gotAuth)
}

func TestListKnowledgeSources(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/knowledge/sources/", r.URL.Path)
		fmt.Fprint(w, `{"data":[{"id":"abc","name":"Help Center"},{"id":"def","name":"FAQ"}]}`)
	}))
	defer server.Close()

	api := testAPI(t, server)
	sources, err := api.ListKnowledgeSources(context.Background())
	require.NoError(t, err)

	require.Len(t, sources, 2)
	assert.Equal(t, "abc", sources[0].ID)
	assert.Equal(t, "FAQ", sources[1].Name)
}

func TestCreateKnowledgeSourceResponseShapes(t *testing.T) {
	cases := []struct {
		name     string
		response string
		wantID   string
	}{
		{"wrapped in data", `{"data":{"id":"from-data"}}`, "from-data"},
		{"bare id", `{"id":"bare-id"}`, "bare-id"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				fmt.Fprint(w, tc.response)
			}))
			defer server.Close()

			api := testAPI(t, server)
			id, err := api.CreateKnowledgeSource(context.Background(), "Zendesk import")
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestCreateKnowledgeSourceFallsBackToGeneratedID(t *testing.T) {
	var sent KnowledgeSource
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	api := testAPI(t, server)
	id, err := api.CreateKnowledgeSource(context.Background(), "Zendesk import")
	require.NoError(t, err)

	assert.Equal(t, sent.ID, id, "with no id in the response, the generated one stands")
	assert.Equal(t, "Zendesk import", sent.Name)
	assert.Len(t, id, sourceIDLength)
}

func TestPushArticleWrapsInSingletonArray(t *testing.T) {
	var raw json.RawMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/knowledge/bulk/articles/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	api := testAPI(t, server)
	err := api.PushArticle(context.Background(), Article{
		ID:   "zd_42",
		Name: "Greetings",
	})
	require.NoError(t, err)

	var payload []Article
	require.NoError(t, json.Unmarshal(raw, &payload))
	require.Len(t, payload, 1)
	assert.Equal(t, "zd_42", payload[0].ID)

	// tag_ids must be a JSON array even when empty, never null
	assert.Contains(t, string(raw), `"tag_ids":[]`)
}

func TestPushArticleSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":"slow down"}`)
	}))
	defer server.Close()

	api := testAPI(t, server)
	err := api.PushArticle(context.Background(), Article{ID: "zd_1"})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusTooManyRequests, apiErr.Status)
	assert.True(t, apiErr.RateLimited())
}

func TestRandomSourceID(t *testing.T) {
	id := randomSourceID()
	assert.Len(t, id, sourceIDLength)
	for _, r := range id {
		assert.True(t, strings.ContainsRune(sourceIDAlphabet, r), "unexpected rune %q", r)
	}

	// vanishingly unlikely to collide
	assert.NotEqual(t, id, randomSourceID())
}
