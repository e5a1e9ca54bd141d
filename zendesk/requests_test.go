package zendesk

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testAPI returns a client pointed at the given test server, with the
// courtesy delay zeroed so tests don't dawdle.
func testAPI(t *testing.T, server *httptest.Server, includeRestricted bool) *API {
	t.Helper()

	email, token := "", ""
	if includeRestricted {
		email, token = "agent@example.com", "s3cret"
	}

	api, err := NewAPI("acme", email, token, includeRestricted)
	require.NoError(t, err)

	base, err := url.Parse(server.URL)
	require.NoError(t, err)
	api.BaseURI = base
	api.Delay = 0

	return api
}

func TestNewAPIValidatesSubdomain(t *testing.T) {
	_, err := NewAPI("", "", "", false)
	assert.Error(t, err)

	_, err = NewAPI("not a subdomain!", "", "", false)
	assert.Error(t, err)

	_, err = NewAPI("acme-support", "", "", false)
	assert.NoError(t, err)
}

func TestNewAPIRequiresCredentialsForRestricted(t *testing.T) {
	_, err := NewAPI("acme", "", "tok", true)
	assert.Error(t, err)

	_, err = NewAPI("acme", "agent@example.com", "", true)
	assert.Error(t, err)

	_, err = NewAPI("acme", "agent@example.com", "tok", true)
	assert.NoError(t, err)
}

func TestRequestSendsTokenBasicAuth(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"locales":[{"locale":"en-US"}]}`)
	}))
	defer server.Close()

	api := testAPI(t, server, true)
	_, err := api.GetLocales(context.Background())
	require.NoError(t, err)

	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("agent@example.com/token:s3cret"))
	assert.Equal(t, want, gotAuth)
}

func TestRequestAnonymousWhenNotRestricted(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"locales":[]}`)
	}))
	defer server.Close()

	api := testAPI(t, server, false)
	_, err := api.GetLocales(context.Background())
	require.NoError(t, err)

	assert.Empty(t, gotAuth)
}

func TestGetLocalesLowercasesAndDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"locales":[{"locale":"en-US"},{"locale":"FR"}]}`)
	}))
	defer server.Close()

	api := testAPI(t, server, false)
	locales, err := api.GetLocales(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"en-us", "fr"}, locales)
}

func TestGetLocalesEmptyFallsBackToEnglish(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"locales":[]}`)
	}))
	defer server.Close()

	api := testAPI(t, server, false)
	locales, err := api.GetLocales(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"en"}, locales)
}

func TestGetBrandsRefusesWithoutCredentials(t *testing.T) {
	api, err := NewAPI("acme", "", "", false)
	require.NoError(t, err)

	_, err = api.GetBrands(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires credentials")
}

func TestErrorKindClassification(t *testing.T) {
	cases := []struct {
		status int
		kind   ErrorKind
	}{
		{http.StatusUnauthorized, Unauthorized},
		{http.StatusForbidden, Forbidden},
		{http.StatusNotFound, NotFound},
		{http.StatusTooManyRequests, RateLimited},
		{http.StatusInternalServerError, ServerError},
		{http.StatusBadGateway, ServerError},
	}

	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				fmt.Fprint(w, `{"error":"nope"}`)
			}))
			defer server.Close()

			api := testAPI(t, server, false)
			_, err := api.GetCategories(context.Background())
			require.Error(t, err)

			var fe *FetchError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tc.kind, fe.Kind)
			assert.Equal(t, tc.status, fe.Status)
		})
	}
}

func TestRequestNetworkFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	api := testAPI(t, server, false)
	_, err := api.GetCategories(context.Background())
	require.Error(t, err)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, NetworkFault, fe.Kind)
	assert.Zero(t, fe.Status)
}

func TestCourtesyDelayAppliedAfterEachPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"articles":[],"next_page":""}`)
	}))
	defer server.Close()

	api := testAPI(t, server, false)
	api.Delay = CourtesyDelay

	var pauses int
	api.sleep = func(d time.Duration) {
		assert.Equal(t, CourtesyDelay, d)
		pauses++
	}

	_, err := api.FetchAllArticles(context.Background(), server.URL, "en", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, pauses)
}
