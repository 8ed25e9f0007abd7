package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountContext(t *testing.T) {
	var seenID string
	r := chi.NewRouter()
	r.Route("/profile/{accountId}", func(r chi.Router) {
		r.Use(AccountContext)
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			id, ok := AccountIDFromContext(req.Context())
			require.True(t, ok)
			seenID = id
			w.WriteHeader(http.StatusOK)
		})
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile/acct_123-abc/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "acct_123-abc", seenID)
}

func TestAccountContextRejectsMalformedIDs(t *testing.T) {
	r := chi.NewRouter()
	r.Route("/profile/{accountId}", func(r chi.Router) {
		r.Use(AccountContext)
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			t.Fatal("handler must not run for a malformed account id")
		})
	})

	for _, id := range []string{"a%20b", "acct!", "%2e%2e%2fescape"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile/"+id+"/", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, id)
	}
}
