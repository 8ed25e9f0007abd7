package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
	"github.com/Aorux01/Neodyme-sub003/internal/mcp"
	"github.com/Aorux01/Neodyme-sub003/internal/profile"
	"github.com/Aorux01/Neodyme-sub003/internal/repository"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	templates := make(profile.StaticTemplates)
	for _, id := range domain.ProfileIDs() {
		templates[id] = &domain.Profile{
			Items: map[string]*domain.Item{},
			Stats: domain.ProfileStats{Attributes: map[string]any{}},
		}
	}
	repo := repository.NewMemory()
	store := profile.NewStore(repo, templates)

	registry := mcp.NewRegistry()
	registry.Register(mcp.Registration{
		Name: "GrantGold",
		Handler: func(ctx context.Context, op *mcp.Op) error {
			op.Primary.Grant(domain.TemplateGold, 100, nil)
			return nil
		},
	})

	r := chi.NewRouter()
	r.Post("/api/v1/profile/{accountId}/client/{operation}", HandleClientCommand(mcp.NewDispatcher(store, registry, repo)))
	return r
}

func TestHandleClientCommand(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/profile/acct-1/client/GrantGold?profileId=campaign&rvn=-1",
		strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp domain.OperationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "campaign", resp.ProfileID)
	assert.Equal(t, int64(2), resp.ProfileRevision)
	assert.Equal(t, int64(1), resp.ProfileChangesBaseRevision)
	assert.Equal(t, domain.ResponseVersion, resp.ResponseVersion)
	require.Len(t, resp.ProfileChanges, 1)
	assert.Equal(t, domain.ChangeItemAdded, resp.ProfileChanges[0].ChangeType)
}

func TestHandleClientCommandEmptyBody(t *testing.T) {
	router := newTestRouter(t)

	// An omitted body is treated as an empty payload object.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/profile/acct-1/client/GrantGold", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestHandleClientCommandErrors(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		name       string
		url        string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "unknown operation",
			url:        "/api/v1/profile/acct-1/client/DoesNotExist",
			wantStatus: http.StatusNotFound,
			wantCode:   "errors.mcp.operation_not_found",
		},
		{
			name:       "unknown profile id",
			url:        "/api/v1/profile/acct-1/client/GrantGold?profileId=../../etc/passwd",
			wantStatus: http.StatusNotFound,
			wantCode:   "errors.mcp.profile_not_found",
		},
		{
			name:       "malformed rvn",
			url:        "/api/v1/profile/acct-1/client/GrantGold?rvn=banana",
			wantStatus: http.StatusBadRequest,
			wantCode:   "errors.mcp.invalid_payload",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tc.url, strings.NewReader(`{}`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantCode, resp.ErrorCode)
			assert.NotEmpty(t, resp.ErrorMessage)
		})
	}
}
