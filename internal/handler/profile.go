package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
	"github.com/Aorux01/Neodyme-sub003/internal/logger"
	"github.com/Aorux01/Neodyme-sub003/internal/mcp"
	"github.com/Aorux01/Neodyme-sub003/internal/metrics"
)

// DefaultProfileID is used when the client omits the profileId query
// parameter.
const DefaultProfileID = domain.ProfileCommonCore

// HandleClientCommand dispatches one named profile operation.
// @Summary Execute a profile operation
// @Description Applies a named operation to the account's profile and returns the resulting change set
// @Tags profile
// @Accept json
// @Produce json
// @Param accountId path string true "Account ID"
// @Param operation path string true "Operation name"
// @Param profileId query string false "Target profile ID" default(common_core)
// @Param rvn query int false "Client's last known profile revision"
// @Success 200 {object} domain.OperationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/profile/{accountId}/client/{operation} [post]
func HandleClientCommand(dispatcher *mcp.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		accountID := chi.URLParam(r, "accountId")
		operation := chi.URLParam(r, "operation")
		if accountID == "" || operation == "" {
			respondError(w, http.StatusBadRequest, "errors.mcp.invalid_payload", "accountId and operation are required")
			return
		}

		profileID := r.URL.Query().Get("profileId")
		if profileID == "" {
			profileID = DefaultProfileID
		}

		// rvn is the revision the client believes it has; -1 means not
		// supplied. The engine logs staleness but never rejects on it.
		clientRevision := int64(-1)
		if raw := r.URL.Query().Get("rvn"); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				respondError(w, http.StatusBadRequest, "errors.mcp.invalid_payload", "rvn must be an integer")
				return
			}
			clientRevision = parsed
		}

		payload, err := io.ReadAll(r.Body)
		if err != nil {
			respondError(w, http.StatusBadRequest, "errors.mcp.invalid_payload", "failed to read request body")
			return
		}
		if len(payload) == 0 {
			payload = []byte("{}")
		}

		start := time.Now()
		resp, err := dispatcher.Dispatch(ctx, accountID, profileID, operation, json.RawMessage(payload), clientRevision)
		if err != nil {
			status, code := statusAndCode(err)
			outcome := metrics.OutcomeRejected
			if status >= 500 {
				outcome = metrics.OutcomeFailed
				log.Error("Operation failed", "operation", operation, "account_id", accountID, "error", err)
			}
			if errors.Is(err, domain.ErrPartialCommit) {
				metrics.PartialCommits.WithLabelValues(operation).Inc()
			}
			metrics.ObserveOperation(operation, outcome, time.Since(start))

			respondError(w, status, code, err.Error())
			return
		}
		metrics.ObserveOperation(operation, metrics.OutcomeApplied, time.Since(start))

		respondJSON(w, http.StatusOK, resp)
	}
}
