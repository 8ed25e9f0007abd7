package handler

import (
	"errors"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
)

// errorMapping ties one domain sentinel to its wire representation.
type errorMapping struct {
	sentinel error
	status   int
	code     string
}

// errorMappings is checked in order; the first matching sentinel wins.
var errorMappings = []errorMapping{
	{domain.ErrInvalidPayload, 400, "errors.mcp.invalid_payload"},
	{domain.ErrUnknownOperation, 404, "errors.mcp.operation_not_found"},

	{domain.ErrItemNotFound, 404, "errors.mcp.item_not_found"},
	{domain.ErrProfileNotFound, 404, "errors.mcp.profile_not_found"},
	{domain.ErrExpeditionNotFound, 404, "errors.mcp.expedition_not_found"},
	{domain.ErrLoadoutNotFound, 404, "errors.mcp.loadout_not_found"},
	{domain.ErrOfferNotFound, 404, "errors.mcp.offer_not_found"},

	{domain.ErrExpeditionAlreadyStarted, 409, "errors.mcp.expedition_already_started"},
	{domain.ErrExpeditionNotStarted, 409, "errors.mcp.expedition_not_started"},
	{domain.ErrExpeditionStillRunning, 409, "errors.mcp.expedition_still_running"},
	{domain.ErrAlreadyUnlocked, 409, "errors.mcp.already_unlocked"},
	{domain.ErrNoTransformOptions, 409, "errors.mcp.no_transform_options"},

	{domain.ErrInsufficientQuantity, 400, "errors.mcp.insufficient_quantity"},
	{domain.ErrInsufficientFunds, 400, "errors.mcp.insufficient_funds"},
	{domain.ErrMaxLevelReached, 400, "errors.mcp.max_level_reached"},

	{domain.ErrAlreadyOwned, 409, "errors.mcp.already_owned"},
	{domain.ErrPriceMismatch, 409, "errors.mcp.price_mismatch"},

	{domain.ErrPartialCommit, 500, "errors.mcp.partial_commit"},
	{domain.ErrStoreUnavailable, 503, "errors.mcp.store_unavailable"},
}

// statusAndCode translates a dispatch error into an HTTP status and a
// stable error code. Unknown errors surface as a generic 500 so internal
// details never leak.
func statusAndCode(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.sentinel) {
			return m.status, m.code
		}
	}
	return 500, "errors.mcp.internal"
}
