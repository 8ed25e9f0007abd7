package operation

import (
	"context"

	"github.com/Aorux01/Neodyme-sub003/internal/mcp"
)

// QueryProfile returns the caller's full profile as a single
// fullProfileUpdate change record. The client uses it to resynchronize
// after detecting a stale local cache.
func (h *handlers) QueryProfile(ctx context.Context, op *mcp.Op) error {
	op.Primary.MarkFullUpdate()
	return nil
}
