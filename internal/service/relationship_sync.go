// internal/service/relationship_sync.go
package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/hireloop/hireloop/internal/authz"
)

// relationFor maps a role's display name to its relation name in the
// external authorization backend.
func relationFor(roleName string) string {
	return strings.ToLower(strings.ReplaceAll(roleName, " ", "_"))
}

// syncMembershipWrite mirrors a new membership into the external
// authorization backend. The membership rows stay authoritative; mirroring
// failures are logged, never returned.
func syncMembershipWrite(ctx context.Context, syncer authz.RelationshipSyncer, companyID, userID uuid.UUID, roleName string) {
	if syncer == nil {
		return
	}
	if err := syncer.WriteMembership(ctx, companyID, userID, relationFor(roleName)); err != nil {
		slog.WarnContext(ctx, "failed to mirror membership write",
			"error", err,
			"company_id", companyID,
			"user_id", userID,
		)
	}
}

// syncMembershipDelete removes the mirrored membership tuple.
func syncMembershipDelete(ctx context.Context, syncer authz.RelationshipSyncer, companyID, userID uuid.UUID, roleName string) {
	if syncer == nil {
		return
	}
	if err := syncer.DeleteMembership(ctx, companyID, userID, relationFor(roleName)); err != nil {
		slog.WarnContext(ctx, "failed to mirror membership delete",
			"error", err,
			"company_id", companyID,
			"user_id", userID,
		)
	}
}
