// Package dragdrop interprets the end of a drag gesture and dispatches
// the matching store mutation. Zone ids share one namespace: step zones
// carry the bare step id, release zones are prefixed, and an empty zone
// means the unassigned pool.
package dragdrop

import (
	"context"
	"strings"

	"jornada/internal/models"
	"jornada/internal/services/issue"
)

// ReleaseZonePrefix namespaces release drop zones so they can never
// collide with step ids.
const ReleaseZonePrefix = "release-"

// ReleaseZoneID builds the zone id for a release.
func ReleaseZoneID(releaseID string) string {
	return ReleaseZonePrefix + releaseID
}

// Handler dispatches drop events onto the issue store.
type Handler struct {
	issues *issue.Service
}

// NewHandler creates a drop handler.
func NewHandler(issues *issue.Service) *Handler {
	return &Handler{issues: issues}
}

// Drop handles a completed drag gesture. When the computed target
// equals the issue's current assignment nothing happens: no write, no
// undo.
func (h *Handler) Drop(ctx context.Context, dragged *models.Issue, targetZoneID string) error {
	switch {
	case targetZoneID == "":
		if dragged.Unassigned() {
			return nil
		}
		return h.issues.UnassignWithUndo(ctx, dragged.ID)

	case strings.HasPrefix(targetZoneID, ReleaseZonePrefix):
		releaseID := strings.TrimPrefix(targetZoneID, ReleaseZonePrefix)
		if dragged.ReleaseID != nil && *dragged.ReleaseID == releaseID {
			return nil
		}
		return h.issues.AssignToRelease(ctx, dragged.ID, &releaseID)

	default:
		// AssignToStep is itself idempotent for same-step drops
		return h.issues.AssignToStep(ctx, dragged.ID, targetZoneID)
	}
}
