// Package membership projects snapshot members into open chat sessions.
package membership

import (
	"log/slog"
	"signald-groups/contract"
	"signald-groups/domain"
	"signald-groups/runtime"

	"github.com/samber/lo"
)

// Reconciler only ever adds participants. Members who left the group stay
// visible until the session is closed and opened again.
type Reconciler struct {
	log      *slog.Logger
	registry *runtime.Registry
	store    contract.ISessionStore
}

func NewReconciler(log *slog.Logger, registry *runtime.Registry, store contract.ISessionStore) *Reconciler {
	return &Reconciler{log: log, registry: registry, store: store}
}

// Reconcile returns the participants it added. Groups without an open session are ignored.
func (r *Reconciler) Reconcile(groupID string, members []string) []string {
	session, ok := r.registry.Find(groupID)
	if !ok {
		return nil
	}
	present := lo.SliceToMap(r.store.Participants(session.ID), func(uuid string) (string, struct{}) {
		return uuid, struct{}{}
	})

	var added []string
	for _, uuid := range members {
		if _, ok := present[uuid]; ok {
			continue
		}
		if err := r.store.AddParticipant(session.ID, uuid, domain.ParticipantFlagNone); err != nil {
			r.log.Warn("Could not add participant", "group_id", groupID, "uuid", uuid, "error", err)
			continue
		}
		present[uuid] = struct{}{}
		added = append(added, uuid)
	}
	if len(added) > 0 {
		r.log.Debug("Participants added", "group_id", groupID, "count", len(added))
	}
	return added
}
