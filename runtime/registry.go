package runtime

import (
	"fmt"
	"log/slog"
	"signald-groups/contract"
	"signald-groups/domain"
	"signald-groups/errors"
)

// Registry maps group ids to chat sessions, at most one session per group.
//
// Session ids come from a counter and the mapping is kept in both directions,
// so two groups can never share an id. A group keeps its id for the lifetime of
// the process, even across close and re-enter.
//
// Registry is not safe for concurrent use: it is only driven from the engine loop.
type Registry struct {
	log       *slog.Logger
	store     contract.ISessionStore
	requester contract.IGroupRequester
	byGroup   map[string]domain.SessionID
	byID      map[domain.SessionID]string
	lastID    domain.SessionID
}

func NewRegistry(log *slog.Logger, store contract.ISessionStore, requester contract.IGroupRequester) *Registry {
	return &Registry{
		log:       log,
		store:     store,
		requester: requester,
		byGroup:   make(map[string]domain.SessionID),
		byID:      make(map[domain.SessionID]string),
	}
}

// Enter returns the session of the group, opening it when needed.
// Opening a session asks signald for a fresh snapshot of the group; the session
// is returned right away and gets its title and members once that snapshot lands.
// Entering an already open group does not request anything.
func (r *Registry) Enter(groupID string) (*domain.ChatSession, error) {
	if groupID == "" {
		return nil, errors.ErrMissingGroupID
	}
	if session, ok := r.Find(groupID); ok {
		return session, nil
	}

	session := domain.NewChatSession(r.keyFor(groupID), groupID)
	session.IsOpen = true
	r.store.Register(session)
	r.log.Debug("Opened group chat", "group_id", groupID, "session_id", session.ID)

	if err := r.requester.RequestGroupInfo(groupID); err != nil {
		r.log.Warn("Could not request group info", "group_id", groupID, "error", err)
	}
	return session, nil
}

// Find returns the open session of a group, if any.
func (r *Registry) Find(groupID string) (*domain.ChatSession, bool) {
	id, ok := r.byGroup[groupID]
	if !ok {
		return nil, false
	}
	session, ok := r.store.Find(id)
	if !ok || !session.IsOpen {
		return nil, false
	}
	return session, true
}

// Lookup resolves a host session handle.
func (r *Registry) Lookup(id domain.SessionID) (*domain.ChatSession, bool) {
	return r.store.Find(id)
}

// Close drops the session; the id stays reserved for the group.
func (r *Registry) Close(id domain.SessionID) error {
	session, ok := r.store.Find(id)
	if !ok {
		return fmt.Errorf("%w: %d", errors.ErrUnknownSession, id)
	}
	session.IsOpen = false
	r.store.Remove(id)
	r.log.Debug("Closed group chat", "group_id", session.GroupID, "session_id", id)
	return nil
}

func (r *Registry) Sessions() []*domain.ChatSession {
	return r.store.All()
}

func (r *Registry) keyFor(groupID string) domain.SessionID {
	if id, ok := r.byGroup[groupID]; ok {
		return id
	}
	r.lastID++
	r.byGroup[groupID] = r.lastID
	r.byID[r.lastID] = groupID
	return r.lastID
}

// GroupOf returns the group a session id was allocated for.
func (r *Registry) GroupOf(id domain.SessionID) (string, bool) {
	groupID, ok := r.byID[id]
	return groupID, ok
}
