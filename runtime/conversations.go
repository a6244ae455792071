package runtime

import (
	"fmt"
	"log/slog"
	"signald-groups/domain"
	"signald-groups/errors"
	"signald-groups/repositories"
	"sort"

	"github.com/google/uuid"
)

// Conversations is the in-process session store. Sessions live as long as the
// process does, or until the host closes them. Written messages are also kept
// in the history repository when one is configured.
type Conversations struct {
	log      *slog.Logger
	sessions map[domain.SessionID]*domain.ChatSession
	history  repositories.IMessageRepository
}

func NewConversations(log *slog.Logger, history repositories.IMessageRepository) *Conversations {
	return &Conversations{
		log:      log,
		sessions: make(map[domain.SessionID]*domain.ChatSession),
		history:  history,
	}
}

func (c *Conversations) Find(id domain.SessionID) (*domain.ChatSession, bool) {
	session, ok := c.sessions[id]
	return session, ok
}

func (c *Conversations) Register(session *domain.ChatSession) {
	c.sessions[session.ID] = session
}

func (c *Conversations) Remove(id domain.SessionID) {
	delete(c.sessions, id)
}

// Append writes the message in the session first; a history failure is
// returned but the message stays visible.
func (c *Conversations) Append(id domain.SessionID, message domain.Message) error {
	session, ok := c.sessions[id]
	if !ok {
		return fmt.Errorf("%w: %d", errors.ErrUnknownSession, id)
	}
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	if message.GroupID == "" {
		message.GroupID = session.GroupID
	}
	session.Write(message)

	if c.history == nil || message.GroupID == "" {
		return nil
	}
	if err := c.history.StoreMessage(toDiskMessage(message)); err != nil {
		return fmt.Errorf("store message in history: %w", err)
	}
	return nil
}

func (c *Conversations) Participants(id domain.SessionID) []string {
	session, ok := c.sessions[id]
	if !ok {
		return nil
	}
	return session.ParticipantIDs()
}

func (c *Conversations) AddParticipant(id domain.SessionID, uuid string, flag domain.ParticipantFlag) error {
	session, ok := c.sessions[id]
	if !ok {
		return fmt.Errorf("%w: %d", errors.ErrUnknownSession, id)
	}
	session.AddParticipant(uuid, flag)
	return nil
}

// All returns the sessions ordered by id.
func (c *Conversations) All() []*domain.ChatSession {
	sessions := make([]*domain.ChatSession, 0, len(c.sessions))
	for _, session := range c.sessions {
		sessions = append(sessions, session)
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].ID < sessions[j].ID })
	return sessions
}

func toDiskMessage(message domain.Message) repositories.DiskMessage {
	return repositories.DiskMessage{
		ID:      message.ID,
		GroupID: message.GroupID,
		Author:  message.SenderID,
		Content: message.Content,
		Flags:   uint(message.Flags),
		At:      message.CreatedAt,
	}
}
