package services

import (
	"log/slog"
	"signald-groups/contract"
	"signald-groups/domain"
	"signald-groups/errors"
	"signald-groups/runtime"
	"time"
)

type IChatService interface {
	Enter(groupID string) (*domain.ChatSession, error)
	JoinChat(components map[string]string) (*domain.ChatSession, error)
	Send(id domain.SessionID, body string) domain.SendOutcome
	Close(id domain.SessionID) error
	Sessions() []*domain.ChatSession
}

type MessageSender interface {
	SendGroupMessage(groupID, body string) error
}

type ChatService struct {
	log      *slog.Logger
	registry *runtime.Registry
	store    contract.ISessionStore
	sender   MessageSender
	settings contract.ISettings
}

func NewChatService(
	log *slog.Logger,
	registry *runtime.Registry,
	store contract.ISessionStore,
	sender MessageSender,
	settings contract.ISettings,
) *ChatService {
	return &ChatService{log: log, registry: registry, store: store, sender: sender, settings: settings}
}

func (s *ChatService) Enter(groupID string) (*domain.ChatSession, error) {
	return s.registry.Enter(groupID)
}

// Send posts body to the group behind the session.
// With delayed local echo the message is shown once signald reflects it back,
// otherwise it is written in the session right away.
func (s *ChatService) Send(id domain.SessionID, body string) domain.SendOutcome {
	session, ok := s.registry.Lookup(id)
	if !ok || session.GroupID == "" {
		s.log.Warn("Cannot send, session has no group", "session_id", id, "error", errors.ErrNoSuchAddress)
		return domain.OutcomeNoSuchAddress
	}

	if err := s.sender.SendGroupMessage(session.GroupID, body); err != nil {
		s.log.Warn("Could not send group message", "group_id", session.GroupID, "error", err)
		return domain.OutcomeSendFailed
	}

	if s.settings.DelayedLocalEcho() {
		return domain.OutcomeDelayedEcho
	}
	echo := domain.Message{
		GroupID:   session.GroupID,
		SenderID:  s.settings.AccountUUID(),
		Content:   body,
		Flags:     domain.FlagSend,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Append(id, echo); err != nil {
		s.log.Warn("Local echo failed", "session_id", id, "error", err)
	}
	return domain.OutcomeSent
}

func (s *ChatService) Close(id domain.SessionID) error {
	return s.registry.Close(id)
}

func (s *ChatService) Sessions() []*domain.ChatSession {
	return s.registry.Sessions()
}

// ChatInfo describes the host's join dialog: a single required group name.
func (s *ChatService) ChatInfo() []domain.ChatInfoEntry {
	return []domain.ChatInfoEntry{{Label: "_Group Name:", Identifier: domain.ChatNameKey, Required: true}}
}

func (s *ChatService) ChatInfoDefaults(chatName string) map[string]string {
	defaults := make(map[string]string)
	if chatName != "" {
		defaults[domain.ChatNameKey] = chatName
	}
	return defaults
}

func (s *ChatService) ChatName(components map[string]string) string {
	return components[domain.ChatNameKey]
}

// JoinChat returns nil when the components carry no group name.
func (s *ChatService) JoinChat(components map[string]string) (*domain.ChatSession, error) {
	groupID := s.ChatName(components)
	if groupID == "" {
		return nil, nil
	}
	return s.Enter(groupID)
}

// SetChatTopic does nothing. The host only offers renaming when this hook exists.
func (s *ChatService) SetChatTopic(id domain.SessionID, topic string) {
	s.log.Debug("Ignoring chat topic", "session_id", id, "topic", topic)
}
