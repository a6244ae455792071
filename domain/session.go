package domain

import (
	"sort"
)

// SessionID is the numeric handle the host uses to address an open chat.
type SessionID int

type ParticipantFlag uint

const (
	ParticipantFlagNone ParticipantFlag = 0
)

// ChatSession is the local live representation of a group conversation.
type ChatSession struct {
	ID           SessionID
	GroupID      string
	IsOpen       bool
	Participants map[string]ParticipantFlag
	messages     []Message
}

func NewChatSession(id SessionID, groupID string) *ChatSession {
	return &ChatSession{
		ID:           id,
		GroupID:      groupID,
		Participants: make(map[string]ParticipantFlag),
	}
}

func (s *ChatSession) HasParticipant(uuid string) bool {
	_, ok := s.Participants[uuid]
	return ok
}

// AddParticipant reports whether the participant was actually added.
func (s *ChatSession) AddParticipant(uuid string, flag ParticipantFlag) bool {
	if s.HasParticipant(uuid) {
		return false
	}
	s.Participants[uuid] = flag
	return true
}

// ParticipantIDs returns the participants sorted, for stable display and comparisons.
func (s *ChatSession) ParticipantIDs() []string {
	ids := make([]string, 0, len(s.Participants))
	for id := range s.Participants {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *ChatSession) Write(message Message) {
	s.messages = append(s.messages, message)
}

func (s *ChatSession) Messages() []Message {
	return s.messages
}
