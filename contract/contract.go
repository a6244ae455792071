//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"signald-groups/domain"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging during supervision.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IConnection is the signald connection as the core sees it.
// Send only tells whether the request was accepted for sending, never whether it was delivered.
// Error raises a connection-level network error, the connection is unusable afterwards.
type IConnection interface {
	Send(request any) bool
	Error(reason string)
}

// IGroupRequester asks signald for a fresh snapshot of one group.
// The answer arrives later as an independent frame, there is no correlation.
type IGroupRequester interface {
	RequestGroupInfo(groupID string) error
}

// ISettings is read on every use so that changes are picked up without restart.
type ISettings interface {
	AccountUUID() string
	AutoAcceptInvitations() bool
	DelayedLocalEcho() bool
}

type IDirectoryStore interface {
	FindGrouping(ctx context.Context, label string) (*domain.Grouping, error)
	AddGrouping(ctx context.Context, grouping domain.Grouping) error
	FindChat(ctx context.Context, id string) (*domain.DirectoryEntry, error)
	AddChat(ctx context.Context, entry domain.DirectoryEntry) error
	SetAlias(ctx context.Context, id, alias string) error
	ListChats(ctx context.Context) ([]domain.DirectoryEntry, error)
}

type ISessionStore interface {
	Find(id domain.SessionID) (*domain.ChatSession, bool)
	Register(session *domain.ChatSession)
	Remove(id domain.SessionID)
	Append(id domain.SessionID, message domain.Message) error
	Participants(id domain.SessionID) []string
	AddParticipant(id domain.SessionID, uuid string, flag domain.ParticipantFlag) error
	All() []*domain.ChatSession
}

type IFormatter interface {
	Format(message domain.GroupMessage) (content string, hasImages bool, err error)
}
