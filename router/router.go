// Package router writes inbound group messages into their chat session.
package router

import (
	"context"
	"fmt"
	"log/slog"
	"signald-groups/contract"
	"signald-groups/domain"
	"signald-groups/errors"
	"signald-groups/runtime"
)

type Router struct {
	log       *slog.Logger
	registry  *runtime.Registry
	store     contract.ISessionStore
	formatter contract.IFormatter
}

func NewRouter(log *slog.Logger, registry *runtime.Registry, store contract.ISessionStore, formatter contract.IFormatter) *Router {
	return &Router{log: log, registry: registry, store: store, formatter: formatter}
}

// Route opens the session when needed, then appends the formatted message.
// A message that cannot be formatted is dropped, nothing partial is written.
func (r *Router) Route(_ context.Context, message domain.GroupMessage) error {
	session, err := r.registry.Enter(message.GroupID)
	if err != nil {
		return err
	}

	content, hasImages, err := r.formatter.Format(message)
	if err != nil {
		r.log.Warn("Dropping group message", "group_id", message.GroupID, "sender", message.SenderID, "error", err)
		return fmt.Errorf("%w: %v", errors.ErrFormatFailed, err)
	}

	flags := domain.FlagRecv
	if message.IsSelfEcho {
		flags = domain.FlagsSelfEcho
	}
	if hasImages {
		flags |= domain.FlagImages
	}

	return r.store.Append(session.ID, domain.Message{
		GroupID:   message.GroupID,
		SenderID:  message.SenderID,
		Content:   content,
		Flags:     flags,
		CreatedAt: message.Timestamp,
	})
}
