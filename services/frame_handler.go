package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"signald-groups/domain"
	"signald-groups/errors"
	"signald-groups/protocol"
	"signald-groups/router"
)

// FrameHandler dispatches signald frames by type. It runs on the engine loop.
type FrameHandler struct {
	log    *slog.Logger
	groups IGroupService
	router *router.Router
}

func NewFrameHandler(log *slog.Logger, groups IGroupService, router *router.Router) *FrameHandler {
	return &FrameHandler{log: log, groups: groups, router: router}
}

func (h *FrameHandler) HandleFrame(ctx context.Context, line []byte) error {
	frame, err := protocol.DecodeFrame(line)
	if err != nil {
		return err
	}
	if frame.HasError() {
		h.log.Warn("signald returned an error",
			"type", frame.Type,
			"error_type", frame.ErrorType,
			"error", string(frame.Error))
		return nil
	}

	switch frame.Type {
	case protocol.TypeListGroups:
		return h.handleGroupList(ctx, frame.Data)
	case protocol.TypeGetGroup, protocol.TypeAcceptInvitation:
		snapshot, err := protocol.DecodeGroup(frame.Data)
		if err != nil {
			return fmt.Errorf("decode %s: %w", frame.Type, err)
		}
		return h.groups.ProcessSnapshot(ctx, snapshot)
	case protocol.TypeIncomingMessage:
		return h.handleIncomingMessage(ctx, frame.Data)
	default:
		h.log.Debug("Ignoring frame", "type", frame.Type)
		return nil
	}
}

func (h *FrameHandler) handleGroupList(ctx context.Context, data json.RawMessage) error {
	entries, err := protocol.DecodeGroupList(data)
	if err != nil {
		return err
	}
	var errs []error
	snapshots := make([]domain.GroupSnapshot, 0, len(entries))
	for _, entry := range entries {
		var snapshot domain.GroupSnapshot
		if err := json.Unmarshal(entry, &snapshot); err != nil {
			h.log.Warn("Skipping malformed group", "error", err)
			errs = append(errs, fmt.Errorf("%w: %v", errors.ErrMalformedFrame, err))
			continue
		}
		snapshots = append(snapshots, snapshot)
	}
	errs = append(errs, h.groups.ProcessSnapshotList(ctx, snapshots))
	return errors.Join(errs...)
}

func (h *FrameHandler) handleIncomingMessage(ctx context.Context, data json.RawMessage) error {
	envelope, err := protocol.DecodeIncomingMessage(data)
	if err != nil {
		return err
	}
	message, ok := envelope.GroupMessage()
	if !ok {
		h.log.Debug("Ignoring non group message", "source", envelope.Source.UUID)
		return nil
	}
	return h.router.Route(ctx, message)
}
