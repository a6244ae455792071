package services

import (
	"context"
	"fmt"
	"log/slog"
	"signald-groups/contract"
	"signald-groups/domain"
	"signald-groups/errors"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ParseCommand reads one console line such as "/send 3 hello there".
func ParseCommand(line string) (domain.Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty line", errors.ErrUnknownCommand)
	}
	name := strings.TrimPrefix(fields[0], "/")
	args := fields[1:]

	switch name {
	case "join":
		if len(args) != 1 {
			return nil, fmt.Errorf("usage: /join <groupID>")
		}
		return domain.JoinCommand{GroupID: args[0]}, nil
	case "send":
		if len(args) < 2 {
			return nil, fmt.Errorf("usage: /send <sessionID> <text>")
		}
		id, err := parseSessionID(args[0])
		if err != nil {
			return nil, err
		}
		rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0]))
		body := strings.TrimSpace(strings.TrimPrefix(rest, args[0]))
		return domain.SendCommand{Session: id, Body: body}, nil
	case "close":
		if len(args) != 1 {
			return nil, fmt.Errorf("usage: /close <sessionID>")
		}
		id, err := parseSessionID(args[0])
		if err != nil {
			return nil, err
		}
		return domain.CloseCommand{Session: id}, nil
	case "list":
		return domain.ListGroupsCommand{}, nil
	case "info":
		if len(args) != 1 {
			return nil, fmt.Errorf("usage: /info <groupID>")
		}
		return domain.GroupInfoCommand{GroupID: args[0]}, nil
	case "sessions":
		return domain.ListSessionsCommand{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrUnknownCommand, fields[0])
	}
}

func parseSessionID(raw string) (domain.SessionID, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid session id %q: %w", raw, err)
	}
	return domain.SessionID(id), nil
}

// CommandHandler executes console commands on the engine loop and returns the text to print.
type CommandHandler struct {
	log       *slog.Logger
	chats     *ChatService
	groups    IGroupService
	directory contract.IDirectoryStore
}

func NewCommandHandler(log *slog.Logger, chats *ChatService, groups IGroupService, directory contract.IDirectoryStore) *CommandHandler {
	return &CommandHandler{log: log, chats: chats, groups: groups, directory: directory}
}

func (h *CommandHandler) HandleCommand(ctx context.Context, cmd domain.Command) (string, error) {
	h.log.Debug("Handling command", "name", cmd.Name())
	switch c := cmd.(type) {
	case domain.JoinCommand:
		session, err := h.chats.Enter(c.GroupID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("session %d opened for %s", session.ID, c.GroupID), nil
	case domain.SendCommand:
		outcome := h.chats.Send(c.Session, c.Body)
		switch outcome {
		case domain.OutcomeNoSuchAddress:
			return "", fmt.Errorf("%w: session %d", errors.ErrNoSuchAddress, c.Session)
		case domain.OutcomeSendFailed:
			return "", fmt.Errorf("%w: session %d", errors.ErrNetwork, c.Session)
		case domain.OutcomeDelayedEcho:
			return "sent, waiting for echo", nil
		default:
			return "sent", nil
		}
	case domain.CloseCommand:
		if err := h.chats.Close(c.Session); err != nil {
			return "", err
		}
		return fmt.Sprintf("session %d closed", c.Session), nil
	case domain.ListGroupsCommand:
		return h.listGroups(ctx)
	case domain.GroupInfoCommand:
		if err := h.groups.RequestGroupInfo(c.GroupID); err != nil {
			return "", err
		}
		return fmt.Sprintf("requested %s", c.GroupID), nil
	case domain.ListSessionsCommand:
		return h.listSessions(), nil
	default:
		return "", fmt.Errorf("%w: %s", errors.ErrUnknownCommand, cmd.Name())
	}
}

// listGroups prints what the directory already knows and asks signald for a refresh.
func (h *CommandHandler) listGroups(ctx context.Context) (string, error) {
	if err := h.groups.RequestGroupList(); err != nil {
		return "", err
	}
	entries, err := h.directory.ListChats(ctx)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "no groups yet", nil
	}
	lines := lo.Map(entries, func(e domain.DirectoryEntry, _ int) string {
		return fmt.Sprintf("%s\t%s", e.ID, e.DisplayName())
	})
	return strings.Join(lines, "\n"), nil
}

func (h *CommandHandler) listSessions() string {
	sessions := h.chats.Sessions()
	if len(sessions) == 0 {
		return "no open sessions"
	}
	lines := lo.Map(sessions, func(s *domain.ChatSession, _ int) string {
		return fmt.Sprintf("%d\t%s\t%d participants\t%d messages",
			s.ID, s.GroupID, len(s.Participants), len(s.Messages()))
	})
	return strings.Join(lines, "\n")
}
