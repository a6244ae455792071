package domain

// Command is a host action executed on the engine loop.
type Command interface {
	Name() string
}

type JoinCommand struct {
	GroupID string
}

func (JoinCommand) Name() string { return "join" }

type SendCommand struct {
	Session SessionID
	Body    string
}

func (SendCommand) Name() string { return "send" }

type CloseCommand struct {
	Session SessionID
}

func (CloseCommand) Name() string { return "close" }

type ListGroupsCommand struct{}

func (ListGroupsCommand) Name() string { return "list" }

type GroupInfoCommand struct {
	GroupID string
}

func (GroupInfoCommand) Name() string { return "info" }

type ListSessionsCommand struct{}

func (ListSessionsCommand) Name() string { return "sessions" }
