package protocol

import (
	"fmt"
	"log/slog"
	"signald-groups/contract"
	"signald-groups/errors"
)

// Client builds outbound requests and hands them to the connection.
// None of its methods return a handle on the answer: signald replies arrive
// later as independent frames and are matched back by group id only.
type Client struct {
	log      *slog.Logger
	conn     contract.IConnection
	settings contract.ISettings
}

func NewClient(log *slog.Logger, conn contract.IConnection, settings contract.ISettings) *Client {
	return &Client{log: log, conn: conn, settings: settings}
}

// Account returns the local account uuid, or ErrLocalAccountUnknown when the
// bridge was set up without one.
func (c *Client) Account() (string, error) {
	account := c.settings.AccountUUID()
	if account == "" {
		return "", errors.ErrLocalAccountUnknown
	}
	return account, nil
}

func (c *Client) RequestGroupList() error {
	account, err := c.Account()
	if err != nil {
		c.log.Debug("Skipping request", "type", TypeListGroups, "error", err)
		return err
	}
	return c.send(NewListGroupsRequest(account), "Could not request groups.")
}

func (c *Client) RequestGroupInfo(groupID string) error {
	account, err := c.Account()
	if err != nil {
		c.log.Debug("Skipping request", "type", TypeGetGroup, "error", err)
		return err
	}
	return c.send(NewGetGroupRequest(account, groupID), "Could not request group info.")
}

func (c *Client) AcceptInvitation(groupID string) error {
	account, err := c.Account()
	if err != nil {
		c.log.Debug("Skipping request", "type", TypeAcceptInvitation, "error", err)
		return err
	}
	return c.send(NewAcceptInvitationRequest(account, groupID),
		"Could not send message for accepting group invitation.")
}

func (c *Client) SendGroupMessage(groupID, body string) error {
	account, err := c.Account()
	if err != nil {
		c.log.Debug("Skipping request", "type", TypeSend, "error", err)
		return err
	}
	return c.send(NewSendRequest(account, groupID, body), "Could not send message.")
}

// send escalates a refused request to a connection-level error.
func (c *Client) send(request any, reason string) error {
	if !c.conn.Send(request) {
		c.log.Error("Request refused by transport", "reason", reason)
		c.conn.Error(reason)
		return fmt.Errorf("%w: %s", errors.ErrNetwork, reason)
	}
	return nil
}
