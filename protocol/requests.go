// Package protocol holds the signald wire records: the outbound requests this
// bridge is allowed to send and the inbound frames it understands.
package protocol

const (
	TypeListGroups       = "list_groups"
	TypeGetGroup         = "get_group"
	TypeAcceptInvitation = "accept_invitation"
	TypeSend             = "send"
	TypeIncomingMessage  = "IncomingMessage"
)

// Request field sets are closed: nothing else is ever serialized.

type ListGroupsRequest struct {
	Type    string `json:"type"`
	Account string `json:"account"`
}

type GetGroupRequest struct {
	Type    string `json:"type"`
	Account string `json:"account"`
	GroupID string `json:"groupID"`
}

type AcceptInvitationRequest struct {
	Type    string `json:"type"`
	Account string `json:"account"`
	GroupID string `json:"groupID"`
}

type SendRequest struct {
	Type             string `json:"type"`
	Account          string `json:"account"`
	RecipientGroupID string `json:"recipientGroupId"`
	MessageBody      string `json:"messageBody"`
}

func NewListGroupsRequest(account string) ListGroupsRequest {
	return ListGroupsRequest{Type: TypeListGroups, Account: account}
}

func NewGetGroupRequest(account, groupID string) GetGroupRequest {
	return GetGroupRequest{Type: TypeGetGroup, Account: account, GroupID: groupID}
}

func NewAcceptInvitationRequest(account, groupID string) AcceptInvitationRequest {
	return AcceptInvitationRequest{Type: TypeAcceptInvitation, Account: account, GroupID: groupID}
}

func NewSendRequest(account, groupID, body string) SendRequest {
	return SendRequest{Type: TypeSend, Account: account, RecipientGroupID: groupID, MessageBody: body}
}
