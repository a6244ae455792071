package domain

type InvitationDecision int

const (
	DoNotAccept InvitationDecision = iota
	Accept
)

func (d InvitationDecision) String() string {
	if d == Accept {
		return "accept"
	}
	return "do-not-accept"
}
