// Package invitation decides whether a pending group invitation is accepted
// on behalf of the local account.
package invitation

import (
	"log/slog"
	"signald-groups/contract"
	"signald-groups/domain"
	"signald-groups/errors"

	"github.com/samber/lo"
)

type Acceptor interface {
	AcceptInvitation(groupID string) error
}

// Policy is evaluated on every snapshot. While signald keeps listing the account
// as pending, every snapshot sends another acceptance; nothing local changes
// until a later snapshot shows the account as a member.
type Policy struct {
	log      *slog.Logger
	settings contract.ISettings
	acceptor Acceptor
}

func NewPolicy(log *slog.Logger, settings contract.ISettings, acceptor Acceptor) *Policy {
	return &Policy{log: log, settings: settings, acceptor: acceptor}
}

// Decide accepts iff auto-accept is enabled and the local account is pending.
func (p *Policy) Decide(localUUID string, pending []string, autoAccept bool) (domain.InvitationDecision, error) {
	if localUUID == "" {
		return domain.DoNotAccept, errors.ErrLocalAccountUnknown
	}
	if autoAccept && lo.Contains(pending, localUUID) {
		return domain.Accept, nil
	}
	return domain.DoNotAccept, nil
}

// Apply reads the settings again on each call.
func (p *Policy) Apply(groupID string, pending []string) (domain.InvitationDecision, error) {
	decision, err := p.Decide(p.settings.AccountUUID(), pending, p.settings.AutoAcceptInvitations())
	if err != nil {
		p.log.Debug("Invitation policy skipped", "group_id", groupID, "error", err)
		return decision, err
	}
	if decision != domain.Accept {
		return decision, nil
	}
	p.log.Info("Accepting group invitation", "group_id", groupID)
	return decision, p.acceptor.AcceptInvitation(groupID)
}
