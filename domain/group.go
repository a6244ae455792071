// Package domain contains core concepts of the group bridge.
// This file defines signald v2 group snapshots and their members.
// No runtime, network, or storage logic should be added here.
package domain

import (
	"fmt"
	"signald-groups/errors"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

// Member is one entry of a group's members or pendingMembers list.
// signald sends more fields (role, joinedAtRevision...) that are not needed here.
type Member struct {
	UUID string `json:"uuid"`
}

// GroupSnapshot is a point-in-time description of a group as sent by signald.
// It is ephemeral: a newer snapshot for the same ID fully supersedes an older one.
type GroupSnapshot struct {
	ID             string   `json:"id" validate:"required"`
	Title          string   `json:"title"`
	Members        []Member `json:"members"`
	PendingMembers []Member `json:"pendingMembers"`
}

// Validate rejects snapshots that cannot be matched to a group.
func (g GroupSnapshot) Validate() error {
	if err := validate.Struct(g); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrMissingGroupID, err)
	}
	return nil
}

func (g GroupSnapshot) MemberUUIDs() []string {
	return MembersToUUIDs(g.Members)
}

func (g GroupSnapshot) PendingUUIDs() []string {
	return MembersToUUIDs(g.PendingMembers)
}

// MembersToUUIDs keeps the order of first appearance, drops members without uuid
// and collapses duplicates.
func MembersToUUIDs(members []Member) []string {
	uuids := lo.FilterMap(members, func(m Member, _ int) (string, bool) {
		return m.UUID, m.UUID != ""
	})
	return lo.Uniq(uuids)
}
