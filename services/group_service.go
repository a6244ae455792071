package services

import (
	"context"
	"log/slog"
	"signald-groups/directory"
	"signald-groups/domain"
	"signald-groups/errors"
	"signald-groups/invitation"
	"signald-groups/membership"
)

type IGroupService interface {
	ProcessSnapshot(ctx context.Context, snapshot domain.GroupSnapshot) error
	ProcessSnapshotList(ctx context.Context, snapshots []domain.GroupSnapshot) error
	RequestGroupList() error
	RequestGroupInfo(groupID string) error
}

type GroupRequester interface {
	RequestGroupList() error
	RequestGroupInfo(groupID string) error
}

// GroupService applies group snapshots to the directory, the pending invitation
// and the open chat sessions. The steps are independent: a failing step does not
// undo or skip the others.
type GroupService struct {
	log        *slog.Logger
	requester  GroupRequester
	policy     *invitation.Policy
	directory  *directory.Sync
	reconciler *membership.Reconciler
}

func NewGroupService(
	log *slog.Logger,
	requester GroupRequester,
	policy *invitation.Policy,
	directory *directory.Sync,
	reconciler *membership.Reconciler,
) *GroupService {
	return &GroupService{
		log:        log,
		requester:  requester,
		policy:     policy,
		directory:  directory,
		reconciler: reconciler,
	}
}

func (s *GroupService) ProcessSnapshot(ctx context.Context, snapshot domain.GroupSnapshot) error {
	if err := snapshot.Validate(); err != nil {
		s.log.Warn("Rejecting group snapshot", "title", snapshot.Title, "error", err)
		return err
	}
	s.log.Debug("Processing group snapshot",
		"group_id", snapshot.ID,
		"title", snapshot.Title,
		"members", len(snapshot.Members),
		"pending", len(snapshot.PendingMembers))

	var errs []error
	if _, err := s.policy.Apply(snapshot.ID, snapshot.PendingUUIDs()); err != nil &&
		!errors.Is(err, errors.ErrLocalAccountUnknown) {
		errs = append(errs, err)
	}
	if _, err := s.directory.Upsert(ctx, snapshot.ID, snapshot.Title); err != nil {
		s.log.Error("Could not update directory", "group_id", snapshot.ID, "error", err)
		errs = append(errs, err)
	}
	s.reconciler.Reconcile(snapshot.ID, snapshot.MemberUUIDs())
	return errors.Join(errs...)
}

// ProcessSnapshotList handles the answer to list_groups in order. A bad entry is
// skipped and reported in the returned error.
func (s *GroupService) ProcessSnapshotList(ctx context.Context, snapshots []domain.GroupSnapshot) error {
	s.log.Debug("Processing group list", "count", len(snapshots))
	var errs []error
	for _, snapshot := range snapshots {
		if err := s.ProcessSnapshot(ctx, snapshot); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *GroupService) RequestGroupList() error {
	return s.requester.RequestGroupList()
}

func (s *GroupService) RequestGroupInfo(groupID string) error {
	if groupID == "" {
		return errors.ErrMissingGroupID
	}
	return s.requester.RequestGroupInfo(groupID)
}
