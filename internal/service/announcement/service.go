package announcement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ScriptedSpythoN/demoos/internal/domain/announcement"
)

// Service owns announcement groups and their feed: media messages,
// hashtags, polls with one vote per member, and emoji reactions.
type Service struct {
	groups        announcement.GroupRepository
	announcements announcement.AnnouncementRepository
	logger        *slog.Logger
}

func NewService(groups announcement.GroupRepository, announcements announcement.AnnouncementRepository, logger *slog.Logger) *Service {
	return &Service{groups: groups, announcements: announcements, logger: logger}
}

// CreateGroup creates a group with the creator as ADMIN and a random
// invite link.
func (s *Service) CreateGroup(ctx context.Context, adminID string, req announcement.CreateGroupRequest) (announcement.Group, error) {
	g, err := s.groups.Create(ctx, announcement.Group{
		Name:       req.Name,
		AdminID:    adminID,
		InviteLink: uuid.NewString(),
	})
	if err != nil {
		return announcement.Group{}, fmt.Errorf("create group: %w", err)
	}
	if err := s.groups.AddMember(ctx, announcement.Member{
		GroupID: g.ID,
		UserID:  adminID,
		Role:    announcement.MemberRoleAdmin,
	}); err != nil {
		return announcement.Group{}, fmt.Errorf("add group admin: %w", err)
	}
	s.logger.Info("announcement group created",
		slog.String("group_id", g.ID),
		slog.String("admin_id", adminID))
	return g, nil
}

func (s *Service) JoinGroup(ctx context.Context, userID string, req announcement.JoinGroupRequest) (announcement.Group, error) {
	g, err := s.groups.GetByInviteLink(ctx, req.InviteLink)
	if err != nil {
		return announcement.Group{}, err
	}
	if err := s.groups.AddMember(ctx, announcement.Member{
		GroupID: g.ID,
		UserID:  userID,
		Role:    announcement.MemberRoleMember,
	}); err != nil {
		return announcement.Group{}, err
	}
	return g, nil
}

func (s *Service) LeaveGroup(ctx context.Context, groupID, userID string) error {
	g, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	if g.AdminID == userID {
		return announcement.ErrOwnerCannotLeave
	}
	return s.groups.RemoveMember(ctx, groupID, userID)
}

func (s *Service) ListGroups(ctx context.Context, userID string) ([]announcement.Group, error) {
	return s.groups.ListByUser(ctx, userID)
}

func (s *Service) ListMembers(ctx context.Context, groupID, userID string) ([]announcement.Member, error) {
	if err := s.requireMember(ctx, groupID, userID); err != nil {
		return nil, err
	}
	return s.groups.ListMembers(ctx, groupID)
}

// UpdateMemberRole promotes or demotes a member. Admin only.
func (s *Service) UpdateMemberRole(ctx context.Context, groupID, actorID string, req announcement.UpdateRoleRequest) error {
	if err := s.requireAdmin(ctx, groupID, actorID); err != nil {
		return err
	}
	role := announcement.MemberRole(req.Role)
	if role != announcement.MemberRoleAdmin && role != announcement.MemberRoleMember {
		return fmt.Errorf("invalid member role %q", req.Role)
	}
	return s.groups.UpdateMemberRole(ctx, groupID, req.UserID, role)
}

func (s *Service) requireMember(ctx context.Context, groupID, userID string) error {
	if _, err := s.groups.GetMember(ctx, groupID, userID); err != nil {
		if errors.Is(err, announcement.ErrNotMember) {
			return announcement.ErrNotMember
		}
		return err
	}
	return nil
}

func (s *Service) requireAdmin(ctx context.Context, groupID, userID string) error {
	m, err := s.groups.GetMember(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if m.Role != announcement.MemberRoleAdmin {
		return announcement.ErrAdminRequired
	}
	return nil
}

// Post publishes an announcement to the group feed. Admin only. POLL
// messages carry their options; tags are upserted into the group's tag
// cloud with usage counts.
func (s *Service) Post(ctx context.Context, groupID, adminID string, req announcement.CreateAnnouncementRequest) (announcement.AnnouncementView, error) {
	if err := s.requireAdmin(ctx, groupID, adminID); err != nil {
		return announcement.AnnouncementView{}, err
	}
	msgType := announcement.MessageType(req.MessageType)
	if !msgType.Valid() {
		return announcement.AnnouncementView{}, fmt.Errorf("invalid message type %q", req.MessageType)
	}
	if msgType == announcement.MessageTypePoll && len(req.PollOptions) < 2 {
		return announcement.AnnouncementView{}, fmt.Errorf("a poll needs at least two options")
	}

	created, err := s.announcements.Create(ctx, announcement.Announcement{
		GroupID:     groupID,
		AdminID:     adminID,
		MessageType: msgType,
		Content:     req.Content,
		FileURL:     req.FileURL,
		Tags:        announcement.Tags(req.Tags),
	})
	if err != nil {
		return announcement.AnnouncementView{}, fmt.Errorf("create announcement: %w", err)
	}

	for _, tag := range req.Tags {
		if err := s.groups.UpsertTag(ctx, groupID, tag); err != nil {
			return announcement.AnnouncementView{}, fmt.Errorf("upsert tag: %w", err)
		}
	}

	view := toView(created, nil, nil)
	if msgType == announcement.MessageTypePoll {
		options, err := s.announcements.CreatePollOptions(ctx, created.ID, req.PollOptions)
		if err != nil {
			return announcement.AnnouncementView{}, fmt.Errorf("create poll options: %w", err)
		}
		for _, opt := range options {
			view.PollOptions = append(view.PollOptions, announcement.PollOptionView{ID: opt.ID, OptionText: opt.OptionText})
		}
	}
	return view, nil
}

// Feed returns the group's announcements with reaction and vote counts.
func (s *Service) Feed(ctx context.Context, groupID, userID string) ([]announcement.AnnouncementView, error) {
	if err := s.requireMember(ctx, groupID, userID); err != nil {
		return nil, err
	}
	list, err := s.announcements.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}

	views := make([]announcement.AnnouncementView, 0, len(list))
	for _, a := range list {
		reactions, err := s.announcements.CountReactions(ctx, a.ID)
		if err != nil {
			return nil, fmt.Errorf("count reactions: %w", err)
		}
		var options []announcement.PollOptionView
		if a.MessageType == announcement.MessageTypePoll {
			options, err = s.pollOptionViews(ctx, a.ID)
			if err != nil {
				return nil, err
			}
		}
		views = append(views, toView(a, reactions, options))
	}
	return views, nil
}

func (s *Service) pollOptionViews(ctx context.Context, announcementID string) ([]announcement.PollOptionView, error) {
	options, err := s.announcements.ListPollOptions(ctx, announcementID)
	if err != nil {
		return nil, fmt.Errorf("list poll options: %w", err)
	}
	votes, err := s.announcements.CountVotes(ctx, announcementID)
	if err != nil {
		return nil, fmt.Errorf("count votes: %w", err)
	}
	views := make([]announcement.PollOptionView, 0, len(options))
	for _, opt := range options {
		views = append(views, announcement.PollOptionView{
			ID:         opt.ID,
			OptionText: opt.OptionText,
			Votes:      votes[opt.ID],
		})
	}
	return views, nil
}

// Delete soft-deletes an announcement. Only the posting admin or the
// group owner may delete.
func (s *Service) Delete(ctx context.Context, announcementID, actorID string) error {
	a, err := s.announcements.GetByID(ctx, announcementID)
	if err != nil {
		return err
	}
	if a.AdminID != actorID {
		g, err := s.groups.GetByID(ctx, a.GroupID)
		if err != nil {
			return err
		}
		if g.AdminID != actorID {
			return announcement.ErrAdminRequired
		}
	}
	return s.announcements.SoftDelete(ctx, announcementID)
}

// Vote casts or moves the member's vote on a poll.
func (s *Service) Vote(ctx context.Context, announcementID, userID string, req announcement.VoteRequest) error {
	a, err := s.announcements.GetByID(ctx, announcementID)
	if err != nil {
		return err
	}
	if a.MessageType != announcement.MessageTypePoll {
		return announcement.ErrNotAPoll
	}
	if err := s.requireMember(ctx, a.GroupID, userID); err != nil {
		return err
	}
	opt, err := s.announcements.GetPollOption(ctx, req.OptionID)
	if err != nil {
		return err
	}
	if opt.AnnouncementID != announcementID {
		return announcement.ErrOptionNotFound
	}
	return s.announcements.UpsertVote(ctx, announcement.PollVote{
		OptionID:       req.OptionID,
		AnnouncementID: announcementID,
		UserID:         userID,
	})
}

// React toggles an emoji reaction. Returns true when the reaction was
// added, false when an identical one was removed.
func (s *Service) React(ctx context.Context, userID string, req announcement.ReactRequest) (bool, error) {
	a, err := s.announcements.GetByID(ctx, req.AnnouncementID)
	if err != nil {
		return false, err
	}
	if err := s.requireMember(ctx, a.GroupID, userID); err != nil {
		return false, err
	}
	return s.announcements.ToggleReaction(ctx, announcement.Reaction{
		AnnouncementID: req.AnnouncementID,
		UserID:         userID,
		Emoji:          req.Emoji,
	})
}

// Tags returns the group's tag cloud ordered by usage.
func (s *Service) Tags(ctx context.Context, groupID, userID string) ([]announcement.Tag, error) {
	if err := s.requireMember(ctx, groupID, userID); err != nil {
		return nil, err
	}
	return s.groups.ListTags(ctx, groupID)
}

func toView(a announcement.Announcement, reactions map[string]int64, options []announcement.PollOptionView) announcement.AnnouncementView {
	if reactions == nil {
		reactions = map[string]int64{}
	}
	return announcement.AnnouncementView{
		ID:          a.ID,
		AdminID:     a.AdminID,
		MessageType: string(a.MessageType),
		Content:     a.Content,
		FileURL:     a.FileURL,
		Tags:        a.Tags,
		Reactions:   reactions,
		PollOptions: options,
		CreatedAt:   a.CreatedAt,
	}
}
