package announcement

import "context"

type GroupRepository interface {
	Create(ctx context.Context, g Group) (Group, error)
	GetByID(ctx context.Context, id string) (Group, error)
	GetByInviteLink(ctx context.Context, link string) (Group, error)
	ListByUser(ctx context.Context, userID string) ([]Group, error)

	AddMember(ctx context.Context, m Member) error
	GetMember(ctx context.Context, groupID, userID string) (Member, error)
	ListMembers(ctx context.Context, groupID string) ([]Member, error)
	UpdateMemberRole(ctx context.Context, groupID, userID string, role MemberRole) error
	RemoveMember(ctx context.Context, groupID, userID string) error

	UpsertTag(ctx context.Context, groupID, name string) error
	ListTags(ctx context.Context, groupID string) ([]Tag, error)
}

type AnnouncementRepository interface {
	Create(ctx context.Context, a Announcement) (Announcement, error)
	GetByID(ctx context.Context, id string) (Announcement, error)
	ListByGroup(ctx context.Context, groupID string) ([]Announcement, error)
	SoftDelete(ctx context.Context, id string) error

	CreatePollOptions(ctx context.Context, announcementID string, options []string) ([]PollOption, error)
	GetPollOption(ctx context.Context, optionID string) (PollOption, error)
	ListPollOptions(ctx context.Context, announcementID string) ([]PollOption, error)
	CountVotes(ctx context.Context, announcementID string) (map[string]int64, error)
	// UpsertVote records the user's vote, replacing any prior vote on the
	// same poll.
	UpsertVote(ctx context.Context, v PollVote) error

	// ToggleReaction adds the reaction, or removes it if the same user
	// already reacted with the same emoji. Returns true when added.
	ToggleReaction(ctx context.Context, r Reaction) (bool, error)
	CountReactions(ctx context.Context, announcementID string) (map[string]int64, error)
}
