package announcement

import "time"

type CreateGroupRequest struct {
	Name string `json:"name"`
}

type JoinGroupRequest struct {
	InviteLink string `json:"invite_link"`
}

type UpdateRoleRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type CreateAnnouncementRequest struct {
	MessageType string   `json:"message_type"`
	Content     *string  `json:"content,omitempty"`
	FileURL     *string  `json:"file_url,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	PollOptions []string `json:"poll_options,omitempty"`
}

type ReactRequest struct {
	AnnouncementID string `json:"announcement_id"`
	Emoji          string `json:"emoji"`
}

type VoteRequest struct {
	OptionID string `json:"option_id"`
}

type PollOptionView struct {
	ID         string `json:"id"`
	OptionText string `json:"option_text"`
	Votes      int64  `json:"votes"`
}

type AnnouncementView struct {
	ID          string            `json:"id"`
	AdminID     string            `json:"admin_id"`
	MessageType string            `json:"message_type"`
	Content     *string           `json:"content,omitempty"`
	FileURL     *string           `json:"file_url,omitempty"`
	Tags        []string          `json:"tags"`
	Reactions   map[string]int64  `json:"reactions"`
	PollOptions []PollOptionView  `json:"poll_options,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}
