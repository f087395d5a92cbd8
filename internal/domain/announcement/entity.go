package announcement

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type MessageType string

const (
	MessageTypeText  MessageType = "TEXT"
	MessageTypeImage MessageType = "IMAGE"
	MessageTypePDF   MessageType = "PDF"
	MessageTypeAudio MessageType = "AUDIO"
	MessageTypePoll  MessageType = "POLL"
)

func (m MessageType) Valid() bool {
	switch m {
	case MessageTypeText, MessageTypeImage, MessageTypePDF, MessageTypeAudio, MessageTypePoll:
		return true
	}
	return false
}

type MemberRole string

const (
	MemberRoleAdmin  MemberRole = "ADMIN"
	MemberRoleMember MemberRole = "MEMBER"
)

type Group struct {
	ID         string
	Name       string
	AdminID    string
	InviteLink string
	CreatedAt  time.Time
}

type Member struct {
	ID       string
	GroupID  string
	UserID   string
	Role     MemberRole
	JoinedAt time.Time
}

type Tag struct {
	ID         string
	GroupID    string
	Name       string
	UsageCount int
}

// Tags is the per-announcement tag list, stored as JSONB.
type Tags []string

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(t)
}

func (t *Tags) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan Tags: invalid type")
	}
	return json.Unmarshal(bytes, t)
}

type Announcement struct {
	ID          string
	GroupID     string
	AdminID     string
	MessageType MessageType
	Content     *string
	FileURL     *string
	Tags        Tags
	CreatedAt   time.Time
	IsDeleted   bool
}

type PollOption struct {
	ID             string
	AnnouncementID string
	OptionText     string
}

type PollVote struct {
	ID             string
	OptionID       string
	AnnouncementID string
	UserID         string
}

type Reaction struct {
	ID             string
	AnnouncementID string
	UserID         string
	Emoji          string
}
