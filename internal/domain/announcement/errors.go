package announcement

import "errors"

var (
	ErrGroupNotFound        = errors.New("group not found")
	ErrInvalidInviteLink    = errors.New("invalid invite link")
	ErrAlreadyMember        = errors.New("already a member of this group")
	ErrNotMember            = errors.New("not a member of this group")
	ErrAdminRequired        = errors.New("group admin access required")
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrNotAPoll             = errors.New("announcement is not a poll")
	ErrOptionNotFound       = errors.New("poll option not found")
	ErrOwnerCannotLeave     = errors.New("group owner cannot leave the group")
)
