package postgresql

import (
	"context"
	"errors"

	"github.com/ScriptedSpythoN/demoos/internal/domain/announcement"
	"github.com/ScriptedSpythoN/demoos/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type announcementRepositoryImpl struct {
	db *database.DB
}

func NewAnnouncementRepository(db *database.DB) announcement.AnnouncementRepository {
	return &announcementRepositoryImpl{db: db}
}

const announcementColumns = `id, group_id, admin_id, message_type, content, file_url, tags, created_at, is_deleted`

func scanAnnouncement(row pgx.Row) (announcement.Announcement, error) {
	var a announcement.Announcement
	err := row.Scan(&a.ID, &a.GroupID, &a.AdminID, &a.MessageType, &a.Content, &a.FileURL, &a.Tags, &a.CreatedAt, &a.IsDeleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return announcement.Announcement{}, announcement.ErrAnnouncementNotFound
	}
	return a, err
}

func (r *announcementRepositoryImpl) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO announcements (id, group_id, admin_id, message_type, content, file_url, tags, created_at, is_deleted)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), FALSE)
		RETURNING ` + announcementColumns

	return scanAnnouncement(q.QueryRow(ctx, query, a.GroupID, a.AdminID, a.MessageType, a.Content, a.FileURL, a.Tags))
}

func (r *announcementRepositoryImpl) GetByID(ctx context.Context, id string) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)
	return scanAnnouncement(q.QueryRow(ctx,
		`SELECT `+announcementColumns+` FROM announcements WHERE id = $1 AND NOT is_deleted`, id))
}

func (r *announcementRepositoryImpl) ListByGroup(ctx context.Context, groupID string) ([]announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+announcementColumns+`
		FROM announcements
		WHERE group_id = $1 AND NOT is_deleted
		ORDER BY created_at DESC
	`, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []announcement.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}

func (r *announcementRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `UPDATE announcements SET is_deleted = TRUE WHERE id = $1 AND NOT is_deleted`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return announcement.ErrAnnouncementNotFound
	}
	return nil
}

func (r *announcementRepositoryImpl) CreatePollOptions(ctx context.Context, announcementID string, options []string) ([]announcement.PollOption, error) {
	q := GetQuerier(ctx, r.db)

	created := make([]announcement.PollOption, 0, len(options))
	for _, text := range options {
		var opt announcement.PollOption
		err := q.QueryRow(ctx, `
			INSERT INTO announce_poll_options (id, announcement_id, option_text)
			VALUES (uuidv7(), $1, $2)
			RETURNING id, announcement_id, option_text
		`, announcementID, text).Scan(&opt.ID, &opt.AnnouncementID, &opt.OptionText)
		if err != nil {
			return nil, err
		}
		created = append(created, opt)
	}
	return created, nil
}

func (r *announcementRepositoryImpl) GetPollOption(ctx context.Context, optionID string) (announcement.PollOption, error) {
	q := GetQuerier(ctx, r.db)

	var opt announcement.PollOption
	err := q.QueryRow(ctx, `
		SELECT id, announcement_id, option_text
		FROM announce_poll_options
		WHERE id = $1
	`, optionID).Scan(&opt.ID, &opt.AnnouncementID, &opt.OptionText)
	if errors.Is(err, pgx.ErrNoRows) {
		return announcement.PollOption{}, announcement.ErrOptionNotFound
	}
	return opt, err
}

func (r *announcementRepositoryImpl) ListPollOptions(ctx context.Context, announcementID string) ([]announcement.PollOption, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, announcement_id, option_text
		FROM announce_poll_options
		WHERE announcement_id = $1
		ORDER BY id
	`, announcementID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []announcement.PollOption
	for rows.Next() {
		var opt announcement.PollOption
		if err := rows.Scan(&opt.ID, &opt.AnnouncementID, &opt.OptionText); err != nil {
			return nil, err
		}
		options = append(options, opt)
	}
	return options, rows.Err()
}

func (r *announcementRepositoryImpl) CountVotes(ctx context.Context, announcementID string) (map[string]int64, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT option_id, COUNT(*)
		FROM announce_poll_votes
		WHERE announcement_id = $1
		GROUP BY option_id
	`, announcementID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var optionID string
		var count int64
		if err := rows.Scan(&optionID, &count); err != nil {
			return nil, err
		}
		counts[optionID] = count
	}
	return counts, rows.Err()
}

func (r *announcementRepositoryImpl) UpsertVote(ctx context.Context, v announcement.PollVote) error {
	q := GetQuerier(ctx, r.db)

	// One vote per user per poll; re-voting moves the vote.
	query := `
		INSERT INTO announce_poll_votes (id, option_id, announcement_id, user_id)
		VALUES (uuidv7(), $1, $2, $3)
		ON CONFLICT (announcement_id, user_id)
		DO UPDATE SET option_id = EXCLUDED.option_id
	`
	_, err := q.Exec(ctx, query, v.OptionID, v.AnnouncementID, v.UserID)
	return err
}

func (r *announcementRepositoryImpl) ToggleReaction(ctx context.Context, reaction announcement.Reaction) (bool, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		DELETE FROM announce_reactions
		WHERE announcement_id = $1 AND user_id = $2 AND emoji = $3
	`, reaction.AnnouncementID, reaction.UserID, reaction.Emoji)
	if err != nil {
		return false, err
	}
	if commandTag.RowsAffected() > 0 {
		return false, nil
	}

	_, err = q.Exec(ctx, `
		INSERT INTO announce_reactions (id, announcement_id, user_id, emoji)
		VALUES (uuidv7(), $1, $2, $3)
	`, reaction.AnnouncementID, reaction.UserID, reaction.Emoji)
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *announcementRepositoryImpl) CountReactions(ctx context.Context, announcementID string) (map[string]int64, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT emoji, COUNT(*)
		FROM announce_reactions
		WHERE announcement_id = $1
		GROUP BY emoji
	`, announcementID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var emoji string
		var count int64
		if err := rows.Scan(&emoji, &count); err != nil {
			return nil, err
		}
		counts[emoji] = count
	}
	return counts, rows.Err()
}
