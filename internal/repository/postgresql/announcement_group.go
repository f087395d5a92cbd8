package postgresql

import (
	"context"
	"errors"

	"github.com/ScriptedSpythoN/demoos/internal/domain/announcement"
	"github.com/ScriptedSpythoN/demoos/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type announcementGroupRepositoryImpl struct {
	db *database.DB
}

func NewAnnouncementGroupRepository(db *database.DB) announcement.GroupRepository {
	return &announcementGroupRepositoryImpl{db: db}
}

const groupColumns = `id, name, admin_id, invite_link, created_at`

func scanGroup(row pgx.Row) (announcement.Group, error) {
	var g announcement.Group
	err := row.Scan(&g.ID, &g.Name, &g.AdminID, &g.InviteLink, &g.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return announcement.Group{}, announcement.ErrGroupNotFound
	}
	return g, err
}

func (r *announcementGroupRepositoryImpl) Create(ctx context.Context, g announcement.Group) (announcement.Group, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO announce_groups (id, name, admin_id, invite_link, created_at)
		VALUES (uuidv7(), $1, $2, $3, NOW())
		RETURNING ` + groupColumns

	return scanGroup(q.QueryRow(ctx, query, g.Name, g.AdminID, g.InviteLink))
}

func (r *announcementGroupRepositoryImpl) GetByID(ctx context.Context, id string) (announcement.Group, error) {
	q := GetQuerier(ctx, r.db)
	return scanGroup(q.QueryRow(ctx, `SELECT `+groupColumns+` FROM announce_groups WHERE id = $1`, id))
}

func (r *announcementGroupRepositoryImpl) GetByInviteLink(ctx context.Context, link string) (announcement.Group, error) {
	q := GetQuerier(ctx, r.db)
	g, err := scanGroup(q.QueryRow(ctx, `SELECT `+groupColumns+` FROM announce_groups WHERE invite_link = $1`, link))
	if errors.Is(err, announcement.ErrGroupNotFound) {
		return announcement.Group{}, announcement.ErrInvalidInviteLink
	}
	return g, err
}

func (r *announcementGroupRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]announcement.Group, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT g.id, g.name, g.admin_id, g.invite_link, g.created_at
		FROM announce_groups g
		JOIN announce_members m ON m.group_id = g.id
		WHERE m.user_id = $1
		ORDER BY g.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []announcement.Group
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (r *announcementGroupRepositoryImpl) AddMember(ctx context.Context, m announcement.Member) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO announce_members (id, group_id, user_id, role, joined_at)
		VALUES (uuidv7(), $1, $2, $3, NOW())
		ON CONFLICT (group_id, user_id) DO NOTHING
	`
	commandTag, err := q.Exec(ctx, query, m.GroupID, m.UserID, m.Role)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return announcement.ErrAlreadyMember
	}
	return nil
}

func (r *announcementGroupRepositoryImpl) GetMember(ctx context.Context, groupID, userID string) (announcement.Member, error) {
	q := GetQuerier(ctx, r.db)

	var m announcement.Member
	err := q.QueryRow(ctx, `
		SELECT id, group_id, user_id, role, joined_at
		FROM announce_members
		WHERE group_id = $1 AND user_id = $2
	`, groupID, userID).Scan(&m.ID, &m.GroupID, &m.UserID, &m.Role, &m.JoinedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return announcement.Member{}, announcement.ErrNotMember
	}
	return m, err
}

func (r *announcementGroupRepositoryImpl) ListMembers(ctx context.Context, groupID string) ([]announcement.Member, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, group_id, user_id, role, joined_at
		FROM announce_members
		WHERE group_id = $1
		ORDER BY joined_at
	`, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []announcement.Member
	for rows.Next() {
		var m announcement.Member
		if err := rows.Scan(&m.ID, &m.GroupID, &m.UserID, &m.Role, &m.JoinedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *announcementGroupRepositoryImpl) UpdateMemberRole(ctx context.Context, groupID, userID string, role announcement.MemberRole) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE announce_members SET role = $3 WHERE group_id = $1 AND user_id = $2`,
		groupID, userID, role,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return announcement.ErrNotMember
	}
	return nil
}

func (r *announcementGroupRepositoryImpl) RemoveMember(ctx context.Context, groupID, userID string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`DELETE FROM announce_members WHERE group_id = $1 AND user_id = $2`,
		groupID, userID,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return announcement.ErrNotMember
	}
	return nil
}

func (r *announcementGroupRepositoryImpl) UpsertTag(ctx context.Context, groupID, name string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO announce_tags (id, group_id, name, usage_count)
		VALUES (uuidv7(), $1, $2, 1)
		ON CONFLICT (group_id, name)
		DO UPDATE SET usage_count = announce_tags.usage_count + 1
	`
	_, err := q.Exec(ctx, query, groupID, name)
	return err
}

func (r *announcementGroupRepositoryImpl) ListTags(ctx context.Context, groupID string) ([]announcement.Tag, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, group_id, name, usage_count
		FROM announce_tags
		WHERE group_id = $1
		ORDER BY usage_count DESC, name
	`, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []announcement.Tag
	for rows.Next() {
		var t announcement.Tag
		if err := rows.Scan(&t.ID, &t.GroupID, &t.Name, &t.UsageCount); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}
