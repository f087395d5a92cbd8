package postgresql

import (
	"context"

	"github.com/ScriptedSpythoN/demoos/internal/domain/attendance"
	"github.com/ScriptedSpythoN/demoos/internal/pkg/database"
)

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) attendance.ScheduleRepository {
	return &scheduleRepositoryImpl{db: db}
}

func (r *scheduleRepositoryImpl) ListByFaculty(ctx context.Context, facultyID string) ([]attendance.ScheduleItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT cs.subject_id, sub.name, cs.day_of_week, cs.start_time, cs.end_time, cs.room_number
		FROM class_schedules cs
		JOIN subjects sub ON sub.id = cs.subject_id
		WHERE cs.faculty_id = $1
		ORDER BY cs.day_of_week, cs.start_time
	`
	rows, err := q.Query(ctx, query, facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []attendance.ScheduleItem
	for rows.Next() {
		var item attendance.ScheduleItem
		if err := rows.Scan(&item.SubjectID, &item.SubjectName, &item.DayOfWeek, &item.StartTime, &item.EndTime, &item.RoomNumber); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
