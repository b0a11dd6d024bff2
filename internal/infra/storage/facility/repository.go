package facility

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/playgrid/facility-booking/internal/domain"
	"github.com/playgrid/facility-booking/pkg/dbmetrics"
	"github.com/playgrid/facility-booking/pkg/psqlbuilder"
)

// Repository репозиторий справочных данных: объекты, виды спорта, недельные расписания
// Бронирование эти данные не изменяет - только читает
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория объектов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает объект по ID вместе с видом спорта и недельными расписаниями
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"f.id",
		"f.name",
		"f.location",
		"f.price_per_hour",
		"f.max_capacity",
		"f.is_active",
		"s.id",
		"s.name",
		"s.max_players",
		"s.default_slot_minutes",
	).
		From("facilities f").
		Join("sports s ON s.id = f.sport_id").
		Where(squirrel.Eq{"f.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var facility domain.Facility
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&facility.ID,
		&facility.Name,
		&facility.Location,
		&facility.PricePerHour,
		&facility.MaxCapacity,
		&facility.IsActive,
		&facility.Sport.ID,
		&facility.Sport.Name,
		&facility.Sport.MaxPlayers,
		&facility.Sport.DefaultSlotMinutes,
	)

	if err == sql.ErrNoRows {
		return nil, ErrFacilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan facility: %v", ErrScanRow, err)
	}

	schedules, err := r.getSchedules(ctx, id)
	if err != nil {
		return nil, err
	}
	facility.Schedules = schedules

	return &facility, nil
}

// GetScheduleByID получает недельное расписание по ID с проверкой принадлежности объекту
func (r *Repository) GetScheduleByID(ctx context.Context, scheduleID, facilityID int64) (*domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"facility_id",
		"day_of_week",
		"start_time",
		"end_time",
	).
		From("weekly_schedules").
		Where(squirrel.Eq{"id": scheduleID, "facility_id": facilityID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduleByID - build select query: %v", ErrBuildQuery, err)
	}

	var schedule domain.WeeklySchedule
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&schedule.FacilityID,
		&schedule.DayOfWeek,
		&schedule.StartTime,
		&schedule.EndTime,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduleByID - scan schedule: %v", ErrScanRow, err)
	}

	return &schedule, nil
}

// ListActive получает активные объекты с видами спорта
// Расписания не подгружаются - для списка они не нужны
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"f.id",
		"f.name",
		"f.location",
		"f.price_per_hour",
		"f.max_capacity",
		"f.is_active",
		"s.id",
		"s.name",
		"s.max_players",
		"s.default_slot_minutes",
	).
		From("facilities f").
		Join("sports s ON s.id = f.sport_id").
		Where(squirrel.Eq{"f.is_active": true}).
		OrderBy("f.name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	facilities := make([]*domain.Facility, 0)

	for rows.Next() {
		var facility domain.Facility
		err := rows.Scan(
			&facility.ID,
			&facility.Name,
			&facility.Location,
			&facility.PricePerHour,
			&facility.MaxCapacity,
			&facility.IsActive,
			&facility.Sport.ID,
			&facility.Sport.Name,
			&facility.Sport.MaxPlayers,
			&facility.Sport.DefaultSlotMinutes,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}
		facilities = append(facilities, &facility)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return facilities, nil
}

// ListSports получает справочник видов спорта
func (r *Repository) ListSports(ctx context.Context) ([]*domain.Sport, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"max_players",
		"default_slot_minutes",
	).
		From("sports").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListSports - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSports - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sports := make([]*domain.Sport, 0)

	for rows.Next() {
		var sport domain.Sport
		if err := rows.Scan(&sport.ID, &sport.Name, &sport.MaxPlayers, &sport.DefaultSlotMinutes); err != nil {
			return nil, fmt.Errorf("%w: ListSports - scan row: %v", ErrScanRow, err)
		}
		sports = append(sports, &sport)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSports - rows error: %v", ErrScanRow, err)
	}

	return sports, nil
}

// getSchedules получает недельные расписания объекта, отсортированные по дню недели и времени
func (r *Repository) getSchedules(ctx context.Context, facilityID int64) ([]domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"facility_id",
		"day_of_week",
		"start_time",
		"end_time",
	).
		From("weekly_schedules").
		Where(squirrel.Eq{"facility_id": facilityID}).
		OrderBy("day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getSchedules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getSchedules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]domain.WeeklySchedule, 0)

	for rows.Next() {
		var schedule domain.WeeklySchedule
		err := rows.Scan(
			&schedule.ID,
			&schedule.FacilityID,
			&schedule.DayOfWeek,
			&schedule.StartTime,
			&schedule.EndTime,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: getSchedules - scan row: %v", ErrScanRow, err)
		}
		schedules = append(schedules, schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getSchedules - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}
