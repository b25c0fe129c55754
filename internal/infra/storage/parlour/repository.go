package parlour

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/playden/GPR-BookingService/internal/domain"
	"github.com/playden/GPR-BookingService/pkg/psqlbuilder"
	"github.com/playden/GPR-BookingService/pkg/txmanager"
)

// Repository репозиторий для работы с игровыми парлорами
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория парлоров
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает парлор по ID вместе с недельным расписанием
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Parlour, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"location",
		"price",
		"owner_id",
		"rating",
		"num_reviews",
		"created_at",
	).
		From("parlours").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var parlour domain.Parlour
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&parlour.ID,
		&parlour.Name,
		&parlour.Location,
		&parlour.Price,
		&parlour.OwnerID,
		&parlour.Rating,
		&parlour.NumReviews,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrParlourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan parlour: %v", ErrScanRow, err)
	}

	parlour.CreatedAt = createdAt.Time

	availability, err := r.getWeeklyAvailability(ctx, executor, id)
	if err != nil {
		return nil, err
	}
	parlour.Availability = availability

	return &parlour, nil
}

// getWeeklyAvailability читает расписание работы из parlour_hours
// (weekday: 0 = воскресенье ... 6 = суббота, как в time.Weekday)
func (r *Repository) getWeeklyAvailability(ctx context.Context, executor txmanager.DBExecutor, parlourID int64) (domain.WeeklyAvailability, error) {
	var availability domain.WeeklyAvailability

	query, args, err := psqlbuilder.Select(
		"weekday",
		"open",
		"start_time",
		"end_time",
	).
		From("parlour_hours").
		Where(squirrel.Eq{"parlour_id": parlourID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return availability, fmt.Errorf("%w: getWeeklyAvailability - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return availability, fmt.Errorf("%w: getWeeklyAvailability - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := map[int]*domain.DaySchedule{
		0: &availability.Sunday,
		1: &availability.Monday,
		2: &availability.Tuesday,
		3: &availability.Wednesday,
		4: &availability.Thursday,
		5: &availability.Friday,
		6: &availability.Saturday,
	}

	for rows.Next() {
		var weekday int
		var schedule domain.DaySchedule

		if err := rows.Scan(&weekday, &schedule.Open, &schedule.Start, &schedule.End); err != nil {
			return availability, fmt.Errorf("%w: getWeeklyAvailability - scan row: %v", ErrScanRow, err)
		}

		if day, ok := days[weekday]; ok {
			*day = schedule
		}
	}

	if err := rows.Err(); err != nil {
		return availability, fmt.Errorf("%w: getWeeklyAvailability - rows error: %v", ErrScanRow, err)
	}

	return availability, nil
}
