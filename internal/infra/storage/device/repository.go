package device

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/playden/GPR-BookingService/internal/domain"
	"github.com/playden/GPR-BookingService/pkg/psqlbuilder"
	"github.com/playden/GPR-BookingService/pkg/txmanager"
)

// Repository репозиторий для работы с устройствами и их консолями
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория устройств
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает устройство по ID вместе со списком консолей
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Device, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"parlour_id",
		"type",
		"price_per_hour",
	).
		From("devices").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var device domain.Device
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&device.ID,
		&device.ParlourID,
		&device.Type,
		&device.PricePerHour,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDeviceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan device: %v", ErrScanRow, err)
	}

	units, err := r.getConsoleUnits(ctx, executor, id)
	if err != nil {
		return nil, err
	}
	device.ConsoleUnits = units

	return &device, nil
}

func (r *Repository) getConsoleUnits(ctx context.Context, executor txmanager.DBExecutor, deviceID int64) ([]domain.ConsoleUnit, error) {
	query, args, err := psqlbuilder.Select(
		"console_id",
		"status",
	).
		From("console_units").
		Where(squirrel.Eq{"device_id": deviceID}).
		OrderBy("console_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getConsoleUnits - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getConsoleUnits - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	units := make([]domain.ConsoleUnit, 0)
	for rows.Next() {
		var unit domain.ConsoleUnit
		if err := rows.Scan(&unit.ConsoleID, &unit.Status); err != nil {
			return nil, fmt.Errorf("%w: getConsoleUnits - scan row: %v", ErrScanRow, err)
		}
		units = append(units, unit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getConsoleUnits - rows error: %v", ErrScanRow, err)
	}

	return units, nil
}
