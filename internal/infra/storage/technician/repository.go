package technician

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/LV-BookingService/internal/domain"
	"github.com/m04kA/LV-BookingService/pkg/dbmetrics"
	"github.com/m04kA/LV-BookingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с техниками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория техников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового техника
func (r *Repository) Create(ctx context.Context, tech *domain.Technician) (*domain.Technician, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("technicians").
		Columns("name", "phone", "active").
		Values(tech.Name, tech.Phone, tech.Active).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&tech.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return tech, nil
}

// GetByID получает техника по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Technician, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "phone", "active").
		From("technicians").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var tech domain.Technician
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tech.ID,
		&tech.Name,
		&tech.Phone,
		&tech.Active,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTechnicianNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan technician: %v", ErrScanRow, err)
	}

	return &tech, nil
}

// List получает техников (id ASC), activeOnly = true отфильтровывает неактивных
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]*domain.Technician, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "name", "phone", "active").
		From("technicians").
		OrderBy("id ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	techs := make([]*domain.Technician, 0)
	for rows.Next() {
		var tech domain.Technician
		if err := rows.Scan(&tech.ID, &tech.Name, &tech.Phone, &tech.Active); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		techs = append(techs, &tech)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return techs, nil
}

// Delete удаляет техника
// У бронирований с этим техником ссылка обнуляется на уровне БД
// (FK ON DELETE SET NULL), сами бронирования не трогаются
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("technicians").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTechnicianNotFound
	}

	return nil
}
