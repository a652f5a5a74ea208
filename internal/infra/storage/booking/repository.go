package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/LV-BookingService/internal/domain"
	"github.com/m04kA/LV-BookingService/pkg/dbmetrics"
	"github.com/m04kA/LV-BookingService/pkg/psqlbuilder"
)

// bookingColumns полный набор колонок таблицы bookings
var bookingColumns = []string{
	"id",
	"user_id",
	"vehicle_id",
	"service_ids",
	"total_price_da",
	"booking_type",
	"address",
	"latitude",
	"longitude",
	"scheduled_at",
	"status",
	"technician_id",
	"payment_mode",
	"rating",
	"notes",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её
// Снапшот service_ids и итоговая цена записываются как есть и больше не меняются
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"vehicle_id",
			"service_ids",
			"total_price_da",
			"booking_type",
			"address",
			"latitude",
			"longitude",
			"scheduled_at",
			"status",
			"payment_mode",
			"notes",
		).
		Values(
			booking.UserID,
			booking.VehicleID,
			booking.ServiceIDs,
			booking.TotalPrice,
			booking.Type,
			booking.Address,
			booking.Latitude,
			booking.Longitude,
			booking.ScheduledAt,
			booking.Status,
			booking.PaymentMode,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает список бронирований, сначала новые (по created_at)
// Опционально фильтрует по пользователю
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("created_at DESC, id DESC")

	// Фильтрация по пользователю, если указан
	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
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

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// SetStatusAndTechnician безусловно устанавливает статус и назначение техника
// одним запросом. Граф переходов не проверяется: любой статус достижим из
// любого. techID = nil снимает назначение
func (r *Repository) SetStatusAndTechnician(ctx context.Context, id int64, status domain.BookingStatus, techID *int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("technician_id", techID).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetStatusAndTechnician - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetStatusAndTechnician - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetStatusAndTechnician - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// CancelByOwner переводит бронирование в статус cancelled, только если оно
// принадлежит ownerID. Возвращает количество затронутых строк: 0 означает
// no-op (чужое или несуществующее бронирование), это не ошибка
func (r *Repository) CancelByOwner(ctx context.Context, id, ownerID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Where(squirrel.Eq{"id": id, "user_id": ownerID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CancelByOwner - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CancelByOwner - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CancelByOwner - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// RateByOwner записывает оценку, только если бронирование принадлежит ownerID
// Повторная оценка перезаписывает предыдущую. Возвращает количество затронутых
// строк, 0 означает no-op
func (r *Repository) RateByOwner(ctx context.Context, id, ownerID int64, rating int) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("rating", rating).
		Where(squirrel.Eq{"id": id, "user_id": ownerID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: RateByOwner - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: RateByOwner - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: RateByOwner - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// GetTotals получает агрегаты по всем бронированиям
func (r *Repository) GetTotals(ctx context.Context) (*domain.StatsTotals, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"COUNT(*)",
		"COALESCE(SUM(total_price_da), 0)",
		"AVG(rating)",
	).
		From("bookings").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTotals - build select query: %v", ErrBuildQuery, err)
	}

	var totals domain.StatsTotals
	var avgRating sql.NullFloat64

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&totals.Bookings,
		&totals.Revenue,
		&avgRating,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTotals - scan totals: %v", ErrScanRow, err)
	}

	if avgRating.Valid {
		totals.AverageRating = &avgRating.Float64
	}

	return &totals, nil
}

// GetMonthlyStats получает количество бронирований и выручку по месяцам
// (по дате запланированного визита)
func (r *Repository) GetMonthlyStats(ctx context.Context) ([]*domain.MonthlyStat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"to_char(scheduled_at, 'YYYY-MM') AS month",
		"COUNT(*)",
		"COALESCE(SUM(total_price_da), 0)",
	).
		From("bookings").
		GroupBy("month").
		OrderBy("month ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetMonthlyStats - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetMonthlyStats - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stats := make([]*domain.MonthlyStat, 0)
	for rows.Next() {
		var stat domain.MonthlyStat
		if err := rows.Scan(&stat.Month, &stat.Bookings, &stat.Revenue); err != nil {
			return nil, fmt.Errorf("%w: GetMonthlyStats - scan row: %v", ErrScanRow, err)
		}
		stats = append(stats, &stat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetMonthlyStats - rows error: %v", ErrScanRow, err)
	}

	return stats, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку таблицы bookings
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.VehicleID,
		&booking.ServiceIDs,
		&booking.TotalPrice,
		&booking.Type,
		&booking.Address,
		&booking.Latitude,
		&booking.Longitude,
		&booking.ScheduledAt,
		&booking.Status,
		&booking.TechnicianID,
		&booking.PaymentMode,
		&booking.Rating,
		&booking.Notes,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time

	return &booking, nil
}
