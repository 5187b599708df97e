package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/bimbelceria/BC-AdminService/internal/domain"
	"github.com/bimbelceria/BC-AdminService/pkg/dbmetrics"
	"github.com/bimbelceria/BC-AdminService/pkg/psqlbuilder"
)

// Columns selected for every booking read, including the joined student,
// package, instructor and location display data
var selectColumns = []string{
	"b.id",
	"b.date",
	"b.time",
	"b.status",
	"b.topic",
	"b.student_id",
	"b.instructor_id",
	"b.location_id",
	"s.name AS student_name",
	"s.package_id AS student_package_id",
	"p.code AS package_code",
	"p.name AS package_name",
	"i.name AS instructor_name",
	"i.nickname AS instructor_nickname",
	"l.name AS location_name",
	"b.created_at",
	"b.updated_at",
}

// Repository persists bookings. List reads join the related master data so
// the display layer never issues follow-up lookups.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func joinedSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(selectColumns...).
		From("bookings b").
		LeftJoin("students s ON s.id = b.student_id").
		LeftJoin("packages p ON p.id = s.package_id").
		LeftJoin("instructors i ON i.id = b.instructor_id").
		LeftJoin("locations l ON l.id = b.location_id")
}

// Create inserts one booking and fills in its generated fields
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns("date", "time", "status", "topic", "student_id", "instructor_id", "location_id").
		Values(b.Date, b.Time, b.Status, b.Topic, b.StudentID, b.InstructorID, b.LocationID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time
	return b, nil
}

// CreateBatch inserts several bookings in one statement (one class slot
// booked for multiple students). IDs are filled in insertion order.
func (r *Repository) CreateBatch(ctx context.Context, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	insert := psqlbuilder.Insert("bookings").
		Columns("date", "time", "status", "topic", "student_id", "instructor_id", "location_id")
	for _, b := range bookings {
		insert = insert.Values(b.Date, b.Time, b.Status, b.Topic, b.StudentID, b.InstructorID, b.LocationID)
	}

	query, args, err := insert.Suffix("RETURNING id, created_at, updated_at").ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	i := 0
	for rows.Next() {
		if i >= len(bookings) {
			break
		}
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&bookings[i].ID, &createdAt, &updatedAt); err != nil {
			return fmt.Errorf("%w: CreateBatch - scan returned id: %v", ErrScanRow, err)
		}
		bookings[i].CreatedAt = createdAt.Time
		bookings[i].UpdatedAt = updatedAt.Time
		i++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: CreateBatch - rows error: %v", ErrScanRow, err)
	}
	return nil
}

// GetByID fetches one booking with its joined display data
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := joinedSelect().Where(squirrel.Eq{"b.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}
	return bookings[0], nil
}

// List fetches bookings matching the filter, ordered chronologically
// (date ASC, time ASC) so callers can derive attendance order directly
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := joinedSelect()

	if filter.StudentID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.student_id": *filter.StudentID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"b.date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"b.date": *filter.EndDate})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *filter.Status})
	}
	if filter.InstructorID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.instructor_id": *filter.InstructorID})
	}

	query, args, err := selectBuilder.OrderBy("b.date ASC", "b.time ASC", "b.id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Update rewrites the schedulable fields of one booking
func (r *Repository) Update(ctx context.Context, b *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("date", b.Date).
		Set("time", b.Time).
		Set("instructor_id", b.InstructorID).
		Set("location_id", b.LocationID).
		Set("topic", b.Topic).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}
	return requireAffected(result, "Update")
}

// UpdateStatus flips the attendance state of one booking
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}
	return requireAffected(result, "UpdateStatus")
}

// Delete removes one booking row
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}
	return requireAffected(result, "Delete")
}

// CountByDate counts the classes scheduled on one calendar date
func (r *Repository) CountByDate(ctx context.Context, date time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"date": date}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByDate - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByDate - scan count: %v", ErrScanRow, err)
	}
	return count, nil
}

// StudentActivity is the per-student booking aggregate used for the usage
// and "last attended" columns of the student list
type StudentActivity struct {
	BookingCount int
	LastDate     *time.Time
}

// ActivityByStudent aggregates booking count and latest date per student
func (r *Repository) ActivityByStudent(ctx context.Context) (map[int64]StudentActivity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("student_id", "COUNT(*)", "MAX(date)").
		From("bookings").
		GroupBy("student_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ActivityByStudent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ActivityByStudent - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	activity := make(map[int64]StudentActivity)
	for rows.Next() {
		var studentID int64
		var count int
		var lastDate sql.NullTime
		if err := rows.Scan(&studentID, &count, &lastDate); err != nil {
			return nil, fmt.Errorf("%w: ActivityByStudent - scan row: %v", ErrScanRow, err)
		}
		entry := StudentActivity{BookingCount: count}
		if lastDate.Valid {
			d := lastDate.Time
			entry.LastDate = &d
		}
		activity[studentID] = entry
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ActivityByStudent - rows error: %v", ErrScanRow, err)
	}
	return activity, nil
}

// ActivityForStudent aggregates booking count and latest date for one
// student, without scanning the rest of the ledger
func (r *Repository) ActivityForStudent(ctx context.Context, studentID int64) (StudentActivity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)", "MAX(date)").
		From("bookings").
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		return StudentActivity{}, fmt.Errorf("%w: ActivityForStudent - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	var lastDate sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count, &lastDate); err != nil {
		return StudentActivity{}, fmt.Errorf("%w: ActivityForStudent - scan row: %v", ErrScanRow, err)
	}

	activity := StudentActivity{BookingCount: count}
	if lastDate.Valid {
		d := lastDate.Time
		activity.LastDate = &d
	}
	return activity, nil
}

func requireAffected(result sql.Result, method string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// scanBookings scans joined booking rows
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var studentName sql.NullString
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.Date,
			&b.Time,
			&b.Status,
			&b.Topic,
			&b.StudentID,
			&b.InstructorID,
			&b.LocationID,
			&studentName,
			&b.StudentPackageID,
			&b.PackageCode,
			&b.PackageName,
			&b.InstructorName,
			&b.InstructorNickname,
			&b.LocationName,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.StudentName = studentName.String
		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}
	return bookings, nil
}
