package student

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/bimbelceria/BC-AdminService/internal/domain"
	"github.com/bimbelceria/BC-AdminService/pkg/dbmetrics"
	"github.com/bimbelceria/BC-AdminService/pkg/psqlbuilder"
)

var selectColumns = []string{
	"s.id",
	"s.name",
	"s.phone",
	"s.email",
	"s.package_id",
	"s.join_date",
	"s.manual_usage",
	"s.graduation_status",
	"s.status",
	"p.name AS package_name",
	"p.code AS package_code",
	"p.total_sessions AS package_total_sessions",
}

// Repository persists students, joining the active package for display
type Repository struct {
	db DBExecutor
}

// NewRepository creates a student repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func joinedSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(selectColumns...).
		From("students s").
		LeftJoin("packages p ON p.id = s.package_id")
}

// Create inserts a new student
func (r *Repository) Create(ctx context.Context, s *domain.Student) (*domain.Student, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("students").
		Columns("name", "phone", "email", "package_id", "join_date", "manual_usage", "graduation_status", "status").
		Values(s.Name, s.Phone, s.Email, s.PackageID, s.JoinDate, s.ManualUsage, s.GraduationStatus, s.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return s, nil
}

// GetByID fetches one student with their package
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := joinedSelect().Where(squirrel.Eq{"s.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	students, err := r.scanStudents(rows)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, ErrStudentNotFound
	}
	return students[0], nil
}

// List fetches students ordered by name. When onlyActive is set, inactive
// students are filtered out.
func (r *Repository) List(ctx context.Context, onlyActive bool) ([]*domain.Student, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := joinedSelect().OrderBy("s.name ASC")
	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.status": "active"})
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

	return r.scanStudents(rows)
}

// Update rewrites the editable fields of one student
func (r *Repository) Update(ctx context.Context, s *domain.Student) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("students").
		Set("name", s.Name).
		Set("phone", s.Phone).
		Set("email", s.Email).
		Set("package_id", s.PackageID).
		Set("join_date", s.JoinDate).
		Set("manual_usage", s.ManualUsage).
		Set("graduation_status", s.GraduationStatus).
		Where(squirrel.Eq{"id": s.ID}).
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

// Delete removes a student; their bookings cascade in the schema
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("students").
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

// CountActive counts students in the active lifecycle state
func (r *Repository) CountActive(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("students").
		Where(squirrel.Eq{"status": "active"}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActive - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActive - scan count: %v", ErrScanRow, err)
	}
	return count, nil
}

func requireAffected(result sql.Result, method string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}
	if rowsAffected == 0 {
		return ErrStudentNotFound
	}
	return nil
}

func (r *Repository) scanStudents(rows *sql.Rows) ([]*domain.Student, error) {
	students := make([]*domain.Student, 0)

	for rows.Next() {
		var s domain.Student
		err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Phone,
			&s.Email,
			&s.PackageID,
			&s.JoinDate,
			&s.ManualUsage,
			&s.GraduationStatus,
			&s.Status,
			&s.PackageName,
			&s.PackageCode,
			&s.PackageTotalSessions,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanStudents - scan row: %v", ErrScanRow, err)
		}
		students = append(students, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanStudents - rows error: %v", ErrScanRow, err)
	}
	return students, nil
}
