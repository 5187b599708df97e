package curriculum

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
	"c.id",
	"c.package_id",
	"c.sort_order",
	"m.id AS material_id",
	"m.name AS material_name",
	"m.code AS material_code",
	"m.session_count",
}

// Repository persists the ordered material list of each package
type Repository struct {
	db DBExecutor
}

// NewRepository creates a curriculum repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func joinedSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(selectColumns...).
		From("curriculum c").
		Join("materials m ON m.id = c.material_id")
}

// Create appends a material to a package curriculum
func (r *Repository) Create(ctx context.Context, e *domain.CurriculumEntry) (*domain.CurriculumEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("curriculum").
		Columns("package_id", "material_id", "sort_order").
		Values(e.PackageID, e.Material.ID, e.SortOrder).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&e.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return e, nil
}

// GetByID fetches one curriculum entry with its material
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.CurriculumEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := joinedSelect().Where(squirrel.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var e domain.CurriculumEntry
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&e.ID,
		&e.PackageID,
		&e.SortOrder,
		&e.Material.ID,
		&e.Material.Name,
		&e.Material.Code,
		&e.Material.SessionCount,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan row: %v", ErrScanRow, err)
	}
	return &e, nil
}

// ListByPackage fetches the curriculum of one package in teaching order.
// Entries sharing a sort_order keep insertion order.
func (r *Repository) ListByPackage(ctx context.Context, packageID int64) ([]*domain.CurriculumEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := joinedSelect().
		Where(squirrel.Eq{"c.package_id": packageID}).
		OrderBy("c.sort_order ASC", "c.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByPackage - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByPackage - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

// ListAll fetches every curriculum entry grouped by package, in teaching
// order within each package. Used to resolve sessions across many students
// in one query.
func (r *Repository) ListAll(ctx context.Context) (map[int64][]*domain.CurriculumEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := joinedSelect().
		OrderBy("c.package_id ASC", "c.sort_order ASC", "c.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries, err := r.scanEntries(rows)
	if err != nil {
		return nil, err
	}

	byPackage := make(map[int64][]*domain.CurriculumEntry)
	for _, e := range entries {
		byPackage[e.PackageID] = append(byPackage[e.PackageID], e)
	}
	return byPackage, nil
}

// NextSortOrder returns the sort_order for a new entry at the end of the
// package curriculum
func (r *Repository) NextSortOrder(ctx context.Context, packageID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(MAX(sort_order), 0) + 1").
		From("curriculum").
		Where(squirrel.Eq{"package_id": packageID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: NextSortOrder - build select query: %v", ErrBuildQuery, err)
	}

	var next int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&next); err != nil {
		return 0, fmt.Errorf("%w: NextSortOrder - scan row: %v", ErrScanRow, err)
	}
	return next, nil
}

// Delete removes one curriculum entry
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("curriculum").
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
		return ErrEntryNotFound
	}
	return nil
}

func (r *Repository) scanEntries(rows *sql.Rows) ([]*domain.CurriculumEntry, error) {
	entries := make([]*domain.CurriculumEntry, 0)

	for rows.Next() {
		var e domain.CurriculumEntry
		err := rows.Scan(
			&e.ID,
			&e.PackageID,
			&e.SortOrder,
			&e.Material.ID,
			&e.Material.Name,
			&e.Material.Code,
			&e.Material.SessionCount,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanEntries - scan row: %v", ErrScanRow, err)
		}
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEntries - rows error: %v", ErrScanRow, err)
	}
	return entries, nil
}
