package packages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimbelceria/BC-AdminService/internal/domain"
	curriculumRepo "github.com/bimbelceria/BC-AdminService/internal/infra/storage/curriculum"
	materialRepo "github.com/bimbelceria/BC-AdminService/internal/infra/storage/material"
	packageRepo "github.com/bimbelceria/BC-AdminService/internal/infra/storage/packages"
	"github.com/bimbelceria/BC-AdminService/internal/service/packages/models"
)

type fakePackageRepo struct {
	packages map[int64]*domain.Package
}

func (f *fakePackageRepo) Create(_ context.Context, p *domain.Package) (*domain.Package, error) {
	p.ID = int64(len(f.packages) + 1)
	f.packages[p.ID] = p
	return p, nil
}

func (f *fakePackageRepo) GetByID(_ context.Context, id int64) (*domain.Package, error) {
	p, ok := f.packages[id]
	if !ok {
		return nil, packageRepo.ErrPackageNotFound
	}
	return p, nil
}

func (f *fakePackageRepo) List(_ context.Context) ([]*domain.Package, error) {
	list := make([]*domain.Package, 0, len(f.packages))
	for _, p := range f.packages {
		list = append(list, p)
	}
	return list, nil
}

func (f *fakePackageRepo) UpdateTotalSessions(_ context.Context, id int64, totalSessions int) error {
	p, ok := f.packages[id]
	if !ok {
		return packageRepo.ErrPackageNotFound
	}
	p.TotalSessions = totalSessions
	return nil
}

func (f *fakePackageRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.packages[id]; !ok {
		return packageRepo.ErrPackageNotFound
	}
	delete(f.packages, id)
	return nil
}

type fakeCurriculumRepo struct {
	entries map[int64]*domain.CurriculumEntry
	nextID  int64
}

func (f *fakeCurriculumRepo) Create(_ context.Context, e *domain.CurriculumEntry) (*domain.CurriculumEntry, error) {
	f.nextID++
	e.ID = f.nextID
	f.entries[e.ID] = e
	return e, nil
}

func (f *fakeCurriculumRepo) GetByID(_ context.Context, id int64) (*domain.CurriculumEntry, error) {
	e, ok := f.entries[id]
	if !ok {
		return nil, curriculumRepo.ErrEntryNotFound
	}
	return e, nil
}

func (f *fakeCurriculumRepo) ListByPackage(_ context.Context, packageID int64) ([]*domain.CurriculumEntry, error) {
	list := make([]*domain.CurriculumEntry, 0)
	for id := int64(1); id <= f.nextID; id++ {
		if e, ok := f.entries[id]; ok && e.PackageID == packageID {
			list = append(list, e)
		}
	}
	return list, nil
}

func (f *fakeCurriculumRepo) NextSortOrder(_ context.Context, packageID int64) (int, error) {
	max := 0
	for _, e := range f.entries {
		if e.PackageID == packageID && e.SortOrder > max {
			max = e.SortOrder
		}
	}
	return max + 1, nil
}

func (f *fakeCurriculumRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.entries[id]; !ok {
		return curriculumRepo.ErrEntryNotFound
	}
	delete(f.entries, id)
	return nil
}

type fakeMaterialRepo struct {
	materials map[int64]*domain.Material
}

func (f *fakeMaterialRepo) GetByID(_ context.Context, id int64) (*domain.Material, error) {
	m, ok := f.materials[id]
	if !ok {
		return nil, materialRepo.ErrMaterialNotFound
	}
	return m, nil
}

// passthroughTxManager runs the function directly, no transaction
type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeAuthClient struct {
	roles map[string]string
}

func (f *fakeAuthClient) GetRole(_ context.Context, userID string) (string, error) {
	return f.roles[userID], nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	svc        *Service
	packages   *fakePackageRepo
	curriculum *fakeCurriculumRepo
	materials  *fakeMaterialRepo
}

func newFixture() *fixture {
	packages := &fakePackageRepo{packages: map[int64]*domain.Package{
		1: {ID: 1, Name: "Paket Intensif", Code: "INT"},
	}}
	curriculum := &fakeCurriculumRepo{entries: map[int64]*domain.CurriculumEntry{}}
	materials := &fakeMaterialRepo{materials: map[int64]*domain.Material{
		10: {ID: 10, Name: "Aljabar", Code: "ALJ", SessionCount: 2},
		11: {ID: 11, Name: "Geometri", Code: "GEO", SessionCount: 3},
		12: {ID: 12, Name: "Pretest", Code: "PRE", SessionCount: 0},
	}}

	svc := NewService(
		packages,
		curriculum,
		materials,
		passthroughTxManager{},
		&fakeAuthClient{roles: map[string]string{"7": "admin"}},
		nopLogger{},
	)
	return &fixture{svc: svc, packages: packages, curriculum: curriculum, materials: materials}
}

func TestAddCurriculumEntryRecomputesTotal(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	resp, err := f.svc.AddCurriculumEntry(ctx, 1, &models.AddCurriculumEntryRequest{MaterialID: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Package.TotalSessions)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "Aljabar", resp.Entries[0].MaterialName)
	assert.Equal(t, 1, resp.Entries[0].SortOrder)

	resp, err = f.svc.AddCurriculumEntry(ctx, 1, &models.AddCurriculumEntryRequest{MaterialID: 11})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Package.TotalSessions)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, 2, resp.Entries[1].SortOrder)

	// A zero-count material expands to one session but adds nothing to the
	// stored total
	resp, err = f.svc.AddCurriculumEntry(ctx, 1, &models.AddCurriculumEntryRequest{MaterialID: 12})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Package.TotalSessions)
	assert.Len(t, resp.Entries, 3)
}

func TestAddCurriculumEntryUnknownReferences(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.AddCurriculumEntry(ctx, 99, &models.AddCurriculumEntryRequest{MaterialID: 10})
	assert.ErrorIs(t, err, ErrPackageNotFound)

	_, err = f.svc.AddCurriculumEntry(ctx, 1, &models.AddCurriculumEntryRequest{MaterialID: 99})
	assert.ErrorIs(t, err, ErrMaterialNotFound)
}

func TestRemoveCurriculumEntry(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.AddCurriculumEntry(ctx, 1, &models.AddCurriculumEntryRequest{MaterialID: 10})
	require.NoError(t, err)
	resp, err := f.svc.AddCurriculumEntry(ctx, 1, &models.AddCurriculumEntryRequest{MaterialID: 11})
	require.NoError(t, err)
	require.Len(t, resp.Entries, 2)

	resp, err = f.svc.RemoveCurriculumEntry(ctx, 1, resp.Entries[0].ID)
	require.NoError(t, err)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "Geometri", resp.Entries[0].MaterialName)
	assert.Equal(t, 3, resp.Package.TotalSessions)
}

func TestRemoveCurriculumEntryMismatch(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.packages.packages[2] = &domain.Package{ID: 2, Name: "Paket Reguler", Code: "REG"}

	resp, err := f.svc.AddCurriculumEntry(ctx, 1, &models.AddCurriculumEntryRequest{MaterialID: 10})
	require.NoError(t, err)

	// Entry belongs to package 1, not 2
	_, err = f.svc.RemoveCurriculumEntry(ctx, 2, resp.Entries[0].ID)
	assert.ErrorIs(t, err, ErrEntryMismatch)

	_, err = f.svc.RemoveCurriculumEntry(ctx, 1, 999)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestDeletePackageRequiresAdmin(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	err := f.svc.Delete(ctx, 1, "somebody")
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = f.svc.Delete(ctx, 1, "7")
	assert.NoError(t, err)

	err = f.svc.Delete(ctx, 1, "7")
	assert.ErrorIs(t, err, ErrPackageNotFound)
}
