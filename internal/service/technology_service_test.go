package service_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/devcodex/codex-api/internal/dto"
	"github.com/devcodex/codex-api/internal/model"
	"github.com/devcodex/codex-api/internal/repository"
	"github.com/devcodex/codex-api/internal/service"
	"github.com/devcodex/codex-api/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTechnologyService(t *testing.T) (service.TechnologyService, repository.Repository[model.Technology], *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repo := repository.New[model.Technology](db)
	return service.NewTechnologyService(repo), repo, db
}

func TestTechnologyCreateThenGetByID(t *testing.T) {
	svc, _, _ := newTechnologyService(t)

	created, err := svc.Create(dto.CreateTechnologyRequest{
		Name:           "Go",
		Description:    "compiled language",
		TechnologyType: model.TechnologyTypeLanguage,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.After(time.Now().UTC()))
	assert.False(t, created.IsDeleted)
	assert.Nil(t, created.UpdatedAt)

	found, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Go", found.Name)
	assert.Equal(t, "compiled language", found.Description)
	assert.Equal(t, model.TechnologyTypeLanguage, found.TechnologyType)
	assert.Equal(t, created.CreatedAt.Unix(), found.CreatedAt.Unix())
}

func TestTechnologyGetByIDMissing(t *testing.T) {
	svc, _, _ := newTechnologyService(t)

	_, err := svc.GetByID(uuid.New())
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestTechnologyUpdatePreservesIDAndCreatedAt(t *testing.T) {
	svc, _, _ := newTechnologyService(t)

	created, err := svc.Create(dto.CreateTechnologyRequest{
		Name:           "Go",
		TechnologyType: model.TechnologyTypeLanguage,
	})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, dto.CreateTechnologyRequest{
		Name:           "Golang",
		Description:    "renamed",
		TechnologyType: model.TechnologyTypeLanguage,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
	assert.Equal(t, "Golang", updated.Name)
	require.NotNil(t, updated.UpdatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.CreatedAt))
}

func TestTechnologyUpdateMissing(t *testing.T) {
	svc, _, _ := newTechnologyService(t)

	_, err := svc.Update(uuid.New(), dto.CreateTechnologyRequest{
		Name:           "Go",
		TechnologyType: model.TechnologyTypeLanguage,
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestTechnologySoftDelete(t *testing.T) {
	svc, repo, _ := newTechnologyService(t)

	created, err := svc.Create(dto.CreateTechnologyRequest{
		Name:           "Go",
		TechnologyType: model.TechnologyTypeLanguage,
	})
	require.NoError(t, err)

	deleted, err := svc.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// Invisible to the service read paths.
	_, err = svc.GetByID(created.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)

	all, err := svc.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)

	// Still physically present through the unfiltered repository view.
	row, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.True(t, row.IsDeleted)
	assert.NotNil(t, row.UpdatedAt)

	// A second delete reports false without touching the row further.
	previousUpdatedAt := *row.UpdatedAt
	deleted, err = svc.Delete(created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	row, err = repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, previousUpdatedAt.Unix(), row.UpdatedAt.Unix())
}

func TestTechnologyDeleteMissing(t *testing.T) {
	svc, _, _ := newTechnologyService(t)

	deleted, err := svc.Delete(uuid.New())
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestTechnologyGetListPagination(t *testing.T) {
	svc, repo, _ := newTechnologyService(t)

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 25; i++ {
		tech := model.Technology{
			BaseField: model.BaseField{
				ID:        uuid.New(),
				CreatedAt: base.Add(time.Duration(i) * time.Minute),
			},
			Name:           fmt.Sprintf("tech-%02d", i),
			TechnologyType: model.TechnologyTypeTool,
		}
		require.NoError(t, repo.Create(&tech))
	}

	// Last full page remainder.
	result, err := svc.GetList(dto.Filter{PageIndex: 3, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, result.Items, 5)
	assert.EqualValues(t, 25, result.TotalCount)

	// Beyond the last page: zero items, unchanged count.
	result, err = svc.GetList(dto.Filter{PageIndex: 4, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.EqualValues(t, 25, result.TotalCount)

	// Ordered by createdAt descending: the newest row leads page one.
	result, err = svc.GetList(dto.Filter{PageIndex: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, result.Items, 10)
	assert.Equal(t, "tech-24", result.Items[0].Name)
}

func TestTechnologyGetListDefaultsAndNegativePage(t *testing.T) {
	svc, _, _ := newTechnologyService(t)

	_, err := svc.Create(dto.CreateTechnologyRequest{Name: "Go", TechnologyType: model.TechnologyTypeLanguage})
	require.NoError(t, err)

	result, err := svc.GetList(dto.Filter{PageIndex: -3, PageSize: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, result.PageIndex)
	assert.Equal(t, 10, result.PageSize)
	assert.Len(t, result.Items, 1)
}

func TestTechnologyGetListSearchesNameAndDescription(t *testing.T) {
	svc, _, _ := newTechnologyService(t)

	_, err := svc.Create(dto.CreateTechnologyRequest{
		Name:           "Go",
		Description:    "compiled language",
		TechnologyType: model.TechnologyTypeLanguage,
	})
	require.NoError(t, err)
	_, err = svc.Create(dto.CreateTechnologyRequest{
		Name:           "Postgres",
		Description:    "relational database",
		TechnologyType: model.TechnologyTypeDatabase,
	})
	require.NoError(t, err)

	result, err := svc.GetList(dto.Filter{Query: "Go", PageIndex: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Go", result.Items[0].Name)

	result, err = svc.GetList(dto.Filter{Query: "relational", PageIndex: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Postgres", result.Items[0].Name)

	result, err = svc.GetList(dto.Filter{Query: "missing", PageIndex: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.EqualValues(t, 0, result.TotalCount)
}

func TestTechnologyGetListExcludesSoftDeleted(t *testing.T) {
	svc, _, _ := newTechnologyService(t)

	created, err := svc.Create(dto.CreateTechnologyRequest{Name: "Go", TechnologyType: model.TechnologyTypeLanguage})
	require.NoError(t, err)
	_, err = svc.Create(dto.CreateTechnologyRequest{Name: "Rust", TechnologyType: model.TechnologyTypeLanguage})
	require.NoError(t, err)

	_, err = svc.Delete(created.ID)
	require.NoError(t, err)

	result, err := svc.GetList(dto.Filter{PageIndex: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Rust", result.Items[0].Name)
	assert.EqualValues(t, 1, result.TotalCount)
}
