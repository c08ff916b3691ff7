package repository_test

import (
	"testing"
	"time"

	"github.com/devcodex/codex-api/internal/model"
	"github.com/devcodex/codex-api/internal/repository"
	"github.com/devcodex/codex-api/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTechnology(name string) model.Technology {
	return model.Technology{
		BaseField: model.BaseField{
			ID:        uuid.New(),
			CreatedAt: time.Now().UTC(),
		},
		Name:           name,
		TechnologyType: model.TechnologyTypeLanguage,
	}
}

func TestCreateAndGetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.New[model.Technology](db)

	tech := newTechnology("Go")
	require.NoError(t, repo.Create(&tech))

	found, err := repo.GetByID(tech.ID)
	require.NoError(t, err)
	assert.Equal(t, tech.ID, found.ID)
	assert.Equal(t, "Go", found.Name)
	assert.False(t, found.IsDeleted)
	assert.Nil(t, found.UpdatedAt)
}

func TestGetByIDMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.New[model.Technology](db)

	_, err := repo.GetByID(uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetAllIncludesSoftDeleted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.New[model.Technology](db)

	live := newTechnology("Go")
	require.NoError(t, repo.Create(&live))

	deleted := newTechnology("COBOL")
	deleted.IsDeleted = true
	require.NoError(t, repo.Create(&deleted))

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestWhereComposes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.New[model.Technology](db)

	for _, name := range []string{"Go", "Rust", "Gleam"} {
		tech := newTechnology(name)
		require.NoError(t, repo.Create(&tech))
	}

	var matches []model.Technology
	err := repo.Where("is_deleted = ?", false).
		Where("name LIKE ?", "G%").
		Order("name ASC").
		Find(&matches).Error
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "Gleam", matches[0].Name)
	assert.Equal(t, "Go", matches[1].Name)
}

func TestUpdatePersistsChanges(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.New[model.Technology](db)

	tech := newTechnology("Go")
	require.NoError(t, repo.Create(&tech))

	tech.Description = "compiled language"
	require.NoError(t, repo.Update(&tech))

	found, err := repo.GetByID(tech.ID)
	require.NoError(t, err)
	assert.Equal(t, "compiled language", found.Description)
}

func TestHardDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.New[model.Technology](db)

	tech := newTechnology("Go")
	require.NoError(t, repo.Create(&tech))

	existed, err := repo.Delete(tech.ID)
	require.NoError(t, err)
	assert.True(t, existed)

	_, err = repo.GetByID(tech.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	existed, err = repo.Delete(tech.ID)
	require.NoError(t, err)
	assert.False(t, existed)
}
