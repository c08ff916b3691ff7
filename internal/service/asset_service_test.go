package service_test

import (
	"testing"

	"github.com/devcodex/codex-api/internal/dto"
	"github.com/devcodex/codex-api/internal/model"
	"github.com/devcodex/codex-api/internal/repository"
	"github.com/devcodex/codex-api/internal/service"
	"github.com/devcodex/codex-api/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssetService(t *testing.T) service.AssetService {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return service.NewAssetService(repository.New[model.Asset](db))
}

func TestAssetCreateAndGetByID(t *testing.T) {
	svc := newAssetService(t)
	parentID := uuid.New()

	asset, err := svc.Create(dto.CreateAssetRequest{
		ParentID: parentID,
		FileName: "diagram.png",
		FileType: "image/png",
		FileURL:  "https://cdn.example.com/diagram.png",
	})
	require.NoError(t, err)

	got, err := svc.GetByID(asset.ID)
	require.NoError(t, err)
	assert.Equal(t, parentID, got.ParentID)
	assert.Equal(t, "diagram.png", got.FileName)
	assert.Equal(t, "image/png", got.FileType)
}

func TestAssetGetListSearchesFileName(t *testing.T) {
	svc := newAssetService(t)

	for _, name := range []string{"setup-guide.pdf", "setup-video.mp4", "logo.svg"} {
		_, err := svc.Create(dto.CreateAssetRequest{
			ParentID: uuid.New(),
			FileName: name,
		})
		require.NoError(t, err)
	}

	result, err := svc.GetList(dto.Filter{Query: "setup", PageIndex: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.EqualValues(t, 2, result.TotalCount)
}

func TestAssetUpdateAndSoftDelete(t *testing.T) {
	svc := newAssetService(t)

	asset, err := svc.Create(dto.CreateAssetRequest{
		ParentID: uuid.New(),
		FileName: "old.txt",
	})
	require.NoError(t, err)

	updated, err := svc.Update(asset.ID, dto.CreateAssetRequest{
		ParentID: asset.ParentID,
		FileName: "new.txt",
	})
	require.NoError(t, err)
	assert.Equal(t, asset.ID, updated.ID)
	assert.Equal(t, "new.txt", updated.FileName)

	deleted, err := svc.Delete(asset.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.GetByID(asset.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}
