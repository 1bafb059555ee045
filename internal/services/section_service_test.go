package services_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/proforge/profilepdf/internal/models"
	"github.com/proforge/profilepdf/internal/services"
	"github.com/proforge/profilepdf/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSectionRequiresData(t *testing.T) {
	db := setupTestDB(t)
	doc := seedDocument(t, db, "doc")
	page := seedPage(t, db, doc.ID, 0, time.Now())

	_, err := services.CreateSection(db, services.SectionInput{PageID: types.FlexUint64(page.ID)})
	appErr, ok := types.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusUnprocessableEntity, appErr.Code)
	assert.Contains(t, appErr.Errors, "data")
}

func TestCreateSectionParentMissing(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.CreateSection(db, services.SectionInput{
		PageID: 77,
		Data:   json.RawMessage(`{"template":"about"}`),
	})
	appErr, ok := types.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, appErr.Code)

	var count int64
	require.NoError(t, db.Model(&models.Section{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateSectionAppendsToEnd(t *testing.T) {
	db := setupTestDB(t)
	doc := seedDocument(t, db, "doc")
	page := seedPage(t, db, doc.ID, 0, time.Now())

	for i := 0; i < 2; i++ {
		section, err := services.CreateSection(db, services.SectionInput{
			PageID: types.FlexUint64(page.ID),
			Data:   json.RawMessage(`{"template":"services"}`),
		})
		require.NoError(t, err)
		assert.Equal(t, i, section.Order)
	}
}

func TestUpdateSectionData(t *testing.T) {
	db := setupTestDB(t)
	doc := seedDocument(t, db, "doc")
	page := seedPage(t, db, doc.ID, 0, time.Now())
	section, err := services.CreateSection(db, services.SectionInput{
		PageID: types.FlexUint64(page.ID),
		Data:   json.RawMessage(`{"v":1}`),
	})
	require.NoError(t, err)

	got, err := services.UpdateSection(db, section.ID, services.SectionUpdate{
		Data: json.RawMessage(`{"v":2}`),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":2}`, string(got.Data.JSON))
}

func TestReorderSectionsRejectsCrossPage(t *testing.T) {
	db := setupTestDB(t)
	doc := seedDocument(t, db, "doc")
	first := seedPage(t, db, doc.ID, 0, time.Now())
	second := seedPage(t, db, doc.ID, 1, time.Now())

	mine, err := services.CreateSection(db, services.SectionInput{
		PageID: types.FlexUint64(first.ID),
		Data:   json.RawMessage(`{}`),
	})
	require.NoError(t, err)
	foreign, err := services.CreateSection(db, services.SectionInput{
		PageID: types.FlexUint64(second.ID),
		Data:   json.RawMessage(`{}`),
	})
	require.NoError(t, err)

	err = services.ReorderSections(db, first.ID, []uint64{foreign.ID, mine.ID})
	appErr, ok := types.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusUnprocessableEntity, appErr.Code)
}

func TestReorderSections(t *testing.T) {
	db := setupTestDB(t)
	doc := seedDocument(t, db, "doc")
	page := seedPage(t, db, doc.ID, 0, time.Now())

	var ids []uint64
	for i := 0; i < 3; i++ {
		section, err := services.CreateSection(db, services.SectionInput{
			PageID: types.FlexUint64(page.ID),
			Data:   json.RawMessage(`{}`),
		})
		require.NoError(t, err)
		ids = append(ids, section.ID)
	}

	reversed := []uint64{ids[2], ids[1], ids[0]}
	require.NoError(t, services.ReorderSections(db, page.ID, reversed))

	got, err := services.GetPage(db, page.ID)
	require.NoError(t, err)
	require.Len(t, got.Sections, 3)
	for i, section := range got.Sections {
		assert.Equal(t, reversed[i], section.ID)
		assert.Equal(t, i, section.Order)
	}
}

func TestDeleteSection(t *testing.T) {
	db := setupTestDB(t)
	doc := seedDocument(t, db, "doc")
	page := seedPage(t, db, doc.ID, 0, time.Now())
	section, err := services.CreateSection(db, services.SectionInput{
		PageID: types.FlexUint64(page.ID),
		Data:   json.RawMessage(`{}`),
	})
	require.NoError(t, err)

	require.NoError(t, services.DeleteSection(db, section.ID))

	err = services.DeleteSection(db, section.ID)
	appErr, ok := types.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, appErr.Code)
}
