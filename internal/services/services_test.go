package services_test

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/proforge/profilepdf/internal/database"
	"github.com/proforge/profilepdf/internal/models"
	"github.com/proforge/profilepdf/internal/storage"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see a different :memory: database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func setupTestStore(t *testing.T) *storage.Store {
	t.Helper()

	store, err := storage.New(afero.NewMemMapFs(), "attachments")
	require.NoError(t, err)
	return store
}

func seedDocument(t *testing.T, db *gorm.DB, name string) *models.Document {
	t.Helper()

	doc := models.Document{Name: name}
	require.NoError(t, db.Create(&doc).Error)
	return &doc
}

func seedPage(t *testing.T, db *gorm.DB, pdfID uint64, order int, createdAt time.Time) *models.Page {
	t.Helper()

	page := models.Page{PdfID: pdfID, Title: "page", Order: order, CreatedAt: createdAt}
	require.NoError(t, db.Create(&page).Error)
	return &page
}
