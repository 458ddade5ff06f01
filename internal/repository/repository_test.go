package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/progresstrack/progress-api/internal/database"
	"github.com/progresstrack/progress-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB opens a migrated sqlite database private to the test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")
	db, err := database.Connect(dsn, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.Migrate(context.Background(), db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{Email: email, PasswordHash: "hash"}
	require.NoError(t, NewUserRepository(db, time.Second).CreateWithRole(context.Background(), user, "User"))
	return user
}

// seedProject creates a project with one progress entry holding two tasks.
func seedProject(t *testing.T, db *gorm.DB, userID int64, name string) (*models.Project, *models.Progress) {
	t.Helper()
	ctx := context.Background()

	project := &models.Project{Name: name, UserID: userID}
	require.NoError(t, NewProjectRepository(db, time.Second).Create(ctx, project))

	progress := &models.Progress{Title: "stage", ProjectID: project.ID, UserID: userID}
	require.NoError(t, NewProgressRepository(db, time.Second).Create(ctx, progress))

	tasks := NewTaskRepository(db, time.Second)
	for _, title := range []string{"t1", "t2"} {
		require.NoError(t, tasks.Create(ctx, &models.Task{Title: title, ProgressID: progress.ID}))
	}
	return project, progress
}

func countRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(model).Where(query, args...).Count(&n).Error)
	return n
}
