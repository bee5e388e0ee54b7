package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smpe-admin/internal/paging"
)

func openSeeded(t *testing.T) *DB {
	t.Helper()

	db, err := Open(t.Context(), MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Seed(t.Context()))

	return db
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "smpe.db")

	db, err := Open(t.Context(), path)
	require.NoError(t, err)
	assert.Equal(t, path, db.Path())
	require.NoError(t, db.Seed(t.Context()))
	require.NoError(t, db.Close())

	// Reopening keeps the data and seeding twice is harmless.
	db, err = Open(t.Context(), path)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Seed(t.Context()))

	jobs, err := NewJobMapper(db).SelectPage(t.Context(), paging.Query{})
	require.NoError(t, err)
	assert.Equal(t, int64(5), jobs.Total)
}

func TestJobMapper_FindByUserID(t *testing.T) {
	db := openSeeded(t)
	m := NewJobMapper(db)

	jobs, err := m.FindByUserID(t.Context(), 1)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, int64(11), jobs[0].ID)
	assert.Equal(t, "Full-stack Developer", jobs[0].Name)
	assert.Equal(t, int64(2), jobs[0].DeptID)
	assert.Equal(t, int64(2), jobs[0].CreateBy)
	assert.Equal(t, time.Date(2020, 5, 14, 0, 0, 0, 0, time.UTC), jobs[0].CreateTime)
	assert.Empty(t, jobs[0].DeptName, "display fields are left for enrichment")
	assert.Equal(t, int64(12), jobs[1].ID)

	jobs, err = m.FindByUserID(t.Context(), 42)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestJobMapper_FindByID(t *testing.T) {
	db := openSeeded(t)
	m := NewJobMapper(db)

	job, err := m.FindByID(t.Context(), 13)
	require.NoError(t, err)
	assert.Equal(t, "Accountant", job.Name)
	assert.False(t, job.Enabled)

	_, err = m.FindByID(t.Context(), 404)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestJobMapper_SelectPage(t *testing.T) {
	db := openSeeded(t)
	m := NewJobMapper(db)

	page, err := m.SelectPage(t.Context(), paging.Query{Current: 2, Size: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, int64(2), page.Current)
	assert.Equal(t, int64(2), page.Size)
	assert.Equal(t, int64(3), page.Pages())
	require.Len(t, page.Records, 2)

	// Ordered by job_sort: 11(2), 8(3), 10(4), 12(5), 13(6).
	assert.Equal(t, int64(10), page.Records[0].ID)
	assert.Equal(t, int64(12), page.Records[1].ID)

	page, err = m.SelectPage(t.Context(), paging.Query{Current: 9, Size: 2})
	require.NoError(t, err)
	assert.Empty(t, page.Records)
	assert.Equal(t, int64(5), page.Total)
}

func TestLookupServices(t *testing.T) {
	db := openSeeded(t)
	ctx := t.Context()

	name, err := NewDeptService(db).FindNameByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "R&D", name)

	_, err = NewDeptService(db).FindNameByID(ctx, 3)
	require.ErrorIs(t, err, ErrNotFound)

	users := NewUserService(db)

	nick, err := users.FindNicknameByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Administrator", nick)

	_, err = users.FindNicknameByID(ctx, 99)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "user 99")

	dept, err := users.FindDeptIDByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), dept)
}

func TestLookupServices_Canceled(t *testing.T) {
	db := openSeeded(t)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := NewDeptService(db).FindNameByID(ctx, 2)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestQuartzJobMapper(t *testing.T) {
	db := openSeeded(t)
	m := NewQuartzJobMapper(db)
	ctx := t.Context()

	jobs, err := m.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "TestTask", jobs[0].BeanName)
	assert.Equal(t, "run", jobs[0].MethodName)
	assert.Equal(t, "0/5 * * * * ?", jobs[0].CronExpression)
	assert.True(t, jobs[0].IsPause)

	require.NoError(t, m.UpdatePause(ctx, 1, false))

	job, err := m.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.False(t, job.IsPause)

	require.ErrorIs(t, m.UpdatePause(ctx, 77, true), ErrNotFound)

	_, err = m.FindByID(ctx, 77)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUserMapper_FindByDeptID(t *testing.T) {
	db := openSeeded(t)

	users, err := NewUserMapper(db).FindByDeptID(t.Context(), 2)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, "Tester", users[1].NickName)
	assert.Empty(t, users[0].Password)

	users, err = NewUserMapper(db).FindByDeptID(t.Context(), 7)
	require.NoError(t, err)
	assert.Empty(t, users)
}
