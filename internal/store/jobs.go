package store

import (
	"context"
	"fmt"

	"smpe-admin/internal/entity"
	"smpe-admin/internal/paging"
)

const jobColumns = `j.job_id, j.name, j.enabled, j.job_sort, COALESCE(j.dept_id, 0), COALESCE(j.create_by, 0), j.create_time`

// JobMapper reads sys_job.
type JobMapper struct {
	db *DB
}

// NewJobMapper creates a JobMapper.
func NewJobMapper(db *DB) *JobMapper {
	return &JobMapper{db: db}
}

func scanJob(s scanner) (*entity.Job, error) {
	var (
		j       entity.Job
		created int64
	)

	if err := s.Scan(&j.ID, &j.Name, &j.Enabled, &j.JobSort, &j.DeptID, &j.CreateBy, &created); err != nil {
		return nil, err
	}

	j.CreateTime = unixTime(created)

	return &j, nil
}

// FindByUserID returns the jobs held by a user, ordered by sort key.
func (m *JobMapper) FindByUserID(ctx context.Context, userID int64) ([]*entity.Job, error) {
	jobs, err := queryAll(ctx, m.db.db, scanJob,
		`SELECT `+jobColumns+` FROM sys_job j, sys_users_jobs uj
		WHERE j.job_id = uj.job_id AND uj.user_id = ?
		ORDER BY j.job_sort, j.job_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("find jobs of user %d: %w", userID, err)
	}

	return jobs, nil
}

// FindByID returns one job or ErrNotFound.
func (m *JobMapper) FindByID(ctx context.Context, id int64) (*entity.Job, error) {
	job, err := queryOne(ctx, m.db.db, scanJob,
		`SELECT `+jobColumns+` FROM sys_job j WHERE j.job_id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("find job %d: %w", id, err)
	}

	return job, nil
}

// SelectPage returns one page of jobs with the total row count.
func (m *JobMapper) SelectPage(ctx context.Context, q paging.Query) (*paging.Page[entity.Job], error) {
	q = q.Normalize()

	var total int64
	if err := m.db.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sys_job`).Scan(&total); err != nil {
		return nil, fmt.Errorf("count jobs: %w", err)
	}

	jobs, err := queryAll(ctx, m.db.db, scanJob,
		`SELECT `+jobColumns+` FROM sys_job j ORDER BY j.job_sort, j.job_id LIMIT ? OFFSET ?`,
		q.Size, q.Offset())
	if err != nil {
		return nil, fmt.Errorf("select job page %d: %w", q.Current, err)
	}

	return paging.NewPage(q, jobs, total), nil
}
