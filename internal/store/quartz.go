package store

import (
	"context"
	"fmt"

	"smpe-admin/internal/entity"
)

const quartzColumns = `job_id, job_name, bean_name, method_name, params, cron_expression, is_pause,
	person_in_charge, description, COALESCE(create_by, 0)`

// QuartzJobMapper reads and updates sys_quartz_job.
type QuartzJobMapper struct {
	db *DB
}

// NewQuartzJobMapper creates a QuartzJobMapper.
func NewQuartzJobMapper(db *DB) *QuartzJobMapper {
	return &QuartzJobMapper{db: db}
}

func scanQuartzJob(s scanner) (*entity.QuartzJob, error) {
	var q entity.QuartzJob

	err := s.Scan(&q.ID, &q.JobName, &q.BeanName, &q.MethodName, &q.Params, &q.CronExpression, &q.IsPause,
		&q.PersonInCharge, &q.Description, &q.CreateBy)
	if err != nil {
		return nil, err
	}

	return &q, nil
}

// FindAll returns every scheduled task definition.
func (m *QuartzJobMapper) FindAll(ctx context.Context) ([]*entity.QuartzJob, error) {
	jobs, err := queryAll(ctx, m.db.db, scanQuartzJob,
		`SELECT `+quartzColumns+` FROM sys_quartz_job ORDER BY job_id`)
	if err != nil {
		return nil, fmt.Errorf("find quartz jobs: %w", err)
	}

	return jobs, nil
}

// FindByID returns one task definition or ErrNotFound.
func (m *QuartzJobMapper) FindByID(ctx context.Context, id int64) (*entity.QuartzJob, error) {
	job, err := queryOne(ctx, m.db.db, scanQuartzJob,
		`SELECT `+quartzColumns+` FROM sys_quartz_job WHERE job_id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("find quartz job %d: %w", id, err)
	}

	return job, nil
}

// UpdatePause records whether a task is paused.
func (m *QuartzJobMapper) UpdatePause(ctx context.Context, id int64, pause bool) error {
	res, err := m.db.db.ExecContext(ctx, `UPDATE sys_quartz_job SET is_pause = ? WHERE job_id = ?`, pause, id)
	if err != nil {
		return fmt.Errorf("update quartz job %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update quartz job %d: %w", id, err)
	}

	if n == 0 {
		return fmt.Errorf("update quartz job %d: %w", id, ErrNotFound)
	}

	return nil
}
