package store

import (
	"context"
	"fmt"
)

// seedCreated is 2020-05-14 00:00:00 UTC.
const seedCreated = 1589414400

var seedStatements = []struct {
	query string
	rows  [][]any
}{
	{
		`INSERT OR IGNORE INTO sys_dept (dept_id, pid, name, dept_sort, enabled) VALUES (?, ?, ?, ?, ?)`,
		[][]any{
			{1, 0, "Headquarters", 0, true},
			{2, 1, "R&D", 1, true},
			{5, 1, "Operations", 2, true},
			{7, 1, "Finance", 3, false},
		},
	},
	{
		`INSERT OR IGNORE INTO sys_user (user_id, dept_id, username, nick_name, email, enabled) VALUES (?, ?, ?, ?, ?, ?)`,
		[][]any{
			{1, 2, "admin", "Administrator", "admin@example.com", true},
			{2, 2, "test", "Tester", "test@example.com", true},
		},
	},
	{
		`INSERT OR IGNORE INTO sys_job (job_id, name, enabled, job_sort, dept_id, create_by, create_time) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		[][]any{
			{8, "HR Specialist", true, 3, 5, 1, seedCreated},
			{10, "Product Manager", true, 4, 2, 1, seedCreated},
			{11, "Full-stack Developer", true, 2, 2, 2, seedCreated},
			{12, "Software Tester", true, 5, 2, 2, seedCreated},
			// Created by a user that no longer exists.
			{13, "Accountant", false, 6, 7, 99, seedCreated},
		},
	},
	{
		`INSERT OR IGNORE INTO sys_users_jobs (user_id, job_id) VALUES (?, ?)`,
		[][]any{
			{1, 11},
			{1, 12},
			{2, 12},
		},
	},
	{
		`INSERT OR IGNORE INTO sys_quartz_job (job_id, job_name, bean_name, method_name, params, cron_expression, is_pause, person_in_charge, description, create_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		[][]any{
			{1, "Greeting", "TestTask", "run", "hello", "0/5 * * * * ?", true, "admin", "Logs its parameter", 1},
			{2, "Nightly report", "TestTask", "run", "report", "0 0 2 * * ?", false, "admin", "Runs at 02:00", 1},
		},
	},
}

// Seed loads the demo data set. Existing rows are kept.
func (d *DB) Seed(ctx context.Context) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, st := range seedStatements {
		stmt, err := tx.PrepareContext(ctx, st.query)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}

		for _, row := range st.rows {
			if _, err := stmt.ExecContext(ctx, row...); err != nil {
				_ = stmt.Close()
				return fmt.Errorf("seed: %w", err)
			}
		}

		_ = stmt.Close()
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	return nil
}
