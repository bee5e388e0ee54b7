package store

import (
	"context"
	"fmt"

	"smpe-admin/internal/entity"
)

// UserMapper reads sys_user.
type UserMapper struct {
	db *DB
}

// NewUserMapper creates a UserMapper.
func NewUserMapper(db *DB) *UserMapper {
	return &UserMapper{db: db}
}

func scanUser(s scanner) (*entity.User, error) {
	var u entity.User
	if err := s.Scan(&u.ID, &u.DeptID, &u.Username, &u.NickName, &u.Email, &u.Enabled); err != nil {
		return nil, err
	}

	return &u, nil
}

// FindByDeptID returns the users of a department. The password is never read.
func (m *UserMapper) FindByDeptID(ctx context.Context, deptID int64) ([]*entity.User, error) {
	users, err := queryAll(ctx, m.db.db, scanUser,
		`SELECT user_id, COALESCE(dept_id, 0), username, nick_name, email, enabled
		FROM sys_user WHERE dept_id = ? ORDER BY user_id`, deptID)
	if err != nil {
		return nil, fmt.Errorf("find users of dept %d: %w", deptID, err)
	}

	return users, nil
}
