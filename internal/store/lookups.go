package store

import (
	"context"
	"fmt"
)

// DeptService resolves department names.
type DeptService struct {
	db *DB
}

// NewDeptService creates a DeptService.
func NewDeptService(db *DB) *DeptService {
	return &DeptService{db: db}
}

// FindNameByID returns the name of a department.
func (s *DeptService) FindNameByID(ctx context.Context, id int64) (string, error) {
	return lookupString(ctx, s.db, `SELECT name FROM sys_dept WHERE dept_id = ?`, "dept", id)
}

// UserService resolves user display names.
type UserService struct {
	db *DB
}

// NewUserService creates a UserService.
func NewUserService(db *DB) *UserService {
	return &UserService{db: db}
}

// FindNicknameByID returns the nickname of a user.
func (s *UserService) FindNicknameByID(ctx context.Context, id int64) (string, error) {
	return lookupString(ctx, s.db, `SELECT nick_name FROM sys_user WHERE user_id = ?`, "user", id)
}

// FindDeptIDByID returns the department a user belongs to.
func (s *UserService) FindDeptIDByID(ctx context.Context, id int64) (int64, error) {
	v, err := queryOne(ctx, s.db.db, func(sc scanner) (*int64, error) {
		var dept int64
		err := sc.Scan(&dept)

		return &dept, err
	}, `SELECT COALESCE(dept_id, 0) FROM sys_user WHERE user_id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("user %d: %w", id, err)
	}

	return *v, nil
}

func lookupString(ctx context.Context, db *DB, query, what string, id int64) (string, error) {
	v, err := queryOne(ctx, db.db, func(sc scanner) (*string, error) {
		var s string
		err := sc.Scan(&s)

		return &s, err
	}, query, id)
	if err != nil {
		return "", fmt.Errorf("%s %d: %w", what, id, err)
	}

	return *v, nil
}
