package system

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"smpe-admin/internal/lookup"
	"smpe-admin/internal/store"
)

// Service owner names, as used in lookup references and task definitions.
const (
	OwnerDept     = "DeptService"
	OwnerUser     = "UserService"
	OwnerTestTask = "TestTask"
)

// RegisterLookups binds the lookup references of this module.
func RegisterLookups(r *lookup.Registry) error {
	for _, err := range []error{
		lookup.Register(r, OwnerDept, "findNameById", (*store.DeptService).FindNameByID),
		lookup.Register(r, OwnerUser, "findNicknameById", (*store.UserService).FindNicknameByID),
		lookup.Register(r, OwnerUser, "findDeptIdById", (*store.UserService).FindDeptIDByID),
		lookup.Register(r, OwnerTestTask, "run", (*TestTask).Run),
	} {
		if err != nil {
			return err
		}
	}

	return nil
}

// ProvideServices registers the live service instances backing the lookups.
func ProvideServices(m *lookup.ServiceMap, db *store.DB, logger *zap.Logger) {
	m.Provide(OwnerDept, store.NewDeptService(db))
	m.Provide(OwnerUser, store.NewUserService(db))
	m.Provide(OwnerTestTask, NewTestTask(logger))
}

// TestTask is a scheduled task target that logs its parameter.
type TestTask struct {
	logger *zap.Logger
	runs   atomic.Int64
}

// NewTestTask creates a TestTask.
func NewTestTask(logger *zap.Logger) *TestTask {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &TestTask{logger: logger}
}

// Run logs params and returns them.
func (t *TestTask) Run(_ context.Context, params string) (string, error) {
	n := t.runs.Add(1)
	t.logger.Info("test task run", zap.String("params", params), zap.Int64("run", n))

	return params, nil
}

// Runs returns how many times Run was called.
func (t *TestTask) Runs() int64 {
	return t.runs.Load()
}
