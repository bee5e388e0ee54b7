package system

import (
	"context"

	"smpe-admin/internal/enrich"
	"smpe-admin/internal/entity"
	"smpe-admin/internal/paging"
	"smpe-admin/internal/store"
)

// JobService serves jobs with their department and creator names filled in.
type JobService struct {
	findByUserID enrich.QueryFunc[int64, []*entity.Job]
	findByID     enrich.QueryFunc[int64, *entity.Job]
	page         enrich.QueryFunc[paging.Query, *paging.Page[entity.Job]]
}

// NewJobService wraps the job mapper queries with the declarations
// registered for them in decls.
func NewJobService(jobs *store.JobMapper, d *enrich.Dispatcher, decls enrich.Declarations) *JobService {
	return &JobService{
		findByUserID: enrich.Wrap(d, decls.Get(QueryJobsByUser), enrich.ShapeAll[entity.Job], jobs.FindByUserID),
		findByID:     enrich.Wrap(d, decls.Get(QueryJobByID), enrich.ShapeOne[entity.Job], jobs.FindByID),
		page:         enrich.Wrap(d, decls.Get(QueryJobPage), enrich.ShapePaged[entity.Job], jobs.SelectPage),
	}
}

// FindByUserID returns the jobs held by a user.
func (s *JobService) FindByUserID(ctx context.Context, userID int64) ([]*entity.Job, error) {
	return s.findByUserID(ctx, userID)
}

// FindByID returns one job.
func (s *JobService) FindByID(ctx context.Context, id int64) (*entity.Job, error) {
	return s.findByID(ctx, id)
}

// Page returns one page of jobs. Page metadata is exactly what the mapper
// returned.
func (s *JobService) Page(ctx context.Context, q paging.Query) (*paging.Page[entity.Job], error) {
	return s.page(ctx, q)
}

// UserService serves users with their department name filled in.
type UserService struct {
	findByDeptID enrich.QueryFunc[int64, []*entity.User]
}

// NewUserService wraps the user mapper queries.
func NewUserService(users *store.UserMapper, d *enrich.Dispatcher, decls enrich.Declarations) *UserService {
	return &UserService{
		findByDeptID: enrich.Wrap(d, decls.Get(QueryUsersByDept), enrich.ShapeAll[entity.User], users.FindByDeptID),
	}
}

// FindByDeptID returns the users of a department.
func (s *UserService) FindByDeptID(ctx context.Context, deptID int64) ([]*entity.User, error) {
	return s.findByDeptID(ctx, deptID)
}

// QuartzJobService serves scheduled task definitions with their creator
// names filled in, and records pause state changes.
type QuartzJobService struct {
	mapper  *store.QuartzJobMapper
	findAll enrich.QueryFunc[struct{}, []*entity.QuartzJob]
}

// NewQuartzJobService wraps the task definition queries.
func NewQuartzJobService(m *store.QuartzJobMapper, d *enrich.Dispatcher, decls enrich.Declarations) *QuartzJobService {
	findAll := func(ctx context.Context, _ struct{}) ([]*entity.QuartzJob, error) {
		return m.FindAll(ctx)
	}

	return &QuartzJobService{
		mapper:  m,
		findAll: enrich.Wrap(d, decls.Get(QueryQuartzJobs), enrich.ShapeAll[entity.QuartzJob], findAll),
	}
}

// FindAll returns every task definition.
func (s *QuartzJobService) FindAll(ctx context.Context) ([]*entity.QuartzJob, error) {
	return s.findAll(ctx, struct{}{})
}

// UpdatePause records whether a task is paused.
func (s *QuartzJobService) UpdatePause(ctx context.Context, id int64, pause bool) error {
	return s.mapper.UpdatePause(ctx, id, pause)
}
