package quartz

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"smpe-admin/internal/entity"
	"smpe-admin/internal/lookup"
)

// JobKeyPrefix prefixes the key of every scheduled task.
const JobKeyPrefix = "SMPE_TASK_"

// ErrSchedule wraps every scheduling failure.
var ErrSchedule = errors.New("schedule task")

// errUnknownJob is wrapped with ErrSchedule for ids the manager never saw.
var errUnknownJob = errors.New("unknown task")

// JobKey returns the scheduler key of a task.
func JobKey(id int64) string {
	return JobKeyPrefix + strconv.FormatInt(id, 10)
}

var parser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Run is the outcome of one task execution.
type Run struct {
	JobID    int64
	Key      string
	Result   any
	Err      error
	Started  time.Time
	Duration time.Duration
}

// JobSource lists task definitions.
type JobSource interface {
	FindAll(ctx context.Context) ([]*entity.QuartzJob, error)
}

type task struct {
	job     entity.QuartzJob
	entryID cron.EntryID
}

// Manager keeps the cron entries of the known tasks.
type Manager struct {
	cron     *cron.Cron
	invoker  lookup.Caller
	logger   *zap.Logger
	timeout  time.Duration
	observe  func(Run)
	location *time.Location

	mu    sync.Mutex
	tasks map[int64]*task
}

// Option configures a Manager.
type Option func(*Manager)

// WithTimeout bounds each task execution.
func WithTimeout(d time.Duration) Option {
	return func(m *Manager) { m.timeout = d }
}

// WithObserver receives every finished run, on the goroutine that ran it.
func WithObserver(fn func(Run)) Option {
	return func(m *Manager) { m.observe = fn }
}

// WithLocation sets the time zone cron expressions are evaluated in.
func WithLocation(loc *time.Location) Option {
	return func(m *Manager) { m.location = loc }
}

// NewManager creates a stopped Manager that runs tasks through invoker.
func NewManager(invoker lookup.Caller, logger *zap.Logger, opts ...Option) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Manager{
		invoker: invoker,
		logger:  logger,
		tasks:   make(map[int64]*task),
	}

	for _, opt := range opts {
		opt(m)
	}

	cl := cronLogger{logger.Sugar()}
	cronOpts := []cron.Option{
		cron.WithParser(parser),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl)),
	}

	if m.location != nil {
		cronOpts = append(cronOpts, cron.WithLocation(m.location))
	}

	m.cron = cron.New(cronOpts...)

	return m
}

// Start starts the scheduler in its own goroutine.
func (m *Manager) Start() {
	m.cron.Start()
}

// Stop stops the scheduler and waits for running tasks until ctx is done.
func (m *Manager) Stop(ctx context.Context) error {
	done := m.cron.Stop()

	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: stop: %w", ErrSchedule, ctx.Err())
	}
}

// Restore adds every definition from src. Failing to list the definitions
// is returned as is; definitions that cannot be scheduled fail with
// ErrSchedule after the others have been added.
func (m *Manager) Restore(ctx context.Context, src JobSource) error {
	jobs, err := src.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("restore tasks: %w", err)
	}

	var errs []error

	for _, job := range jobs {
		if err := m.AddJob(job); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// AddJob registers a task and schedules it unless it is paused. Adding a
// known id replaces the previous definition.
func (m *Manager) AddJob(job *entity.QuartzJob) error {
	key := JobKey(job.ID)

	sched, err := parser.Parse(job.CronExpression)
	if err != nil {
		return fmt.Errorf("%w: %s: cron %q: %w", ErrSchedule, key, job.CronExpression, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if prev, ok := m.tasks[job.ID]; ok && prev.entryID != 0 {
		m.cron.Remove(prev.entryID)
	}

	t := &task{job: *job}
	if !job.IsPause {
		t.entryID = m.cron.Schedule(sched, m.cronJob(t.job))
	}

	m.tasks[job.ID] = t

	m.logger.Info("task added",
		zap.String("key", key),
		zap.String("cron", job.CronExpression),
		zap.Bool("paused", job.IsPause))

	return nil
}

// UpdateJob replaces the definition of a known task, keeping its pause state
// as given by job.
func (m *Manager) UpdateJob(job *entity.QuartzJob) error {
	if !m.known(job.ID) {
		return fmt.Errorf("%w: %s: %w", ErrSchedule, JobKey(job.ID), errUnknownJob)
	}

	return m.AddJob(job)
}

// PauseJob stops scheduling a task. Pausing a paused task is a no-op.
func (m *Manager) PauseJob(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tasks[id]
	if !ok {
		return fmt.Errorf("%w: %s: %w", ErrSchedule, JobKey(id), errUnknownJob)
	}

	if t.entryID != 0 {
		m.cron.Remove(t.entryID)
		t.entryID = 0
	}

	t.job.IsPause = true

	m.logger.Info("task paused", zap.String("key", JobKey(id)))

	return nil
}

// ResumeJob schedules a paused task again.
func (m *Manager) ResumeJob(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tasks[id]
	if !ok {
		return fmt.Errorf("%w: %s: %w", ErrSchedule, JobKey(id), errUnknownJob)
	}

	t.job.IsPause = false

	if t.entryID == 0 {
		sched, err := parser.Parse(t.job.CronExpression)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrSchedule, JobKey(id), err)
		}

		t.entryID = m.cron.Schedule(sched, m.cronJob(t.job))
	}

	m.logger.Info("task resumed", zap.String("key", JobKey(id)))

	return nil
}

// DeleteJob forgets a task.
func (m *Manager) DeleteJob(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tasks[id]
	if !ok {
		return fmt.Errorf("%w: %s: %w", ErrSchedule, JobKey(id), errUnknownJob)
	}

	if t.entryID != 0 {
		m.cron.Remove(t.entryID)
	}

	delete(m.tasks, id)

	m.logger.Info("task deleted", zap.String("key", JobKey(id)))

	return nil
}

// RunJobNow runs a task once on the calling goroutine, paused or not.
func (m *Manager) RunJobNow(ctx context.Context, id int64) (Run, error) {
	m.mu.Lock()
	t, ok := m.tasks[id]

	var job entity.QuartzJob
	if ok {
		job = t.job
	}

	m.mu.Unlock()

	if !ok {
		return Run{}, fmt.Errorf("%w: %s: %w", ErrSchedule, JobKey(id), errUnknownJob)
	}

	run := m.execute(ctx, job)
	if run.Err != nil {
		return run, fmt.Errorf("%w: %s: %w", ErrSchedule, run.Key, run.Err)
	}

	return run, nil
}

// IsScheduled reports whether a task has an active cron entry.
func (m *Manager) IsScheduled(id int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tasks[id]

	return ok && t.entryID != 0
}

// Next returns the next activation of a scheduled task. It is zero until
// the scheduler has started.
func (m *Manager) Next(id int64) (time.Time, bool) {
	m.mu.Lock()
	t, ok := m.tasks[id]

	var entryID cron.EntryID
	if ok {
		entryID = t.entryID
	}

	m.mu.Unlock()

	if entryID == 0 {
		return time.Time{}, false
	}

	return m.cron.Entry(entryID).Next, true
}

func (m *Manager) known(id int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.tasks[id]

	return ok
}

func (m *Manager) cronJob(job entity.QuartzJob) cron.Job {
	return cron.FuncJob(func() {
		m.execute(context.Background(), job)
	})
}

// execute invokes the task target and logs the outcome. Failures never
// reach cron.
func (m *Manager) execute(ctx context.Context, job entity.QuartzJob) Run {
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)

		defer cancel()
	}

	run := Run{JobID: job.ID, Key: JobKey(job.ID), Started: time.Now()}

	v, err := m.invoker.Invoke(ctx, job.BeanName+"."+job.MethodName, job.Params)
	run.Duration = time.Since(run.Started)
	run.Result = v.V
	run.Err = err

	fields := []zap.Field{
		zap.String("key", run.Key),
		zap.String("target", job.BeanName+"."+job.MethodName),
		zap.Duration("duration", run.Duration),
	}

	if err != nil {
		m.logger.Error("task failed", append(fields, zap.Error(err))...)
	} else {
		m.logger.Info("task finished", fields...)
	}

	if m.observe != nil {
		m.observe(run)
	}

	return run
}
