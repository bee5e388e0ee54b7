package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Setenv("SMPE_DB_PATH", ":memory:")
	t.Setenv("SMPE_LOG_LEVEL", "error")

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestJobs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "page",
			args: []string{"jobs", "--size", "2"},
			want: []string{`"total": 5`, `"size": 2`, `"creatorName": "Administrator"`},
		},
		{
			name: "by id",
			args: []string{"jobs", "--id", "11"},
			want: []string{`"name": "Full-stack Developer"`, `"creatorName": "Tester"`},
		},
		{
			name: "by user dumped",
			args: []string{"jobs", "--user", "1", "--dump"},
			want: []string{"Full-stack Developer", "Software Tester", "CreatorName"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)

			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestJobs_ExclusiveFlags(t *testing.T) {
	_, err := execute(t, "jobs", "--user", "1", "--id", "2")
	require.Error(t, err)
}

func TestCheck(t *testing.T) {
	out, err := execute(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "compiled-in declarations")
	assert.Contains(t, out, "queries OK")
}

func TestCheck_Defaults(t *testing.T) {
	out, err := execute(t, "check", "--defaults")
	require.NoError(t, err)
	assert.Contains(t, out, "method: JobMapper.findByUserId")
	assert.Contains(t, out, "select: DeptService.findNameById")
}

func TestCheck_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`queries:
  - method: JobMapper.findByUserId
    entity: Job
    enrich:
      column: dept_id
      property: deptNme
      select: DeptService.findNameById
`), 0o600))

	out, err := execute(t, "check", path)
	require.ErrorIs(t, err, errCheckFailed)
	assert.Contains(t, out, "setter_not_found")
	assert.Contains(t, out, "deptName")
}

func TestSchedule_List(t *testing.T) {
	out, err := execute(t, "schedule", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "SMPE_TASK_1")
	assert.Contains(t, out, "paused")
	assert.Contains(t, out, "SMPE_TASK_2")
}

func TestSchedule_RunNow(t *testing.T) {
	out, err := execute(t, "schedule", "--run", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "SMPE_TASK_1 finished")
	assert.Contains(t, out, "hello")
}

func TestGenAccessors(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "gen", "accessors", "--pkg", "smpe-admin/internal/entity", "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	data, err := os.ReadFile(filepath.Join(dir, "accessors_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "func RegisterAccessors(r *accessor.Registry)")
}
