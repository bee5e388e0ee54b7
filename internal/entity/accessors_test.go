package entity

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smpe-admin/internal/accessor"
)

func TestRegisterAccessors(t *testing.T) {
	r := accessor.NewRegistry()
	RegisterAccessors(r)

	assert.Equal(t, []string{"Dept", "Job", "QuartzJob", "User"}, r.TypeNames())

	jobType := reflect.TypeFor[*Job]()
	assert.Equal(t, []string{
		"id", "name", "enabled", "jobSort", "deptId", "createBy", "createTime", "deptName", "creatorName",
	}, r.Properties(jobType))

	job := &Job{DeptID: 2, CreateTime: time.Date(2020, 5, 14, 0, 0, 0, 0, time.UTC)}

	get, err := r.FindGetter(jobType, "deptId")
	require.NoError(t, err)
	assert.Equal(t, int64(2), get(job))

	set, err := r.FindSetter(jobType, "deptName", reflect.TypeFor[string]())
	require.NoError(t, err)
	set(job, "R&D")
	assert.Equal(t, "R&D", job.DeptName)
}

func TestRegisterAccessors_SkipsHiddenFields(t *testing.T) {
	r := accessor.NewRegistry()
	RegisterAccessors(r)

	props := r.Properties(reflect.TypeFor[*User]())
	assert.Contains(t, props, "nickName")
	assert.NotContains(t, props, "password")

	_, err := r.FindGetter(reflect.TypeFor[*User](), "password")
	assert.ErrorIs(t, err, accessor.ErrNotFound)
}
