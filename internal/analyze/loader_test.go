package analyze

import (
	"go/types"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const entityPkg = "smpe-admin/internal/entity"

func TestAnalyzer_LoadPackages(t *testing.T) {
	analyzer := NewAnalyzer()
	graph, err := analyzer.LoadPackages(entityPkg)
	require.NoError(t, err)
	require.NotNil(t, graph)

	require.Contains(t, graph.Packages, entityPkg)
	assert.Equal(t, "entity", graph.Packages[entityPkg].Name)
	assert.NotEmpty(t, graph.Packages[entityPkg].Dir)

	// Source order, not alphabetical.
	assert.Equal(t, []TypeID{
		{PkgPath: entityPkg, Name: "Job"},
		{PkgPath: entityPkg, Name: "Dept"},
		{PkgPath: entityPkg, Name: "User"},
		{PkgPath: entityPkg, Name: "QuartzJob"},
	}, graph.Packages[entityPkg].Types)
}

func TestAnalyzer_JobFields(t *testing.T) {
	analyzer := NewAnalyzer()
	_, err := analyzer.LoadPackages(entityPkg)
	require.NoError(t, err)

	job, err := analyzer.GetStruct(entityPkg, "Job")
	require.NoError(t, err)

	var names []string
	for _, f := range job.Fields {
		names = append(names, f.Name)
	}

	assert.Equal(t, []string{
		"ID", "Name", "Enabled", "JobSort", "DeptID", "CreateBy", "CreateTime", "DeptName", "CreatorName",
	}, names)

	deptID, ok := job.Field("DeptID")
	require.True(t, ok)
	assert.Equal(t, "deptId", deptID.JSONName())
	assert.Equal(t, types.Typ[types.Int64].String(), deptID.Type.String())

	createTime, ok := job.Field("CreateTime")
	require.True(t, ok)
	assert.Equal(t, "time.Time", createTime.Type.String())
}

func TestAnalyzer_FieldTags(t *testing.T) {
	analyzer := NewAnalyzer()
	_, err := analyzer.LoadPackages(entityPkg)
	require.NoError(t, err)

	user, err := analyzer.GetStruct(entityPkg, "User")
	require.NoError(t, err)

	password, ok := user.Field("Password")
	require.True(t, ok)
	assert.True(t, password.HasTag("prop"))
	assert.Equal(t, "-", password.GetTag("prop"))
	assert.Empty(t, password.JSONName())
}

func TestAnalyzer_GetStruct_Missing(t *testing.T) {
	analyzer := NewAnalyzer()
	_, err := analyzer.LoadPackages(entityPkg)
	require.NoError(t, err)

	_, err = analyzer.GetStruct(entityPkg, "Role")
	require.Error(t, err)
}

func TestTypeID_String(t *testing.T) {
	id := TypeID{PkgPath: entityPkg, Name: "Job"}
	assert.Equal(t, "smpe-admin/internal/entity.Job", id.String())

	idNoPkg := TypeID{Name: "int"}
	assert.Equal(t, "int", idNoPkg.String())
}

func TestFieldInfo_JSONName(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{`json:"dept_id"`, "dept_id"},
		{`json:"deptName,omitempty"`, "deptName"},
		{``, ""},
		{`json:"-"`, ""},
		{`json:",omitempty"`, ""},
	}

	for _, tt := range tests {
		f := FieldInfo{Name: "DeptID", Tag: reflect.StructTag(tt.tag)}
		assert.Equal(t, tt.want, f.JSONName(), tt.tag)
	}
}
