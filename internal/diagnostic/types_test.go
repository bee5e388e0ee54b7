package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddAndError(t *testing.T) {
	var d Diagnostics

	require.NoError(t, d.Error())

	d.AddWarning("duplicate_property", "written twice", "JobMapper.findByUserId", "deptName")
	d.AddInfo("note", "just saying", "", "")
	assert.False(t, d.HasErrors())
	require.NoError(t, d.Error())

	d.AddError("unknown_select", "no such lookup", "JobMapper.findByUserId", "DeptService.findName",
		"DeptService.findNameById")
	d.AddError("column_missing", "column is required", "", "")

	require.True(t, d.HasErrors())
	assert.Equal(t, 4, d.Len())
	assert.Equal(t, []string{"unknown_select", "column_missing", "duplicate_property", "note"}, d.Codes())

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		"[JobMapper.findByUserId] DeptService.findName: [unknown_select] no such lookup "+
			"(did you mean DeptService.findNameById?); [column_missing] column is required",
		err.Error())
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics

	a.AddError("x", "x", "", "")
	b.AddWarning("y", "y", "", "")
	b.AddInfo("z", "z", "", "")

	a.Merge(b)
	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Infos, 1)
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
