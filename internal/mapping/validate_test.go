package mapping

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smpe-admin/internal/accessor"
	"smpe-admin/internal/diagnostic"
	"smpe-admin/internal/enrich"
	"smpe-admin/internal/lookup"
)

type Job struct {
	DeptID    int64
	Code      string
	DeptName  string
	DeptRank  int
	CreatedBy string
}

type deptService struct{}

func (deptService) FindNameByID(context.Context, int64) (string, error) { return "", nil }
func (deptService) FindRankByID(context.Context, int64) (int, error)    { return 0, nil }

func newRegistries(t *testing.T) (*accessor.Registry, *lookup.Registry) {
	t.Helper()

	accessors := accessor.NewRegistry()
	accessor.Register(accessors,
		accessor.ReadOnly("deptId", func(j *Job) int64 { return j.DeptID }),
		accessor.ReadOnly("code", func(j *Job) string { return j.Code }),
		accessor.WriteOnly("deptName", func(j *Job, v string) { j.DeptName = v }),
		accessor.Field("deptRank", func(j *Job) int { return j.DeptRank }, func(j *Job, v int) { j.DeptRank = v }),
	)

	lookups := lookup.NewRegistry()
	require.NoError(t, lookup.Register(lookups, "DeptService", "findNameById", deptService.FindNameByID))
	require.NoError(t, lookup.Register(lookups, "DeptService", "findRankById", deptService.FindRankByID))

	return accessors, lookups
}

func query(descriptors ...enrich.Descriptor) *File {
	return &File{
		Version: "1",
		Queries: []Query{{Method: "JobMapper.selectById", Entity: "Job", Enrich: descriptors}},
	}
}

func TestValidate_Valid(t *testing.T) {
	accessors, lookups := newRegistries(t)

	f := query(
		enrich.Descriptor{Column: "dept_id", Property: "deptName", Select: "DeptService.findNameById"},
		enrich.Descriptor{Column: "dept_id", Property: "deptRank", Select: "DeptService.findRankById"},
	)

	diags := Validate(f, accessors, lookups)
	assert.Zero(t, diags.Len(), diags.All())
	require.NoError(t, diags.Error())
}

func TestValidate_Codes(t *testing.T) {
	tests := []struct {
		name       string
		descriptor enrich.Descriptor
		wantCode   string
		severity   diagnostic.Severity
		suggests   string
	}{
		{
			name:       "column missing",
			descriptor: enrich.Descriptor{Property: "deptName", Select: "DeptService.findNameById"},
			wantCode:   "column_missing",
			severity:   diagnostic.SeverityError,
		},
		{
			name:       "property missing",
			descriptor: enrich.Descriptor{Column: "dept_id", Select: "DeptService.findNameById"},
			wantCode:   "property_missing",
			severity:   diagnostic.SeverityError,
		},
		{
			name:       "select missing",
			descriptor: enrich.Descriptor{Column: "dept_id", Property: "deptName"},
			wantCode:   "select_missing",
			severity:   diagnostic.SeverityError,
		},
		{
			name:       "invalid select",
			descriptor: enrich.Descriptor{Column: "dept_id", Property: "deptName", Select: "findNameById"},
			wantCode:   "invalid_select",
			severity:   diagnostic.SeverityError,
		},
		{
			name:       "unknown select",
			descriptor: enrich.Descriptor{Column: "dept_id", Property: "deptName", Select: "DeptService.findNameByld"},
			wantCode:   "unknown_select",
			severity:   diagnostic.SeverityError,
			suggests:   "DeptService.findNameById",
		},
		{
			name:       "getter not found",
			descriptor: enrich.Descriptor{Column: "dept_code", Property: "deptName", Select: "DeptService.findNameById"},
			wantCode:   "getter_not_found",
			severity:   diagnostic.SeverityError,
		},
		{
			name:       "argument not accepted",
			descriptor: enrich.Descriptor{Column: "code", Property: "deptName", Select: "DeptService.findNameById"},
			wantCode:   "argument_not_accepted",
			severity:   diagnostic.SeverityError,
		},
		{
			name:       "setter not found",
			descriptor: enrich.Descriptor{Column: "dept_id", Property: "deptNam", Select: "DeptService.findNameById"},
			wantCode:   "setter_not_found",
			severity:   diagnostic.SeverityError,
			suggests:   "deptName",
		},
		{
			name:       "read-only destination",
			descriptor: enrich.Descriptor{Column: "dept_id", Property: "code", Select: "DeptService.findNameById"},
			wantCode:   "setter_not_found",
			severity:   diagnostic.SeverityError,
		},
		{
			name:       "setter type mismatch",
			descriptor: enrich.Descriptor{Column: "dept_id", Property: "deptRank", Select: "DeptService.findNameById"},
			wantCode:   "setter_type_mismatch",
			severity:   diagnostic.SeverityError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accessors, lookups := newRegistries(t)

			diags := Validate(query(tt.descriptor), accessors, lookups)

			var found *diagnostic.Diagnostic

			for _, d := range diags.All() {
				if d.Code == tt.wantCode {
					found = &d
					break
				}
			}

			require.NotNil(t, found, "codes: %v", diags.Codes())
			assert.Equal(t, tt.severity, found.Severity)
			assert.Equal(t, "JobMapper.selectById", found.Subject)

			if tt.suggests != "" {
				assert.Contains(t, found.Suggestions, tt.suggests)
			}
		})
	}
}

func TestValidate_Warnings(t *testing.T) {
	accessors, lookups := newRegistries(t)

	f := query(
		enrich.Descriptor{Column: "deptId", Property: "deptName", Select: "DeptService.findNameById"},
		enrich.Descriptor{Column: "dept_id", Property: "deptName", Select: "DeptService.findNameById"},
	)

	diags := Validate(f, accessors, lookups)

	assert.Contains(t, diags.Codes(), "column_not_snake_case")
	assert.Contains(t, diags.Codes(), "duplicate_property")
	// "deptId" lower-cases to "deptid", which has no getter.
	assert.Contains(t, diags.Codes(), "getter_not_found")
}

func TestValidate_Queries(t *testing.T) {
	accessors, lookups := newRegistries(t)
	d := enrich.Descriptor{Column: "dept_id", Property: "deptName", Select: "DeptService.findNameById"}

	f := &File{
		Version: "2",
		Queries: []Query{
			{Enrich: DescriptorList{d}},
			{Method: "JobMapper.selectById", Entity: "Job", Enrich: DescriptorList{d}},
			{Method: "JobMapper.selectById", Entity: "Job", Enrich: DescriptorList{d}},
			{Method: "JobMapper.selectPage", Entity: "Jobs", Enrich: DescriptorList{d}},
			{Method: "JobMapper.findAll"},
		},
	}

	diags := Validate(f, accessors, lookups)
	codes := diags.Codes()

	assert.Contains(t, codes, "unsupported_version")
	assert.Contains(t, codes, "method_missing")
	assert.Contains(t, codes, "duplicate_method")
	assert.Contains(t, codes, "unknown_entity")
	assert.Contains(t, codes, "empty_declaration")

	for _, diag := range diags.All() {
		if diag.Code == "unknown_entity" {
			assert.Equal(t, []string{"Job"}, diag.Suggestions)
		}

		if diag.Code == "method_missing" {
			assert.Equal(t, "queries[0]", diag.Subject)
		}
	}
}

func TestValidate_WithoutRegistries(t *testing.T) {
	f := query(enrich.Descriptor{Column: "dept_id", Property: "deptName", Select: "DeptService.anything"})

	diags := Validate(f, nil, nil)
	assert.Zero(t, diags.Len(), diags.All())

	diags = Validate(nil, nil, nil)
	assert.Equal(t, []string{"file_is_nil"}, diags.Codes())
}
