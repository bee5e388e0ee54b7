package system

import (
	"smpe-admin/internal/enrich"
	"smpe-admin/internal/mapping"
)

// Query method names declarations are registered under.
const (
	QueryJobsByUser  = "JobMapper.findByUserId"
	QueryJobByID     = "JobMapper.selectById"
	QueryJobPage     = "JobMapper.selectPage"
	QueryQuartzJobs  = "QuartzJobMapper.findAll"
	QueryUsersByDept = "UserMapper.findByDeptId"
)

const (
	selectDeptName = "DeptService.findNameById"
	selectNickname = "UserService.findNicknameById"
)

var (
	deptName = enrich.Descriptor{Column: "dept_id", Property: "deptName", Select: selectDeptName}
	creator  = enrich.Descriptor{Column: "create_by", Property: "creatorName", Select: selectNickname}
)

// defaults lists the compiled-in declarations with the entity each query returns.
var defaults = []mapping.Query{
	{Method: QueryJobsByUser, Entity: "Job", Enrich: mapping.DescriptorList{deptName, creator}},
	{Method: QueryJobByID, Entity: "Job", Enrich: mapping.DescriptorList{deptName, creator}},
	{Method: QueryJobPage, Entity: "Job", Enrich: mapping.DescriptorList{deptName, creator}},
	{Method: QueryQuartzJobs, Entity: "QuartzJob", Enrich: mapping.DescriptorList{creator}},
	{Method: QueryUsersByDept, Entity: "User", Enrich: mapping.DescriptorList{deptName}},
}

// DefaultFile returns the compiled-in declarations as a declaration file.
func DefaultFile() *mapping.File {
	f := &mapping.File{Version: "1"}
	for _, q := range defaults {
		q.Enrich = append(mapping.DescriptorList(nil), q.Enrich...)
		f.Queries = append(f.Queries, q)
	}

	return f
}

// DefaultDeclarations returns the compiled-in declarations per query method.
func DefaultDeclarations() enrich.Declarations {
	return DefaultFile().Declarations()
}
