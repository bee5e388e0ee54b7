package entity

import "time"

//go:generate go run smpe-admin/cmd/smpe-admin gen accessors --pkg . --out .

// Job is a position users can hold, stored in sys_job.
type Job struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Enabled    bool      `json:"enabled"`
	JobSort    int64     `json:"jobSort"`
	DeptID     int64     `json:"deptId"`
	CreateBy   int64     `json:"createBy"`
	CreateTime time.Time `json:"createTime"`

	// Display fields, filled by enrichment.
	DeptName    string `json:"deptName,omitempty"`
	CreatorName string `json:"creatorName,omitempty"`
}

// Dept is a node of the department tree, stored in sys_dept.
type Dept struct {
	ID       int64  `json:"id"`
	PID      int64  `json:"pid"`
	Name     string `json:"name"`
	DeptSort int64  `json:"deptSort"`
	Enabled  bool   `json:"enabled"`
}

// User is a back-office account, stored in sys_user.
type User struct {
	ID       int64  `json:"id"`
	DeptID   int64  `json:"deptId"`
	Username string `json:"username"`
	NickName string `json:"nickName"`
	Email    string `json:"email"`
	Enabled  bool   `json:"enabled"`
	Password string `json:"-" prop:"-"`

	DeptName string `json:"deptName,omitempty"`
}

// QuartzJob is a scheduled task definition, stored in sys_quartz_job. The
// task invokes BeanName.MethodName with Params.
type QuartzJob struct {
	ID             int64  `json:"id"`
	JobName        string `json:"jobName"`
	BeanName       string `json:"beanName"`
	MethodName     string `json:"methodName"`
	Params         string `json:"params"`
	CronExpression string `json:"cronExpression"`
	IsPause        bool   `json:"isPause"`
	PersonInCharge string `json:"personInCharge"`
	Description    string `json:"description"`
	CreateBy       int64  `json:"createBy"`

	CreatorName string `json:"creatorName,omitempty"`
}
