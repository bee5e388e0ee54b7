package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"dept_id", []string{"dept", "id"}},
		{"deptId", []string{"dept", "id"}},
		{"DeptID", []string{"dept", "id"}},
		{"create_by", []string{"create", "by"}},
		{"HTTPStatus", []string{"http", "status"}},
		{"nick-name", []string{"nick", "name"}},
		{"__job__sort", []string{"job", "sort"}},
		{"PID", []string{"pid"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Words(tt.in))
		})
	}
}

func TestFold(t *testing.T) {
	assert.Equal(t, "deptid", Fold("dept_id"))
	assert.Equal(t, "deptid", Fold("deptId"))
	assert.Equal(t, "creatorname", Fold("CreatorName"))
}

func TestFoldKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"dept_id", "dept"},
		{"deptIds", "dept"},
		{"order_no", "order"},
		{"id", "id"},
		{"paid", "paid"},
		{"deptName", "deptname"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FoldKey(tt.in))
		})
	}
}
