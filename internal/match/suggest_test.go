package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	known := []string{"deptName", "deptId", "creatorName", "createBy", "name"}

	got := Suggest("deptNme", known, 2)
	assert.Equal(t, []string{"deptName"}, got[:1])
	assert.LessOrEqual(t, len(got), 2)
}

func TestSuggest_SkipsExactAndDistant(t *testing.T) {
	got := Suggest("deptName", []string{"deptName", "zzzzzzzzzz"}, 3)
	assert.Empty(t, got)
}

func TestSuggest_Deterministic(t *testing.T) {
	known := []string{"jobB", "jobA"}

	first := Suggest("jobC", known, 5)
	second := Suggest("jobC", known, 5)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"jobA", "jobB"}, first)
}

func TestSuggest_NoLimit(t *testing.T) {
	assert.Nil(t, Suggest("x", []string{"x1"}, 0))
	assert.Nil(t, Suggest("x", nil, 3))
}
