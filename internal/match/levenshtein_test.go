package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "dept", 4},
		{"dept", "", 4},
		{"deptName", "deptName", 0},
		{"deptName", "deptNme", 1},
		{"deptNme", "deptName", 1},
		{"findNameById", "findNameByld", 1},
		{"creatorName", "createName", 2},
		{"kitten", "sitting", 3},
		{"DeptService", "deptService", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a), "symmetric")
		})
	}
}

func TestLevenshtein_Runes(t *testing.T) {
	assert.Equal(t, 1, Levenshtein("名前", "名"))
	assert.Equal(t, 0, Levenshtein("部门", "部门"))
}

func TestLevenshteinNormalized(t *testing.T) {
	assert.InDelta(t, 1.0, LevenshteinNormalized("", ""), 0.001)
	assert.InDelta(t, 1.0, LevenshteinNormalized("dept", "dept"), 0.001)
	assert.InDelta(t, 0.0, LevenshteinNormalized("abc", "xyz"), 0.001)
	assert.InDelta(t, 1.0-3.0/7.0, LevenshteinNormalized("kitten", "sitting"), 0.001)
}

func TestNameSimilarity(t *testing.T) {
	tests := []struct {
		a, b     string
		minScore float64
		maxScore float64
	}{
		{"dept_id", "deptId", 1.0, 1.0},
		{"create_by", "createBy", 1.0, 1.0},
		{"deptId", "dept", 1.0, 1.0},
		{"deptName", "deptNme", 0.8, 1.0},
		{"email", "password", 0.0, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			s := NameSimilarity(tt.a, tt.b)
			assert.GreaterOrEqual(t, s, tt.minScore)
			assert.LessOrEqual(t, s, tt.maxScore)
		})
	}
}

func BenchmarkNameSimilarity(b *testing.B) {
	for b.Loop() {
		NameSimilarity("creator_name", "creatorName")
	}
}
