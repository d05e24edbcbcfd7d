package expense

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListFilterOrderBy(t *testing.T) {
	cases := []struct {
		ordering string
		column   string
		desc     bool
	}{
		{"", "expense_date", true},
		{"amount", "amount", false},
		{"-amount", "amount", true},
		{"-created_at", "created_at", true},
		{"title; DROP TABLE expenses", "expense_date", true},
	}
	for _, tc := range cases {
		column, desc := ListFilter{Ordering: tc.ordering}.OrderBy()
		assert.Equal(t, tc.column, column, tc.ordering)
		assert.Equal(t, tc.desc, desc, tc.ordering)
	}
}
