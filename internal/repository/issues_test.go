package repository

import (
	"testing"

	"github.com/gostays/backend/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestIssueCodePrefix(t *testing.T) {
	assert.Equal(t, "CMP", issueCodePrefix(model.IssueComplaint))
	assert.Equal(t, "TKT", issueCodePrefix(model.IssueSupport))
}

func TestNextIssueCode(t *testing.T) {
	t.Run("first code starts at 1000", func(t *testing.T) {
		assert.Equal(t, "CMP-1000", nextIssueCode("CMP", nil))
	})

	t.Run("increments past the highest existing code", func(t *testing.T) {
		got := nextIssueCode("TKT", []string{"TKT-1000", "TKT-1004", "TKT-1002"})
		assert.Equal(t, "TKT-1005", got)
	})

	t.Run("codes with other prefixes are ignored", func(t *testing.T) {
		got := nextIssueCode("CMP", []string{"TKT-2000", "CMP-1001"})
		assert.Equal(t, "CMP-1002", got)
	})

	t.Run("malformed codes are skipped", func(t *testing.T) {
		got := nextIssueCode("CMP", []string{"CMP-", "CMP-abc", "CMP-1003"})
		assert.Equal(t, "CMP-1004", got)
	})
}
