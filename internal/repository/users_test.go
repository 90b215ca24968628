package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildUserSearchWhere(t *testing.T) {
	t.Run("empty term matches everything", func(t *testing.T) {
		where, args := buildUserSearchWhere("")

		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("term searches name, email and phone with one arg", func(t *testing.T) {
		where, args := buildUserSearchWhere("kumar")

		assert.Equal(t,
			" WHERE full_name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%' OR phone_number LIKE '%' || $1 || '%'",
			where)
		assert.Equal(t, []any{"kumar"}, args)
	})
}
