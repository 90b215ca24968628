package repository

import (
	"context"
	"testing"

	"github.com/gostays/backend/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	Kind string `db:"kind"`
}

func newWidgetRepo() *Repository[widget] {
	// No pool: these tests exercise only SQL building, which never
	// touches the connection.
	return NewRepository[widget](nil, "widgets", "name", "kind")
}

// stubQuerier records issued SQL and yields no rows.
type stubQuerier struct {
	queries []string
}

func (q *stubQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.queries = append(q.queries, sql)
	return emptyRows{}, nil
}

func (q *stubQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	q.queries = append(q.queries, sql)
	return emptyRows{}
}

type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(dest ...any) error                       { return pgx.ErrNoRows }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

func TestUpdateWithNoValuesIsNoOp(t *testing.T) {
	// An update that specifies no fields must not error and must not
	// write: it refreshes the stored row instead.
	for name, values := range map[string]map[string]any{
		"empty map": {},
		"nil map":   nil,
	} {
		t.Run(name, func(t *testing.T) {
			db := &stubQuerier{}
			r := NewRepository[widget](db, "widgets", "name", "kind")

			row, err := r.Update(context.Background(), 7, values)

			require.NoError(t, err)
			assert.Nil(t, row, "stub has no rows, so the refresh reports absence")

			require.Len(t, db.queries, 1)
			assert.Equal(t, "SELECT * FROM widgets WHERE id = $1", db.queries[0])
		})
	}
}

func TestSplitValues(t *testing.T) {
	r := newWidgetRepo()

	t.Run("sorted deterministic order", func(t *testing.T) {
		cols, args, err := r.splitValues(map[string]any{
			"name": "sprocket",
			"kind": "metal",
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"kind", "name"}, cols)
		assert.Equal(t, []any{"metal", "sprocket"}, args)
	})

	t.Run("unknown column rejected", func(t *testing.T) {
		_, _, err := r.splitValues(map[string]any{"id": 1})
		require.Error(t, err)

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, "INVALID_ARGUMENT", httpErr.Code)
	})

	t.Run("empty values rejected", func(t *testing.T) {
		_, _, err := r.splitValues(map[string]any{})
		assert.Error(t, err)
	})
}

func TestBuildWhere(t *testing.T) {
	r := newWidgetRepo()

	t.Run("empty filters match everything", func(t *testing.T) {
		where, args, err := r.buildWhere(nil, 1)
		require.NoError(t, err)

		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("multiple filters are AND-combined and sorted", func(t *testing.T) {
		where, args, err := r.buildWhere(map[string]any{
			"name": "sprocket",
			"kind": "metal",
		}, 1)
		require.NoError(t, err)

		assert.Equal(t, " WHERE kind = $1 AND name = $2", where)
		assert.Equal(t, []any{"metal", "sprocket"}, args)
	})

	t.Run("placeholder numbering honors start", func(t *testing.T) {
		where, _, err := r.buildWhere(map[string]any{"kind": "metal"}, 3)
		require.NoError(t, err)

		assert.Equal(t, " WHERE kind = $3", where)
	})

	t.Run("unknown filter key rejected", func(t *testing.T) {
		_, _, err := r.buildWhere(map[string]any{"created_at": "x"}, 1)
		assert.Error(t, err)
	})
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultListLimit, clampLimit(0))
	assert.Equal(t, DefaultListLimit, clampLimit(-5))
	assert.Equal(t, 50, clampLimit(50))
	assert.Equal(t, MaxListLimit, clampLimit(MaxListLimit))
	assert.Equal(t, MaxListLimit, clampLimit(MaxListLimit+1))
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "$1", placeholders(1, 1))
	assert.Equal(t, "$1, $2, $3", placeholders(1, 3))
	assert.Equal(t, "$4, $5", placeholders(4, 2))
	assert.Equal(t, "", placeholders(1, 0))
}
