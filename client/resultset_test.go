package client

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joeandaverde/tinydbc/engine"
)

func newTestResultSet() *ResultSet {
	return newResultSet(nil, engine.TabularData{
		Columns: []string{"name", "n", "ratio", "ok"},
		Rows: [][]interface{}{
			{"bar", int64(1), 0.5, int64(1)},
			{"baz", int64(2), 1.5, int64(0)},
		},
	})
}

func TestResultSet_Cursor(t *testing.T) {
	assert := require.New(t)
	rs := newTestResultSet()

	_, err := rs.Values()
	assert.Error(err, "no current row before Next")

	var (
		name  string
		n     int
		ratio float64
		ok    bool
	)

	assert.True(rs.Next())
	assert.Equal(1, rs.Row())
	assert.NoError(rs.Scan(&name, &n, &ratio, &ok))
	assert.Equal("bar", name)
	assert.Equal(1, n)
	assert.Equal(0.5, ratio)
	assert.True(ok)

	assert.True(rs.Next())
	assert.NoError(rs.Scan(&name, &n, &ratio, &ok))
	assert.Equal("baz", name)
	assert.False(ok)

	assert.False(rs.Next())
	assert.False(rs.Next())

	assert.NoError(rs.BeforeFirst())
	assert.Equal(0, rs.Row())
	assert.True(rs.Next())
}

func TestResultSet_ScanErrors(t *testing.T) {
	assert := require.New(t)
	rs := newTestResultSet()
	assert.True(rs.Next())

	var name string
	assert.Error(rs.Scan(&name))

	var n int64
	var anything interface{}
	var ratio float64
	var ok bool
	assert.Error(rs.Scan(&n, &anything, &ratio, &ok), "name is not an integer")

	var raw []byte
	assert.NoError(rs.Scan(&raw, &anything, &ratio, &ok))
	assert.Equal([]byte("bar"), raw)
	assert.Equal(int64(1), anything)

	var wrong struct{}
	assert.Error(rs.Scan(&wrong, &anything, &ratio, &ok))
}

func TestResultSet_ScanIntegers(t *testing.T) {
	assert := require.New(t)
	rs := newResultSet(nil, engine.TabularData{
		Columns: []string{"v"},
		Rows: [][]interface{}{
			{2.0},
			{1.5},
			{1e19},
			{"7"},
		},
	})

	var n int64
	var i int

	assert.True(rs.Next())
	assert.NoError(rs.Scan(&n))
	assert.Equal(int64(2), n)
	assert.NoError(rs.Scan(&i))
	assert.Equal(2, i)

	assert.True(rs.Next())
	assert.Error(rs.Scan(&n), "fractional value")
	assert.Error(rs.Scan(&i), "fractional value")
	assert.Equal(int64(2), n, "destination untouched on error")

	assert.True(rs.Next())
	assert.Error(rs.Scan(&n), "out of range")

	assert.True(rs.Next())
	assert.NoError(rs.Scan(&n))
	assert.Equal(int64(7), n)
}

func TestResultSet_Views(t *testing.T) {
	assert := require.New(t)
	rs := newTestResultSet()

	view, err := rs.View()
	assert.NoError(err)
	other, err := rs.View()
	assert.NoError(err)

	// independent cursors
	assert.True(view.Next())
	assert.True(view.Next())
	assert.True(other.Next())
	assert.Equal(2, view.Row())
	assert.Equal(1, other.Row())

	// independent close
	assert.NoError(view.Close())
	assert.NoError(view.Close())
	assert.False(view.Next())
	assert.Equal(0, view.Len())
	_, err = view.Values()
	assert.Equal(ErrClosed, err)
	assert.Equal(ErrClosed, view.BeforeFirst())
	_, err = view.View()
	assert.Equal(ErrClosed, err)

	assert.Equal(2, rs.Len())
	assert.True(rs.Next())
	values, err := other.Values()
	assert.NoError(err)
	assert.Equal("bar", values[0])

	assert.NoError(rs.Close())
	assert.True(other.Next())
}

func TestResultSet_Empty(t *testing.T) {
	assert := require.New(t)
	rs := newResultSet(nil, engine.TabularData{Columns: []string{"a"}})

	assert.Equal(0, rs.Len())
	assert.Equal([]string{"a"}, rs.Columns())
	assert.False(rs.Next())
}
