package client

import (
	"fmt"
	"math"
	"strconv"

	"github.com/joeandaverde/tinydbc/engine"
)

// rowData is a materialized query result. It is never modified once built so
// any number of ResultSet handles may share it.
type rowData struct {
	columns []string
	data    [][]interface{}
}

// ResultSet is a cursor over the rows of a query.
//
// Handles created by View share the rows of the original but have their own
// cursor and are closed independently: closing one handle leaves every other
// handle readable.
type ResultSet struct {
	stmt   *Statement
	rows   *rowData
	cursor int
}

func newResultSet(stmt *Statement, data engine.TabularData) *ResultSet {
	return &ResultSet{
		stmt: stmt,
		rows: &rowData{
			columns: data.Columns,
			data:    data.Rows,
		},
	}
}

// View returns a new handle over the same rows, positioned before the first row.
func (rs *ResultSet) View() (*ResultSet, error) {
	if rs.rows == nil {
		return nil, ErrClosed
	}

	return &ResultSet{
		stmt: rs.stmt,
		rows: rs.rows,
	}, nil
}

// Statement returns the statement that produced the result set.
func (rs *ResultSet) Statement() *Statement {
	return rs.stmt
}

// Columns returns the column names; nil once closed.
func (rs *ResultSet) Columns() []string {
	if rs.rows == nil {
		return nil
	}
	return rs.rows.columns
}

// Len returns the number of rows; 0 once closed.
func (rs *ResultSet) Len() int {
	if rs.rows == nil {
		return 0
	}
	return len(rs.rows.data)
}

// Next advances the cursor. It returns false after the last row or once closed.
func (rs *ResultSet) Next() bool {
	if rs.rows == nil || rs.cursor >= len(rs.rows.data) {
		return false
	}

	rs.cursor++
	return true
}

// Row returns the 1-based position of the cursor; 0 before the first row.
func (rs *ResultSet) Row() int {
	return rs.cursor
}

// BeforeFirst moves the cursor back before the first row.
func (rs *ResultSet) BeforeFirst() error {
	if rs.rows == nil {
		return ErrClosed
	}

	rs.cursor = 0
	return nil
}

// Values returns the values of the current row. The slice must not be modified.
func (rs *ResultSet) Values() ([]interface{}, error) {
	if rs.rows == nil {
		return nil, ErrClosed
	}
	if rs.cursor == 0 || rs.cursor > len(rs.rows.data) {
		return nil, fmt.Errorf("tinydbc: no current row")
	}

	return rs.rows.data[rs.cursor-1], nil
}

// Scan copies the current row into dest.
func (rs *ResultSet) Scan(dest ...interface{}) error {
	values, err := rs.Values()
	if err != nil {
		return err
	}
	if len(dest) != len(values) {
		return fmt.Errorf("tinydbc: expected %d destination arguments in Scan, not %d", len(values), len(dest))
	}

	for i, v := range values {
		if err := assign(dest[i], v); err != nil {
			return fmt.Errorf("tinydbc: scan column %d (%s): %w", i, rs.rows.columns[i], err)
		}
	}

	return nil
}

// Close releases this handle's reference to the rows. Safe to call more than once.
func (rs *ResultSet) Close() error {
	rs.rows = nil
	rs.cursor = 0
	return nil
}

func assign(dest, src interface{}) error {
	switch d := dest.(type) {
	case *interface{}:
		*d = src
		return nil
	case *string:
		switch s := src.(type) {
		case nil:
			*d = ""
		case string:
			*d = s
		case []byte:
			*d = string(s)
		default:
			*d = fmt.Sprint(s)
		}
		return nil
	case *[]byte:
		switch s := src.(type) {
		case nil:
			*d = nil
		case []byte:
			*d = append([]byte(nil), s...)
		case string:
			*d = []byte(s)
		default:
			*d = []byte(fmt.Sprint(s))
		}
		return nil
	case *int64:
		n, err := asInt(src)
		if err != nil {
			return err
		}
		*d = n
		return nil
	case *int:
		n, err := asInt(src)
		if err != nil {
			return err
		}
		if int64(int(n)) != n {
			return fmt.Errorf("value %d overflows int", n)
		}
		*d = int(n)
		return nil
	case *float64:
		switch s := src.(type) {
		case float64:
			*d = s
			return nil
		case int64:
			*d = float64(s)
			return nil
		case string:
			f, err := strconv.ParseFloat(s, 64)
			*d = f
			return err
		}
	case *bool:
		switch s := src.(type) {
		case bool:
			*d = s
			return nil
		case int64:
			*d = s != 0
			return nil
		case string:
			b, err := strconv.ParseBool(s)
			*d = b
			return err
		}
	default:
		return fmt.Errorf("unsupported destination type %T", dest)
	}

	return fmt.Errorf("cannot convert %T into %T", src, dest)
}

func asInt(src interface{}) (int64, error) {
	switch s := src.(type) {
	case int64:
		return s, nil
	case int:
		return int64(s), nil
	case float64:
		if s != math.Trunc(s) || s < math.MinInt64 || s >= math.MaxInt64 {
			return 0, fmt.Errorf("cannot convert %v into an integer", s)
		}
		return int64(s), nil
	case bool:
		if s {
			return 1, nil
		}
		return 0, nil
	case string:
		return strconv.ParseInt(s, 10, 64)
	case []byte:
		return strconv.ParseInt(string(s), 10, 64)
	default:
		return 0, fmt.Errorf("cannot convert %T into an integer", src)
	}
}
