package driver

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/joeandaverde/tinydbc/client"
	"github.com/joeandaverde/tinydbc/engine"
	"github.com/joeandaverde/tinydbc/engine/sqlite"
)

// DriverName is the name the driver is registered under with database/sql.
const DriverName = "tinydbc"

func init() {
	sql.Register(DriverName, &TinyDBDriver{})
}

type TinyDBDriver struct{}

type TinyDBConnection struct {
	conn *client.Connection
	stmt *client.Statement
}

type TinyDBStmt struct {
	command string
	conn    *TinyDBConnection
}

type TinyDBResult struct {
	rowsAffected int64
}

type TinyDBRows struct {
	rs *client.ResultSet
}

// Open opens a tinydbc connection
func (d *TinyDBDriver) Open(dsn string) (driver.Conn, error) {
	config, err := ParseDSN(dsn)
	if err != nil {
		return nil, err
	}

	conn, err := client.Open(nil, config)
	if err != nil {
		return nil, err
	}

	// result sets handed out by a statement outlive its next execution, so
	// one statement serves every command on this connection
	stmt, err := conn.CreateStatement()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &TinyDBConnection{
		conn: conn,
		stmt: stmt,
	}, nil
}

// Prepare binds a command to the connection. Nothing is sent to the engine
// until the statement is executed.
func (c *TinyDBConnection) Prepare(command string) (driver.Stmt, error) {
	return &TinyDBStmt{
		command: command,
		conn:    c,
	}, nil
}

// Begin fails, transactions are not offered.
func (c *TinyDBConnection) Begin() (driver.Tx, error) {
	return nil, &client.UnsupportedError{Op: "begin"}
}

// Close closes a tinydbc connection and every statement it created
func (c *TinyDBConnection) Close() error {
	return c.conn.Close()
}

// Close closes the statement.
func (s *TinyDBStmt) Close() error {
	return nil
}

// NumInput returns -1, placeholders are not parsed.
func (s *TinyDBStmt) NumInput() int {
	return -1
}

// Exec executes a command that doesn't return rows, such
// as an INSERT or UPDATE.
func (s *TinyDBStmt) Exec(args []driver.Value) (driver.Result, error) {
	if len(args) > 0 {
		return nil, &client.UnsupportedError{Op: "placeholder arguments"}
	}

	n, err := s.conn.stmt.ExecuteUpdate(s.command)
	if err != nil {
		return nil, translate(err)
	}

	return &TinyDBResult{rowsAffected: n}, nil
}

// Query executes a query that may return rows, such as a
// SELECT.
func (s *TinyDBStmt) Query(args []driver.Value) (driver.Rows, error) {
	if len(args) > 0 {
		return nil, &client.UnsupportedError{Op: "placeholder arguments"}
	}

	rs, err := s.conn.stmt.ExecuteQuery(s.command)
	if err != nil {
		return nil, translate(err)
	}

	return &TinyDBRows{rs: rs}, nil
}

// LastInsertId fails, generated keys are not offered.
func (r *TinyDBResult) LastInsertId() (int64, error) {
	return 0, &client.UnsupportedError{Op: "last insert id"}
}

func (r *TinyDBResult) RowsAffected() (int64, error) {
	return r.rowsAffected, nil
}

// Columns returns the names of the columns.
func (r *TinyDBRows) Columns() []string {
	return r.rs.Columns()
}

// Close closes the rows iterator.
func (r *TinyDBRows) Close() error {
	return r.rs.Close()
}

// Next populates dest with the next row. It returns io.EOF when
// there are no more rows.
func (r *TinyDBRows) Next(dest []driver.Value) error {
	if !r.rs.Next() {
		return io.EOF
	}

	values, err := r.rs.Values()
	if err != nil {
		return err
	}

	for i, v := range values {
		dest[i] = v
	}
	return nil
}

// translate maps closed handles onto driver.ErrBadConn so database/sql
// discards the connection.
func translate(err error) error {
	if errors.Is(err, client.ErrClosed) {
		return driver.ErrBadConn
	}
	return err
}

// ParseDSN parses "<path>/<name>[?protocol=sqlite&token=<token>]". The
// name is the last path element. ":memory:" selects an in-memory database;
// connections only share it when they share a token.
func ParseDSN(dsn string) (engine.Config, error) {
	config := engine.Config{Protocol: sqlite.ProtocolFile}

	dbPath := dsn
	if pos := strings.IndexRune(dsn, '?'); pos >= 0 {
		dbPath = dsn[:pos]
		params, err := url.ParseQuery(dsn[pos+1:])
		if err != nil {
			return engine.Config{}, fmt.Errorf("invalid dsn parameters: %w", err)
		}

		if val := params.Get("protocol"); val != "" {
			config.Protocol = val
		}
		config.Token = params.Get("token")
	}

	if dbPath == ":memory:" {
		config.Protocol = sqlite.ProtocolMemory
		config.Name = "memory"
		return config, nil
	}

	dbPath = strings.TrimRight(dbPath, "/")
	if dbPath == "" {
		return engine.Config{}, fmt.Errorf("invalid dsn %q: missing database name", dsn)
	}

	config.Path, config.Name = filepath.Split(dbPath)
	if config.Path == "" {
		config.Path = "."
	}

	return config, nil
}

var _ driver.Driver = (*TinyDBDriver)(nil)

var _ driver.Conn = (*TinyDBConnection)(nil)

var _ driver.Stmt = (*TinyDBStmt)(nil)

var _ driver.Result = (*TinyDBResult)(nil)

var _ driver.Rows = (*TinyDBRows)(nil)
