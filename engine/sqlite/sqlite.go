// Package sqlite provides the "sqlite" and "memory" engine protocols on top
// of github.com/mattn/go-sqlite3.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/joeandaverde/tinydbc/engine"
	"github.com/joeandaverde/tinydbc/tsql"
)

const (
	// ProtocolFile stores each database in <path>/<name>/<name>.db.
	ProtocolFile = "sqlite"
	// ProtocolMemory keeps the database in memory, named by the token.
	ProtocolMemory = "memory"
)

func init() {
	engine.Register(ProtocolFile, Open)
	engine.Register(ProtocolMemory, Open)
}

// Engine executes SQL with SQLite.
type Engine struct {
	db    *sql.DB
	token string
	dir   string
	log   logrus.FieldLogger
}

// Open initializes or opens the database described by config.
func Open(log logrus.FieldLogger, config engine.Config) (engine.Engine, error) {
	if config.Name == "" {
		return nil, errors.New("sqlite: database name is required")
	}

	token := config.Token
	if token == "" {
		token = uuid.New().String()
	}

	var dir, dsn string
	switch config.Protocol {
	case ProtocolMemory:
		dsn = fmt.Sprintf("file:%s-%s?mode=memory&cache=shared", config.Name, token)
	case ProtocolFile, "":
		dir = filepath.Join(config.Path, config.Name)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("sqlite: creating database directory: %w", err)
		}
		dsn = filepath.Join(dir, config.Name+".db") + "?mode=rwc&_journal_mode=WAL"
	default:
		return nil, fmt.Errorf("sqlite: unsupported protocol %q", config.Protocol)
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	// one connection keeps shared in-memory databases alive and serializes writers
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	log.WithFields(logrus.Fields{"dir": dir, "token": token}).Debug("sqlite engine ready")

	return &Engine{
		db:    db,
		token: token,
		dir:   dir,
		log:   log,
	}, nil
}

// Token is the uniqueness token of this instance.
func (e *Engine) Token() string {
	return e.token
}

// Dir is the on-disk directory of the database; empty for in-memory databases.
func (e *Engine) Dir() string {
	return e.dir
}

// Classify reports the kind of command.
func (e *Engine) Classify(sql string) tsql.CommandKind {
	return tsql.Classify(sql)
}

// RunQuery runs a row-producing command and materializes all of its rows.
func (e *Engine) RunQuery(sql string) (engine.TabularData, error) {
	rows, err := e.db.Query(sql)
	if err != nil {
		return engine.TabularData{}, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return engine.TabularData{}, err
	}

	data := engine.TabularData{Columns: columns}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}

		if err := rows.Scan(dest...); err != nil {
			return engine.TabularData{}, err
		}

		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}

		data.Rows = append(data.Rows, values)
	}

	if err := rows.Err(); err != nil {
		return engine.TabularData{}, err
	}

	return data, nil
}

// RunMutation runs a command that does not return rows.
func (e *Engine) RunMutation(sql string) (int64, error) {
	res, err := e.db.Exec(sql)
	if err != nil {
		return 0, err
	}

	// sqlite keeps reporting the previous DML change count after schema changes
	if tsql.IsSchemaChange(sql) {
		return 0, nil
	}

	return res.RowsAffected()
}

// Close closes the database.
func (e *Engine) Close() error {
	return e.db.Close()
}

var _ engine.Engine = (*Engine)(nil)
