package client

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/joeandaverde/tinydbc/engine"
)

const (
	// NoUpdateCount is reported by UpdateCount when the current result is not a count.
	NoUpdateCount int64 = -1

	// SuccessNoInfo is the batch outcome of an entry that succeeded without a row count.
	SuccessNoInfo int64 = -2

	// ExecuteFailed is the batch outcome of an entry the engine rejected.
	ExecuteFailed int64 = -3
)

// result is the current result of a statement: noResult, rowsResult or countResult.
type result interface {
	release()
}

type noResult struct{}

type rowsResult struct {
	rs *ResultSet
}

type countResult struct {
	n int64
}

func (noResult) release()    {}
func (countResult) release() {}

func (r rowsResult) release() {
	_ = r.rs.Close()
}

// Statement executes SQL text and holds at most one current result.
// A Statement is not safe for concurrent use.
type Statement struct {
	UnsupportedStatement

	id int
	// conn is the connection that created the statement. It does not own it.
	conn    *Connection
	engine  engine.Engine
	batch   []string
	closed  bool
	current result

	log logrus.FieldLogger
}

func newStatement(id int, conn *Connection, e engine.Engine, log logrus.FieldLogger) *Statement {
	return &Statement{
		id:      id,
		conn:    conn,
		engine:  e,
		current: noResult{},
		log:     log.WithField("statement", id),
	}
}

// ID is the 1-based creation index of the statement within its connection.
func (s *Statement) ID() int {
	return s.id
}

// Connection returns the connection that created the statement.
func (s *Statement) Connection() *Connection {
	return s.conn
}

// AddBatch appends sql to the batch queue.
func (s *Statement) AddBatch(sql string) error {
	if s.closed {
		return ErrClosed
	}

	s.batch = append(s.batch, sql)
	s.log.WithField("batch_size", len(s.batch)).Info("sql added to the batch")

	return nil
}

// ClearBatch empties the batch queue.
func (s *Statement) ClearBatch() error {
	if s.closed {
		return ErrClosed
	}

	s.batch = s.batch[:0]
	s.log.Info("batch cleared")

	return nil
}

// BatchSize returns the number of queued commands.
func (s *Statement) BatchSize() (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	return len(s.batch), nil
}

// Execute runs any kind of SQL. For row-producing SQL it reports whether the
// result set holds at least one row; for anything else it reports false.
// The result is then available through ResultSet or UpdateCount.
func (s *Statement) Execute(sql string) (bool, error) {
	if s.closed {
		return false, ErrClosed
	}

	if s.engine.Classify(sql).RowProducing() {
		rs, err := s.ExecuteQuery(sql)
		if err != nil {
			return false, err
		}
		defer rs.Close()

		return rs.Len() > 0, nil
	}

	if _, err := s.ExecuteUpdate(sql); err != nil {
		return false, err
	}

	return false, nil
}

// ExecuteQuery runs row-producing SQL. The statement keeps the result set as
// its current result and the caller receives its own handle over the same rows.
func (s *Statement) ExecuteQuery(sql string) (*ResultSet, error) {
	if s.closed {
		return nil, ErrClosed
	}

	kind := s.engine.Classify(sql)
	if !kind.RowProducing() {
		return nil, fmt.Errorf("%w: execute query needs a query, got %s", ErrWrongCommandKind, kind)
	}

	s.setResult(noResult{})

	s.log.WithField("kind", kind).Debug("running query")
	data, err := s.engine.RunQuery(sql)
	if err != nil {
		return nil, &EngineError{Op: "query", SQL: sql, Err: err}
	}

	rs := newResultSet(s, data)
	s.setResult(rowsResult{rs: rs})

	return rs.View()
}

// ExecuteUpdate runs SQL that does not produce rows and returns the number
// of affected rows.
func (s *Statement) ExecuteUpdate(sql string) (int64, error) {
	if s.closed {
		return 0, ErrClosed
	}

	kind := s.engine.Classify(sql)
	if kind.RowProducing() {
		return 0, fmt.Errorf("%w: execute update cannot run a %s", ErrWrongCommandKind, kind)
	}

	s.setResult(noResult{})

	s.log.WithField("kind", kind).Debug("running mutation")
	n, err := s.engine.RunMutation(sql)
	if err != nil {
		return 0, &EngineError{Op: "update", SQL: sql, Err: err}
	}

	s.setResult(countResult{n: n})

	return n, nil
}

// ExecuteBatch runs the queued commands in order and returns one outcome per
// command. Row-producing commands are not run and yield SuccessNoInfo. A
// command the engine rejects yields ExecuteFailed and the batch carries on.
func (s *Statement) ExecuteBatch() ([]int64, error) {
	if s.closed {
		return nil, ErrClosed
	}

	failed := 0
	outcomes := make([]int64, len(s.batch))
	for i, sql := range s.batch {
		if s.engine.Classify(sql).RowProducing() {
			outcomes[i] = SuccessNoInfo
			continue
		}

		n, err := s.engine.RunMutation(sql)
		if err != nil {
			s.log.WithError(err).WithField("entry", i).Warn("batch entry failed")
			outcomes[i] = ExecuteFailed
			failed++
			continue
		}

		outcomes[i] = n
	}

	s.log.WithFields(logrus.Fields{
		"batch_size": len(outcomes),
		"failed":     failed,
	}).Info("batch executed")

	return outcomes, nil
}

// ResultSet returns the current result set, or nil when the current result
// is not a result set.
func (s *Statement) ResultSet() (*ResultSet, error) {
	if s.closed {
		return nil, ErrClosed
	}

	if r, ok := s.current.(rowsResult); ok {
		return r.rs, nil
	}
	return nil, nil
}

// UpdateCount returns the current update count, or NoUpdateCount when the
// current result is not a count.
func (s *Statement) UpdateCount() (int64, error) {
	if s.closed {
		return NoUpdateCount, ErrClosed
	}

	if r, ok := s.current.(countResult); ok {
		return r.n, nil
	}
	return NoUpdateCount, nil
}

// Close releases the batch queue, the engine and the current result set.
// Safe to call more than once.
func (s *Statement) Close() error {
	if s.closed {
		return nil
	}

	s.setResult(noResult{})
	s.batch = nil
	s.engine = nil
	s.closed = true

	s.log.Info("statement closed")

	return nil
}

func (s *Statement) setResult(r result) {
	s.current.release()
	s.current = r
}
