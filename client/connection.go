package client

import (
	"io/ioutil"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/joeandaverde/tinydbc/engine"
)

// Connection is a session with one engine. It owns every Statement it creates.
type Connection struct {
	UnsupportedConnection

	mu         sync.Mutex
	engine     engine.Engine
	statements []*Statement
	closed     bool

	log logrus.FieldLogger
}

// Open bootstraps the engine described by config and connects to it.
func Open(log logrus.FieldLogger, config engine.Config) (*Connection, error) {
	if log == nil {
		log = discardLogger()
	}

	e, err := engine.Open(log, config)
	if err != nil {
		return nil, err
	}

	return NewConnection(log, e), nil
}

// NewConnection connects to an engine that is already open. The connection
// takes ownership of the engine and closes it on Close.
func NewConnection(log logrus.FieldLogger, e engine.Engine) *Connection {
	if log == nil {
		log = discardLogger()
	}

	log.Info("connection opened")

	return &Connection{
		engine: e,
		log:    log,
	}
}

// CreateStatement creates a statement bound to this connection.
func (c *Connection) CreateStatement() (*Statement, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrClosed
	}

	stmt := newStatement(len(c.statements)+1, c, c.engine, c.log)
	c.statements = append(c.statements, stmt)

	c.log.WithField("statement", stmt.id).Info("statement created")

	return stmt, nil
}

// Statements returns the statements created by this connection in creation order.
func (c *Connection) Statements() []*Statement {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]*Statement(nil), c.statements...)
}

// Close closes every statement in creation order, then the engine.
// Closing a closed connection does nothing.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	for _, stmt := range c.statements {
		_ = stmt.Close()
	}
	c.closed = true

	err := c.engine.Close()
	if err != nil {
		c.log.WithError(err).Error("closing engine")
	}

	c.log.WithField("statements", len(c.statements)).Info("connection closed")

	return err
}

func discardLogger() logrus.FieldLogger {
	log := logrus.New()
	log.Out = ioutil.Discard
	return log
}
