// Package engine defines the contract between the client handles and the
// SQL execution engine that owns storage.
package engine

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/joeandaverde/tinydbc/tsql"
)

// ErrUnknownProtocol is returned by Open when no engine is registered for the protocol.
var ErrUnknownProtocol = errors.New("tinydbc: unknown engine protocol")

// TabularData is the materialized output of a query.
type TabularData struct {
	Columns []string
	Rows    [][]interface{}
}

// Engine classifies and executes SQL text against storage.
type Engine interface {
	// Classify reports the kind of command. It never blocks on storage.
	Classify(sql string) tsql.CommandKind

	// RunQuery executes a row-producing command.
	RunQuery(sql string) (TabularData, error)

	// RunMutation executes a command that does not produce rows and
	// returns the number of affected rows. 0 is valid (DDL).
	RunMutation(sql string) (int64, error)

	// Close releases storage.
	Close() error
}

// Config is handed to an engine to initialize or open storage.
type Config struct {
	// Path is the directory holding databases.
	Path string
	// Name is the logical database name.
	Name string
	// Token makes the instance unique; engines generate one when empty.
	Token string
	// Protocol selects the registered engine.
	Protocol string
}

// Opener bootstraps an engine for the given config.
type Opener func(log logrus.FieldLogger, config Config) (Engine, error)

var (
	openersMu sync.RWMutex
	openers   = make(map[string]Opener)
)

// Register makes an engine available under protocol. It panics if called
// twice for the same protocol or if opener is nil.
func Register(protocol string, opener Opener) {
	openersMu.Lock()
	defer openersMu.Unlock()

	if opener == nil {
		panic("tinydbc: Register opener is nil")
	}
	if _, dup := openers[protocol]; dup {
		panic("tinydbc: Register called twice for protocol " + protocol)
	}
	openers[protocol] = opener
}

// Protocols returns a sorted list of the registered protocols.
func Protocols() []string {
	openersMu.RLock()
	defer openersMu.RUnlock()

	list := make([]string, 0, len(openers))
	for protocol := range openers {
		list = append(list, protocol)
	}
	sort.Strings(list)
	return list
}

// Open bootstraps the engine registered for config.Protocol.
func Open(log logrus.FieldLogger, config Config) (Engine, error) {
	openersMu.RLock()
	opener, ok := openers[config.Protocol]
	openersMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProtocol, config.Protocol)
	}

	log.WithFields(logrus.Fields{
		"protocol": config.Protocol,
		"path":     config.Path,
		"name":     config.Name,
	}).Info("bootstrapping engine")

	return opener(log, config)
}
