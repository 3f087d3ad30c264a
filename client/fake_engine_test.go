package client

import (
	"github.com/sirupsen/logrus"

	"github.com/joeandaverde/tinydbc/engine"
	"github.com/joeandaverde/tinydbc/tsql"
)

const fakeProtocol = "client-test"

// openedEngine is handed out by the fakeProtocol opener.
var openedEngine *fakeEngine

func init() {
	engine.Register(fakeProtocol, func(logrus.FieldLogger, engine.Config) (engine.Engine, error) {
		return openedEngine, nil
	})
}

// fakeEngine returns scripted results and records what ran against storage.
type fakeEngine struct {
	tables   map[string]engine.TabularData
	counts   map[string]int64
	failures map[string]error
	ran      []string
	closed   bool
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		tables:   make(map[string]engine.TabularData),
		counts:   make(map[string]int64),
		failures: make(map[string]error),
	}
}

func (e *fakeEngine) Classify(sql string) tsql.CommandKind {
	return tsql.Classify(sql)
}

func (e *fakeEngine) RunQuery(sql string) (engine.TabularData, error) {
	e.ran = append(e.ran, sql)
	if err := e.failures[sql]; err != nil {
		return engine.TabularData{}, err
	}
	return e.tables[sql], nil
}

func (e *fakeEngine) RunMutation(sql string) (int64, error) {
	e.ran = append(e.ran, sql)
	if err := e.failures[sql]; err != nil {
		return 0, err
	}
	return e.counts[sql], nil
}

func (e *fakeEngine) Close() error {
	e.closed = true
	return nil
}
