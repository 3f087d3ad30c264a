package main

import (
	"flag"
	"io"
	"io/ioutil"
	"os"

	"github.com/mitchellh/cli"
	"github.com/sirupsen/logrus"

	"github.com/joeandaverde/tinydbc/client"
	"github.com/joeandaverde/tinydbc/internal/config"
	"github.com/joeandaverde/tinydbc/internal/logging"
)

// Meta holds what every command shares.
type Meta struct {
	Ui         cli.Ui
	ShutdownCh <-chan struct{}
}

func (m *Meta) flagSet(name string, help func() string) *flag.FlagSet {
	f := flag.NewFlagSet(name, flag.ContinueOnError)
	f.SetOutput(ioutil.Discard)
	f.Usage = func() { m.Ui.Error(help()) }
	return f
}

// session is an open connection plus the resources backing it.
type session struct {
	config config.Config
	log    *logrus.Logger
	conn   *client.Connection
	sink   io.Closer
}

func (m *Meta) connect(configPath string) (*session, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, sink, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	conn, err := client.Open(log, cfg.Engine())
	if err != nil {
		_ = sink.Close()
		return nil, err
	}

	return &session{config: cfg, log: log, conn: conn, sink: sink}, nil
}

func (s *session) Close() error {
	err := s.conn.Close()
	if sinkErr := s.sink.Close(); err == nil {
		err = sinkErr
	}
	return err
}

// interrupted reports whether a shutdown was requested.
func (m *Meta) interrupted() bool {
	select {
	case <-m.ShutdownCh:
		return true
	default:
		return false
	}
}

// readScript reads the file named by the first argument, or stdin when
// there is none or it is "-".
func readScript(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := ioutil.ReadAll(os.Stdin)
		return string(data), err
	}

	data, err := ioutil.ReadFile(args[0])
	return string(data), err
}
