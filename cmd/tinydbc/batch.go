package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/joeandaverde/tinydbc/client"
	"github.com/joeandaverde/tinydbc/internal/output"
	"github.com/joeandaverde/tinydbc/tsql"
)

type BatchCommand struct {
	Meta
}

func (c *BatchCommand) Help() string {
	helpText := `
Usage: tinydbc batch [options] [file]

  Queues every statement of the script and executes them as one batch.
  Failed entries are reported and do not stop the batch. The exit
  status is 2 when any entry failed.

Options:

	-config=""	Configuration file
`

	return strings.TrimSpace(helpText)
}

func (c *BatchCommand) Synopsis() string {
	return "Executes a SQL script as a batch"
}

func (c *BatchCommand) Run(args []string) int {
	var configPath string

	cmdFlags := c.flagSet("batch", c.Help)
	cmdFlags.StringVar(&configPath, "config", "", "config file")

	if err := cmdFlags.Parse(args); err != nil {
		return 1
	}

	script, err := readScript(cmdFlags.Args())
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Error reading script: %s", err))
		return 1
	}

	s, err := c.connect(configPath)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Error opening connection: %s", err))
		return 1
	}
	defer s.Close()

	stmt, err := s.conn.CreateStatement()
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	commands := tsql.Split(script)
	for _, command := range commands {
		if err := stmt.AddBatch(command); err != nil {
			c.Ui.Error(err.Error())
			return 1
		}
	}

	if c.interrupted() {
		s.log.Warn("batch interrupted")
		c.Ui.Warn("Interrupted")
		return 1
	}

	s.log.WithField("commands", len(commands)).Debug("running batch")
	outcomes, err := stmt.ExecuteBatch()
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	var buf bytes.Buffer
	if err := output.Batch(&buf, commands, outcomes); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	c.Ui.Output(strings.TrimRight(buf.String(), "\n"))

	for _, outcome := range outcomes {
		if outcome == client.ExecuteFailed {
			return 2
		}
	}

	return 0
}
