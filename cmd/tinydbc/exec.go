package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/joeandaverde/tinydbc/client"
	"github.com/joeandaverde/tinydbc/internal/output"
	"github.com/joeandaverde/tinydbc/tsql"
)

type ExecCommand struct {
	Meta
}

func (c *ExecCommand) Help() string {
	helpText := `
Usage: tinydbc exec [options] [file]

  Runs each statement of the script one at a time and prints its result.
  The script is read from stdin when no file is given.

Options:

	-config=""	Configuration file
	-format=table	Result set format: table or csv
`

	return strings.TrimSpace(helpText)
}

func (c *ExecCommand) Synopsis() string {
	return "Executes a SQL script statement by statement"
}

func (c *ExecCommand) Run(args []string) int {
	var configPath, format string

	cmdFlags := c.flagSet("exec", c.Help)
	cmdFlags.StringVar(&configPath, "config", "", "config file")
	cmdFlags.StringVar(&format, "format", output.FormatTable, "result set format")

	if err := cmdFlags.Parse(args); err != nil {
		return 1
	}

	if err := output.ValidateFormat(format); err != nil {
		c.Ui.Error(err.Error())
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
	s.log.WithField("commands", len(commands)).Debug("running script")

	for i, command := range commands {
		if c.interrupted() {
			s.log.WithField("completed", i).Warn("script interrupted")
			c.Ui.Warn("Interrupted")
			return 1
		}

		if _, err := stmt.Execute(command); err != nil {
			c.Ui.Error(err.Error())
			return 1
		}

		if err := c.print(stmt, format); err != nil {
			c.Ui.Error(err.Error())
			return 1
		}
	}

	return 0
}

func (c *ExecCommand) print(stmt *client.Statement, format string) error {
	var buf bytes.Buffer

	rs, err := stmt.ResultSet()
	if err != nil {
		return err
	}

	if rs != nil {
		view, err := rs.View()
		if err != nil {
			return err
		}
		defer view.Close()

		if err := output.Rows(&buf, format, view); err != nil {
			return err
		}
	} else {
		n, err := stmt.UpdateCount()
		if err != nil {
			return err
		}
		if err := output.RowsAffected(&buf, n); err != nil {
			return err
		}
	}

	c.Ui.Output(strings.TrimRight(buf.String(), "\n"))
	return nil
}
