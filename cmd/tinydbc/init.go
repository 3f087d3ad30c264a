package main

import (
	"fmt"
	"strings"
)

type InitCommand struct {
	Meta
}

func (c *InitCommand) Help() string {
	helpText := `
Usage: tinydbc init [options]

  Bootstraps the configured database and exits.

Options:

	-config=""	Configuration file
`

	return strings.TrimSpace(helpText)
}

func (c *InitCommand) Synopsis() string {
	return "Creates the database storage"
}

func (c *InitCommand) Run(args []string) int {
	var configPath string

	cmdFlags := c.flagSet("init", c.Help)
	cmdFlags.StringVar(&configPath, "config", "", "config file")

	if err := cmdFlags.Parse(args); err != nil {
		return 1
	}

	s, err := c.connect(configPath)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Error opening connection: %s", err))
		return 1
	}

	db := s.config.Database
	if err := s.Close(); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	c.Ui.Output(fmt.Sprintf("Initialized %s database %q in %s", db.Protocol, db.Name, db.Path))
	return 0
}
