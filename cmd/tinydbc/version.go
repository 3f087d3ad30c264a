package main

import "fmt"

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0-dev"

type VersionCommand struct {
	Meta
}

func (c *VersionCommand) Help() string {
	return "Usage: tinydbc version"
}

func (c *VersionCommand) Synopsis() string {
	return "Prints the tinydbc version"
}

func (c *VersionCommand) Run(_ []string) int {
	c.Ui.Output(fmt.Sprintf("tinydbc v%s", version))
	return 0
}
