package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/mitchellh/cli"

	_ "github.com/joeandaverde/tinydbc/engine/sqlite"
)

func main() {
	ui := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	meta := Meta{
		Ui:         ui,
		ShutdownCh: makeShutdownCh(),
	}

	tinyCLI := &cli.CLI{
		Name:     "tinydbc",
		Version:  version,
		Args:     os.Args[1:],
		Commands: commands(meta),
		HelpFunc: cli.BasicHelpFunc("tinydbc"),
	}

	exitCode, err := tinyCLI.Run()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}

	os.Exit(exitCode)
}

func commands(meta Meta) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"exec": func() (cli.Command, error) {
			return &ExecCommand{Meta: meta}, nil
		},
		"batch": func() (cli.Command, error) {
			return &BatchCommand{Meta: meta}, nil
		},
		"init": func() (cli.Command, error) {
			return &InitCommand{Meta: meta}, nil
		},
		"version": func() (cli.Command, error) {
			return &VersionCommand{Meta: meta}, nil
		},
	}
}

func makeShutdownCh() <-chan struct{} {
	shutdownCh := make(chan struct{})
	signalCh := make(chan os.Signal, 1)

	signal.Notify(signalCh, os.Interrupt)

	go func() {
		defer close(shutdownCh)
		<-signalCh
	}()

	return shutdownCh
}
