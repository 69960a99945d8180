// Command planner loads a mission and an organization model from disk and
// drives the restart/refinement planning loop of spec §2 to completion,
// reporting progress and writing per-run artifacts (spec §6).
package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/cli"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ui := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	c := cli.NewCLI("planner", version)
	c.Args = args
	c.Commands = map[string]cli.CommandFactory{
		"plan": func() (cli.Command, error) {
			return &PlanCommand{Ui: ui}, nil
		},
	}

	exitStatus, err := c.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return exitStatus
}

// version is a plain build-time marker; spec §6 doesn't call for a full
// version-injection pipeline, so this stays a constant rather than
// ldflags-populated like the teacher's larger release tooling.
const version = "0.1.0"
