package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/cli"

	"github.com/orbital-ops/missionplanner/mission"
	"github.com/orbital-ops/missionplanner/orgmodel"
	"github.com/orbital-ops/missionplanner/planner"
	"github.com/orbital-ops/missionplanner/session"
)

// PlanCommand is the "plan" subcommand: load a mission and organization
// model from disk, run the planner, and report the outcome. It mirrors the
// teacher pack's Meta{Ui}-embedding command shape rather than a bare
// func-based CLI, so Help/Run/Synopsis stay independently testable.
type PlanCommand struct {
	Ui cli.Ui
}

func (c *PlanCommand) Help() string {
	return strings.TrimSpace(`
Usage: planner plan [options] <mission-file> <org-model-file>

  Loads a mission and an organization model, then runs the restart/
  refinement planning loop to a flawless (or best-effort) solution.

Options:

  -stop-after=N        Stop after N restart iterations (default: unbounded,
                        bounded only by flaw-index exhaustion).
  -artifacts-dir=DIR    Write per-restart statistics and the final space-
                        time network to DIR (default: no artifacts).
  -solve-timeout=DUR     Per-restart CSP solve deadline, e.g. "30s" (default:
                        unbounded).
`)
}

func (c *PlanCommand) Synopsis() string {
	return "Run the mission planner against a mission and organization model"
}

func (c *PlanCommand) Run(args []string) int {
	var stopAfter int
	var artifactsDir string
	var solveTimeout time.Duration

	flags := flag.NewFlagSet("plan", flag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	flags.IntVar(&stopAfter, "stop-after", 0, "stop after N restart iterations")
	flags.StringVar(&artifactsDir, "artifacts-dir", "", "directory to write run artifacts into")
	flags.DurationVar(&solveTimeout, "solve-timeout", 0, "per-restart CSP solve deadline")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	rest := flags.Args()
	if len(rest) != 2 {
		c.Ui.Error("plan requires exactly two arguments: <mission-file> <org-model-file>")
		c.Ui.Error(c.Help())

		return 1
	}
	missionPath, orgModelPath := rest[0], rest[1]

	org, err := orgmodel.LoadXMLFile(orgModelPath)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("loading organization model: %v", err))

		return 1
	}

	m, err := mission.LoadXMLFile(missionPath, org)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("loading mission: %v", err))

		return 1
	}

	sess := session.New(session.WithLogLevel(logLevelFromEnv()))

	if artifactsDir != "" {
		if err := copySourceArtifact(artifactsDir, sess, missionPath, "mission.xml"); err != nil {
			c.Ui.Error(err.Error())

			return 1
		}
		if err := copySourceArtifact(artifactsDir, sess, orgModelPath, "orgmodel.xml"); err != nil {
			c.Ui.Error(err.Error())

			return 1
		}
	}

	cfg := planner.Config{
		SolveDeadline: solveTimeout,
		MaxRestarts:   stopAfter,
		ArtifactsDir:  artifactsDir,
	}

	outcome, err := planner.Plan(context.Background(), m, sess, cfg)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("planning failed after %d restarts: %v", outcome.Restarts, err))

		return 1
	}

	c.Ui.Output(fmt.Sprintf("solution found after %d restart(s), residual cost %d", outcome.Restarts, int(outcome.Cost)))

	return 0
}

func copySourceArtifact(dir string, sess *session.Session, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("copying %s: %w", name, err)
	}
	defer f.Close()

	if err := session.CopyArtifact(dir, sess.ID, name, f); err != nil {
		return fmt.Errorf("copying %s: %w", name, err)
	}

	return nil
}
