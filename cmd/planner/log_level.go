package main

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

// logLevelFromEnv reads PLANNER_LOG_LEVEL, defaulting to Info, matching the
// teacher's convention of configuring verbosity through the environment
// rather than a dedicated flag.
func logLevelFromEnv() hclog.Level {
	if v := os.Getenv("PLANNER_LOG_LEVEL"); v != "" {
		return hclog.LevelFromString(v)
	}

	return hclog.Info
}
