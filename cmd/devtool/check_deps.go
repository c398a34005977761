package main

import (
	"fmt"
	"os/exec"
	"strings"
)

type CheckDepsCommand struct{}

func (c *CheckDepsCommand) Name() string {
	return "check-deps"
}

func (c *CheckDepsCommand) Description() string {
	return "Check for required development tools"
}

// toolCheck describes one binary and how to read its version
type toolCheck struct {
	name     string
	args     []string
	required bool
	install  string
}

var toolChecks = []toolCheck{
	{name: "go", args: []string{"version"}, required: true, install: "https://go.dev/dl/"},
	{name: "goose", args: []string{"--version"}, install: "go install github.com/pressly/goose/v3/cmd/goose"},
	{name: "sqlc", args: []string{"version"}, install: "go install github.com/sqlc-dev/sqlc/cmd/sqlc"},
	{name: "mockery", args: []string{"--version"}, install: "go install github.com/vektra/mockery/v2"},
	{name: "swag", args: []string{"--version"}, install: "go install github.com/swaggo/swag/cmd/swag"},
	{name: "benchstat", args: []string{"-h"}, install: "go install golang.org/x/perf/cmd/benchstat"},
	{name: "docker", args: []string{"--version"}, install: "https://docs.docker.com/get-docker/ (Postgres store tests only)"},
}

func (c *CheckDepsCommand) Run(args []string) error {
	PrintHeader("Checking dependencies...")

	var missing []string
	for _, tool := range toolChecks {
		if _, err := exec.LookPath(tool.name); err != nil {
			if tool.required {
				PrintError("%s not found. Install: %s", tool.name, tool.install)
				missing = append(missing, tool.name)
			} else {
				PrintWarning("%s not found (optional). Install: %s", tool.name, tool.install)
			}
			continue
		}
		out, err := getCommandOutput(tool.name, tool.args...)
		if err != nil {
			out = "version unknown"
		}
		PrintSuccess("%s installed: %s", tool.name, firstLine(out))
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
