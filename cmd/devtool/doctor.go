package main

import (
	"fmt"

	"github.com/osse101/CraftLedger_Go/internal/config"
)

type DoctorCommand struct{}

func (c *DoctorCommand) Name() string {
	return "doctor"
}

func (c *DoctorCommand) Description() string {
	return "Diagnose environment issues (tools + store)"
}

func (c *DoctorCommand) Run(args []string) error {
	PrintHeader("Running Doctor...")

	hasError := false

	depsCmd := &CheckDepsCommand{}
	if err := depsCmd.Run(nil); err != nil {
		PrintError("Dependencies check failed: %v", err)
		hasError = true
	} else {
		PrintSuccess("Dependencies OK")
	}

	cfg, err := config.Load()
	if err == nil {
		err = pingStore(cfg)
	}
	if err != nil {
		PrintError("Store check failed: %v", err)
		hasError = true
	} else {
		PrintSuccess("Store OK (%s)", cfg.DBDriver)
	}

	if hasError {
		return fmt.Errorf("doctor found issues")
	}

	PrintSuccess("All systems operational!")
	return nil
}
