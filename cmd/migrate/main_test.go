package main

import (
	"bytes"
	"strings"
	"testing"

	"marine-api/internal/shared/storage/db/dbtest"
)

func TestUpReportsLatestVersion(t *testing.T) {
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--driver", "sqlite", "--database-url", dbtest.MemoryDSN, "up"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), "sqlite schema version: 2") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestUnknownSubcommandFails(t *testing.T) {
	cmd := rootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"sideways"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for unknown subcommand")
	}
}
