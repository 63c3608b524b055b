//go:build linux

package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunApp_Help(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--help"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.Flags().Set("help", "false")
	}()

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute help failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Usage:") {
		t.Errorf("Help output missing 'Usage:'. Got: %s", output)
	}
	if !strings.Contains(output, "--debug") {
		t.Errorf("Help output missing --debug flag. Got: %s", output)
	}
}

func TestRunApp_Version(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--version"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute version failed: %v", err)
	}

	if !strings.Contains(buf.String(), version) {
		t.Errorf("Version output missing %q. Got: %s", version, buf.String())
	}
}
