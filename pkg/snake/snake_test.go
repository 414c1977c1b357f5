package snake

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestIsRequired(t *testing.T) {
	cmd := &cobra.Command{Use: "add"}
	cmd.Flags().String("title", "", "Title")
	cmd.Flags().String("image", "", "Image")
	MarkRequired(cmd, "title")

	if !isRequired(cmd.Flags().Lookup("title")) {
		t.Fatalf("expected title to be required")
	}
	if isRequired(cmd.Flags().Lookup("image")) {
		t.Fatalf("expected image to be optional")
	}
}

func TestPromptFlagsSkipsSetFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "add"}
	cmd.Flags().String("title", "", "Title")
	if err := cmd.Flags().Set("title", "Launch"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	// No input is available; a prompt would fail.
	cmd.SetIn(strings.NewReader(""))

	if err := PromptFlags(cmd, "title"); err != nil {
		t.Fatalf("PromptFlags failed: %v", err)
	}
	if got, _ := cmd.Flags().GetString("title"); got != "Launch" {
		t.Fatalf("expected Launch, got %q", got)
	}
}

func TestPromptFlagsUnknownFlag(t *testing.T) {
	cmd := &cobra.Command{Use: "add"}
	if err := PromptFlags(cmd, "missing"); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestAsFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "add"}
	cmd.Flags().StringP("date", "d", "", "Date")
	cmd.Flags().String("title", "", "Title")

	if got := asFlags(cmd.Flags().Lookup("date")); got != "--date, -d" {
		t.Fatalf("unexpected %q", got)
	}
	if got := asFlags(cmd.Flags().Lookup("title")); got != "--title" {
		t.Fatalf("unexpected %q", got)
	}
}
