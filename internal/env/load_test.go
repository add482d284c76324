package env

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("Load missing file: %v", err)
	}
}

func TestLoadSetsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	body := "# comment\nSPRINGBALL_TEST_A=alpha\nSPRINGBALL_TEST_B=\"quoted value\"\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SPRINGBALL_TEST_A", "")
	os.Unsetenv("SPRINGBALL_TEST_A")
	t.Setenv("SPRINGBALL_TEST_B", "from process")

	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := os.Getenv("SPRINGBALL_TEST_A"); got != "alpha" {
		t.Fatalf("A = %q, want alpha", got)
	}
	if got := os.Getenv("SPRINGBALL_TEST_B"); got != "from process" {
		t.Fatalf("B = %q, process env should win", got)
	}
}

func TestLookup(t *testing.T) {
	t.Setenv(LogVar, "")
	if got := Lookup(LogVar, "fallback.txt"); got != "fallback.txt" {
		t.Fatalf("Lookup empty = %q", got)
	}
	t.Setenv(LogVar, "custom.txt")
	if got := Lookup(LogVar, "fallback.txt"); got != "custom.txt" {
		t.Fatalf("Lookup set = %q", got)
	}
}
