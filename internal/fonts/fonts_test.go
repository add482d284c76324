package fonts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func inTempDir(t *testing.T, files ...string) {
	t.Helper()
	dir := t.TempDir()
	for _, f := range files {
		path := filepath.Join(dir, f)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	wd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestFindFontPrefersBold(t *testing.T) {
	inTempDir(t,
		"assets/fonts/Arial/Arial-Regular.ttf",
		"assets/fonts/Arial/Arial-Bold.ttf",
		"assets/fonts/Inter/Inter-Regular.otf",
		"assets/fonts/readme.txt",
	)
	rel, full, err := FindFont("arial")
	if err != nil {
		t.Fatalf("FindFont: %v", err)
	}
	if rel != "Arial/Arial-Bold.ttf" || full != "assets/fonts/Arial/Arial-Bold.ttf" {
		t.Fatalf("FindFont = %q, %q", rel, full)
	}
	if rel, _, _ := FindFont("Inter"); rel != "Inter/Inter-Regular.otf" {
		t.Fatalf("FindFont(Inter) = %q", rel)
	}
}

func TestFindFontMissing(t *testing.T) {
	inTempDir(t, "assets/fonts/readme.txt")
	if _, _, err := FindFont("Arial"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want ErrNotExist", err)
	}
	if _, _, err := FindFont(" - "); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("blank search err = %v", err)
	}
}

func TestScanDirSkipsNonFonts(t *testing.T) {
	inTempDir(t, "assets/fonts/a.TTF", "assets/fonts/b.png")
	got, err := ScanDir("assets/fonts")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "a.TTF" {
		t.Fatalf("ScanDir = %q", got)
	}
}
