package rename

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bibmv/bibmv/internal/evidence"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestApplyNoEvidence(t *testing.T) {
	tx := &Transaction{}
	res := tx.Apply("/docs/scan.pdf", evidence.Proposal{}, false)
	if res.Outcome != SkippedNoEvidence {
		t.Errorf("outcome = %s, want %s", res.Outcome, SkippedNoEvidence)
	}
}

func TestApplyRenames(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.pdf")
	touch(t, src)

	tx := &Transaction{}
	res := tx.Apply(src, evidence.Proposal{Surname: "smith", Year: "2019"}, true)

	if res.Outcome != Renamed {
		t.Fatalf("outcome = %s, want %s", res.Outcome, Renamed)
	}
	want := filepath.Join(dir, "smith-2019.pdf")
	if res.NewPath != want {
		t.Errorf("NewPath = %q, want %q", res.NewPath, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("renamed file missing: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Errorf("source still present after rename")
	}
}

func TestApplyUnchanged(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "brown-2018.pdf")
	touch(t, src)

	tx := &Transaction{}
	res := tx.Apply(src, evidence.Proposal{Surname: "brown", Year: "2018"}, true)

	if res.Outcome != SkippedUnchanged {
		t.Errorf("outcome = %s, want %s", res.Outcome, SkippedUnchanged)
	}
	if _, err := os.Stat(src); err != nil {
		t.Errorf("unchanged document must not be touched: %v", err)
	}
}

func TestApplyCollisionTakesFirstFreeSuffix(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.pdf")
	touch(t, src)
	touch(t, filepath.Join(dir, "lee-2020.pdf"))

	tx := &Transaction{}
	res := tx.Apply(src, evidence.Proposal{Surname: "lee", Year: "2020"}, true)

	if res.Outcome != Renamed {
		t.Fatalf("outcome = %s, want %s", res.Outcome, Renamed)
	}
	want := filepath.Join(dir, "lee-2020a.pdf")
	if res.NewPath != want {
		t.Errorf("NewPath = %q, want %q", res.NewPath, want)
	}
}

func TestApplyCollisionLastSuffix(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.pdf")
	touch(t, src)
	touch(t, filepath.Join(dir, "lee-2020.pdf"))
	for c := 'a'; c <= 'y'; c++ {
		touch(t, filepath.Join(dir, "lee-2020"+string(c)+".pdf"))
	}

	tx := &Transaction{}
	res := tx.Apply(src, evidence.Proposal{Surname: "lee", Year: "2020"}, true)

	if res.Outcome != Renamed {
		t.Fatalf("outcome = %s, want %s", res.Outcome, Renamed)
	}
	if filepath.Base(res.NewPath) != "lee-2020z.pdf" {
		t.Errorf("NewPath = %q, want the z suffix", res.NewPath)
	}
}

func TestApplyCollisionExhausted(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.pdf")
	touch(t, src)
	touch(t, filepath.Join(dir, "lee-2020.pdf"))
	for c := 'a'; c <= 'z'; c++ {
		touch(t, filepath.Join(dir, "lee-2020"+string(c)+".pdf"))
	}

	tx := &Transaction{}
	res := tx.Apply(src, evidence.Proposal{Surname: "lee", Year: "2020"}, true)

	if res.Outcome != CollisionUnresolved {
		t.Errorf("outcome = %s, want %s", res.Outcome, CollisionUnresolved)
	}
	if _, err := os.Stat(src); err != nil {
		t.Errorf("source must be untouched on unresolved collision: %v", err)
	}
}

func TestApplyDryRun(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.pdf")
	touch(t, src)

	tx := &Transaction{DryRun: true}
	res := tx.Apply(src, evidence.Proposal{Surname: "smith", Year: "2019"}, true)

	if res.Outcome != ProposedDryRun {
		t.Errorf("outcome = %s, want %s", res.Outcome, ProposedDryRun)
	}
	if filepath.Base(res.NewPath) != "smith-2019.pdf" {
		t.Errorf("NewPath = %q", res.NewPath)
	}
	if _, err := os.Stat(src); err != nil {
		t.Errorf("dry run must not touch the filesystem: %v", err)
	}
}

func TestApplyDryRunReportsSuffixedTarget(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.pdf")
	touch(t, src)
	touch(t, filepath.Join(dir, "smith-2019.pdf"))

	tx := &Transaction{DryRun: true}
	res := tx.Apply(src, evidence.Proposal{Surname: "smith", Year: "2019"}, true)

	if filepath.Base(res.NewPath) != "smith-2019a.pdf" {
		t.Errorf("dry run should report the suffixed mapping, got %q", res.NewPath)
	}
}

func TestApplyConfirmDeclined(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.pdf")
	touch(t, src)

	var prompt string
	tx := &Transaction{Confirm: func(p string) bool {
		prompt = p
		return false
	}}
	res := tx.Apply(src, evidence.Proposal{Surname: "smith", Year: "2019"}, true)

	if res.Outcome != SkippedUserDeclined {
		t.Errorf("outcome = %s, want %s", res.Outcome, SkippedUserDeclined)
	}
	if !strings.Contains(prompt, "input.pdf") || !strings.Contains(prompt, "smith-2019.pdf") {
		t.Errorf("prompt should show the mapping, got %q", prompt)
	}
	if _, err := os.Stat(src); err != nil {
		t.Errorf("declined rename must not move the file: %v", err)
	}
}

func TestApplyConfirmAccepted(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.pdf")
	touch(t, src)

	tx := &Transaction{Confirm: func(string) bool { return true }}
	res := tx.Apply(src, evidence.Proposal{Surname: "smith", Year: "2019"}, true)

	if res.Outcome != Renamed {
		t.Errorf("outcome = %s, want %s", res.Outcome, Renamed)
	}
}

func TestApplyLogSink(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.pdf")
	touch(t, src)

	var log strings.Builder
	tx := &Transaction{Log: &log}
	res := tx.Apply(src, evidence.Proposal{Surname: "smith", Year: "2019"}, true)

	if res.Outcome != Renamed {
		t.Fatalf("outcome = %s", res.Outcome)
	}
	if log.String() != "input.pdf -> smith-2019.pdf\n" {
		t.Errorf("log line = %q", log.String())
	}
}

func TestApplyMoveFailed(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "missing.pdf") // never created

	tx := &Transaction{}
	res := tx.Apply(src, evidence.Proposal{Surname: "smith", Year: "2019"}, true)

	if res.Outcome != SkippedMoveFailed {
		t.Errorf("outcome = %s, want %s", res.Outcome, SkippedMoveFailed)
	}
	if res.Err == nil {
		t.Error("move failure should carry the underlying error")
	}
}

func TestApplySymlinkedSelfIsNotACollision(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.pdf")
	touch(t, src)
	link := filepath.Join(dir, "smith-2019.pdf")
	if err := os.Symlink(src, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	tx := &Transaction{DryRun: true}
	res := tx.Apply(src, evidence.Proposal{Surname: "smith", Year: "2019"}, true)

	if res.Outcome != ProposedDryRun {
		t.Fatalf("outcome = %s", res.Outcome)
	}
	if filepath.Base(res.NewPath) != "smith-2019.pdf" {
		t.Errorf("occupant resolving to the source itself must not force a suffix, got %q", res.NewPath)
	}
}
