package rename

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bibmv/bibmv/internal/evidence"
)

// ConfirmFunc answers an interactive yes/no prompt. A nil ConfirmFunc
// means no confirmation is required.
type ConfirmFunc func(prompt string) bool

// Transaction applies proposals to the filesystem, one document at a
// time. Processing is strictly sequential; the collision probe is only
// correct when no two renames for the same directory race.
type Transaction struct {
	DryRun  bool
	Confirm ConfirmFunc
	Log     io.Writer // optional append-only sink, one line per applied rename
}

// Result reports what the transaction did with one document.
type Result struct {
	Outcome Outcome
	OldPath string
	NewPath string // proposed or applied target, "" when there was none
	Err     error  // underlying error for move failures
}

// Apply runs the rename state machine for the document at path. ok is
// false when resolution produced no proposal.
func (t *Transaction) Apply(path string, proposal evidence.Proposal, ok bool) Result {
	res := Result{OldPath: path}
	if !ok {
		res.Outcome = SkippedNoEvidence
		return res
	}

	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	stem := proposal.Surname + "-" + proposal.Year

	if stem+ext == filepath.Base(path) {
		res.Outcome = SkippedUnchanged
		res.NewPath = path
		return res
	}

	target, unresolved := probeTarget(path, dir, stem, ext)
	if unresolved {
		res.Outcome = CollisionUnresolved
		return res
	}
	res.NewPath = target

	if t.DryRun {
		res.Outcome = ProposedDryRun
		return res
	}

	if t.Confirm != nil {
		prompt := fmt.Sprintf("rename %s -> %s?", filepath.Base(path), filepath.Base(target))
		if !t.Confirm(prompt) {
			res.Outcome = SkippedUserDeclined
			return res
		}
	}

	if err := os.Rename(path, target); err != nil {
		res.Err = err
		// A target that appeared between the probe and the move is a
		// genuine collision race, not an I/O failure.
		if _, statErr := os.Lstat(target); statErr == nil && !sameEntry(path, target) {
			res.Outcome = CollisionUnresolved
			return res
		}
		res.Outcome = SkippedMoveFailed
		return res
	}

	if t.Log != nil {
		fmt.Fprintf(t.Log, "%s -> %s\n", filepath.Base(path), filepath.Base(target))
	}
	res.Outcome = Renamed
	return res
}

// probeTarget returns a usable target path for src. When the canonical
// name is occupied by another entry it probes single-letter suffixes
// a..z in order; exhausting all 26 reports an unresolved collision.
func probeTarget(src, dir, stem, ext string) (target string, unresolved bool) {
	candidate := filepath.Join(dir, stem+ext)
	if available(src, candidate) {
		return candidate, false
	}
	for c := 'a'; c <= 'z'; c++ {
		candidate = filepath.Join(dir, stem+string(c)+ext)
		if available(src, candidate) {
			return candidate, false
		}
	}
	return "", true
}

// available reports whether target can receive src: either nothing
// exists there, or the occupant is src itself (a case-only rename on
// case-insensitive storage).
func available(src, target string) bool {
	if _, err := os.Lstat(target); err != nil {
		return os.IsNotExist(err)
	}
	return sameEntry(src, target)
}

// sameEntry reports whether two paths refer to the same filesystem
// entry, resolving symlinks and case-insensitive naming.
func sameEntry(a, b string) bool {
	ra, errA := filepath.EvalSymlinks(a)
	rb, errB := filepath.EvalSymlinks(b)
	if errA == nil && errB == nil && ra == rb {
		return true
	}
	fa, errA := os.Stat(a)
	fb, errB := os.Stat(b)
	return errA == nil && errB == nil && os.SameFile(fa, fb)
}
