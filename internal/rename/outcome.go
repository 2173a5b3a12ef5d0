// Package rename applies resolved proposals to the filesystem with
// collision detection and optional interactive confirmation.
package rename

// Outcome is the terminal state of one document's rename transaction.
type Outcome string

const (
	Renamed             Outcome = "renamed"
	SkippedUnchanged    Outcome = "skipped-unchanged"
	SkippedNoEvidence   Outcome = "skipped-no-evidence"
	SkippedUserDeclined Outcome = "skipped-user-declined"
	SkippedMoveFailed   Outcome = "skipped-move-failed"
	CollisionUnresolved Outcome = "collision-unresolved"
	ProposedDryRun      Outcome = "proposed-dry-run"
)
