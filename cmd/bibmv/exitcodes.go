package main

// Exit codes for the bibmv CLI.
const (
	ExitSuccess           = 0 // At least one document was renamed or proposed
	ExitError             = 1 // General error, or no document renamed/proposed
	ExitMissingDependency = 2 // Required collaborator (exiftool) unavailable
)
