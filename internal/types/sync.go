package types

type (
	// SyncReason explains why a file was scheduled for copying.
	SyncReason string

	// SyncCandidate is a source file that needs to be copied.
	SyncCandidate struct {
		SourcePath string     `json:"sourcePath"`
		DestPath   string     `json:"destPath"`
		RelPath    string     `json:"relPath"`
		Reason     SyncReason `json:"reason"`
	}

	// SyncPlan lists the files that need copying and the ones that are
	// already up to date.
	SyncPlan struct {
		Candidates []SyncCandidate `json:"candidates"`
		Skipped    []string        `json:"skipped"`
	}

	// SyncError pairs a source path with the failure copying it.
	SyncError struct {
		Path    string `json:"path"`
		Message string `json:"message"`
	}

	// SyncResult contains the outcome of executing a sync plan.
	SyncResult struct {
		Copied []SyncCandidate `json:"copied"`
		Errors []SyncError     `json:"errors"`
	}

	// PathFilterConfig extends the built-in path filter rules.
	PathFilterConfig struct {
		IgnoredPatterns   []string `json:"ignoredPatterns"`
		AllowedExtensions []string `json:"allowedExtensions"`
	}
)

const (
	// SyncReasonNew marks a file missing from the destination.
	SyncReasonNew SyncReason = "new"
	// SyncReasonModified marks a file whose source mtime is newer.
	SyncReasonModified SyncReason = "modified"
	// SyncReasonContentChanged marks a file whose mtimes match but
	// whose content hashes differ.
	SyncReasonContentChanged SyncReason = "content changed"
)
