// Package vaultsync copies changed markdown files between vault
// directories, preserving structure and never deleting.
package vaultsync

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/taigrr/obsidian-frontmatter/internal/pathfilter"
	"github.com/taigrr/obsidian-frontmatter/internal/types"
)

// mtimeTolerance absorbs filesystem timestamp granularity differences
// when comparing source and destination modification times.
const mtimeTolerance = time.Second

// Service plans and executes one-way directory synchronization.
type Service struct {
	sourceDir string
	destDir   string
	filter    *pathfilter.Filter
}

// New creates a sync service between two directories.
func New(sourceDir, destDir string, filter *pathfilter.Filter) (*Service, error) {
	absSource, err := filepath.Abs(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve source directory: %w", err)
	}
	absDest, err := filepath.Abs(destDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve destination directory: %w", err)
	}
	if filter == nil {
		filter = pathfilter.New(nil)
	}
	return &Service{
		sourceDir: absSource,
		destDir:   absDest,
		filter:    filter,
	}, nil
}

// Plan walks the source directory and decides, per markdown file,
// whether it needs copying: missing from the destination, newer than
// the destination, or same mtime but different content hash.
func (s *Service) Plan() (types.SyncPlan, error) {
	var plan types.SyncPlan

	err := filepath.WalkDir(s.sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != s.sourceDir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		// Symlinks are skipped, matching the copy semantics below.
		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}

		relPath, err := filepath.Rel(s.sourceDir, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)
		if !s.filter.Allowed(relPath) {
			return nil
		}

		destPath := filepath.Join(s.destDir, filepath.FromSlash(relPath))
		reason, needed, err := s.shouldCopy(path, destPath)
		if err != nil {
			return err
		}
		if needed {
			plan.Candidates = append(plan.Candidates, types.SyncCandidate{
				SourcePath: path,
				DestPath:   destPath,
				RelPath:    relPath,
				Reason:     reason,
			})
		} else {
			plan.Skipped = append(plan.Skipped, relPath)
		}
		return nil
	})
	if err != nil {
		return types.SyncPlan{}, fmt.Errorf("failed to scan %s: %w", s.sourceDir, err)
	}

	sort.Slice(plan.Candidates, func(i, j int) bool {
		return plan.Candidates[i].RelPath < plan.Candidates[j].RelPath
	})
	sort.Strings(plan.Skipped)
	return plan, nil
}

func (s *Service) shouldCopy(sourcePath, destPath string) (types.SyncReason, bool, error) {
	destInfo, err := os.Stat(destPath)
	if err != nil {
		return types.SyncReasonNew, true, nil
	}

	sourceInfo, err := os.Stat(sourcePath)
	if err != nil {
		return "", false, err
	}

	diff := sourceInfo.ModTime().Sub(destInfo.ModTime())
	if diff > mtimeTolerance {
		return types.SyncReasonModified, true, nil
	}
	if diff >= -mtimeTolerance {
		sourceHash, err := fileHash(sourcePath)
		if err != nil {
			return "", false, err
		}
		destHash, err := fileHash(destPath)
		if err != nil {
			return "", false, err
		}
		if sourceHash != destHash {
			return types.SyncReasonContentChanged, true, nil
		}
	}

	// Destination is newer or content is identical.
	return "", false, nil
}

// Execute copies every candidate in the plan. With dryRun set, nothing
// is written but all candidates are reported as copied. Per-file
// failures accumulate rather than aborting the run.
func (s *Service) Execute(plan types.SyncPlan, dryRun bool) types.SyncResult {
	var result types.SyncResult

	for _, c := range plan.Candidates {
		if dryRun {
			result.Copied = append(result.Copied, c)
			continue
		}
		if err := copyFile(c.SourcePath, c.DestPath); err != nil {
			result.Errors = append(result.Errors, types.SyncError{
				Path:    c.SourcePath,
				Message: err.Error(),
			})
			continue
		}
		result.Copied = append(result.Copied, c)
	}
	return result
}

// copyFile copies content and carries over the source mtime so later
// runs can compare timestamps.
func copyFile(sourcePath, destPath string) error {
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	src, err := os.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("failed to copy: %w", err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("failed to close destination: %w", err)
	}

	info, err := os.Stat(sourcePath)
	if err != nil {
		return err
	}
	return os.Chtimes(destPath, info.ModTime(), info.ModTime())
}

func fileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
