// Package core implements the compliance engine and its security-aware
// path inspection.
package core

import (
	"os"
	"path/filepath"
	"strings"
)

// PathCheck is the ephemeral result of one security-aware path inspection.
// It records link-level existence only; whether the entry is usable as a
// file or directory is decided by the engine after following the link.
type PathCheck struct {
	Exists      bool
	IsSymlink   bool
	EscapesRoot bool
	Target      string // resolved target before canonicalization, for display
}

// Inspect examines a single path with link-aware stat semantics and reports
// whether a symlink at that path escapes the repository root. Absence and
// permission errors are normal outcomes, never errors: the zero PathCheck
// means "not present". Inspect performs no mutation and emits no warnings;
// warning emission belongs to the caller.
func Inspect(path, repoRoot string) PathCheck {
	info, err := os.Lstat(path)
	if err != nil {
		return PathCheck{}
	}

	if info.Mode()&os.ModeSymlink == 0 {
		return PathCheck{Exists: true}
	}

	rawTarget, err := os.Readlink(path)
	if err != nil {
		// Escape status is indeterminate; default to not flagged rather
		// than blocking on an unreadable link.
		return PathCheck{Exists: true, IsSymlink: true}
	}

	// Relative targets resolve against the link's parent directory, not
	// the repository root.
	resolved := rawTarget
	if !filepath.IsAbs(rawTarget) {
		resolved = filepath.Join(filepath.Dir(path), rawTarget)
	}

	return PathCheck{
		Exists:      true,
		IsSymlink:   true,
		EscapesRoot: !withinRoot(canonicalize(resolved), canonicalize(repoRoot)),
		Target:      resolved,
	}
}

// canonicalize resolves a path to its absolute, symlink-free form. Dangling
// targets fall back to their absolute form so a failed resolution degrades
// the comparison instead of failing the whole check.
func canonicalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs
	}
	return resolved
}

// withinRoot reports whether target lies within or equals the root subtree.
// The test is segmentwise on canonical paths; a raw string prefix would let
// /repo-evil slip past /repo.
func withinRoot(target, root string) bool {
	if target == root {
		return true
	}
	return strings.HasPrefix(target, root+string(filepath.Separator))
}
