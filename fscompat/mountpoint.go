package fscompat

import (
	"fmt"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// GetMountPoint resolves a path to the mount point it resides on. The
// canonicalized path is walked upwards until an ancestor satisfies the mount
// predicate; the filesystem root is always a mount point and bounds the walk
// by path depth.
func (h *Handler) GetMountPoint(path string) (string, error) {
	current, err := canonicalPath(path)
	if err != nil {
		return "", fmt.Errorf("(fscompat-mount) failed to canonicalize: %w", err)
	}

	for current != string(filepath.Separator) {
		isMount, err := h.isMountPoint(current)
		if err != nil {
			return "", fmt.Errorf("(fscompat-mount) failed to probe %s: %w", current, err)
		}
		if isMount {
			return current, nil
		}

		parent, err := canonicalPath(filepath.Join(current, ".."))
		if err != nil {
			return "", fmt.Errorf("(fscompat-mount) failed to canonicalize parent: %w", err)
		}
		current = parent
	}

	return current, nil
}

// isMountPoint implements the host's mount predicate: a path is a mount point
// when it is not a symbolic link and either resides on a different device
// than its parent directory, or is its own parent (the root of a filesystem).
func (h *Handler) isMountPoint(path string) (bool, error) {
	var pathStat unix.Stat_t
	if err := h.unixHandler.Lstat(path, &pathStat); err != nil {
		return false, fmt.Errorf("failed to lstat: %w", err)
	}
	if pathStat.Mode&unix.S_IFMT == unix.S_IFLNK {
		return false, nil
	}

	var parentStat unix.Stat_t
	if err := h.unixHandler.Stat(filepath.Join(path, ".."), &parentStat); err != nil {
		return false, fmt.Errorf("failed to stat parent: %w", err)
	}

	if pathStat.Dev != parentStat.Dev {
		return true, nil
	}
	if pathStat.Ino == parentStat.Ino {
		return true, nil
	}

	return false, nil
}

// canonicalPath makes a path absolute and resolves any symbolic links and
// "."/".." segments in it.
func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to absolutize: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to resolve symlinks: %w", err)
	}

	return resolved, nil
}
