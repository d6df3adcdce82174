package fscompat

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// ZfsCompatParamPath returns the location of the kernel parameter guarding
// ZFS sparse-write compatibility.
func (h *Handler) ZfsCompatParamPath() string {
	return h.settings.ZfsParamPath
}

// IsZfsCompatible determines whether the host's ZFS configuration is safe for
// sparse writes. A missing parameter file means the guarded feature is absent
// on this host and yields false without an error; a parameter file that
// exists but cannot be opened or holds a non-integer value yields
// [ErrZfsParamUnreadable]. Compatibility is given only when the parameter
// reads exactly 1.
func (h *Handler) IsZfsCompatible() (bool, error) {
	paramPath := h.ZfsCompatParamPath()

	info, err := h.osHandler.Stat(paramPath)
	if err != nil || !info.Mode().IsRegular() {
		return false, nil
	}

	file, err := h.osHandler.Open(paramPath)
	if err != nil {
		return false, fmt.Errorf("(fscompat-zfs) %w: failed to open %s: %v", ErrZfsParamUnreadable, paramPath, err)
	}
	defer file.Close()

	var line string
	scanner := bufio.NewScanner(file)
	if scanner.Scan() {
		line = scanner.Text()
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("(fscompat-zfs) %w: failed to read %s: %v", ErrZfsParamUnreadable, paramPath, err)
	}

	value, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return false, fmt.Errorf("(fscompat-zfs) %w: invalid value %q in %s", ErrZfsParamUnreadable, line, paramPath)
	}

	return value == 1, nil
}
