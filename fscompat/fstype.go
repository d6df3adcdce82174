package fscompat

import (
	"fmt"
	"strings"
)

// GetFilesystemType detects the type of the filesystem a path resides on by
// invoking the mount-table reporting command (df -T) once against the
// canonicalized path. The command's exit status is not considered; the
// decision is made on its standard output alone. When no type can be parsed
// from the output, [ErrNoFilesystemType] is returned, wrapped with the
// command's diagnostic output for operator visibility.
func (h *Handler) GetFilesystemType(path string) (string, error) {
	resolved, err := canonicalPath(path)
	if err != nil {
		return "", fmt.Errorf("(fscompat-fstype) failed to canonicalize: %w", err)
	}

	stdout, stderr, _ := h.cmdHandler.Run(h.settings.DfCommand, "-T", "--", resolved)

	if ftype := parseMountTable(stdout); ftype != "" {
		return ftype, nil
	}

	return "", fmt.Errorf("(fscompat-fstype) %w: %s", ErrNoFilesystemType, strings.TrimSpace(string(stderr)))
}

// parseMountTable extracts the filesystem type from tabular mount-table
// output: a header row followed by at least one data row, whose second
// whitespace-separated column is the type. An empty string means no type
// could be parsed.
func parseMountTable(output []byte) string {
	var rows []string
	for _, line := range strings.Split(string(output), "\n") {
		if strings.TrimSpace(line) != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) < 2 {
		return ""
	}

	fields := strings.Fields(rows[1])
	if len(fields) < 2 {
		return ""
	}

	return strings.ToLower(fields[1])
}
