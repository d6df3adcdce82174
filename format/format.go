// Package format provides human-readable rendering of byte sizes and
// durations, and a PATH lookup for external programs. All functions are pure
// and stateless.
package format

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/sys/unix"
)

// sizeSpelledOutMax is the largest byte count still rendered as a plain
// number of bytes; anything above gets a binary-prefixed rendering.
const sizeSpelledOutMax = 512

// Size transforms a size in bytes into a human-readable form.
func Size(size uint64) string {
	if size == 1 {
		return "1 byte"
	}
	if size < sizeSpelledOutMax {
		return fmt.Sprintf("%d bytes", size)
	}

	return humanize.IBytes(size)
}

// Duration transforms a time in seconds into the "1h 2m 3.5s" form, omitting
// the hour and minute segments when they are zero.
func Duration(seconds float64) string {
	totalMinutes := int64(seconds) / 60
	remainder := seconds - float64(totalMinutes*60)

	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	var b strings.Builder
	if hours > 0 {
		fmt.Fprintf(&b, "%dh ", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&b, "%dm ", minutes)
	}
	fmt.Fprintf(&b, "%.1fs", remainder)

	return b.String()
}

// ProgramAvailable checks if an external program is available on the host, by
// scanning the PATH entries for an executable regular file of that name.
func ProgramAvailable(name string) bool {
	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		program := filepath.Join(strings.Trim(dir, `"`), name)

		info, err := os.Stat(program)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if unix.Access(program, unix.X_OK) == nil {
			return true
		}
	}

	return false
}
