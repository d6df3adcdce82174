// Package fscompat decides whether a destination path can safely receive
// sparse, seek-and-write image copies. It resolves the filesystem type a path
// resides on and, for copy-on-write filesystems (ZFS) that can silently break
// sparse-write assumptions, consults the relevant kernel parameter. It also
// provides the supporting probes an image-copy engine needs for that decision:
// the preferred I/O block size of an open file and the mount point owning a
// path.
package fscompat

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dellgreen/bmap-tools/internal/schema"
	"golang.org/x/sys/unix"
)

// fsTypeZfs is the mount-table identifier of filesystems that require the
// kernel parameter check before sparse writes are considered safe.
const fsTypeZfs = "zfs"

type osProvider interface {
	Open(name string) (*os.File, error)
	Stat(name string) (os.FileInfo, error)
}

type unixProvider interface {
	Fstat(fd int, stat *unix.Stat_t) error
	IoctlGetInt(fd int, req uint) (int, error)
	Lstat(path string, stat *unix.Stat_t) error
	Stat(path string, stat *unix.Stat_t) error
}

type commandRunner interface {
	Run(name string, args ...string) (stdout []byte, stderr []byte, err error)
}

// Handler is the principal implementation for all compatibility probing. It
// holds no mutable cross-call state and is safe for concurrent use.
type Handler struct {
	osHandler   osProvider
	unixHandler unixProvider
	cmdHandler  commandRunner
	settings    *Settings
}

// NewHandler returns a pointer to a new [Handler], using the given operating
// system providers and [Settings]. A nil settings argument selects the
// built-in defaults.
func NewHandler(osHandler osProvider, unixHandler unixProvider, cmdHandler commandRunner, settings *Settings) *Handler {
	if settings == nil {
		settings = DefaultSettings()
	}

	return &Handler{
		osHandler:   osHandler,
		unixHandler: unixHandler,
		cmdHandler:  cmdHandler,
		settings:    settings,
	}
}

// NewDefaultHandler returns a pointer to a new [Handler] wired to the real
// operating system and default [Settings].
func NewDefaultHandler() *Handler {
	return NewDefaultHandlerWithSettings(DefaultSettings())
}

// NewDefaultHandlerWithSettings returns a pointer to a new [Handler] wired to
// the real operating system and the given [Settings].
func NewDefaultHandlerWithSettings(settings *Settings) *Handler {
	return NewHandler(&schema.OS{}, &schema.Unix{}, &schema.Exec{}, settings)
}

// Verdict is the outcome of a compatibility resolution, carrying the decision
// together with the reasoning path that produced it. It is meant to be passed
// by value.
type Verdict struct {
	// Compatible reports whether sparse writes are considered safe.
	Compatible bool

	// FilesystemType is the detected type of the probed path.
	FilesystemType string

	// ZfsChecked reports whether the kernel parameter was consulted.
	ZfsChecked bool

	// ZfsParamEnabled is the raw state of the kernel parameter; only
	// meaningful when ZfsChecked is set.
	ZfsParamEnabled bool
}

// ResolveCompatibility determines whether the filesystem a path resides on
// can safely receive sparse writes, returning the full [Verdict]. Filesystems
// other than ZFS are approved unconditionally, as no incompatibility is known
// for them.
func (h *Handler) ResolveCompatibility(path string) (Verdict, error) {
	ftype, err := h.GetFilesystemType(path)
	if err != nil {
		return Verdict{}, fmt.Errorf("(fscompat) failed to get filesystem type: %w", err)
	}

	verdict := Verdict{
		Compatible:     true,
		FilesystemType: ftype,
	}

	if ftype == fsTypeZfs {
		compatible, err := h.IsZfsCompatible()
		if err != nil {
			return Verdict{}, fmt.Errorf("(fscompat) failed to check zfs parameter: %w", err)
		}

		verdict.ZfsChecked = true
		verdict.ZfsParamEnabled = compatible
		verdict.Compatible = compatible
	}

	slog.Debug("Resolved sparse-write compatibility",
		"path", path,
		"type", verdict.FilesystemType,
		"compatible", verdict.Compatible,
	)

	return verdict, nil
}

// IsCompatibleFilesystem determines whether the filesystem a path resides on
// can safely receive sparse writes. It is the single authoritative gate an
// image-copy engine consults before enabling sparse-write optimizations.
func (h *Handler) IsCompatibleFilesystem(path string) (bool, error) {
	verdict, err := h.ResolveCompatibility(path)
	if err != nil {
		return false, err
	}

	return verdict.Compatible, nil
}
