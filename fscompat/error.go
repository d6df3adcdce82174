package fscompat

import "errors"

var (
	// ErrBlockSizeUnavailable is an error that occurs when neither the
	// block-size ioctl nor the file status metadata yielded a usable block
	// size for an open file.
	ErrBlockSizeUnavailable = errors.New("unable to determine block size")

	// ErrNoFilesystemType is an error that occurs when the mount-table
	// reporting command produced no parseable filesystem type; it is wrapped
	// together with the command's diagnostic output.
	ErrNoFilesystemType = errors.New("no filesystem type was found")

	// ErrZfsParamUnreadable is an error that occurs when the ZFS kernel
	// parameter file exists but cannot be opened or holds a non-integer
	// value. A missing parameter file is a normal negative result instead.
	ErrZfsParamUnreadable = errors.New("zfs parameter is unreadable")
)
