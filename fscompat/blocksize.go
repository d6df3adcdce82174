package fscompat

import (
	"os"

	"golang.org/x/sys/unix"
)

// figetbsz is the FIGETBSZ ioctl request number, _IO(0x00, 2) from
// <linux/fs.h>; golang.org/x/sys/unix does not export this constant.
const figetbsz = 0x2

// GetBlockSize determines the preferred I/O block size of the host filesystem
// for an open file. An ordered list of probes is attempted, first success
// wins: the FIGETBSZ ioctl against the file descriptor, then the st_blksize
// field of the file status metadata. A probe reporting zero is treated as not
// having produced a value. When no probe succeeds,
// [ErrBlockSizeUnavailable] is returned.
func (h *Handler) GetBlockSize(file *os.File) (int64, error) {
	fd := int(file.Fd())

	probes := []func(fd int) int64{
		h.blockSizeFromIoctl,
		h.blockSizeFromFstat,
	}

	for _, probe := range probes {
		if bsize := probe(fd); bsize > 0 {
			return bsize, nil
		}
	}

	return 0, ErrBlockSizeUnavailable
}

// blockSizeFromIoctl queries the block size through the FIGETBSZ ioctl.
// Failures of the ioctl (unsupported device, permission) yield zero rather
// than an error, so the next probe is attempted.
func (h *Handler) blockSizeFromIoctl(fd int) int64 {
	bsize, err := h.unixHandler.IoctlGetInt(fd, figetbsz)
	if err != nil {
		return 0
	}

	return int64(bsize)
}

// blockSizeFromFstat queries the filesystem's preferred I/O block size from
// the file status metadata.
func (h *Handler) blockSizeFromFstat(fd int) int64 {
	var stat unix.Stat_t
	if err := h.unixHandler.Fstat(fd, &stat); err != nil {
		return 0
	}

	return int64(stat.Blksize)
}
