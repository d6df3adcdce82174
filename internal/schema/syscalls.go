package schema

import (
	"bytes"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// OS is an implementation wrapping operating system functions.
type OS struct{}

// Open wraps around [os.Open].
func (*OS) Open(name string) (*os.File, error) {
	return os.Open(name)
}

// Stat wraps around [os.Stat].
func (*OS) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Unix is an implementation wrapping Unix operating system functions.
type Unix struct{}

// Fstat wraps around [unix.Fstat].
func (*Unix) Fstat(fd int, stat *unix.Stat_t) error {
	return unix.Fstat(fd, stat)
}

// Lstat wraps around [unix.Lstat].
func (*Unix) Lstat(path string, stat *unix.Stat_t) error {
	return unix.Lstat(path, stat)
}

// Stat wraps around [unix.Stat].
func (*Unix) Stat(path string, stat *unix.Stat_t) error {
	return unix.Stat(path, stat)
}

// IoctlGetInt wraps around [unix.IoctlGetInt].
func (*Unix) IoctlGetInt(fd int, req uint) (int, error) {
	return unix.IoctlGetInt(fd, req)
}

// Exec is an implementation wrapping child process execution.
type Exec struct{}

// Run executes the named program with the given arguments, waiting for it to
// finish and capturing its standard output and standard error separately. The
// captured streams are returned alongside any execution error.
func (*Exec) Run(name string, args ...string) (stdout []byte, stderr []byte, err error) {
	cmd := exec.Command(name, args...)

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err = cmd.Run()

	return outBuf.Bytes(), errBuf.Bytes(), err
}
