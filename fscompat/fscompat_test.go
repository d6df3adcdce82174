package fscompat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dellgreen/bmap-tools/fscompat/mocks"
	"github.com/dellgreen/bmap-tools/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// resolverHandler returns a handler whose mount-table command is mocked and
// whose ZFS parameter location points at the given path.
func resolverHandler(cmdMock *mocks.CommandRunner, paramPath string) *Handler {
	return NewHandler(&schema.OS{}, &schema.Unix{}, cmdMock, &Settings{
		DfCommand:    DefaultDfCommand,
		ZfsParamPath: paramPath,
	})
}

// TestIsCompatibleFilesystem_Ext4 approves a non-ZFS filesystem without
// consulting the ZFS parameter; the parameter file holding "0" proves the
// checker was not involved in the decision.
func TestIsCompatibleFilesystem_Ext4(t *testing.T) {
	t.Parallel()

	cmdMock := mocks.NewCommandRunner(t)
	handler := resolverHandler(cmdMock, zfsParamFile(t, "0"))

	cmdMock.On("Run", "df", "-T", "--", mock.Anything).Return([]byte(dfOutputExt4), []byte(nil), nil)

	compatible, err := handler.IsCompatibleFilesystem(t.TempDir())
	require.NoError(t, err, "unexpected error from IsCompatibleFilesystem")
	assert.True(t, compatible)

	cmdMock.AssertExpectations(t)
}

// TestIsCompatibleFilesystem_ZfsEnabled approves ZFS when the kernel
// parameter reads 1.
func TestIsCompatibleFilesystem_ZfsEnabled(t *testing.T) {
	t.Parallel()

	cmdMock := mocks.NewCommandRunner(t)
	handler := resolverHandler(cmdMock, zfsParamFile(t, "1\n"))

	cmdMock.On("Run", "df", "-T", "--", mock.Anything).Return([]byte(dfOutputZfs), []byte(nil), nil)

	compatible, err := handler.IsCompatibleFilesystem(t.TempDir())
	require.NoError(t, err, "unexpected error from IsCompatibleFilesystem")
	assert.True(t, compatible)

	cmdMock.AssertExpectations(t)
}

// TestIsCompatibleFilesystem_ZfsDisabled rejects ZFS when the kernel
// parameter reads 0.
func TestIsCompatibleFilesystem_ZfsDisabled(t *testing.T) {
	t.Parallel()

	cmdMock := mocks.NewCommandRunner(t)
	handler := resolverHandler(cmdMock, zfsParamFile(t, "0"))

	cmdMock.On("Run", "df", "-T", "--", mock.Anything).Return([]byte(dfOutputZfs), []byte(nil), nil)

	compatible, err := handler.IsCompatibleFilesystem(t.TempDir())
	require.NoError(t, err, "unexpected error from IsCompatibleFilesystem")
	assert.False(t, compatible)

	cmdMock.AssertExpectations(t)
}

// TestIsCompatibleFilesystem_ZfsNotInstalled rejects ZFS when the kernel
// parameter file is missing, without raising an error.
func TestIsCompatibleFilesystem_ZfsNotInstalled(t *testing.T) {
	t.Parallel()

	cmdMock := mocks.NewCommandRunner(t)
	handler := resolverHandler(cmdMock, filepath.Join(t.TempDir(), "file/does/not/exist"))

	cmdMock.On("Run", "df", "-T", "--", mock.Anything).Return([]byte(dfOutputZfs), []byte(nil), nil)

	compatible, err := handler.IsCompatibleFilesystem(t.TempDir())
	require.NoError(t, err, "unexpected error from IsCompatibleFilesystem")
	assert.False(t, compatible)

	cmdMock.AssertExpectations(t)
}

// TestIsCompatibleFilesystem_Fail_NoType propagates a type determination
// failure to the caller.
func TestIsCompatibleFilesystem_Fail_NoType(t *testing.T) {
	t.Parallel()

	cmdMock := mocks.NewCommandRunner(t)
	handler := resolverHandler(cmdMock, zfsParamFile(t, "1"))

	cmdMock.On("Run", "df", "-T", "--", mock.Anything).
		Return([]byte(nil), []byte("df: no mount table\n"), nil)

	_, err := handler.IsCompatibleFilesystem(t.TempDir())
	require.ErrorIs(t, err, ErrNoFilesystemType)

	cmdMock.AssertExpectations(t)
}

// TestIsCompatibleFilesystem_Symlink approves a symbolic link into a
// directory on a non-ZFS filesystem.
func TestIsCompatibleFilesystem_Symlink(t *testing.T) {
	t.Parallel()

	cmdMock := mocks.NewCommandRunner(t)
	handler := resolverHandler(cmdMock, zfsParamFile(t, "0"))

	dir := t.TempDir()
	target := filepath.Join(dir, "testfile.img")
	require.NoError(t, os.WriteFile(target, []byte("data"), 0o600))

	link := filepath.Join(dir, "test_symlink")
	require.NoError(t, os.Symlink(target, link))

	resolved, err := canonicalPath(target)
	require.NoError(t, err, "failed to canonicalize symlink target")

	cmdMock.On("Run", "df", "-T", "--", resolved).Return([]byte(dfOutputExt4), []byte(nil), nil)

	compatible, err := handler.IsCompatibleFilesystem(link)
	require.NoError(t, err, "unexpected error from IsCompatibleFilesystem")
	assert.True(t, compatible)

	cmdMock.AssertExpectations(t)
}

// TestResolveCompatibility_Verdict carries the full reasoning path in the
// verdict for a ZFS decision.
func TestResolveCompatibility_Verdict(t *testing.T) {
	t.Parallel()

	cmdMock := mocks.NewCommandRunner(t)
	handler := resolverHandler(cmdMock, zfsParamFile(t, "1\n"))

	cmdMock.On("Run", "df", "-T", "--", mock.Anything).Return([]byte(dfOutputZfs), []byte(nil), nil)

	verdict, err := handler.ResolveCompatibility(t.TempDir())
	require.NoError(t, err, "unexpected error from ResolveCompatibility")

	assert.True(t, verdict.Compatible)
	assert.Equal(t, "zfs", verdict.FilesystemType)
	assert.True(t, verdict.ZfsChecked)
	assert.True(t, verdict.ZfsParamEnabled)

	cmdMock.AssertExpectations(t)
}

// TestResolveCompatibility_VerdictNonZfs reports an unconditional approval
// without a ZFS check for other filesystem types.
func TestResolveCompatibility_VerdictNonZfs(t *testing.T) {
	t.Parallel()

	cmdMock := mocks.NewCommandRunner(t)
	handler := resolverHandler(cmdMock, zfsParamFile(t, "0"))

	cmdMock.On("Run", "df", "-T", "--", mock.Anything).Return([]byte(dfOutputExt4), []byte(nil), nil)

	verdict, err := handler.ResolveCompatibility(t.TempDir())
	require.NoError(t, err, "unexpected error from ResolveCompatibility")

	assert.True(t, verdict.Compatible)
	assert.Equal(t, "ext4", verdict.FilesystemType)
	assert.False(t, verdict.ZfsChecked)
	assert.False(t, verdict.ZfsParamEnabled)

	cmdMock.AssertExpectations(t)
}
