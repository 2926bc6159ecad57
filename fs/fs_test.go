package fs

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSecureFolderCreate(t *testing.T) {
	tmpPath := path.Join(t.TempDir(), "config")
	require.Equal(t, tmpPath, CreateSecureFolder(tmpPath))
	exists, err := Exists(tmpPath)
	require.NoError(t, err)
	require.True(t, exists)
}

func TestSecureFolderAlreadyHere(t *testing.T) {
	tmpPath := path.Join(t.TempDir(), "config")
	require.NoError(t, os.Mkdir(tmpPath, 0740))
	// chmod is not subject to the umask
	require.NoError(t, os.Chmod(tmpPath, 0740))
	require.Equal(t, tmpPath, CreateSecureFolder(tmpPath))
}

func TestSecureFolderAlreadyHereWrongPerm(t *testing.T) {
	tmpPath := path.Join(t.TempDir(), "config")
	require.NoError(t, os.Mkdir(tmpPath, 0700))
	require.NoError(t, os.Chmod(tmpPath, 0700))
	require.Equal(t, "", CreateSecureFolder(tmpPath))
}

func TestSecureFile(t *testing.T) {
	filePath := path.Join(t.TempDir(), "secret.private")
	fd, err := CreateSecureFile(filePath)
	require.NoError(t, err)
	defer fd.Close()

	info, err := os.Stat(filePath)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFilesAndFileExists(t *testing.T) {
	tmpPath := t.TempDir()
	for _, name := range []string{"a.toml", "b.toml"} {
		require.NoError(t, os.WriteFile(path.Join(tmpPath, name), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(path.Join(tmpPath, "sub"), 0755))

	files, err := Files(tmpPath)
	require.NoError(t, err)
	// directories are not listed
	require.Len(t, files, 2)

	require.True(t, FileExists(tmpPath, "a.toml"))
	require.False(t, FileExists(tmpPath, "missing.toml"))
}
