package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableArches(t *testing.T) {
	root := t.TempDir()
	assert.Empty(t, availableArches(root))

	writeTree(t, root, map[string]string{
		"makefiles/Makefile_x86_64":  "",
		"makefiles/Makefile_aarch64": "",
		"makefiles/README":           "",
	})
	assert.Equal(t, []string{"aarch64", "x86_64"}, availableArches(root))
}

func TestSnapshotRestore(t *testing.T) {
	root := t.TempDir()

	t.Run("existing file is rewritten", func(t *testing.T) {
		p := filepath.Join(root, "existing")
		require.NoError(t, os.WriteFile(p, []byte("before"), 0o644))

		snap, err := takeSnapshot(p)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(p, []byte("after"), 0o644))

		require.NoError(t, snap.restore())
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, "before", string(data))
	})

	t.Run("absent file is removed", func(t *testing.T) {
		p := filepath.Join(root, "absent")
		snap, err := takeSnapshot(p)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(p, []byte("new"), 0o644))

		require.NoError(t, snap.restore())
		_, err = os.Stat(p)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("directory is rejected", func(t *testing.T) {
		_, err := takeSnapshot(root)
		require.Error(t, err)
	})
}

func TestValidateArch(t *testing.T) {
	for _, arch := range []string{"x86_64", "aarch64", "riscv64", "i686-legacy"} {
		assert.NoError(t, validateArch(arch), arch)
	}
	for _, arch := range []string{"", "\t", "a/b", "..", "a..b", "$(ARCH)"} {
		assert.Error(t, validateArch(arch), arch)
	}
}
