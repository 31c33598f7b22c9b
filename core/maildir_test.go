/* Convert from kmail's maildir variant to plain maildir++.
Copyright (C) 2024  Boris Wachtmeister

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Create the directories that make path a maildir.
func makeMaildir(t *testing.T, path string) {
	for _, dir := range []string{"cur", "new", "tmp"} {
		require.NoError(t, os.MkdirAll(filepath.Join(path, dir), 0755))
	}
}

func TestIsMaildirSuccess(t *testing.T) {
	tmpdir := t.TempDir()
	makeMaildir(t, filepath.Join(tmpdir, "folder"))

	check := isMaildir(filepath.Join(tmpdir, "folder"))

	assert.True(t, check)
}

func TestIsMaildirFailure(t *testing.T) {
	tmpdir := t.TempDir()

	// An empty directory does not contain any of the directories that make a maildir.
	check := isMaildir(tmpdir)

	assert.False(t, check)
}

func TestIsMaildirMissingSubdir(t *testing.T) {
	tmpdir := t.TempDir()
	folder := filepath.Join(tmpdir, "folder")
	makeMaildir(t, folder)
	require.NoError(t, os.Remove(filepath.Join(folder, "tmp")))

	check := isMaildir(folder)

	assert.False(t, check)
}

func TestIsMaildirSubdirIsFile(t *testing.T) {
	tmpdir := t.TempDir()
	folder := filepath.Join(tmpdir, "folder")
	makeMaildir(t, folder)
	require.NoError(t, os.Remove(filepath.Join(folder, "new")))
	require.NoError(t, os.WriteFile(filepath.Join(folder, "new"), []byte{}, 0644))

	check := isMaildir(folder)

	assert.False(t, check)
}
