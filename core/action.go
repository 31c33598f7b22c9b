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
	"fmt"
	"io"
	"os"
)

// Progress messages are product output and go to stdout, not to the log.
var stdout io.Writer = os.Stdout

// Interface mutatorOps provides the few filesystem mutations the conversion needs, plus the
// existence check the safety checks are made of. There are exactly two implementations, one
// backed by the os package and one that only simulates.
type mutatorOps interface {
	exists(path string) bool
	rename(src, dst string) error
	removeFile(path string) error
	removeDir(path string) error
}

type osMutator struct{}

func (osMutator) exists(path string) bool {
	return pathExists(path)
}

func (osMutator) rename(src, dst string) error {
	return os.Rename(src, dst)
}

func (osMutator) removeFile(path string) error {
	return os.Remove(path)
}

func (osMutator) removeDir(path string) error {
	// This fails on a non-empty directory, which is deliberate.
	return os.Remove(path)
}

// Type dryRunMutator simulates mutations. It remembers which paths have been virtually created
// and removed so that existence checks see the state the store would be in at this point of a
// real run. Checking only the untouched on-disk state would miss clashes between two folders
// that flatten to the same name.
type dryRunMutator struct {
	created map[string]bool
	removed map[string]bool
}

func newDryRunMutator() *dryRunMutator {
	return &dryRunMutator{
		created: map[string]bool{},
		removed: map[string]bool{},
	}
}

func (m *dryRunMutator) exists(path string) bool {
	if m.removed[path] {
		return false
	}
	if m.created[path] {
		return true
	}
	return pathExists(path)
}

func (m *dryRunMutator) rename(src, dst string) error {
	m.remove(src)
	delete(m.removed, dst)
	m.created[dst] = true
	return nil
}

func (m *dryRunMutator) removeFile(path string) error {
	m.remove(path)
	return nil
}

func (m *dryRunMutator) removeDir(path string) error {
	m.remove(path)
	return nil
}

func (m *dryRunMutator) remove(path string) {
	delete(m.created, path)
	m.removed[path] = true
}

// Interface fsActionOps is the gateway the conversion engine uses for everything that touches the
// filesystem. Implementations describe each operation with a one-line message and refuse to act
// when the operation could not succeed.
type fsActionOps interface {
	rename(src, dst string) error
	removeFile(path string) error
	removeDir(path string) error
}

// Type fsAction implements fsActionOps on top of a mutatorOps. The existence checks run against
// the mutator's view of the world, which makes them meaningful during simulated runs, too.
type fsAction struct {
	mutate mutatorOps
	quiet  bool
	out    io.Writer
}

func newFsAction(dryRun bool, quiet bool) fsAction {
	var mutate mutatorOps = osMutator{}
	if dryRun {
		mutate = newDryRunMutator()
	}
	return fsAction{mutate: mutate, quiet: quiet, out: stdout}
}

func (a fsAction) rename(src string, dst string) error {
	if a.mutate.exists(dst) {
		return fmt.Errorf("destination %s already exists", dst)
	}
	if !a.mutate.exists(src) {
		return fmt.Errorf("source %s does not exist", src)
	}
	return a.run(fmt.Sprintf("Moving %s -> %s", src, dst), func() error {
		return a.mutate.rename(src, dst)
	})
}

func (a fsAction) removeFile(path string) error {
	if !a.mutate.exists(path) {
		return fmt.Errorf("source %s does not exist", path)
	}
	return a.run(fmt.Sprintf("Removing file %s", path), func() error {
		return a.mutate.removeFile(path)
	})
}

func (a fsAction) removeDir(path string) error {
	if !a.mutate.exists(path) {
		return fmt.Errorf("source %s does not exist", path)
	}
	return a.run(fmt.Sprintf("Removing folder %s", path), func() error {
		return a.mutate.removeDir(path)
	})
}

func (a fsAction) run(message string, action func() error) error {
	if !a.quiet {
		fmt.Fprintln(a.out, message)
	}
	return action()
}
