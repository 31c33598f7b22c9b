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
	"os"
	"path/filepath"
	"sort"
)

// Type migration is one pass over one mail store, real or simulated depending on the gateway it
// drives.
type migration struct {
	cfg Config
	fs  fsActionOps
}

func newMigration(cfg Config, fs fsActionOps) migration {
	return migration{cfg: cfg, fs: fs}
}

// Function discoverFolders finds every mail folder that has to be moved and sorts them by their
// flattened paths in descending order. That order processes a folder before the folder it is
// nested in, so no rename ever moves a container out from under folders still waiting inside it.
func (m migration) discoverFolders() ([]kmailFolder, error) {
	containers, err := discoverContainers(m.cfg.Folder)
	if err != nil {
		return nil, err
	}
	dirs, err := discoverMaildirs(containers)
	if err != nil {
		return nil, err
	}
	folders := make([]kmailFolder, 0, len(dirs))
	for _, dir := range dirs {
		folder, err := newKmailFolder(m.cfg, dir)
		if err != nil {
			return nil, err
		}
		folders = append(folders, folder)
	}
	sort.Slice(folders, func(i, j int) bool {
		return folders[i].folderPath(m.cfg) > folders[j].folderPath(m.cfg)
	})
	return folders, nil
}

func (m migration) moveFolder(folder kmailFolder) error {
	if err := m.fs.rename(folder.dir, folder.folderPath(m.cfg)); err != nil {
		return err
	}
	if m.cfg.RemoveIndexFiles {
		if err := m.removeIndexFiles(folder); err != nil {
			return err
		}
	}
	// The container can only become empty if the index files were removed, too. The emptiness
	// check deliberately looks at the filesystem and not at any simulated state, a simulated run
	// thus skips the removal just like the real run would at this point.
	parent, ok := folder.parentContainer()
	if !ok {
		return nil
	}
	empty, err := isEmptyDir(parent)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}
	return m.fs.removeDir(parent)
}

// Function removeIndexFiles deletes the index files kmail keeps for the folder beside its
// original location. Folder names are matched literally, but one folder's pattern can still match
// another folder's index files when the names overlap ("Projects" beside "Projects.indexFoo");
// the validation pass then aborts such a store untouched even though the real sequence would
// succeed.
func (m migration) removeIndexFiles(folder kmailFolder) error {
	dir, pattern := folder.indexPattern()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		matched, err := filepath.Match(pattern, entry.Name())
		if err != nil {
			return err
		}
		if !matched {
			continue
		}
		if err := m.fs.removeFile(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// Function relocateInbox moves the content of kmail's inbox folder to the store root. Kmail
// treats the inbox as just another folder while maildir++ keeps the inbox's cur, new and tmp
// directly in the root. This has to run after all other folders were moved.
func (m migration) relocateInbox() error {
	inbox := filepath.Join(m.cfg.Folder, hiddenFilePrefix+kmailInboxName)
	for _, dir := range maildirSpecialDirs {
		src := filepath.Join(inbox, dir)
		dst := filepath.Join(m.cfg.Folder, dir)
		if err := m.fs.rename(src, dst); err != nil {
			return err
		}
	}
	return m.fs.removeDir(inbox)
}

func (m migration) run() error {
	folders, err := m.discoverFolders()
	if err != nil {
		return err
	}
	for _, folder := range folders {
		if err := m.moveFolder(folder); err != nil {
			return err
		}
	}
	return m.relocateInbox()
}

// Convert moves every mail folder in the store described by cfg from kmail's nested layout to
// its flattened maildir++ location and relocates the inbox to the store root. Unless the run is
// a dry run anyway, a silent simulated pass validates every single operation first so that a
// store that cannot be converted cleanly is left untouched.
func Convert(cfg Config) error {
	if !cfg.DryRun {
		fmt.Fprintln(stdout, "Checking if everything should work")
		trial := newMigration(cfg, newFsAction(true, true))
		if err := trial.run(); err != nil {
			return fmt.Errorf("conversion would fail, no changes were made: %s", err.Error())
		}
	}
	m := newMigration(cfg, newFsAction(cfg.DryRun, false))
	if err := m.run(); err != nil {
		if !cfg.DryRun {
			// The validation pass was fine, so the store was modified concurrently after all.
			logError(fmt.Sprintf("the mail store may be partially converted: %s", err.Error()))
		}
		return err
	}
	return nil
}
