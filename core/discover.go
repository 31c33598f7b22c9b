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
	"strings"
)

// Function discoverContainers collects dir itself and, recursively, every kmail container
// directory below it. Kmail nests the containers, so every container found is searched for
// further containers in turn.
func discoverContainers(dir string) ([]string, error) {
	containers := []string{dir}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		fullPath := filepath.Join(dir, entry.Name())
		// Symlinked containers are followed, hence the stat-based check.
		if !isKmailContainerName(entry.Name()) || !isDir(fullPath) {
			continue
		}
		nested, err := discoverContainers(fullPath)
		if err != nil {
			return nil, err
		}
		containers = append(containers, nested...)
	}
	return containers, nil
}

// Function discoverMaildirs finds the folders that have to be moved, namely every non-hidden
// direct child of one of the containers that passes the maildir check. Hidden children are
// either kmail artefacts or folders that have already been flattened.
func discoverMaildirs(containers []string) ([]string, error) {
	maildirs := []string{}
	for _, container := range containers {
		entries, err := os.ReadDir(container)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if strings.HasPrefix(entry.Name(), hiddenFilePrefix) {
				continue
			}
			fullPath := filepath.Join(container, entry.Name())
			if !isDir(fullPath) || !isMaildir(fullPath) {
				continue
			}
			maildirs = append(maildirs, fullPath)
		}
	}
	logInfo(fmt.Sprintf("discovered %d folders in %d containers", len(maildirs), len(containers)))
	return maildirs, nil
}
