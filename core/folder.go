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
	"path/filepath"
	"strings"
)

// Type kmailFolder describes one mail folder found in a kmail store. The name is the plain folder
// name, dir the directory the folder currently occupies, and segments the names of all folder
// levels from the store root down to the folder itself, each with its container decoration
// stripped. A folder is never modified after construction.
type kmailFolder struct {
	name     string
	dir      string
	segments []string
}

func newKmailFolder(cfg Config, dir string) (kmailFolder, error) {
	rel, err := filepath.Rel(cfg.Folder, dir)
	if err != nil {
		return kmailFolder{}, err
	}
	components := strings.Split(rel, string(filepath.Separator))
	segments := make([]string, 0, len(components))
	for _, component := range components {
		segments = append(segments, stripContainerDecoration(component))
	}
	folder := kmailFolder{
		name:     filepath.Base(dir),
		dir:      dir,
		segments: segments,
	}
	return folder, nil
}

// Function folderPath computes the flattened maildir++ path this folder shall be moved to, a
// hidden directory directly below the store root.
func (f kmailFolder) folderPath(cfg Config) string {
	name := hiddenFilePrefix + strings.Join(f.segments, cfg.HierarchySeparator)
	return filepath.Join(cfg.Folder, name)
}

// Function parentContainer returns the container directory the folder currently sits in. The
// second return value is false for folders directly below the store root since the root itself
// must never be pruned.
func (f kmailFolder) parentContainer() (string, bool) {
	if len(f.segments) == 1 {
		return "", false
	}
	return filepath.Dir(f.dir), true
}

// Function escapeGlobMeta quotes glob metacharacters so a folder name only matches itself in a
// pattern. filepath.Match would otherwise interpret them, or reject the whole pattern for a lone
// "[".
func escapeGlobMeta(name string) string {
	escaped := strings.Builder{}
	for _, char := range name {
		switch char {
		case '*', '?', '[':
			escaped.WriteString("[" + string(char) + "]")
		case '\\':
			escaped.WriteString(`[\\]`)
		default:
			escaped.WriteRune(char)
		}
	}
	return escaped.String()
}

// Function indexPattern returns the directory holding the index files kmail keeps for this folder
// and the basename pattern matching them. The folder name is quoted so that glob metacharacters
// in folder names match themselves.
func (f kmailFolder) indexPattern() (string, string) {
	pattern := hiddenFilePrefix + escapeGlobMeta(f.name) + kmailIndexInfix + "*"
	return filepath.Dir(f.dir), pattern
}
