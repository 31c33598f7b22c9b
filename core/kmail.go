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
	"strings"
)

// How kmail lays out a nested mail store on disk.
const (
	hiddenFilePrefix = "."
	// Sub-folders of a folder live in a sibling container directory ".<name>.directory".
	kmailContainerPrefix = "."
	kmailContainerSuffix = ".directory"
	// The folder that receives incoming mail, stored as ".inbox" directly under the root.
	kmailInboxName = "inbox"
	// Index files kept per folder, next to the folder itself.
	kmailIndexInfix = ".index"
)

// Function isKmailContainerName checks whether a directory name follows kmail's naming convention
// for the container directories that hold a folder's sub-folders. Prefix and suffix must both be
// present and must not overlap, so the bare suffix itself is no container name.
func isKmailContainerName(name string) bool {
	if len(name) < len(kmailContainerPrefix)+len(kmailContainerSuffix) {
		return false
	}
	return strings.HasPrefix(name, kmailContainerPrefix) &&
		strings.HasSuffix(name, kmailContainerSuffix)
}

// Function stripContainerDecoration extracts the folder name from a container directory name.
// Names that do not follow the container convention are returned unchanged.
func stripContainerDecoration(component string) string {
	if !isKmailContainerName(component) {
		return component
	}
	return component[len(kmailContainerPrefix) : len(component)-len(kmailContainerSuffix)]
}
