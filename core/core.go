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

// Package core provides central functionality for converting mail stores from kmail's nested
// maildir layout to the flat maildir++ layout used by dovecot.
package core

// Config describes a single conversion run of a kmail mail store.
type Config struct {
	// Folder is the root directory of the mail store that shall be converted.
	Folder string
	// HierarchySeparator joins the folder levels in flattened maildir++ names.
	HierarchySeparator string
	// RemoveIndexFiles requests removal of kmail's index files for each moved folder.
	RemoveIndexFiles bool
	// DryRun causes every operation to be printed instead of executed.
	DryRun bool
}
