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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Boris-de/kmail2maildir/core"
	"github.com/spf13/cobra"
)

const (
	defaultHierarchySeparator = "."
	lockTimeout               = 30 * time.Second
)

var rootConf rootConfigT

type rootConfigT struct {
	folder             string
	dryRun             bool
	removeIndexFiles   bool
	hierarchySeparator string
	verbose            bool
	configFile         string
}

const (
	shortRootHelp = "Convert from kmail's maildir variant to plain maildir++."
	layoutHelp    = "" +
		"Kmail nests the sub-folders of a mail folder inside hidden \".<name>.directory\"\n" +
		"containers. Maildir++ as used by dovecot keeps the whole hierarchy as flat\n" +
		"sibling directories directly below the mail store's root instead, for example\n" +
		"\".Archive.Projects\". This tool moves every folder of a kmail mail store to its\n" +
		"maildir++ location, moves the inbox's cur, new and tmp directories into the\n" +
		"store's root, and can remove kmail's index files along the way.\n\n" +
		"Every run validates all operations in a silent dry run first. A store that\n" +
		"cannot be converted cleanly is left untouched. No other program may modify the\n" +
		"store while the conversion runs."
)

func getRootCmd(rootConf *rootConfigT, ops coreOps, lock lockFn) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "kmail2maildir <folder>",
		Long:          shortRootHelp + "\n\n" + layoutHelp,
		Short:         shortRootHelp,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rootConf.folder = args[0]
			if err := applyConfigFile(cmd, rootConf); err != nil {
				return err
			}
			core.SetVerboseLogs(rootConf.verbose)

			if !isDir(rootConf.folder) {
				return fmt.Errorf("given folder %s does not point to a directory", rootConf.folder)
			}
			cfg := core.Config{
				Folder:             rootConf.folder,
				HierarchySeparator: rootConf.hierarchySeparator,
				RemoveIndexFiles:   rootConf.removeIndexFiles,
				DryRun:             rootConf.dryRun,
			}

			if !rootConf.dryRun {
				unlock, err := lock(filepath.Join(rootConf.folder, lockfileName), lockTimeout)
				if err != nil {
					return err
				}
				defer unlock()
			}

			return ops.convert(cfg)
		},
	}
	return cmd
}

var rootCmd = getRootCmd(&rootConf, corer{}, lock)

func init() {
	initRootFlags(rootCmd, &rootConf)
}

func initRootFlags(rootCmd *cobra.Command, rootConf *rootConfigT) {
	flags := rootCmd.Flags()

	flags.BoolVar(
		&rootConf.dryRun, "dry-run", false,
		"only print what would be done, don't change anything yet",
	)
	flags.BoolVar(
		&rootConf.removeIndexFiles, "remove-index-files", false,
		"remove kmail's index files",
	)
	// Courierimap's maildir++ documentation is vague about this separator. It uses ':', but only
	// as an example. Dovecot uses '.' which is the default here.
	flags.StringVar(
		&rootConf.hierarchySeparator, "hierarchy-separator", defaultHierarchySeparator,
		"separator that should be used for maildir++ subfolders",
	)
	flags.BoolVarP(&rootConf.verbose, "verbose", "v", false, "verbose output")
	flags.StringVarP(
		&rootConf.configFile, "config", "c", "",
		"config file overriding the default lookup locations",
	)
}

func isDir(path string) bool {
	stat, err := os.Stat(path)
	if err != nil {
		return false
	}
	return stat.IsDir()
}
