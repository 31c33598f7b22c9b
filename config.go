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

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

const (
	configDirName  = "kmail2maildir"
	configFileName = "config.yaml"
	cwdConfigName  = "kmail2maildir.yaml"
)

// Type configFileT holds the few settings that can be provided via an optional config file
// instead of flags. Pointer members distinguish absent keys from explicit zero values.
type configFileT struct {
	HierarchySeparator *string `yaml:"hierarchy-separator"`
	RemoveIndexFiles   *bool   `yaml:"remove-index-files"`
	Verbose            *bool   `yaml:"verbose"`
}

// Find the config file by searching some paths. An explicitly provided path always wins. By
// default, the file in XDG_CONFIG_HOME/kmail2maildir/config.yaml is being used. If that file
// cannot be found, try to use a file kmail2maildir.yaml in the current directory. If neither can
// be found, do not use a config file.
func findConfigFile(explicit string) string {
	if len(explicit) != 0 {
		return explicit
	}
	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if len(xdgConfigHome) == 0 {
		xdgConfigHome = filepath.Join(os.Getenv("HOME"), ".config")
	}
	cfgInHome := filepath.Join(xdgConfigHome, configDirName, configFileName)
	if isFile(cfgInHome) {
		return cfgInHome
	}
	cwd, err := os.Getwd()
	cfgInCWD := filepath.Join(cwd, cwdConfigName)
	if err == nil && isFile(cfgInCWD) {
		return cfgInCWD
	}
	return ""
}

// Function applyConfigFile merges values from the config file, if any, into the root config.
// Flags given on the command line always win over the file's values.
func applyConfigFile(cmd *cobra.Command, rootConf *rootConfigT) error {
	path := findConfigFile(rootConf.configFile)
	if len(path) == 0 {
		return nil
	}
	content, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return fmt.Errorf("cannot read config file %s: %s", path, err.Error())
	}
	var fileConf configFileT
	if err := yaml.UnmarshalStrict(content, &fileConf); err != nil {
		return fmt.Errorf("cannot parse config file %s: %s", path, err.Error())
	}

	flags := cmd.Flags()
	if fileConf.HierarchySeparator != nil && !flags.Changed("hierarchy-separator") {
		rootConf.hierarchySeparator = *fileConf.HierarchySeparator
	}
	if fileConf.RemoveIndexFiles != nil && !flags.Changed("remove-index-files") {
		rootConf.removeIndexFiles = *fileConf.RemoveIndexFiles
	}
	if fileConf.Verbose != nil && !flags.Changed("verbose") {
		rootConf.verbose = *fileConf.Verbose
	}
	return nil
}

func isFile(path string) bool {
	stat, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !stat.IsDir()
}
