/*
Copyright © 2022 - 2025 SUSE LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/rancher-sandbox/upgrade-toolkit/cmd/config"
	"github.com/rancher-sandbox/upgrade-toolkit/pkg/constants"
	upgradeError "github.com/rancher-sandbox/upgrade-toolkit/pkg/error"
	v1 "github.com/rancher-sandbox/upgrade-toolkit/pkg/types/v1"
	"github.com/rancher-sandbox/upgrade-toolkit/pkg/version"
)

// Status is the serializable outcome of an OS release check
type Status struct {
	Release   string          `yaml:"release,omitempty"`
	Detected  version.Version `yaml:"detected"`
	Supported bool            `yaml:"supported"`
	Skipped   bool            `yaml:"skipped,omitempty"`
}

// NewStatusCmd returns a new instance of the status subcommand and appends it to
// the root command.
func NewStatusCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "status",
		Short: "Print the OS release check outcome as yaml",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ReadConfigRun(viper.GetString("config-dir"))
			if err != nil {
				cfg.Logger.Errorf("Error reading config: %s\n", err)
				return upgradeError.NewFromError(err, upgradeError.ReadingRunConfig)
			}

			cmd.SilenceUsage = true
			cmd.SilenceErrors = true // Do not propagate errors down the line, we control them

			status, err := checkStatus(cfg)
			if err != nil {
				cfg.Logger.Errorf("Could not check OS version: %s", err.Error())
				return upgradeError.NewFromError(err, matcherExitCode(err))
			}

			out, err := yaml.Marshal(status)
			if err != nil {
				return upgradeError.NewFromError(err, upgradeError.Unknown)
			}
			fmt.Print(string(out))
			return nil
		},
	}
	root.AddCommand(c)
	return c
}

// checkStatus computes the OS release check outcome for the given config.
// The facts source is consumed once, the support decision is derived from
// the record already fetched.
func checkStatus(cfg *v1.RunConfig) (Status, error) {
	status := Status{
		Skipped: cfg.SkipCheck || os.Getenv(constants.SkipCheckEnvVar) != "",
	}
	if status.Skipped {
		status.Supported = true
		return status, nil
	}

	releaseID, versionID, err := version.CurrentVersion(cfg.Facts, cfg.Logger)
	if err != nil {
		return status, err
	}
	detected, err := version.ParseVersion(versionID)
	if err != nil {
		return status, err
	}
	status.Release = releaseID
	status.Detected = detected

	if version.MatchesRelease(cfg.SupportedVersions, releaseID) {
		supported, err := version.MatchesVersion(cfg.SupportedVersions[releaseID], versionID)
		if err != nil {
			return status, err
		}
		status.Supported = supported
	}
	return status, nil
}

// register the subcommand into rootCmd
var _ = NewStatusCmd(rootCmd)
