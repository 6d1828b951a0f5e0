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
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rancher-sandbox/upgrade-toolkit/cmd/config"
	conf "github.com/rancher-sandbox/upgrade-toolkit/pkg/config"
	"github.com/rancher-sandbox/upgrade-toolkit/pkg/constants"
	upgradeError "github.com/rancher-sandbox/upgrade-toolkit/pkg/error"
	"github.com/rancher-sandbox/upgrade-toolkit/pkg/facts"
	"github.com/rancher-sandbox/upgrade-toolkit/pkg/version"
)

// NewCheckOSCmd returns a new instance of the check-os subcommand and appends it to
// the root command.
func NewCheckOSCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "check-os",
		Short: "Check the host OS release against the supported upgrade versions",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ReadConfigRun(viper.GetString("config-dir"))
			if err != nil {
				cfg.Logger.Errorf("Error reading config: %s\n", err)
				return upgradeError.NewFromError(err, upgradeError.ReadingRunConfig)
			}

			cmd.SilenceUsage = true
			cmd.SilenceErrors = true // Do not propagate errors down the line, we control them

			if err := conf.ValidateSupportedVersions(cfg.SupportedVersions); err != nil {
				cfg.Logger.Errorf("Invalid supported versions table: %s", err.Error())
				return upgradeError.NewFromError(err, upgradeError.InvalidSupportedVersions)
			}

			skip := cfg.SkipCheck || os.Getenv(constants.SkipCheckEnvVar) != ""
			supported, err := version.IsSupportedVersion(cfg.Facts, cfg.Logger, cfg.SupportedVersions, skip)
			if err != nil {
				cfg.Logger.Errorf("Could not check OS version: %s", err.Error())
				return upgradeError.NewFromError(err, matcherExitCode(err))
			}

			if !supported {
				cfg.Logger.Error("Upgrade from the current OS release is not supported")
				return upgradeError.New("unsupported OS release", upgradeError.UnsupportedVersion)
			}

			cfg.Logger.Info("Current OS release is supported for the upgrade")
			return nil
		},
	}
	root.AddCommand(c)
	return c
}

func matcherExitCode(err error) int {
	var noFactsErr *facts.NoFactsError
	var formatErr *version.InvalidFormatError
	var argErr *version.InvalidArgumentError

	switch {
	case errors.As(err, &noFactsErr):
		return upgradeError.NoOSFacts
	case errors.As(err, &formatErr):
		return upgradeError.InvalidVersionFormat
	case errors.As(err, &argErr):
		return upgradeError.InvalidArgument
	}
	return upgradeError.Unknown
}

// register the subcommand into rootCmd
var _ = NewCheckOSCmd(rootCmd)
