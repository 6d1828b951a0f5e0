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
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rancher-sandbox/upgrade-toolkit/cmd/config"
	upgradeError "github.com/rancher-sandbox/upgrade-toolkit/pkg/error"
	"github.com/rancher-sandbox/upgrade-toolkit/pkg/version"
)

// NewMatchCmd returns a new instance of the match subcommand and appends it to
// the root command.
func NewMatchCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "match VERSION MATCH...",
		Short: "Check a version against a match specification",
		Long: "Check VERSION against the given match specification. The specification is either\n" +
			"a list of plain '<integer>.<integer>' versions, matching when VERSION equals any\n" +
			"of them, or a list of \"['>'|'>='|'<'|'<='] <integer>.<integer>\" constraints,\n" +
			"matching when VERSION satisfies all of them. The two forms cannot be mixed.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ReadConfigRun(viper.GetString("config-dir"))
			if err != nil {
				cfg.Logger.Errorf("Error reading config: %s\n", err)
				return upgradeError.NewFromError(err, upgradeError.ReadingRunConfig)
			}

			cmd.SilenceUsage = true
			cmd.SilenceErrors = true // Do not propagate errors down the line, we control them

			matched, err := version.MatchesVersion(args[1:], args[0])
			if err != nil {
				cfg.Logger.Errorf("Could not match version: %s", err.Error())
				return upgradeError.NewFromError(err, matcherExitCode(err))
			}

			if !matched {
				cfg.Logger.Infof("version %s does not match the specification", args[0])
				return upgradeError.New("no match", upgradeError.UnsupportedVersion)
			}

			cfg.Logger.Infof("version %s matches the specification", args[0])
			return nil
		},
	}
	root.AddCommand(c)
	return c
}

// register the subcommand into rootCmd
var _ = NewMatchCmd(rootCmd)
