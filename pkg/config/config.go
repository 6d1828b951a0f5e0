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

package config

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/twpayne/go-vfs/v4"

	"github.com/rancher-sandbox/upgrade-toolkit/pkg/facts"
	v1 "github.com/rancher-sandbox/upgrade-toolkit/pkg/types/v1"
	"github.com/rancher-sandbox/upgrade-toolkit/pkg/version"
)

type GenericOptions func(c *v1.Config) error

func WithFs(fs vfs.FS) func(c *v1.Config) error {
	return func(c *v1.Config) error {
		c.Fs = fs
		return nil
	}
}

func WithLogger(logger v1.Logger) func(c *v1.Config) error {
	return func(c *v1.Config) error {
		c.Logger = logger
		return nil
	}
}

func WithFacts(src facts.Source) func(c *v1.Config) error {
	return func(c *v1.Config) error {
		c.Facts = src
		return nil
	}
}

func NewConfig(opts ...GenericOptions) *v1.Config {
	log := v1.NewLogger()

	c := &v1.Config{
		Fs:     vfs.OSFS,
		Logger: log,
	}
	for _, o := range opts {
		err := o(c)
		if err != nil {
			log.Errorf("error applying config option: %s", err.Error())
			return nil
		}
	}

	// delay facts source creation after we have run over the options in case we use WithFs
	if c.Facts == nil {
		c.Facts = facts.NewOSReleaseSource(c.Fs)
	}

	return c
}

func NewRunConfig(opts ...GenericOptions) *v1.RunConfig {
	config := NewConfig(opts...)

	r := &v1.RunConfig{
		Config:            *config,
		SupportedVersions: version.DefaultSupportedVersions(),
	}
	return r
}

// ValidateSupportedVersions checks every match list in the table, reporting
// all offending releases at once
func ValidateSupportedVersions(table version.ReleaseTable) error {
	var allErrors *multierror.Error
	for release, matchList := range table {
		if _, err := version.ParseSpec(matchList); err != nil {
			allErrors = multierror.Append(allErrors, fmt.Errorf("release '%s': %w", release, err))
		}
	}
	return allErrors.ErrorOrNil()
}

// MatchesSourceVersion checks if the configured upgrade source version
// matches the given criteria, see version.MatchesVersion for the match list
// forms
func MatchesSourceVersion(cfg *v1.RunConfig, matchList ...string) (bool, error) {
	return version.MatchesVersion(matchList, cfg.SourceVersion)
}

// MatchesTargetVersion checks if the configured upgrade target version
// matches the given criteria, see version.MatchesVersion for the match list
// forms
func MatchesTargetVersion(cfg *v1.RunConfig, matchList ...string) (bool, error) {
	return version.MatchesVersion(matchList, cfg.TargetVersion)
}
