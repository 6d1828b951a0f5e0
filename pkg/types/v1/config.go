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

package v1

import (
	"github.com/twpayne/go-vfs/v4"

	"github.com/rancher-sandbox/upgrade-toolkit/pkg/facts"
)

// Config holds the collaborators shared by all commands
type Config struct {
	Logger Logger       `yaml:"-" mapstructure:"-"`
	Fs     vfs.FS       `yaml:"-" mapstructure:"-"`
	Facts  facts.Source `yaml:"-" mapstructure:"-"`
}

// RunConfig is the runtime configuration of an upgrade check run
type RunConfig struct {
	Config `yaml:"-" mapstructure:",squash"`

	// SkipCheck bypasses the OS release check entirely
	SkipCheck bool `yaml:"skip-check,omitempty" mapstructure:"skip-check"`

	// SourceVersion and TargetVersion describe the configured upgrade path
	SourceVersion string `yaml:"source-version,omitempty" mapstructure:"source-version"`
	TargetVersion string `yaml:"target-version,omitempty" mapstructure:"target-version"`

	// SupportedVersions maps release identifiers to the match list of
	// versions the upgrade may start from
	SupportedVersions map[string][]string `yaml:"supported-versions,omitempty" mapstructure:"supported-versions"`
}
