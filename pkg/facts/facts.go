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

package facts

// OSRelease carries the identity of a running OS as declared by its
// os-release data
type OSRelease struct {
	ReleaseID string `yaml:"release-id,omitempty" mapstructure:"release-id"`
	VersionID string `yaml:"version-id,omitempty" mapstructure:"version-id"`
}

// Source supplies OS release records. Implementations are expected to be
// idempotent and side effect free, callers may consume them repeatedly.
type Source interface {
	Consume() ([]OSRelease, error)
}

// NoFactsError reports that a facts source yielded no OS release records at
// all. Callers treat this as fatal for the upgrade workflow.
type NoFactsError struct{}

func (e *NoFactsError) Error() string {
	return "could not check OS version: no OS release facts found"
}
