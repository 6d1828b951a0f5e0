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

package mocks

import (
	"github.com/rancher-sandbox/upgrade-toolkit/pkg/facts"
)

// FakeFactsSource is a facts source returning canned records for tests
type FakeFactsSource struct {
	Records []facts.OSRelease
	Err     error

	// ConsumeCalls counts how often the source was consumed
	ConsumeCalls int
}

func (f *FakeFactsSource) Consume() ([]facts.OSRelease, error) {
	f.ConsumeCalls++
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Records, nil
}
