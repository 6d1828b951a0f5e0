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
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	conf "github.com/rancher-sandbox/upgrade-toolkit/pkg/config"
	"github.com/rancher-sandbox/upgrade-toolkit/pkg/facts"
	v1mock "github.com/rancher-sandbox/upgrade-toolkit/pkg/mocks"
	v1 "github.com/rancher-sandbox/upgrade-toolkit/pkg/types/v1"
)

var _ = Describe("Status", Label("status", "cmd"), func() {
	var memLog *bytes.Buffer
	var src *v1mock.FakeFactsSource
	var cfg *v1.RunConfig

	BeforeEach(func() {
		memLog = &bytes.Buffer{}
		src = &v1mock.FakeFactsSource{Records: []facts.OSRelease{
			{ReleaseID: "rhel", VersionID: "7.6"},
		}}
		cfg = conf.NewRunConfig(
			conf.WithLogger(v1.NewBufferLogger(memLog)),
			conf.WithFacts(src),
		)
	})
	It("reports a supported release", func() {
		status, err := checkStatus(cfg)
		Expect(err).To(BeNil())
		Expect(status.Release).To(Equal("rhel"))
		Expect(status.Detected.String()).To(Equal("7.6"))
		Expect(status.Supported).To(BeTrue())
	})
	It("reports an unknown release as unsupported", func() {
		src.Records = []facts.OSRelease{{ReleaseID: "centos", VersionID: "7.6"}}
		status, err := checkStatus(cfg)
		Expect(err).To(BeNil())
		Expect(status.Supported).To(BeFalse())
	})
	It("consumes the facts source once and warns once on extra records", func() {
		src.Records = append(src.Records, facts.OSRelease{ReleaseID: "centos", VersionID: "7.4"})
		status, err := checkStatus(cfg)
		Expect(err).To(BeNil())
		Expect(status.Supported).To(BeTrue())
		Expect(src.ConsumeCalls).To(Equal(1))
		Expect(strings.Count(memLog.String(), "using the first one")).To(Equal(1))
	})
	It("propagates the no facts error", func() {
		src.Records = nil
		_, err := checkStatus(cfg)
		Expect(err).To(HaveOccurred())
	})
})
