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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"

	upgradeError "github.com/rancher-sandbox/upgrade-toolkit/pkg/error"
)

var _ = Describe("Match", Label("match", "cmd"), func() {
	BeforeEach(func() {
		rootCmd = NewRootCmd()
		_ = NewMatchCmd(rootCmd)
	})
	AfterEach(func() {
		viper.Reset()
	})
	It("Matches a version against a simple list", func() {
		_, _, err := executeCommandC(rootCmd, "match", "--quiet", "7.6", "7.6", "7.7")
		Expect(err).To(BeNil())
	})
	It("Matches a version against comparison constraints", func() {
		_, _, err := executeCommandC(rootCmd, "match", "--quiet", "7.7", ">= 7.6", "< 7.8")
		Expect(err).To(BeNil())
	})
	It("Exits with the unsupported code when nothing matches", func() {
		_, _, err := executeCommandC(rootCmd, "match", "--quiet", "7.8", "7.6", "7.7")
		Expect(err).To(HaveOccurred())
		upgErr, ok := err.(*upgradeError.UpgradeError)
		Expect(ok).To(BeTrue())
		Expect(upgErr.ExitCode()).To(Equal(upgradeError.UnsupportedVersion))
	})
	It("Exits with the format code on mixed forms", func() {
		_, _, err := executeCommandC(rootCmd, "match", "--quiet", "7.6", "7.6", ">= 7.7")
		Expect(err).To(HaveOccurred())
		upgErr, ok := err.(*upgradeError.UpgradeError)
		Expect(ok).To(BeTrue())
		Expect(upgErr.ExitCode()).To(Equal(upgradeError.InvalidVersionFormat))
	})
	It("Exits with the format code on a malformed version", func() {
		_, _, err := executeCommandC(rootCmd, "match", "--quiet", "7.x", "7.6")
		Expect(err).To(HaveOccurred())
		upgErr, ok := err.(*upgradeError.UpgradeError)
		Expect(ok).To(BeTrue())
		Expect(upgErr.ExitCode()).To(Equal(upgradeError.InvalidVersionFormat))
	})
})
