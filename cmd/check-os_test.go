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
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"

	"github.com/rancher-sandbox/upgrade-toolkit/pkg/constants"
)

var _ = Describe("CheckOS", Label("check-os", "cmd"), func() {
	BeforeEach(func() {
		rootCmd = NewRootCmd()
		_ = NewCheckOSCmd(rootCmd)
		_ = NewStatusCmd(rootCmd)
	})
	AfterEach(func() {
		viper.Reset()
		_ = os.Unsetenv(constants.SkipCheckEnvVar)
	})
	It("Skips the check when the env override is set", func() {
		Expect(os.Setenv(constants.SkipCheckEnvVar, "1")).To(Succeed())
		_, _, err := executeCommandC(rootCmd, "check-os", "--quiet")
		Expect(err).To(BeNil())
	})
	It("Reports a skipped check in the status output", func() {
		Expect(os.Setenv(constants.SkipCheckEnvVar, "1")).To(Succeed())
		_, output, err := executeCommandC(rootCmd, "status", "--quiet")
		Expect(err).To(BeNil())
		Expect(output).To(ContainSubstring("skipped: true"))
		Expect(output).To(ContainSubstring("supported: true"))
	})
})
