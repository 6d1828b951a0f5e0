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

package config_test

import (
	"bytes"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"

	. "github.com/rancher-sandbox/upgrade-toolkit/cmd/config"

	conf "github.com/rancher-sandbox/upgrade-toolkit/pkg/config"
	v1 "github.com/rancher-sandbox/upgrade-toolkit/pkg/types/v1"
)

func TestConfigSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "CLI config test suite")
}

var _ = Describe("Config", Label("config", "cmd"), func() {
	AfterEach(func() {
		viper.Reset()
	})

	Context("From fixtures", func() {
		It("reads values correctly", func() {
			cfg, err := ReadConfigRun("fixtures/", conf.WithLogger(v1.NewNullLogger()))
			Expect(err).ShouldNot(HaveOccurred())

			Expect(cfg.SkipCheck).To(BeFalse())
			Expect(cfg.SourceVersion).To(Equal("7.6"))
			Expect(cfg.TargetVersion).To(Equal("8.0"))
			Expect(cfg.SupportedVersions["rhel"]).To(Equal([]string{"7.6", "7.7"}))
			Expect(cfg.SupportedVersions["sles"]).To(Equal([]string{">= 15.3", "< 15.5"}))
		})
		It("honors environment overrides", func() {
			Expect(os.Setenv("UPGRADE_TARGET_VERSION", "8.1")).To(Succeed())
			defer func() {
				_ = os.Unsetenv("UPGRADE_TARGET_VERSION")
			}()

			cfg, err := ReadConfigRun("fixtures/", conf.WithLogger(v1.NewNullLogger()))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(cfg.TargetVersion).To(Equal("8.1"))
		})
	})

	Describe("Logger setup", func() {
		It("sets the debug level when the debug flag is set", func() {
			viper.Set("debug", true)
			cfg, err := ReadConfigRun("fixtures/")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(v1.IsDebugLevel(cfg.Logger)).To(BeTrue())
		})
		It("discards output in quiet mode", func() {
			memLog := &bytes.Buffer{}
			viper.Set("quiet", true)
			cfg, err := ReadConfigRun("fixtures/", conf.WithLogger(v1.NewBufferLogger(memLog)))
			Expect(err).ShouldNot(HaveOccurred())

			cfg.Logger.Info("this should be dropped")
			Expect(memLog.String()).To(BeEmpty())
		})
	})
})
