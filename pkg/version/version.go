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

package version

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Version is an OS release version expressed as a major.minor pair of
// non-negative integers. Only plain integer pairs are supported, nothing
// resembling full semantic versioning.
type Version struct {
	Major int
	Minor int
}

// ParseVersion converts the string "<major>.<minor>" to a Version
func ParseVersion(version string) (Version, error) {
	if err := checkFormat(version); err != nil {
		return Version{}, err
	}

	// checkFormat guarantees digit-only components, Atoi can only fail
	// here when a component does not fit the int range
	split := strings.Split(version, ".")
	major, err := strconv.Atoi(split[0])
	if err != nil {
		return Version{}, newInvalidFormatError("version component '%s' is out of range in '%s'", split[0], version)
	}
	minor, err := strconv.Atoi(split[1])
	if err != nil {
		return Version{}, newInvalidFormatError("version component '%s' is out of range in '%s'", split[1], version)
	}
	return Version{Major: major, Minor: minor}, nil
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compare returns -1, 0 or 1 if v is lower, equal or greater than other
func (v Version) Compare(other Version) int {
	switch {
	case v.Major != other.Major:
		if v.Major < other.Major {
			return -1
		}
		return 1
	case v.Minor != other.Minor:
		if v.Minor < other.Minor {
			return -1
		}
		return 1
	}
	return 0
}

func (v Version) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}

func (v *Version) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseVersion(value.Value)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ValidateVersions checks all the given versions are strings in the form
// '<integer>.<integer>'. This is a format check only, nothing is parsed.
func ValidateVersions(versions []string) error {
	for _, ver := range versions {
		if err := checkFormat(ver); err != nil {
			return err
		}
	}
	return nil
}

func checkFormat(version string) error {
	split := strings.Split(version, ".")
	if len(split) != 2 || !allDigits(split[0]) || !allDigits(split[1]) {
		return newInvalidFormatError(
			"versions have to be in the form of '<integer>.<integer>' but provided was '%s'", version,
		)
	}
	return nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
