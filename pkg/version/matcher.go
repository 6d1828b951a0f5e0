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
	"github.com/rancher-sandbox/upgrade-toolkit/pkg/facts"
	v1 "github.com/rancher-sandbox/upgrade-toolkit/pkg/types/v1"
)

// ReleaseTable maps a release identifier (e.g. "rhel") to the match list of
// supported versions for that release, expressed in the simple form.
type ReleaseTable map[string][]string

// DefaultSupportedVersions returns the releases and versions this toolkit
// supports upgrading from
func DefaultSupportedVersions() ReleaseTable {
	return ReleaseTable{"rhel": {"7.6"}}
}

// MatchesVersion checks if the detected version meets the criteria specified
// in matchList. The match list follows one of two forms: a list of
// "['>'|'>='|'<'|'<='] <integer>.<integer>" elements which are ANDed, so
// [">= 7.6", "< 7.8"] matches "7.6" and "7.7" only, or a list of
// "<integer>.<integer>" elements which are ORed, so ["7.6", "7.7"] matches
// "7.6" and "7.7" only. Mixing the two forms raises an InvalidFormatError.
// An absent match list raises an InvalidArgumentError.
func MatchesVersion(matchList []string, detected string) (bool, error) {
	if matchList == nil {
		return false, &InvalidArgumentError{
			msg: "versions to check against have to be a non-empty list of strings",
		}
	}
	if err := checkFormat(detected); err != nil {
		return false, err
	}

	spec, err := ParseSpec(matchList)
	if err != nil {
		return false, err
	}

	detectedVer, err := ParseVersion(detected)
	if err != nil {
		return false, err
	}
	return spec.Matches(detectedVer, detected), nil
}

// MatchesRelease checks if the given release is one of allowedReleases. An
// empty release or an empty table is simply no match, never an error.
func MatchesRelease(allowedReleases ReleaseTable, release string) bool {
	if release == "" || len(allowedReleases) == 0 {
		return false
	}
	_, ok := allowedReleases[release]
	return ok
}

// CurrentVersion returns the release and version of the system as reported
// by the facts source. Receiving more than one record is unexpected but
// recoverable, the first one wins. Receiving none is fatal.
func CurrentVersion(src facts.Source, logger v1.Logger) (string, string, error) {
	records, err := src.Consume()
	if err != nil {
		return "", "", err
	}
	if len(records) == 0 {
		return "", "", &facts.NoFactsError{}
	}
	if len(records) > 1 {
		logger.Warnf("unexpectedly received %d OS release facts, using the first one", len(records))
	}
	return records[0].ReleaseID, records[0].VersionID, nil
}

// IsSupportedVersion verifies the current system version is supported for
// the upgrade. skipCheck bypasses the whole check.
func IsSupportedVersion(src facts.Source, logger v1.Logger, table ReleaseTable, skipCheck bool) (bool, error) {
	if skipCheck {
		logger.Debug("skipping OS release check")
		return true, nil
	}

	releaseID, versionID, err := CurrentVersion(src, logger)
	if err != nil {
		return false, err
	}

	if !MatchesRelease(table, releaseID) {
		return false, nil
	}

	return MatchesVersion(table[releaseID], versionID)
}
