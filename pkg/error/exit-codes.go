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

// provides a custom error interface and exit codes to use on the upgrade-toolkit cli
package error

//
// Provided exit codes for the upgrade-toolkit cli

// To make it easy to generate them you have to respect the structure:
//
// comment that explains the error
// const NamedConstant = ERRORCODE

// Error reading the run config
const ReadingRunConfig = 10

// The supported versions table failed validation
const InvalidSupportedVersions = 11

// No OS release facts could be gathered from the host
const NoOSFacts = 20

// A version string or match list has an invalid format
const InvalidVersionFormat = 21

// A matcher was called with invalid arguments
const InvalidArgument = 22

// The detected OS release or version is not supported for the upgrade
const UnsupportedVersion = 30

// Unknown error
const Unknown = 255
