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

import "fmt"

// InvalidFormatError reports a version string that does not follow the
// '<integer>.<integer>' grammar, or a match list that follows neither the
// simple nor the comparison grammar.
type InvalidFormatError struct {
	msg string
}

func (e *InvalidFormatError) Error() string {
	return e.msg
}

func newInvalidFormatError(format string, args ...interface{}) *InvalidFormatError {
	return &InvalidFormatError{msg: fmt.Sprintf(format, args...)}
}

// InvalidArgumentError reports an argument shape the matcher cannot work
// with, such as an absent match list.
type InvalidArgumentError struct {
	msg string
}

func (e *InvalidArgumentError) Error() string {
	return e.msg
}
