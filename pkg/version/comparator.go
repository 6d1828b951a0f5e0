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

const (
	GT Comparator = ">"
	GE Comparator = ">="
	LT Comparator = "<"
	LE Comparator = "<="
)

// Comparator is one of the four ordering operators a comparison form match
// list may use.
type Comparator string

func ParseComparator(op string) (Comparator, error) {
	switch op {
	case string(GT):
		return GT, nil
	case string(GE):
		return GE, nil
	case string(LT):
		return LT, nil
	case string(LE):
		return LE, nil
	}
	return "", newInvalidFormatError("unknown comparison operator '%s'", op)
}

// Match applies the comparator with the detected version on the left hand
// side, so GT.Match(a, b) reads as "a > b".
func (c Comparator) Match(detected, constraint Version) bool {
	cmp := detected.Compare(constraint)
	switch c {
	case GT:
		return cmp > 0
	case GE:
		return cmp >= 0
	case LT:
		return cmp < 0
	case LE:
		return cmp <= 0
	}
	return false
}

func isComparator(op string) bool {
	_, err := ParseComparator(op)
	return err == nil
}
