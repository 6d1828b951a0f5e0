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

import "strings"

type SpecKind int

const (
	SpecInvalid SpecKind = iota
	SpecSimple
	SpecComparison
)

// Constraint pairs a comparator with the version it compares against
type Constraint struct {
	Op      Comparator
	Version Version
}

// MatchSpec is a classified match list. A simple spec keeps the literal
// version strings and matches if the detected version equals any of them
// (OR). A comparison spec keeps parsed constraints and matches if the
// detected version satisfies all of them (AND). The two forms cannot be
// mixed within one spec.
type MatchSpec struct {
	Kind        SpecKind
	Versions    []string
	Constraints []Constraint
}

// ClassifySpec determines which of the two grammars the given match list
// follows. Simple: every element is a single token. Comparison: every
// element splits into a comparator and a version token. Anything else,
// including a list mixing both forms, is SpecInvalid.
func ClassifySpec(matchList []string) SpecKind {
	if simpleVersions(matchList) {
		return SpecSimple
	}
	if cmpVersions(matchList) {
		return SpecComparison
	}
	return SpecInvalid
}

// ParseSpec classifies and validates matchList in a single step, so the
// "mixed forms are invalid" rule is enforced in one place only
func ParseSpec(matchList []string) (*MatchSpec, error) {
	switch ClassifySpec(matchList) {
	case SpecSimple:
		if err := ValidateVersions(matchList); err != nil {
			return nil, err
		}
		return &MatchSpec{Kind: SpecSimple, Versions: matchList}, nil
	case SpecComparison:
		versions := make([]string, 0, len(matchList))
		for _, m := range matchList {
			versions = append(versions, strings.Fields(m)[1])
		}
		if err := ValidateVersions(versions); err != nil {
			return nil, err
		}
		constraints := make([]Constraint, 0, len(matchList))
		for i, m := range matchList {
			op, _ := ParseComparator(strings.Fields(m)[0])
			ver, _ := ParseVersion(versions[i])
			constraints = append(constraints, Constraint{Op: op, Version: ver})
		}
		return &MatchSpec{Kind: SpecComparison, Constraints: constraints}, nil
	}
	return nil, newInvalidFormatError(
		"versions have to be a list of strings in the form "+
			"'['>'|'>='|'<'|'<='] <integer>.<integer>' or '<integer>.<integer>' "+
			"but provided was '%v'", matchList,
	)
}

// Matches evaluates the spec against the detected version. The raw string
// is compared literally for the simple form. A comparison spec without
// constraints is vacuously true.
func (s *MatchSpec) Matches(detected Version, raw string) bool {
	if s.Kind == SpecSimple {
		for _, v := range s.Versions {
			if v == raw {
				return true
			}
		}
		return false
	}

	for _, c := range s.Constraints {
		if !c.Op.Match(detected, c.Version) {
			return false
		}
	}
	return true
}

func simpleVersions(matchList []string) bool {
	for _, v := range matchList {
		if len(strings.Fields(v)) != 1 {
			return false
		}
	}
	return true
}

func cmpVersions(matchList []string) bool {
	for _, v := range matchList {
		split := strings.Fields(v)
		if len(split) != 2 || !isComparator(split[0]) {
			return false
		}
	}
	return true
}
