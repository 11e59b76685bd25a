// Copyright 2023 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package semver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSatisfiesConcreteScenarios(t *testing.T) {
	tests := []struct {
		version string
		c       string
		want    bool
	}{
		{"1.2.3-pre", "<1.2.3", true},
		{"1.2.4-pre", ">1.2.3", true},
		{"1.2.3-pre", "=1.2.3", false},
		{"1.2.3+build", "=1.2.3", true},
		{"0.0.4", "^0.0.3", false},
		{"0.2.4", "^0.2.3", true},
		{"0.3.0", "^0.2.3", false},
		{"1.3.0", "^1.2.3", true},
		{"2.0.0", "^1.2.3", false},
		{"1.3.0", "~1.2.3", false},
		{"1.2.9", "~1.2.3", true},
		{"1.2.2", "1.2.2 || >1.2.3 <1.3.0", true},
		{"1.2.3", "1.2.2 || >1.2.3 <1.3.0", false},
		{"1.3.0", "1.2.2 || >1.2.3 <1.3.0", false},
		{"1.2.3-pre", "1.2.x", false},
		{"1.2.3-pre", "~1.2.0", false},
		{"1.2.3-pre", "^1.2.0", false},
		{"1.2.3-pre", "1.2.3 - 1.4.0", false},
		{"1.2.3-pre", ">=1.2.3-pre <1.3.0", true},
		{"1.2.3", "1.2.x", true},
		{"1.2.0", "1.2.x", true},
		{"1.3.0", "1.2.x", false},
	}
	for _, tc := range tests {
		t.Run(tc.version+" vs "+tc.c, func(t *testing.T) {
			v := MustParseVersion(tc.version)
			c := MustParseConstraint(tc.c)
			assert.Equal(t, tc.want, Satisfies(v, c))
		})
	}
}

func TestSatisfiesDisjunctionIsOrOfConjunctions(t *testing.T) {
	a := MustParseConstraint(">=1.0.0 <2.0.0")
	b := MustParseConstraint(">=3.0.0 <4.0.0")
	combined := MustParseConstraint(">=1.0.0 <2.0.0 || >=3.0.0 <4.0.0")

	versions := []string{"0.9.0", "1.5.0", "2.5.0", "3.5.0", "4.5.0"}
	for _, str := range versions {
		v := MustParseVersion(str)
		want := Satisfies(v, a) || Satisfies(v, b)
		assert.Equal(t, want, Satisfies(v, combined), str)
	}
}

func TestSatisfiesConjunctionIsAndOfAtoms(t *testing.T) {
	low := MustParseConstraint(">=1.0.0")
	high := MustParseConstraint("<2.0.0")
	combined := MustParseConstraint(">=1.0.0 <2.0.0")

	versions := []string{"0.5.0", "1.0.0", "1.5.0", "2.0.0", "2.5.0"}
	for _, str := range versions {
		v := MustParseVersion(str)
		want := Satisfies(v, low) && Satisfies(v, high)
		assert.Equal(t, want, Satisfies(v, combined), str)
	}
}

func TestSatisfiesAnyWildcardExcludesPreRelease(t *testing.T) {
	any := MustParseConstraint("x.x.x")
	assert.True(t, Satisfies(MustParseVersion("1.2.3"), any))
	assert.False(t, Satisfies(MustParseVersion("1.2.3-pre"), any))
}

func TestSatisfiesIsTotalOverWellFormedInputs(t *testing.T) {
	// Satisfies never panics and always returns a definite boolean for any
	// well-formed (Version, Constraint) pair; this is a sanity sweep, not
	// an exhaustive search.
	versions := []string{"0.0.0", "1.2.3", "1.2.3-alpha.1", "10.20.30+build"}
	constraints := []string{"*.*.*", "^1.0.0", "~1.2.0", "1.2.3 - 2.0.0", ">=1.0.0 <2.0.0 || ^3.0.0"}
	for _, vs := range versions {
		for _, cs := range constraints {
			assert.NotPanics(t, func() {
				Satisfies(MustParseVersion(vs), MustParseConstraint(cs))
			})
		}
	}
}
