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

func TestLensAccessorsRoundTrip(t *testing.T) {
	v := MustParseVersion("1.2.3-alpha.1+build.7")

	assert.Equal(t, uint64(1), v.Major())
	assert.Equal(t, uint64(2), v.Minor())
	assert.Equal(t, uint64(3), v.Patch())
	assert.Equal(t, []PreRelease{{str: "alpha"}, {numeric: true, num: 1, str: "1"}}, v.PreReleases())
	assert.Equal(t, []Build{{str: "build"}, {str: "7"}}, v.Builds())
}

func TestLensSettersDoNotMutateReceiver(t *testing.T) {
	v := MustParseVersion("1.2.3")

	withMajor := v.WithMajor(9)
	assert.Equal(t, uint64(1), v.Major(), "original must be unchanged")
	assert.Equal(t, uint64(9), withMajor.Major())

	withMinor := v.WithMinor(9)
	assert.Equal(t, uint64(2), v.Minor())
	assert.Equal(t, uint64(9), withMinor.Minor())

	withPatch := v.WithPatch(9)
	assert.Equal(t, uint64(3), v.Patch())
	assert.Equal(t, uint64(9), withPatch.Patch())

	pre := []PreRelease{MustParsePreRelease("rc"), MustParsePreRelease("1")}
	withPre := v.WithPreReleases(pre)
	assert.Empty(t, v.PreReleases())
	assert.Equal(t, pre, withPre.PreReleases())
}

func TestMakeVersionAndGetterCopySlices(t *testing.T) {
	pre := []PreRelease{{str: "alpha"}}
	v := MakeVersion(1, 0, 0, pre, nil)

	pre[0] = PreRelease{str: "mutated"}
	assert.Equal(t, "alpha", v.PreReleases()[0].String(), "MakeVersion must copy, not alias, its slice arguments")

	got := v.PreReleases()
	got[0] = PreRelease{str: "mutated-again"}
	assert.Equal(t, "alpha", v.PreReleases()[0].String(), "PreReleases must return a copy, not the internal slice")
}

func TestMakeVersion(t *testing.T) {
	v := MakeVersion(1, 2, 3, nil, nil)
	assert.Equal(t, "1.2.3", v.String())
}
