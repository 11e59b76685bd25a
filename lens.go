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

// This file collects the get/update accessor pairs for Version's fields
// (a "lens" in the functional-programming sense: a pure read/replace pair,
// no shared-state semantics) along with the constructors, predicates, and
// bumpers built on top of them. Every With* method returns a new Version;
// none mutate the receiver.

// InitialVersion returns 0.0.0 with no pre-release and no build tag.
func InitialVersion() Version {
	return Version{}
}

// MakeVersion constructs a Version directly from its fields. Callers are
// responsible for providing already-validated identifiers; MakeVersion
// performs no grammar checking of its own. The pre and build slices are
// copied, not aliased, so the constructed Version stays immutable even if
// the caller later mutates what it passed in.
func MakeVersion(major, minor, patch uint64, pre []PreRelease, build []Build) Version {
	return Version{
		major: major,
		minor: minor,
		patch: patch,
		pre:   append([]PreRelease(nil), pre...),
		build: append([]Build(nil), build...),
	}
}

// Major returns v's major version component.
func (v Version) Major() uint64 { return v.major }

// WithMajor returns a copy of v with the major component replaced.
func (v Version) WithMajor(major uint64) Version {
	v.major = major
	return v
}

// Minor returns v's minor version component.
func (v Version) Minor() uint64 { return v.minor }

// WithMinor returns a copy of v with the minor component replaced.
func (v Version) WithMinor(minor uint64) Version {
	v.minor = minor
	return v
}

// Patch returns v's patch version component.
func (v Version) Patch() uint64 { return v.patch }

// WithPatch returns a copy of v with the patch component replaced.
func (v Version) WithPatch(patch uint64) Version {
	v.patch = patch
	return v
}

// PreReleases returns v's pre-release identifier sequence. The returned
// slice is owned by the caller; it is a copy of v's internal slice.
func (v Version) PreReleases() []PreRelease {
	return append([]PreRelease(nil), v.pre...)
}

// WithPreReleases returns a copy of v with the pre-release sequence
// replaced.
func (v Version) WithPreReleases(pre []PreRelease) Version {
	v.pre = append([]PreRelease(nil), pre...)
	return v
}

// Builds returns v's build identifier sequence. The returned slice is
// owned by the caller; it is a copy of v's internal slice.
func (v Version) Builds() []Build {
	return append([]Build(nil), v.build...)
}

// WithBuilds returns a copy of v with the build sequence replaced.
func (v Version) WithBuilds(build []Build) Version {
	v.build = append([]Build(nil), build...)
	return v
}

// IsUnstable reports whether v has a zero major version (major == 0),
// meaning it may change incompatibly at any time per SemVer §4.
func (v Version) IsUnstable() bool { return v.major == 0 }

// IsStable is the negation of IsUnstable.
func (v Version) IsStable() bool { return v.major != 0 }

// BumpMajor increments the major version, zeros minor and patch, and
// clears any pre-release and build tags.
func (v Version) BumpMajor() Version {
	return Version{major: v.major + 1}
}

// BumpMinor increments the minor version, zeros patch, and clears any
// pre-release and build tags.
func (v Version) BumpMinor() Version {
	return Version{major: v.major, minor: v.minor + 1}
}

// BumpPatch increments the patch version and clears any pre-release and
// build tags.
func (v Version) BumpPatch() Version {
	return Version{major: v.major, minor: v.minor, patch: v.patch + 1}
}
