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

/*
Package semver parses and renders Semantic Versioning 2.0.0 version strings
and a constraint grammar compatible with the range syntax used by the npm
ecosystem, and decides whether a given version satisfies a given constraint.

A version is three dot-separated non-negative integers (major, minor,
patch) optionally followed by a hyphen-introduced, dot-separated
pre-release tag and a plus-introduced, dot-separated build tag:

	1.2.3
	1.2.3-alpha.1
	1.2.3-alpha.1+build.7
	1.2.3+build.7

No component may carry a leading zero (except the literal value 0 itself).

The constraint grammar accepts bare versions, the operators =, <, <=, >,
>=, ~ (tilde) and ^ (caret), wildcards (1.2.x, 1.x.x, *.*.*), and hyphen
ranges (1.2.3 - 1.4.0), combined into conjunctions by whitespace and
disjunctions by "||":

	1.2.3
	>=1.2.3 <2.0.0
	~1.2.3 || ^2.0.0
	1.2.x
	1.2.3 - 1.4.0

All values are immutable; the With* accessors return a modified copy
rather than mutating the receiver. There is no I/O and no concurrency in
this package: every operation is synchronous and pure.
*/
package semver
