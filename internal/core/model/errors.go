// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model

import "errors"

// Caller-visible failure classes of the analyze operation. Commands wrap
// these sentinels so the API layer can classify outcomes with errors.Is
// without inspecting error strings.
var (
	// ErrInvalidVideoReference marks input that does not resolve to a well
	// formed video identifier. Raised before any external call.
	ErrInvalidVideoReference = errors.New("invalid video reference")

	// ErrVideoNotFound marks an identifier the metadata provider has no
	// record of. Terminal; never retried.
	ErrVideoNotFound = errors.New("video not found")

	// ErrUpstream marks a metadata or summarization provider failure.
	// Terminal; the cause is logged but never leaked to the caller.
	ErrUpstream = errors.New("upstream provider failure")
)
