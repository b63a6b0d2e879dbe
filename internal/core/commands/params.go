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

// Package commands holds the chain-of-responsibility steps of the video
// analysis pipeline. Each command reads and writes well known parameter
// names on the chain context so steps stay composable.
package commands

// Shared chain context parameter names. Commands that gate on the presence
// of a value (cache hit short circuit, fresh record persistence) key off
// these rather than positional input/output wiring.
const (
	ParamUserID      = "__user_id__"
	ParamUserEmail   = "__user_email__"
	ParamVideoID     = "__video_id__"
	ParamMetadata    = "__video_metadata__"
	ParamSummary     = "__summary__"
	ParamRecord      = "__analysis_record__"
	ParamFreshRecord = "__fresh_record__"
)
