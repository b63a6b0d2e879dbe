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

// GetExampleMetadata returns a fully populated metadata value, used by
// tests and as a reference for the prompt shape.
func GetExampleMetadata() *VideoMetadata {
	return &VideoMetadata{
		Title:        "Never Gonna Give You Up",
		ChannelTitle: "Rick Astley",
		PublishedAt:  "2009-10-25T06:57:33Z",
		ViewCount:    "1576425020",
		Description:  "The official video for Never Gonna Give You Up by Rick Astley.",
	}
}

// GetExampleRecord returns a complete analysis record for the example video.
func GetExampleRecord(userID string) *AnalysisRecord {
	record := NewAnalysisRecord(userID, "dQw4w9WgXcQ")
	record.Summary = "Main topic: the official music video for a 1987 pop single. " +
		"Key points: studio performance footage intercut with dance sequences. " +
		"Conclusion: a complete upload of the original promotional video."
	record.VideoDetails = *GetExampleMetadata()
	return record
}
