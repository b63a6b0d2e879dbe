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

package services

// QryUsageStats aggregates the usage event table. The single format
// parameter is the fully qualified table name.
const QryUsageStats = "SELECT " +
	" COUNT(*) AS total_analyses, " +
	" COUNT(DISTINCT user_id) AS distinct_users, " +
	" COUNTIF(created_at > TIMESTAMP_SUB(CURRENT_TIMESTAMP(), INTERVAL 24 HOUR)) AS last_day " +
	"FROM `%s` "
