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

// Package api defines the REST surface of the analysis service: the
// identity middleware and the route handlers.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Identity headers set by the authenticating front end. The service trusts
// them as given and performs no verification of its own.
const (
	HeaderUserID    = "X-User-Id"
	HeaderUserEmail = "X-User-Email"
)

// Gin context keys populated by RequireIdentity.
const (
	ContextUserID    = "user_id"
	ContextUserEmail = "user_email"
)

// RequireIdentity rejects requests without a user id header and exposes the
// caller's identity to downstream handlers. The email header is optional.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(HeaderUserID)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(ContextUserID, userID)
		c.Set(ContextUserEmail, c.GetHeader(HeaderUserEmail))
		c.Next()
	}
}
