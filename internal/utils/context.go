// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, and client identity extraction.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClientIPCtxKey is the key used to store the best-effort client identity
// in the context. Used together with GetClientIPFromContext for type-safe
// retrieval from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ClientIPCtxKey, "203.0.113.7")
var ClientIPCtxKey = contextKey("clientIP")

// GetClientIPFromContext retrieves the client identity from the context.
//
// Returns the identity string and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetClientIPFromContext(ctx context.Context) (string, bool) {
	clientIP, ok := ctx.Value(ClientIPCtxKey).(string)
	return clientIP, ok
}
