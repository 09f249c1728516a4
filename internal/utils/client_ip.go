// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package utils

import (
	"net"
	"net/http"
	"strings"
)

// UnknownClient is the sentinel identity used when neither a forwarded
// header nor a usable remote address is present on the request.
const UnknownClient = "unknown"

// ClientIP derives a best-effort client identity for rate limiting.
//
// The first address in the X-Forwarded-For header wins; otherwise the host
// part of the connection's remote address is used. The result is spoofable
// and shared by NATed clients, so it must never be used for authorization.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	if r.RemoteAddr == "" {
		return UnknownClient
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
