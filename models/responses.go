// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package models

// SuccessResponse is the body returned by endpoints that have no entity to
// echo back (submission intake, login, property delete).
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the body returned on every non-2xx outcome. Error holds a
// user-facing message only; internal details stay in the server log.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UploadResponse is returned by the image upload endpoint with the public
// URL of the stored object.
type UploadResponse struct {
	URL string `json:"url"`
}
