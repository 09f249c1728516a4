// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package models

// PropertyInput is the request body accepted by the listing create and
// update endpoints. Boolean flags are pointers so an omitted field can be
// told apart from an explicit false: ShowPrice defaults to true.
type PropertyInput struct {
	ID       int64   `json:"id,omitempty"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Location string  `json:"location"`

	Type     string `json:"type"`
	Category string `json:"category"`

	Bedrooms    float64  `json:"bedrooms"`
	Bathrooms   float64  `json:"bathrooms"`
	Area        float64  `json:"area"`
	Description string   `json:"description"`
	Features    []string `json:"features"`

	Image     string `json:"image"`
	ShowPrice *bool  `json:"showPrice"`

	PropertyNumber string `json:"propertyNumber"`
	LicenseNumber  string `json:"licenseNumber"`
	SubType        string `json:"subType"`
}

// SettingsInput is the request body accepted by the settings update
// endpoint. BannerVisible defaults to true when omitted. Field names match
// the legacy dashboard client, same as the DELETE ?id= contract.
type SettingsInput struct {
	BannerVisible *bool  `json:"banner5_visible"`
	BannerImage   string `json:"banner5_image"`
}

// UploadRequest is the request body accepted by the image upload endpoint.
// File carries the image bytes as a base64 data URL or bare base64 string.
type UploadRequest struct {
	File     string `json:"file"`
	FileName string `json:"fileName"`
}
