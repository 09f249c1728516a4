// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package models

import "time"

// Settings is the single-row site configuration managed from the dashboard.
// Today it only controls the promotional banner on the landing page.
type Settings struct {
	ID int64 `json:"id,omitempty"`

	// BannerVisible toggles the promotional banner. The wire name keeps the
	// legacy front-end's "banner5" field, fifth iteration of the banner slot.
	BannerVisible bool `json:"banner5_visible"`

	// BannerImage is the public URL of the banner image, empty when unset.
	BannerImage string `json:"banner5_image"`

	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Settings model.
func (s Settings) TableName() string {
	return "settings"
}
