// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package models

import "time"

// Allowed values for the Property.Type and Property.Category fields.
// Inbound payloads carrying any other value are coerced to the defaults
// (ListingSale and CategoryApartment respectively) by the property service.
const (
	ListingSale = "sale"
	ListingRent = "rent"

	CategoryApartment = "apartment"
	CategoryVilla     = "villa"
	CategoryOffice    = "office"
	CategoryLand      = "land"
)

// Property is a catalog listing managed through the admin dashboard and
// served publicly on the marketing site.
type Property struct {
	ID       int64   `json:"id,omitempty"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Location string  `json:"location"`

	// Type is "sale" or "rent".
	Type string `json:"type"`

	// Category is one of apartment, villa, office, land.
	Category string `json:"category"`

	Bedrooms    float64  `json:"bedrooms"`
	Bathrooms   float64  `json:"bathrooms"`
	Area        float64  `json:"area"`
	Description string   `json:"description"`
	Features    []string `json:"features"`

	// Image is the public URL of the listing photo. A placeholder is
	// substituted when the client sends no usable value.
	Image string `json:"image"`

	// ShowPrice hides the price on the public card when false.
	ShowPrice bool `json:"showPrice"`

	PropertyNumber string `json:"propertyNumber"`
	LicenseNumber  string `json:"licenseNumber"`
	SubType        string `json:"subType"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Property model.
func (p Property) TableName() string {
	return "properties"
}
