// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/thsrealty/backoffice/models"
)

const (
	insertSubmission = `INSERT INTO property_requests (
		kind, name, email, employer, job_title, age, phone, contact_method,
		monthly_income, has_obligations, obligation_amount,
		has_down_payment, down_payment_amount,
		has_joint_applicants, joint_applicant_income,
		property_type, property_value, district, city, area,
		property_id, property_number, property_title
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
	RETURNING id, created_at;`

	listSubmissions = `SELECT id, kind, name, email, employer, job_title, age, phone, contact_method,
		monthly_income, has_obligations, obligation_amount,
		has_down_payment, down_payment_amount,
		has_joint_applicants, joint_applicant_income,
		property_type, property_value, district, city, area,
		property_id, property_number, property_title, created_at
	FROM property_requests
	ORDER BY created_at DESC, id DESC;`

	getSettings = `SELECT id, banner_visible, banner_image, updated_at
	FROM settings
	WHERE id = 1;`

	upsertSettings = `INSERT INTO settings (id, banner_visible, banner_image, updated_at)
	VALUES (1, $1, $2, NOW())
	ON CONFLICT (id) DO UPDATE
	SET banner_visible = EXCLUDED.banner_visible,
	    banner_image   = EXCLUDED.banner_image,
	    updated_at     = NOW()
	RETURNING id, banner_visible, banner_image, updated_at;`
)

// psql is the squirrel statement builder configured for PostgreSQL
// positional placeholders. All dynamic listing queries go through it.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// propertyColumns is the column order every listing query selects and scans.
var propertyColumns = []string{
	"id", "title", "price", "location", "type", "category",
	"bedrooms", "bathrooms", "area", "description", "features",
	"image", "show_price", "property_number", "license_number", "sub_type",
	"created_at",
}

func buildListPropertiesQuery() (string, []any, error) {
	return psql.
		Select(propertyColumns...).
		From("properties").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildInsertPropertyQuery(property models.Property, features []byte) (string, []any, error) {
	return psql.
		Insert("properties").
		Columns(
			"title", "price", "location", "type", "category",
			"bedrooms", "bathrooms", "area", "description", "features",
			"image", "show_price", "property_number", "license_number", "sub_type",
		).
		Values(
			property.Title, property.Price, property.Location, property.Type, property.Category,
			property.Bedrooms, property.Bathrooms, property.Area, property.Description, features,
			property.Image, property.ShowPrice, property.PropertyNumber, property.LicenseNumber, property.SubType,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
}

func buildUpdatePropertyQuery(property models.Property, features []byte) (string, []any, error) {
	return psql.
		Update("properties").
		Set("title", property.Title).
		Set("price", property.Price).
		Set("location", property.Location).
		Set("type", property.Type).
		Set("category", property.Category).
		Set("bedrooms", property.Bedrooms).
		Set("bathrooms", property.Bathrooms).
		Set("area", property.Area).
		Set("description", property.Description).
		Set("features", features).
		Set("image", property.Image).
		Set("show_price", property.ShowPrice).
		Set("property_number", property.PropertyNumber).
		Set("license_number", property.LicenseNumber).
		Set("sub_type", property.SubType).
		Where(sq.Eq{"id": property.ID}).
		Suffix("RETURNING created_at").
		ToSql()
}

func buildDeletePropertyQuery(id int64) (string, []any, error) {
	return psql.
		Delete("properties").
		Where(sq.Eq{"id": id}).
		ToSql()
}
