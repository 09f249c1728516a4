// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

// Package intake turns loosely-typed public form payloads into canonical
// submission records. Two historical naming conventions exist for most
// fields (a legacy snake_case alias and a newer camelCase one); the mapping
// from canonical field to its alias chain, coercion, and default is kept in
// declarative tables so precedence is uniform and testable in one place.
package intake

import (
	"github.com/thsrealty/backoffice/internal/sanitize"
	"github.com/thsrealty/backoffice/models"
)

// Payload is a decoded, untrusted request body.
type Payload map[string]any

// Kind discriminates the form shape: a payload carrying type == "interest"
// is the per-listing interest form, everything else is the ownership form.
func (p Payload) Kind() models.SubmissionKind {
	if t, ok := p["type"].(string); ok && t == "interest" {
		return models.KindInterest
	}
	return models.KindOwnership
}

// textRule maps one canonical text field to its alias chain. The first
// present, non-empty alias wins and is passed through coerce.
type textRule struct {
	aliases []string
	coerce  func(any) string
	assign  func(*models.Submission, string)
}

// numberRule maps one canonical numeric field to its alias chain. The first
// present, non-zero alias wins; absent or invalid values default to 0.
type numberRule struct {
	aliases []string
	assign  func(*models.Submission, float64)
}

// boolRule resolves one canonical flag: true when the camelCase alias is
// truthy OR the legacy alias equals the literal string "yes".
type boolRule struct {
	flagAlias   string
	legacyAlias string
	assign      func(*models.Submission, bool)
}

var commonTextRules = []textRule{
	{aliases: []string{"name"}, coerce: sanitize.Text,
		assign: func(s *models.Submission, v string) { s.Name = v }},
	{aliases: []string{"email"}, coerce: sanitize.Email,
		assign: func(s *models.Submission, v string) { s.Email = v }},
	{aliases: []string{"employer"}, coerce: sanitize.Text,
		assign: func(s *models.Submission, v string) { s.Employer = v }},
	{aliases: []string{"jobTitle", "job_title"}, coerce: sanitize.Text,
		assign: func(s *models.Submission, v string) { s.JobTitle = v }},
	{aliases: []string{"phone"}, coerce: sanitize.Phone,
		assign: func(s *models.Submission, v string) { s.Phone = v }},
	{aliases: []string{"contactMethod", "contact_method"}, coerce: sanitize.Text,
		assign: func(s *models.Submission, v string) { s.ContactMethod = v }},
}

var commonNumberRules = []numberRule{
	{aliases: []string{"age"},
		assign: func(s *models.Submission, v float64) { s.Age = v }},
	{aliases: []string{"monthlyIncome", "income"},
		assign: func(s *models.Submission, v float64) { s.MonthlyIncome = v }},
	{aliases: []string{"obligationAmount", "commitment_amount"},
		assign: func(s *models.Submission, v float64) { s.ObligationAmount = v }},
	{aliases: []string{"downPaymentAmount", "downpayment_amount"},
		assign: func(s *models.Submission, v float64) { s.DownPaymentAmount = v }},
	{aliases: []string{"jointApplicantIncome", "cosigner_income"},
		assign: func(s *models.Submission, v float64) { s.JointApplicantIncome = v }},
	{aliases: []string{"propertyValue", "property_value"},
		assign: func(s *models.Submission, v float64) { s.PropertyValue = v }},
	{aliases: []string{"area"},
		assign: func(s *models.Submission, v float64) { s.Area = v }},
}

var commonBoolRules = []boolRule{
	{flagAlias: "hasJointApplicants", legacyAlias: "has_cosigner",
		assign: func(s *models.Submission, v bool) { s.HasJointApplicants = v }},
	{flagAlias: "hasObligations", legacyAlias: "has_commitments",
		assign: func(s *models.Submission, v bool) { s.HasObligations = v }},
	{flagAlias: "hasDownPayment", legacyAlias: "has_downpayment",
		assign: func(s *models.Submission, v bool) { s.HasDownPayment = v }},
}

var ownershipTextRules = []textRule{
	{aliases: []string{"propertyType", "property_type"}, coerce: sanitize.Text,
		assign: func(s *models.Submission, v string) { s.PropertyType = v }},
	{aliases: []string{"district"}, coerce: sanitize.Text,
		assign: func(s *models.Submission, v string) { s.District = v }},
	{aliases: []string{"city"}, coerce: sanitize.Text,
		assign: func(s *models.Submission, v string) { s.City = v }},
}

var interestTextRules = []textRule{
	{aliases: []string{"property_id", "propertyId"}, coerce: sanitize.Text,
		assign: func(s *models.Submission, v string) { s.PropertyID = v }},
	{aliases: []string{"property_number", "propertyNumber"}, coerce: sanitize.Text,
		assign: func(s *models.Submission, v string) { s.PropertyNumber = v }},
	{aliases: []string{"property_title", "propertyTitle"}, coerce: sanitize.Text,
		assign: func(s *models.Submission, v string) { s.PropertyTitle = v }},
}

// Normalize maps the payload into a canonical Submission, applying the
// sanitizer to every field. It never fails: absent or malformed fields
// degrade to empty strings, zeros, and false.
func Normalize(p Payload) models.Submission {
	submission := models.Submission{Kind: p.Kind()}

	variantRules := ownershipTextRules
	if submission.Kind == models.KindInterest {
		variantRules = interestTextRules
	}

	for _, rule := range commonTextRules {
		rule.assign(&submission, rule.coerce(firstPresent(p, rule.aliases)))
	}
	for _, rule := range variantRules {
		rule.assign(&submission, rule.coerce(firstPresent(p, rule.aliases)))
	}
	for _, rule := range commonNumberRules {
		rule.assign(&submission, sanitize.Number(firstPresent(p, rule.aliases)))
	}
	for _, rule := range commonBoolRules {
		rule.assign(&submission, truthy(p[rule.flagAlias]) || p[rule.legacyAlias] == "yes")
	}

	return submission
}

// firstPresent returns the value of the first alias that is present and
// non-empty, mirroring the `a || b` fallback chains of the legacy clients.
// Empty strings, zeros, false, and nil do not win over a later alias.
func firstPresent(p Payload, aliases []string) any {
	for _, alias := range aliases {
		value, ok := p[alias]
		if !ok {
			continue
		}
		if truthy(value) {
			return value
		}
	}
	return nil
}

// truthy reports JavaScript-style truthiness for a decoded JSON value.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	default:
		// objects and arrays
		return true
	}
}
