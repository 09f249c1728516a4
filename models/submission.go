// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

// Package models defines the domain entities exchanged between the HTTP
// layer, the services, and the persistence layer of the back-office server.
package models

import "time"

// SubmissionKind discriminates the two lead-capture form shapes accepted by
// the public intake endpoint.
type SubmissionKind string

const (
	// KindOwnership is the "own your property" form submitted from the
	// financing page. It carries the property the applicant wants to buy.
	KindOwnership SubmissionKind = "ownership"

	// KindInterest is the per-listing interest form submitted from a
	// property detail page. It references an existing listing.
	KindInterest SubmissionKind = "interest"
)

// Submission is the canonical, sanitized record produced by the intake
// pipeline. It is constructed once per request, validated, handed to the
// store, and discarded; the database assigns the identifier on insert.
type Submission struct {
	// ID is assigned by the database on insert and is zero before that.
	ID int64 `json:"id,omitempty"`

	// Kind tags which form shape produced this record.
	Kind SubmissionKind `json:"kind"`

	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Employer      string  `json:"employer"`
	JobTitle      string  `json:"job_title"`
	Age           float64 `json:"age"`
	Phone         string  `json:"phone"`
	ContactMethod string  `json:"contact_method"`

	MonthlyIncome     float64 `json:"monthly_income"`
	HasObligations    bool    `json:"has_obligations"`
	ObligationAmount  float64 `json:"obligation_amount"`
	HasDownPayment    bool    `json:"has_down_payment"`
	DownPaymentAmount float64 `json:"down_payment_amount"`

	// HasJointApplicants reports whether the applicant declared a co-signer;
	// JointApplicantIncome is that co-signer's monthly income.
	HasJointApplicants   bool    `json:"has_joint_applicants"`
	JointApplicantIncome float64 `json:"joint_applicant_income"`

	// Ownership-form fields. Empty/zero for interest submissions.
	PropertyType  string  `json:"property_type,omitempty"`
	PropertyValue float64 `json:"property_value,omitempty"`
	District      string  `json:"district,omitempty"`
	City          string  `json:"city,omitempty"`
	Area          float64 `json:"area,omitempty"`

	// Interest-form fields. Empty for ownership submissions.
	PropertyID     string `json:"property_id,omitempty"`
	PropertyNumber string `json:"property_number,omitempty"`
	PropertyTitle  string `json:"property_title,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Submission model.
func (s Submission) TableName() string {
	return "property_requests"
}
