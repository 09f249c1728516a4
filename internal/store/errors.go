// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSubmissionNotSaved is returned when an INSERT into the
	// property_requests table completes without a driver error but no row
	// comes back from the RETURNING clause.
	ErrSubmissionNotSaved = errors.New("submission was not saved")

	// ErrPropertyNotFound is returned when an update or delete targets a
	// listing id that does not exist in the properties table.
	ErrPropertyNotFound = errors.New("property was not found")

	// ErrPropertyNumberTaken is returned when an insert or update collides
	// with the partial unique index on non-empty property numbers.
	ErrPropertyNumberTaken = errors.New("property number already exists")

	// ErrSettingsNotFound is returned when the settings table holds no row
	// yet, meaning the site configuration has never been written.
	ErrSettingsNotFound = errors.New("settings were not found")

	// ErrObjectNotStored is returned when the object store accepts a PUT but
	// reports zero bytes written.
	ErrObjectNotStored = errors.New("object was not stored")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
