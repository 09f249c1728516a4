// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

// Package app contains shared application-layer constants used across the
// back-office server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written
// into HTTP response bodies to describe the outcome of an operation. The
// public site serves an Arabic-speaking audience, so user-facing validation
// and throttling messages are Arabic; operational messages aimed at API
// clients stay English. Keeping them in one place ensures consistent
// wording throughout the API.
package app

const (
	// MsgNameRequired is returned when the sanitized applicant name is
	// shorter than two characters.
	MsgNameRequired = "الاسم مطلوب"

	// MsgPhoneInvalid is returned when the sanitized phone number fails the
	// length or pattern checks of the submitted form variant.
	MsgPhoneInvalid = "رقم الجوال غير صالح"

	// MsgTooManySubmissions is returned with HTTP 429 when a client exceeds
	// the submission-intake window budget.
	MsgTooManySubmissions = "تم تجاوز الحد الأقصى للطلبات. يرجى المحاولة بعد دقيقة."

	// MsgTooManyLoginAttempts is returned with HTTP 429 when a client
	// exceeds the login window budget.
	MsgTooManyLoginAttempts = "تم تجاوز الحد الأقصى لمحاولات تسجيل الدخول. يرجى المحاولة بعد دقيقة."

	// MsgCredentialsRequired is returned when the login body is missing the
	// username or the password.
	MsgCredentialsRequired = "اسم المستخدم وكلمة المرور مطلوبان"

	// MsgInvalidCredentials is returned on a wrong username or password.
	// Deliberately identical for both cases.
	MsgInvalidCredentials = "اسم المستخدم أو كلمة المرور غير صحيحة"

	// MsgServerError is the generic Arabic server-failure message returned
	// by the login endpoint.
	MsgServerError = "خطأ في الخادم"

	// MsgTitleRequired is returned when a listing is created or updated
	// with a title shorter than two characters.
	MsgTitleRequired = "عنوان العقار مطلوب"

	// MsgPropertyNumberTaken is returned when a listing is saved with a
	// property number another listing already uses.
	MsgPropertyNumberTaken = "رقم العقار مستخدم من قبل"
)

const (
	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgCSRFFailed is returned when a state-changing request arrives
	// without the same-origin marker header.
	MsgCSRFFailed = "CSRF validation failed"

	// MsgUnauthorized is returned when the session cookie is missing or
	// does not match the server-held secret.
	MsgUnauthorized = "Unauthorized"

	// MsgMethodNotAllowed accompanies HTTP 405 responses.
	MsgMethodNotAllowed = "Method not allowed"

	// MsgIDRequired is returned when an update or delete omits the record id.
	MsgIDRequired = "ID is required"

	// MsgPropertyNotFound is returned when an update or delete targets a
	// listing that does not exist.
	MsgPropertyNotFound = "Property not found"

	// MsgFileRequired is returned when the upload body omits the file or
	// its name.
	MsgFileRequired = "File and fileName are required"

	// MsgSaveSubmissionFailed is the generic message for persistence
	// failures during submission intake; details stay in the server log.
	MsgSaveSubmissionFailed = "Failed to save submission"

	// MsgFetchSubmissionsFailed is the generic message for read failures on
	// the submissions list.
	MsgFetchSubmissionsFailed = "Failed to fetch submissions"

	// MsgFetchPropertiesFailed, MsgSavePropertyFailed and
	// MsgDeletePropertyFailed are the generic messages for listing
	// persistence failures.
	MsgFetchPropertiesFailed = "Failed to fetch properties"
	MsgSavePropertyFailed    = "Failed to save property"
	MsgDeletePropertyFailed  = "Failed to delete property"

	// MsgUpdateSettingsFailed is the generic message for settings
	// persistence failures.
	MsgUpdateSettingsFailed = "Failed to update settings"

	// MsgUploadFailed is the generic message for image upload failures.
	MsgUploadFailed = "Failed to upload image"
)
