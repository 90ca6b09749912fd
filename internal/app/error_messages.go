// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// lost & found HTTP handlers.
//
// All Msg* constants are human-readable message strings rendered into HTML
// pages to describe the outcome of an operation. Keeping them in one place
// ensures consistent wording throughout the site.
package app

const (
	// MsgInvalidDataProvided is shown when a form fails validation in a way
	// not covered by a more specific message.
	MsgInvalidDataProvided = "Please check the form and try again."

	MsgNameRequired     = "Name is required."
	MsgNameTooLong      = "Name is too long."
	MsgEmailRequired    = "Email is required."
	MsgInvalidEmail     = "Please enter a valid email address."
	MsgPasswordRequired = "Password is required."
	MsgPasswordTooShort = "Password must be at least 6 characters."
	MsgPasswordTooLong  = "Password must be at most 72 characters."
	MsgPasswordMismatch = "Passwords do not match."

	// MsgDuplicateAccount is shown on signup when the email is already
	// registered.
	MsgDuplicateAccount = "An account with that email already exists."

	// MsgInvalidCredentials is shown on login for both an unknown email and
	// a wrong password.
	MsgInvalidCredentials = "Invalid credentials."

	// MsgInvalidOrExpiredCode is shown for every failed code verification,
	// whatever the reason.
	MsgInvalidOrExpiredCode = "Invalid or expired code."

	// MsgNotificationDelivery is shown when the verification code could not
	// be sent.
	MsgNotificationDelivery = "We could not send your verification code. Please try again."

	// MsgInternalServerError is shown when an unexpected server-side
	// failure occurs that the user cannot resolve.
	MsgInternalServerError = "Something went wrong. Please try again."

	MsgNotFound = "The page you are looking for does not exist."

	// MsgCodeSent is the notice on the code entry page.
	MsgCodeSent = "Check your inbox for the verification code."
)
