// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when no HTTP address
	// is configured. This is a fatal misconfiguration at startup.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errTemplatesNotParsed is returned by NewHandlers when the embedded page
	// templates fail to parse.
	errTemplatesNotParsed = errors.New("page templates could not be parsed")
)
