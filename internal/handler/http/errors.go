// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidForm is returned when a request body cannot be parsed as a form.
var ErrInvalidForm = errors.New("invalid form body")
