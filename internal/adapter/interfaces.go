// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound delivery of one-time codes.
//
// The primary abstraction is [NotificationSender], which decouples the
// service layer from the delivery channel. The package ships an SMTP
// implementation ([NewSMTPSender]), an HTTP webhook relay
// ([NewWebhookSender]), and a development sender that only logs
// ([NewLogSender]). [NewNotificationSender] picks one from configuration.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for channel-agnostic error
// handling.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notification_sender_mock.go -package=mock

// NotificationSender delivers a one-time code to an address. Implementations
// must honour ctx cancellation and must not retain code after returning.
type NotificationSender interface {
	Send(ctx context.Context, address, code string) error
}
