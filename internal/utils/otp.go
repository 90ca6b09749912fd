// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strconv"
)

const (
	otpMin = 100000
	otpMax = 999999
)

// otpSpan is the number of distinct six-digit codes (100000..999999).
var otpSpan = big.NewInt(otpMax - otpMin + 1)

// OTPGenerator produces six-digit one-time codes.
//
// The zero value reads from crypto/rand. rand.Int draws uniformly from
// [0, span) by rejection sampling, so every code in 100000..999999 is
// equally likely.
type OTPGenerator struct {
	// Source overrides the randomness source. Must be cryptographically
	// secure outside tests.
	Source io.Reader
}

// NewOTPGenerator returns a generator backed by crypto/rand.
func NewOTPGenerator() *OTPGenerator {
	return &OTPGenerator{Source: rand.Reader}
}

// Generate returns a code matching ^[0-9]{6}$ with no leading zero.
func (g *OTPGenerator) Generate() (string, error) {
	src := g.Source
	if src == nil {
		src = rand.Reader
	}

	n, err := rand.Int(src, otpSpan)
	if err != nil {
		return "", fmt.Errorf("error generating otp code: %w", err)
	}

	return strconv.FormatInt(n.Int64()+otpMin, 10), nil
}
