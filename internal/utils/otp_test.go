// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var otpPattern = regexp.MustCompile(`^[0-9]{6}$`)

func TestOTPGenerator_Format(t *testing.T) {
	g := NewOTPGenerator()
	for i := 0; i < 1000; i++ {
		code, err := g.Generate()
		require.NoError(t, err)
		require.Regexp(t, otpPattern, code)
		require.NotEqual(t, byte('0'), code[0])
	}
}

func TestOTPGenerator_Bounds(t *testing.T) {
	// rand.Int reads big-endian bytes and masks to the bit length of the span,
	// so all-zero input yields the minimum code.
	low := &OTPGenerator{Source: bytes.NewReader(make([]byte, 64))}
	code, err := low.Generate()
	require.NoError(t, err)
	assert.Equal(t, "100000", code)
}

func TestOTPGenerator_SourceError(t *testing.T) {
	g := &OTPGenerator{Source: errReader{}}
	_, err := g.Generate()
	require.Error(t, err)
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }
