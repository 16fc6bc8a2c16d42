// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Hello World", "hello-world"},
		{"portuguese accents", "Oração da Manhã", "oracao-da-manha"},
		{"cedilla", "Celebração", "celebracao"},
		{"punctuation", "Culto: Jovens & Adolescentes!", "culto-jovens-adolescentes"},
		{"multiple spaces", "a   b", "a-b"},
		{"leading trailing", " -hello- ", "hello"},
		{"empty", "", ""},
		{"numbers", "Hino 15", "hino-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestNullStringFromValue(t *testing.T) {
	assert.False(t, NullStringFromValue("").Valid)

	ns := NullStringFromValue("x")
	assert.True(t, ns.Valid)
	assert.Equal(t, "x", ns.String)
}

func TestNullStringFromPtr(t *testing.T) {
	assert.False(t, NullStringFromPtr(nil).Valid)

	s := "value"
	ns := NullStringFromPtr(&s)
	assert.True(t, ns.Valid)
	assert.Equal(t, "value", ns.String)
}

func TestStrPtrFromNull(t *testing.T) {
	assert.Nil(t, StrPtrFromNull(NullStringFromValue("")))

	p := StrPtrFromNull(NullStringFromValue("v"))
	if assert.NotNil(t, p) {
		assert.Equal(t, "v", *p)
	}
}
