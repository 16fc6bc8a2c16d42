// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"strings"
	"time"
)

// dateFormats are the timestamp shapes the clients send for event dates,
// tried in order.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseDate parses an event date string in any accepted format.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// validDailyWordDate checks the YYYY-MM-DD natural key of a daily word.
func validDailyWordDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// trimmed dereferences a string pointer and trims it; nil gives "".
func trimmed(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

// has reports whether a field was supplied with a non-empty value.
func has(p *string) bool {
	return p != nil && strings.TrimSpace(*p) != ""
}
