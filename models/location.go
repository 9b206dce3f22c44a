// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"
)

// LocationKey joins the non-blank segments with "/".
func LocationKey(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if strings.TrimSpace(s) != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "/")
}

// LocationSeg builds a "name:value" segment. The value is sanitized so it
// never contains a path separator; an empty value yields just "name".
func LocationSeg(name string, value any) string {
	var raw string
	if value != nil {
		raw = fmt.Sprint(value)
	}
	return strings.TrimRight(name+":"+sanitizeSegment(raw), ":")
}

// LocationHash returns a short stable segment for long raw values such as URLs.
func LocationHash(raw string) string {
	return strconv.FormatUint(xxhash.Sum64String(raw), 36)
}

func sanitizeSegment(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	out := strings.Trim(b.String(), "_")
	if strings.TrimSpace(out) == "" {
		return "_"
	}
	return out
}

// CanonicalLocation normalizes a location key so that differently built keys
// addressing the same slot compare equal:
//   - segments are trimmed and empty ones dropped;
//   - "course/all/..." and "course/detail/..." collapse to "course/...";
//   - a "title" segment is renamed to "name".
func CanonicalLocation(key string) string {
	raw := strings.Split(key, "/")
	segs := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			segs = append(segs, s)
		}
	}

	if len(segs) >= 2 && segs[0] == "course" && (segs[1] == "all" || segs[1] == "detail") {
		segs = append(segs[:1], segs[2:]...)
	}

	for i, s := range segs {
		if s == "title" {
			segs[i] = "name"
		}
	}

	return strings.Join(segs, "/")
}
