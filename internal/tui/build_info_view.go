// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-markdo/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: markdo")
	for _, f := range info.Fields() {
		b.WriteString("\n")
		b.WriteString(strings.ToUpper(f[0][:1]) + f[0][1:])
		b.WriteString(": ")
		b.WriteString(f[1])
	}

	return renderPage("ABOUT", b.String(), "esc: back")
}
