// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-movie-keeper/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: Movie Keeper\n")
	b.WriteString("Version: ")
	b.WriteString(info.Version())
	b.WriteString("\nDate: ")
	b.WriteString(info.Date())
	b.WriteString("\nCommit: ")
	b.WriteString(info.Commit())

	return renderPage(titleStyle.Render("ABOUT"), b.String(), "esc: back")
}
