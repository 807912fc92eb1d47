// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// NotAvailable stands in for build metadata the linker did not set.
const NotAvailable = "N/A"

// AppBuildInfo is the version, date and commit injected with -ldflags at
// build time. Blank values read as [NotAvailable].
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNotAvailable(version),
		date:    orNotAvailable(date),
		commit:  orNotAvailable(commit),
	}
}

func (a AppBuildInfo) Version() string { return orNotAvailable(a.version) }
func (a AppBuildInfo) Date() string    { return orNotAvailable(a.date) }
func (a AppBuildInfo) Commit() string  { return orNotAvailable(a.commit) }

// Banner is the startup text printed by both binaries, one field per line.
func (a AppBuildInfo) Banner() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", a.Version(), a.Date(), a.Commit())
}

func orNotAvailable(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return NotAvailable
	}
	return v
}
