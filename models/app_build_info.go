// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// AppBuildInfo carries the build metadata injected with -ldflags into the
// storefront client binary.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo returns build info with "N/A" in place of every empty value.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: valueOrNA(version),
		Date:    valueOrNA(date),
		Commit:  valueOrNA(commit),
	}
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
