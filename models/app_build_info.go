// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo is the version metadata linked into the go-posts binaries
// with -ldflags. The version doubles as the fallback answer of
// /api/version/ when APP_VERSION is unset.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// Fields returns the build metadata as structured log fields. Unset values
// are reported as "N/A".
func (a AppBuildInfo) Fields() map[string]any {
	return map[string]any{
		"build_version": orNA(a.buildVersion),
		"build_date":    orNA(a.buildDate),
		"build_commit":  orNA(a.buildCommit),
	}
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
