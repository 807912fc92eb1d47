package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.2.0", " 2026-10-18 ", "")

	assert.Equal(t, "v1.2.0", info.Version())
	assert.Equal(t, "2026-10-18", info.Date())
	assert.Equal(t, NotAvailable, info.Commit())
	assert.Equal(t, "Build version: v1.2.0\nBuild date: 2026-10-18\nBuild commit: N/A\n", info.Banner())
}

func TestAppBuildInfo_ZeroValue(t *testing.T) {
	var info AppBuildInfo

	assert.Equal(t, NotAvailable, info.Version())
}
