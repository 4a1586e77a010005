package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	assert.Equal(t, Version, info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}

func TestGetVersionString(t *testing.T) {
	orig := GitCommit
	defer func() { GitCommit = orig }()

	GitCommit = "unknown"
	assert.Equal(t, "onebox "+Version, GetVersionString())

	GitCommit = "0123456789abcdef"
	assert.Equal(t, "onebox "+Version+" (01234567)", GetVersionString())
}

func TestGetDetailedVersionString(t *testing.T) {
	out := GetDetailedVersionString()
	assert.Contains(t, out, "onebox "+Version)
	assert.Contains(t, out, "Go version:")
}
