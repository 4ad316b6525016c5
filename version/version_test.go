package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyBuildInfo(t *testing.T) {
	tests := []struct {
		name   string
		start  Info
		bi     *debug.BuildInfo
		expect Info
	}{
		{
			name:  "fills dev build from module and vcs",
			start: Info{Version: "dev", Commit: "none", BuildDate: "unknown"},
			bi: &debug.BuildInfo{
				Main: debug.Module{Version: "v1.2.3"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef0123"},
					{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			expect: Info{Version: "v1.2.3", Commit: "0123456789ab", BuildDate: "2026-01-02T03:04:05Z", Modified: true},
		},
		{
			name:   "ldflags win",
			start:  Info{Version: "v2.0.0", Commit: "abc", BuildDate: "today"},
			bi:     &debug.BuildInfo{Main: debug.Module{Version: "v1.0.0"}, Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "zzz"}}},
			expect: Info{Version: "v2.0.0", Commit: "abc", BuildDate: "today"},
		},
		{
			name:   "devel module version ignored",
			start:  Info{Version: "dev", Commit: "none", BuildDate: "unknown"},
			bi:     &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			expect: Info{Version: "dev", Commit: "none", BuildDate: "unknown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := tt.start
			applyBuildInfo(&info, tt.bi)
			assert.Equal(t, tt.expect, info)
		})
	}
}

func TestInfoString(t *testing.T) {
	info := Info{Commit: "abc", BuildDate: "today", GoVersion: "go1.24", Platform: "linux/amd64", Modified: true}
	s := info.String()
	assert.Contains(t, s, "Commit:    abc (modified)")
	assert.Contains(t, s, "Platform:  linux/amd64")
}
