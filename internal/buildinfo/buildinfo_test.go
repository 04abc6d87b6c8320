package buildinfo

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentModePrecedence(t *testing.T) {
	restore := func(debug, release string) {
		debugFlag, releaseFlag = debug, release
	}
	defer restore(debugFlag, releaseFlag)

	tests := []struct {
		name    string
		debug   string
		release string
		want    Mode
	}{
		{"neither set defaults to debug", "", "", ModeDebug},
		{"debug only", "1", "", ModeDebug},
		{"release only", "", "1", ModeRelease},
		{"debug wins over release", "1", "1", ModeDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore(tt.debug, tt.release)
			assert.Equal(t, tt.want, CurrentMode())
		})
	}
}

func TestEditionFor(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"go1.21.5", "Go 1.21"},
		{"go1.24.0", "Go 1.24"},
		{"go1.24", "Go 1.24"},
		{"go1.18", "Go 1.18"},
		{"go1.99", "newer or unknown"},
		{"devel +abc1234", "newer or unknown"},
		{"", "newer or unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, editionFor(tt.version))
		})
	}
}

func TestParseVersionTriple(t *testing.T) {
	tests := []struct {
		version string
		want    string
		ok      bool
	}{
		{"go1.24.0", "1.24.0", true},
		{"go1.21.13", "1.21.13", true},
		{"go1.24", "1.24.0", true},
		{"devel +abc1234 linux/amd64", "", false},
		{"go1.x.0", "", false},
		{"1.24.0", "", false},
		{"go1.24.0.1", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			got, ok := parseVersionTriple(tt.version)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompilerFamilyKnown(t *testing.T) {
	// runtime.Compiler is fixed for a given toolchain; the test binary is
	// built by one of the two known families.
	family := CompilerFamily()
	if runtime.Compiler == "gc" {
		assert.Equal(t, "gc (standard Go compiler)", family)
	} else {
		assert.NotEqual(t, "unknown compiler", family)
	}
}

func TestCurrentOmitsUnsetDefines(t *testing.T) {
	origOne, origTwo, origThree := DefineOne, DefineTwo, DefineThree
	defer func() { DefineOne, DefineTwo, DefineThree = origOne, origTwo, origThree }()

	DefineOne, DefineTwo, DefineThree = "1", "", "3"
	info := Current()

	require.Len(t, info.Defines, 2)
	assert.Equal(t, Define{"ONE_", "1"}, info.Defines[0])
	assert.Equal(t, Define{"THREE_", "3"}, info.Defines[1])
}

func TestCurrentSnapshotsToolchain(t *testing.T) {
	info := Current()

	assert.Equal(t, CompilerFamily(), info.CompilerFamily)
	assert.Equal(t, LanguageEdition(), info.LanguageEdition)
	assert.Equal(t, CurrentMode(), info.Mode)
	if triple, ok := CompilerVersion(); ok {
		assert.Equal(t, triple, info.CompilerVersion)
	} else {
		assert.Empty(t, info.CompilerVersion)
	}
}

func TestStringDefaults(t *testing.T) {
	origName, origVersion := Name, Version
	defer func() { Name, Version = origName, origVersion }()

	Name, Version = "", ""
	assert.Equal(t, "buildprobe version dev", String())

	Name, Version = "buildprobe", "1.2.3"
	assert.Equal(t, "buildprobe version 1.2.3", String())
}
