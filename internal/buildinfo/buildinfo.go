// Package buildinfo holds the definitions injected by the build
// configuration and the toolchain identity derived from the runtime.
//
// Definitions are string package variables set at link time:
//
//	go build -ldflags "\
//	  -X buildprobe/internal/buildinfo.Name=buildprobe \
//	  -X buildprobe/internal/buildinfo.Version=1.0.0 \
//	  -X buildprobe/internal/buildinfo.DefineOne=1 \
//	  -X buildprobe/internal/buildinfo.releaseFlag=1" ./cmd/buildprobe
//
// A definition the build does not supply stays empty and is omitted from
// the report; it is never a runtime failure.
package buildinfo

import (
	"fmt"
	"runtime"
	"strings"
)

var (
	// Name and Version identify the project.
	Name    string
	Version string

	// Numbered target-level definitions echoed by the report.
	DefineOne   string
	DefineTwo   string
	DefineThree string

	// Source-file properties echoed by the report.
	MainFile string
	MsgOne   string
	MsgTwo   string

	// Build mode flags. Debug takes precedence when both are set;
	// a build that sets neither is a debug build.
	debugFlag   string
	releaseFlag string
)

// Mode is the build mode signaled by the injected flags.
type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

// CurrentMode resolves the injected mode flags.
func CurrentMode() Mode {
	switch {
	case debugFlag != "":
		return ModeDebug
	case releaseFlag != "":
		return ModeRelease
	default:
		return ModeDebug
	}
}

// editions are the language editions the report matches exactly.
// Anything outside the set reports as "newer or unknown".
var editions = map[string]string{
	"go1.18": "Go 1.18",
	"go1.19": "Go 1.19",
	"go1.20": "Go 1.20",
	"go1.21": "Go 1.21",
	"go1.22": "Go 1.22",
	"go1.23": "Go 1.23",
	"go1.24": "Go 1.24",
	"go1.25": "Go 1.25",
}

// LanguageEdition reports the language edition of the toolchain that
// built the binary.
func LanguageEdition() string {
	return editionFor(runtime.Version())
}

// editionFor reduces a runtime version string to its goX.Y release tag
// and matches it against the fixed edition set.
func editionFor(version string) string {
	tag := version
	if i := strings.Index(tag, "."); i >= 0 {
		if j := strings.Index(tag[i+1:], "."); j >= 0 {
			tag = tag[:i+1+j]
		}
	}
	if name, ok := editions[tag]; ok {
		return name
	}
	return "newer or unknown"
}

// CompilerFamily reports which compiler produced the binary.
func CompilerFamily() string {
	switch runtime.Compiler {
	case "gc":
		return "gc (standard Go compiler)"
	case "gccgo":
		return "gccgo"
	default:
		return "unknown compiler"
	}
}

// CompilerVersion returns the toolchain version as a major.minor.patch
// triple. ok is false for devel toolchains, whose version strings carry
// no parseable release number.
func CompilerVersion() (string, bool) {
	return parseVersionTriple(runtime.Version())
}

func parseVersionTriple(version string) (string, bool) {
	if !strings.HasPrefix(version, "go") {
		return "", false
	}
	triple := strings.TrimPrefix(version, "go")
	parts := strings.Split(triple, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return "", false
	}
	for _, p := range parts {
		if !isDigits(p) {
			return "", false
		}
	}
	if len(parts) == 2 {
		triple += ".0"
	}
	return triple, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Define is one echoed build definition.
type Define struct {
	Key   string
	Value string
}

// Info is a snapshot of the build identity consumed by the report
// renderer. Keeping it a plain struct lets tests render synthetic values.
type Info struct {
	Name            string
	Version         string
	CompilerFamily  string
	CompilerVersion string // empty when the toolchain version is not parseable
	LanguageEdition string
	Mode            Mode
	Defines         []Define // target definitions, unset entries omitted
	SourceProps     []Define // source-file properties, unset entries omitted
}

// Current snapshots the injected definitions and the detected toolchain.
func Current() Info {
	info := Info{
		Name:            Name,
		Version:         Version,
		CompilerFamily:  CompilerFamily(),
		LanguageEdition: LanguageEdition(),
		Mode:            CurrentMode(),
	}
	if triple, ok := CompilerVersion(); ok {
		info.CompilerVersion = triple
	}
	info.Defines = definedOnly([]Define{
		{"ONE_", DefineOne},
		{"TWO_", DefineTwo},
		{"THREE_", DefineThree},
	})
	info.SourceProps = definedOnly([]Define{
		{"MAIN_FILE_", MainFile},
		{"MSG1", MsgOne},
		{"MSG2", MsgTwo},
	})
	return info
}

func definedOnly(defines []Define) []Define {
	out := make([]Define, 0, len(defines))
	for _, d := range defines {
		if d.Value != "" {
			out = append(out, d)
		}
	}
	return out
}

// String returns the one-line version string used by the version command.
func String() string {
	name := Name
	if name == "" {
		name = "buildprobe"
	}
	version := Version
	if version == "" {
		version = "dev"
	}
	return fmt.Sprintf("%s version %s", name, version)
}
