// Package report renders the build diagnostic report.
//
// The report is a fixed sequence of human-readable lines: a greeting,
// the project identity, the compiler family and version, the language
// edition, the build mode, the bit widths of five primitive types, and
// an echo of the definitions the build configuration injected.
// Rendering has no failure modes beyond the writer itself.
package report

import (
	"fmt"
	"io"
	"unsafe"

	"buildprobe/internal/buildinfo"
	"buildprobe/internal/config"
)

// primitiveWidths are resolved by the compiler for the actual target,
// so the report always reflects the platform's data model.
var primitiveWidths = []struct {
	Name string
	Bits uintptr
}{
	{"uintptr", unsafe.Sizeof(uintptr(0)) * 8},
	{"int", unsafe.Sizeof(int(0)) * 8},
	{"int64", unsafe.Sizeof(int64(0)) * 8},
	{"float32", unsafe.Sizeof(float32(0)) * 8},
	{"float64", unsafe.Sizeof(float64(0)) * 8},
}

// Reporter renders one build identity snapshot.
type Reporter struct {
	info buildinfo.Info
	cfg  config.Report
}

// New returns a Reporter for the given snapshot and section toggles.
func New(info buildinfo.Info, cfg config.Report) *Reporter {
	return &Reporter{info: info, cfg: cfg}
}

// Render writes the report to w.
func (r *Reporter) Render(w io.Writer) error {
	lw := &lineWriter{w: w}

	lw.printf("Hello, World!")
	lw.printf("Information from the build:")

	if r.cfg.Project && r.info.Name != "" && r.info.Version != "" {
		lw.printf("Project Name is %s and Project Version is %s", r.info.Name, r.info.Version)
	}

	if r.cfg.Compiler {
		lw.printf("Compiler: %s", r.info.CompilerFamily)
		if r.info.CompilerVersion != "" {
			lw.printf("Version: %s", r.info.CompilerVersion)
		} else {
			lw.printf("Version: unknown")
		}
	}

	if r.cfg.Edition {
		lw.printf("Language edition: %s", r.info.LanguageEdition)
	}

	if r.cfg.Mode {
		lw.printf("Build mode: %s", r.info.Mode)
	}

	if r.cfg.Widths {
		for _, p := range primitiveWidths {
			lw.printf("Size of %s: %d bits", p.Name, p.Bits)
		}
	}

	if r.cfg.Defines {
		if len(r.info.Defines) > 0 {
			lw.printf("")
			lw.printf("Build definitions:")
			for _, d := range r.info.Defines {
				lw.printf("%s = %s", d.Key, d.Value)
			}
		}
		if len(r.info.SourceProps) > 0 {
			lw.printf("")
			lw.printf("Source file properties:")
			for _, d := range r.info.SourceProps {
				lw.printf("%s = %q", d.Key, d.Value)
			}
		}
	}

	return lw.err
}

// lineWriter appends newlines and keeps the first write error.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) printf(format string, args ...interface{}) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintf(lw.w, format+"\n", args...)
}
