package driver

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"hotreload/internal/diag"
	"hotreload/internal/source"
)

var (
	severityColor = map[diag.Severity]*color.Color{
		diag.SevInfo:    color.New(color.FgCyan, color.Bold),
		diag.SevWarning: color.New(color.FgYellow, color.Bold),
		diag.SevError:   color.New(color.FgRed, color.Bold),
		diag.SevFatal:   color.New(color.FgHiRed, color.Bold),
	}
	noteColor = color.New(color.Faint)
)

// RenderBag writes bag's diagnostics to w, one line per diagnostic, each
// tagged with its severity per §7 (INFO/WARN/ERROR/FATAL) and located
// against fs. Diagnostics are sorted and deduplicated before rendering so
// output is stable across runs. fs may be nil (e.g. a diagnostic produced
// outside any parsed file); positions then render as "?".
func RenderBag(w io.Writer, bag *diag.Bag, fs *source.FileSet) {
	if bag == nil {
		return
	}
	bag.Sort()
	bag.Dedup()

	for _, d := range bag.Items() {
		tag := severityColor[d.Severity].Sprint(d.Severity.String())
		fmt.Fprintf(w, "%s[%s] %s: %s\n", tag, d.Code.String(), formatPos(fs, d.Primary), d.Message)
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  %s %s: %s\n", noteColor.Sprint("note"), formatPos(fs, n.Span), n.Msg)
		}
	}
}

func formatPos(fs *source.FileSet, sp source.Span) string {
	if fs == nil {
		return "?"
	}
	file := fs.Get(sp.File)
	if file == nil {
		return "?"
	}
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", file.FormatPath("auto", ""), start.Line, start.Col)
}
