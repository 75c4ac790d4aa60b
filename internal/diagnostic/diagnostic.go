// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package diagnostic renders load failures as short colored reports for a
// human reading a terminal. Every report names the offending value, where
// or how it was expected, and what to do about it.
//
// Colors are only emitted when the sink supports them; errors themselves
// never carry escape codes.
package diagnostic

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nilswg/use-config/internal/argv"
	"github.com/nilswg/use-config/internal/extract"
	"github.com/nilswg/use-config/internal/resolve"
)

// Details is the load context a report refers to.
type Details struct {
	Flag      string
	Delimiter string
	ConfigKey string
	// Path is the config file being parsed, if one was found.
	Path string
}

// Printer writes diagnostics to a sink.
type Printer struct {
	w io.Writer

	errorStyle lipgloss.Style
	valueStyle lipgloss.Style
	hintStyle  lipgloss.Style
}

// New returns a Printer writing to w. The color profile is detected from w.
func New(w io.Writer) *Printer {
	return NewWithRenderer(w, lipgloss.NewRenderer(w))
}

// NewWithRenderer returns a Printer writing to w with styles bound to r.
func NewWithRenderer(w io.Writer, r *lipgloss.Renderer) *Printer {
	return &Printer{
		w:          w,
		errorStyle: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		valueStyle: r.NewStyle().Foreground(lipgloss.Color("3")),
		hintStyle:  r.NewStyle().Faint(true),
	}
}

// Discard is a Printer that writes nowhere.
func Discard() *Printer {
	return New(io.Discard)
}

// Print renders err and writes it to the sink. Write errors are ignored.
func (p *Printer) Print(err error, d Details) {
	if err == nil {
		return
	}
	_, _ = io.WriteString(p.w, p.Render(err, d))
}

// Render returns the report for err, one line per entry, ending in a newline.
func (p *Printer) Render(err error, d Details) string {
	var (
		invalidVar *argv.InvalidVariableError
		folder     *resolve.FolderNotFoundError
		files      *resolve.FilesNotFoundError
		syntax     *extract.SyntaxError
	)

	var lines []string
	switch {
	case errors.As(err, &invalidVar):
		lines = []string{
			p.errorStyle.Render("Invalid process variable: ") + p.valueStyle.Render(invalidVar.Token),
			"Expected " + p.valueStyle.Render(variablePattern(invalidVar.Flag, invalidVar.Delimiter, "<key>")) +
				" with exactly one " + p.valueStyle.Render(fmt.Sprintf("%q", invalidVar.Delimiter)),
			p.hintStyle.Render("Quote or rename the value so it does not contain the delimiter."),
		}
	case errors.Is(err, argv.ErrEmptyFlag):
		lines = []string{
			p.errorStyle.Render("The argv flag prefix is empty"),
			"Expected a prefix such as " + p.valueStyle.Render(`"--"`),
			p.hintStyle.Render("Set Flag or USECONFIG_FLAG."),
		}
	case errors.Is(err, resolve.ErrConfigNameUndefined):
		lines = []string{
			p.errorStyle.Render("Config name is undefined"),
			"Expected " + p.valueStyle.Render(variablePattern(d.Flag, d.Delimiter, d.ConfigKey)) + " in the arguments",
			p.hintStyle.Render("Pass the variable, or set ConfigName, USECONFIG_NAME or DefaultConfigName."),
		}
	case errors.As(err, &folder):
		lines = []string{
			p.errorStyle.Render("Config folder not found: ") + p.valueStyle.Render(folder.Dir),
			"Expected a directory holding config.<name>.<ext> files",
			p.hintStyle.Render("Create the folder, or set ConfigDir or USECONFIG_DIR."),
		}
		if folder.Err != nil {
			lines = append(lines, p.errorStyle.Render("Cause: ")+folder.Err.Error())
		}
	case errors.As(err, &files):
		lines = []string{
			p.errorStyle.Render("No config file for ") + p.valueStyle.Render(files.Name) +
				p.errorStyle.Render(" in ") + p.valueStyle.Render(files.Dir),
			"Expected one of " + p.valueStyle.Render(candidates(files.Name, files.Extensions)),
			p.hintStyle.Render("Check the config name or add the file."),
		}
		if files.Err != nil {
			lines = append(lines, p.errorStyle.Render("Cause: ")+files.Err.Error())
		}
	case errors.As(err, &syntax):
		where := fmt.Sprintf("%d:%d", syntax.Line, syntax.Column)
		if d.Path != "" {
			where = d.Path + ":" + where
		}
		lines = []string{
			p.errorStyle.Render("Invalid config file ") + p.valueStyle.Render(where),
			p.errorStyle.Render(syntax.Detail),
		}
		if syntax.Excerpt != "" {
			lines = append(lines, "  "+p.valueStyle.Render(syntax.Excerpt))
		}
		lines = append(lines,
			p.hintStyle.Render("Only object, array, string, number, boolean and null literals can be loaded."))
	default:
		lines = []string{p.errorStyle.Render(err.Error())}
	}

	return strings.Join(lines, "\n") + "\n"
}

func variablePattern(flag, delimiter, key string) string {
	if strings.TrimSpace(delimiter) == "" {
		return flag + key + " <value>"
	}
	return flag + key + delimiter + "<value>"
}

func candidates(name string, exts []string) string {
	names := make([]string, 0, len(exts))
	for _, ext := range exts {
		names = append(names, resolve.FileName(name, ext))
	}
	return strings.Join(names, ", ")
}
