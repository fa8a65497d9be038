// File: pkg/combine/config.go
package combine

import (
	"errors"
	"fmt"
	"strings"
)

// Defaults used when the CLI leaves a setting empty.
const (
	DefaultOutputDir      = "ai"
	DefaultOutputFileName = "project_contents.txt"
)

// ErrNotText is returned when a file's contents are not valid UTF-8.
var ErrNotText = errors.New("file is not valid UTF-8 text")

// Arguments holds the configuration for one generate run. Nothing is read from
// process state; the caller supplies the working directory explicitly.
type Arguments struct {
	WorkDir        string   // Directory ignore patterns and the output directory are relative to.
	Root           string   // Directory to scan; relative paths resolve against WorkDir.
	IgnoreFileName string   // Name of the ignore file inside WorkDir.
	OutputDir      string   // Output directory, relative to WorkDir unless absolute.
	OutputFileName string   // Name of the generated document.
	Template       Template // Layout of the generated document.
}

// FileEntry is one file selected by the walker.
type FileEntry struct {
	Path    string // Absolute path on disk.
	RelPath string // Path relative to the scanned root, '/'-separated.
}

// FileContent represents the contents of a single included file.
type FileContent struct {
	Path    string // Relative path as printed in the document.
	Content string // Full file contents.
}

// Template controls the layout of the generated document.
type Template struct {
	Header     string // Introductory text; empty omits it.
	Delimiter  string // Line opening each file section.
	Terminator string // Final marker line; empty omits it.
	Tree       bool   // Emit a directory tree of the included files after the header.
}

// LayoutHeader explains the document layout to whoever reads it next. The
// description follows tmpl's delimiter and terminator.
func LayoutHeader(tmpl Template) string {
	var b strings.Builder
	b.WriteString("The following text is a project's source code, flattened into a single document.\n")
	if tmpl.Delimiter != "" {
		fmt.Fprintf(&b, "Each file starts with the line %q, followed by the file's path relative\n", tmpl.Delimiter)
	} else {
		b.WriteString("Each file starts with its path relative\n")
	}
	b.WriteString("to the project root, a blank line, and the file's full contents.")
	if tmpl.Terminator != "" {
		fmt.Fprintf(&b, "\nThe document ends with the line %q.", tmpl.Terminator)
	}
	return b.String()
}

// DefaultTemplate returns the layout used by the generate command.
func DefaultTemplate() Template {
	tmpl := Template{
		Delimiter:  "----",
		Terminator: "--END--",
	}
	tmpl.Header = LayoutHeader(tmpl)
	return tmpl
}

// Result summarizes a completed generate run.
type Result struct {
	OutputPath string // Absolute path of the written document.
	FileCount  int    // Number of files included.
	Bytes      int    // Size of the written document.
}
