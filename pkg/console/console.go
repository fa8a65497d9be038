// Package console prints styled, human-facing messages.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("37"))  // dark green
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))  // yellow
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))  // cyan
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250")) // light grey
)

func Success(w io.Writer, text string) { fmt.Fprintln(w, successStyle.Render(text)) }
func Warning(w io.Writer, text string) { fmt.Fprintln(w, warningStyle.Render(text)) }
func Info(w io.Writer, text string)    { fmt.Fprintln(w, infoStyle.Render(text)) }
func Detail(w io.Writer, text string)  { fmt.Fprintln(w, detailStyle.Render(text)) }
