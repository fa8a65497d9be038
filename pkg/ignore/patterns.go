// File: pkg/ignore/patterns.go
package ignore

import (
	"os"
	"regexp"
	"strings"
)

// Kind identifies which matching rule a pattern was parsed into.
type Kind int

const (
	KindLiteral Kind = iota
	KindDirectoryPrefix
	KindWildcard
)

func (k Kind) String() string {
	switch k {
	case KindDirectoryPrefix:
		return "directory"
	case KindWildcard:
		return "wildcard"
	default:
		return "literal"
	}
}

// Matcher tests a normalized, working-directory-relative path against one pattern.
type Matcher interface {
	Match(path string) bool
	Kind() Kind
	String() string
}

// DirectoryPrefix excludes every path starting with Prefix.
// Prefix is the pattern with its trailing separator removed.
type DirectoryPrefix struct {
	Prefix string
}

func (d DirectoryPrefix) Match(path string) bool { return strings.HasPrefix(path, d.Prefix) }
func (d DirectoryPrefix) Kind() Kind             { return KindDirectoryPrefix }
func (d DirectoryPrefix) String() string         { return d.Prefix + "/" }

// Literal matches a path equal to Text or containing it anywhere.
type Literal struct {
	Text string
}

func (l Literal) Match(path string) bool {
	return path == l.Text || strings.Contains(path, l.Text)
}
func (l Literal) Kind() Kind     { return KindLiteral }
func (l Literal) String() string { return l.Text }

// Wildcard is a glob compiled to an anchored regular expression.
type Wildcard struct {
	Glob string
	expr *regexp.Regexp
}

// NewWildcard compiles glob. When dirPrefix is set the expression is anchored at
// the start only, giving the glob the same reach as a DirectoryPrefix.
func NewWildcard(glob string, dirPrefix bool) *Wildcard {
	expr := "^" + wildcardToRegex(glob)
	if dirPrefix {
		expr += ".*"
	}
	expr += "$"
	return &Wildcard{Glob: glob, expr: regexp.MustCompile(expr)}
}

func (w *Wildcard) Match(path string) bool { return w.expr.MatchString(path) }
func (w *Wildcard) Kind() Kind             { return KindWildcard }
func (w *Wildcard) String() string         { return w.Glob }

// Regexp exposes the compiled expression.
func (w *Wildcard) Regexp() *regexp.Regexp { return w.expr }

// wildcardToRegex quotes everything except '*' and '?', which become '.*' and '.'.
// Quoting rune by rune means the result always compiles.
func wildcardToRegex(glob string) string {
	var b strings.Builder
	for _, r := range glob {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	return b.String()
}

// hasWildcard reports whether s contains a glob metacharacter.
func hasWildcard(s string) bool {
	return strings.ContainsAny(s, "*?")
}

// NormalizePath converts every path separator to '/'.
func NormalizePath(path string) string {
	if os.PathSeparator != '/' {
		path = strings.ReplaceAll(path, string(os.PathSeparator), "/")
	}
	return strings.ReplaceAll(path, `\`, "/")
}

// ParsePattern turns one ignore-file line into a Matcher.
// Returns nil for blank lines and comments.
func ParsePattern(line string) Matcher {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}

	pattern := NormalizePath(trimmed)
	dirPrefix := strings.HasSuffix(pattern, "/")
	if dirPrefix {
		pattern = strings.TrimSuffix(pattern, "/")
	}

	switch {
	case hasWildcard(pattern):
		return NewWildcard(pattern, dirPrefix)
	case dirPrefix:
		return DirectoryPrefix{Prefix: pattern}
	default:
		return Literal{Text: pattern}
	}
}
