// Package markdown renders documentation entries as a reference document.
package markdown

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/specdoc/pkg/domain"
)

// Document holds the prose surrounding the list of options.
type Document struct {
	Title  string
	Intro  string
	Footer string
}

// DefaultDocument returns the standard prose for a schema named name.
func DefaultDocument(name string) Document {
	return Document{
		Title:  "The `" + name + "` Format",
		Intro:  "Here is a list of all the options understood by " + name + ".",
		Footer: "This file is generated. You currently update it by running `specdoc generate`.",
	}
}

// Render writes one section per entry, in the order given.
func Render(entries []domain.Entry, doc Document) string {
	var sb strings.Builder

	sb.WriteString("## " + doc.Title + "\n")
	if doc.Intro != "" {
		sb.WriteString(doc.Intro + "\n\n")
	}
	sb.WriteString("### Available Options\n")

	for _, e := range entries {
		writeEntry(&sb, e)
	}

	sb.WriteString("## Generating the Specification\n\n")
	if doc.Footer != "" {
		sb.WriteString(doc.Footer + "\n")
	}
	return sb.String()
}

func writeEntry(sb *strings.Builder, e domain.Entry) {
	sb.WriteString("#### `" + e.Key.String() + "`\n")
	if e.Required {
		sb.WriteString("**This setting is required!**\n\n")
	}
	if e.Experimental {
		sb.WriteString("**This setting is experimental and might be removed!**\n\n")
	}

	if e.IsAlias() {
		other := e.AliasFor.String()
		sb.WriteString("Alias for [`" + other + "`](#" + other + ").\n")
		return
	}
	if e.Description != "" {
		sb.WriteString(e.Description + "\n\n")
	}
	if e.Format != "" {
		sb.WriteString("**Expected format:** " + Capitalize(e.Format) + ".\n\n")
	}
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
