package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/specdoc/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, []domain.Entry{
		{Key: domain.Path{"language"}, Format: "string", Required: true},
		{Key: domain.Path{"lang"}, AliasFor: domain.Path{"language"}, Required: true, Experimental: true},
	})

	out := buf.String()
	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "language")
	assert.Contains(t, out, "alias for language")
	assert.Contains(t, out, "required,experimental")
}

func TestNewRenderer_NoTTY(t *testing.T) {
	render, err := NewRenderer(60)
	require.NoError(t, err)

	out, err := render("## Options\n\n**bold** text\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Options")
	assert.Contains(t, out, "bold")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "schema reference generator")
	assert.Contains(t, buf.String(), "schema reference generator")
	assert.Greater(t, strings.Count(buf.String(), "\n"), 5)
}
