package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/specdoc/pkg/domain"
)

const rootID = "root"

// GenerateMermaid produces a Mermaid flowchart of the key hierarchy described by entries.
// It applies semantic styling:
// - Root: ((Circle))
// - Alias: >Flag]
// - Default: [Rectangle]
// Keys nested through a sequence hang off their list with a "[]" edge label.
// Required and experimental keys get the matching class.
func GenerateMermaid(name string, entries []domain.Entry) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")
	sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", rootID, escape(name)))

	known := make(map[string]bool, len(entries))
	for _, e := range entries {
		known[e.Key.String()] = true
	}

	var required, experimental []string
	for _, e := range entries {
		safeID := sanitizeMermaidID(e.Key.String())
		label := escape(last(e.Key))

		if e.IsAlias() {
			sb.WriteString(fmt.Sprintf("    %s>\"%s\"]\n", safeID, label))
			sb.WriteString(fmt.Sprintf("    %s -. alias .-> %s\n", safeID, sanitizeMermaidID(e.AliasFor.String())))
		} else {
			sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", safeID, label))
		}

		parent, viaList := parentOf(e.Key, known)
		arrow := "-->"
		if viaList {
			arrow = "-- \"[]\" -->"
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", parent, arrow, safeID))

		if e.Required {
			required = append(required, safeID)
		}
		if e.Experimental {
			experimental = append(experimental, safeID)
		}
	}

	if len(required) > 0 || len(experimental) > 0 {
		sb.WriteString("\n    %% Flags\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef required fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef experimental fill:#fff3e0,stroke:#e65100,stroke-dasharray:4,color:#000;\n")
		if len(required) > 0 {
			sb.WriteString(fmt.Sprintf("    class %s required;\n", strings.Join(required, ",")))
		}
		if len(experimental) > 0 {
			sb.WriteString(fmt.Sprintf("    class %s experimental;\n", strings.Join(experimental, ",")))
		}
	}

	return sb.String()
}

// parentOf finds the closest documented ancestor of key.
func parentOf(key domain.Path, known map[string]bool) (string, bool) {
	viaList := false
	for i := len(key) - 1; i > 0; i-- {
		prefix := key[:i]
		if prefix[len(prefix)-1] == domain.SequenceSegment {
			viaList = true
			continue
		}
		if known[prefix.String()] {
			return sanitizeMermaidID(prefix.String()), viaList
		}
	}
	return rootID, viaList
}

func last(key domain.Path) string {
	if len(key) == 0 {
		return ""
	}
	return key[len(key)-1]
}

func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, domain.SequenceSegment, "__")
	s = strings.ReplaceAll(s, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return "k_" + s
}
