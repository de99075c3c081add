package parser

import (
	"strings"

	"github.com/yaklabco/aglint/pkg/ast"
	"github.com/yaklabco/aglint/pkg/rawtext"
)

// agentBracketBody strips an optional leading `!`/`# ` marker and returns
// the text between a line's `[` and `]`, or ok=false if the line isn't
// bracket-shaped at all (spec §4.3 "Agent").
func agentBracketBody(trimmed string) (body string, ok bool) {
	s := trimmed
	switch {
	case strings.HasPrefix(s, "!"):
		s = strings.TrimPrefix(s[1:], " ")
	case strings.HasPrefix(s, "#"):
		s = strings.TrimPrefix(s[1:], " ")
	}

	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") || len(s) < 2 {
		return "", false
	}

	return s[1 : len(s)-1], true
}

// containsVersionMarker reports whether a word looks like the start of a
// version token: it contains a digit or a dot.
func containsVersionMarker(word string) bool {
	for i := 0; i < len(word); i++ {
		if (word[i] >= '0' && word[i] <= '9') || word[i] == '.' {
			return true
		}
	}
	return false
}

func splitAgentEntry(token string) ast.AgentEntry {
	words := strings.Fields(token)

	versionIdx := len(words)
	for i, w := range words {
		if containsVersionMarker(w) {
			versionIdx = i
			break
		}
	}

	entry := ast.AgentEntry{
		Adblock: strings.Join(words[:versionIdx], " "),
	}
	if versionIdx < len(words) {
		entry.Version = strings.Join(words[versionIdx:], " ")
		entry.HasVersion = true
	}

	return entry
}

// TryParseAgent attempts to parse a line as an Agent comment. ok is false
// (with a nil error) when the line isn't bracket-shaped at all.
func TryParseAgent(raw string, lineNo int) (*ast.Agent, bool, error) {
	start, end := trimBounds(raw)
	trimmed := raw[start:end]

	body, ok := agentBracketBody(trimmed)
	if !ok {
		return nil, false, nil
	}

	var entries []ast.AgentEntry
	for _, tok := range strings.Split(body, ";") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		entries = append(entries, splitAgentEntry(tok))
	}

	return &ast.Agent{
		Base:   baseAt(lineNo, start, end),
		Agents: entries,
	}, true, nil
}

// GenerateAgent renders an Agent comment back to text, applying the
// normalizations documented in spec §6: whitespace around entries and a
// trailing `;` are dropped.
func GenerateAgent(a *ast.Agent) string {
	parts := make([]string, 0, len(a.Agents))
	for _, e := range a.Agents {
		if e.HasVersion {
			parts = append(parts, e.Adblock+" "+e.Version)
		} else {
			parts = append(parts, e.Adblock)
		}
	}
	return "[" + strings.Join(parts, "; ") + "]"
}

// trimBounds returns the [start,end) byte range of raw with leading and
// trailing ASCII space/tab trimmed.
func trimBounds(raw string) (start, end int) {
	start = rawtext.TrimLeadingWhitespace(raw)
	end = rawtext.TrimTrailingWhitespace(raw)
	if start > end {
		start = end
	}
	return start, end
}

// baseAt builds a Common-syntax Base node spanning [start,end) on lineNo.
// Family parsers that need a different syntax tag override Syn after the
// fact.
func baseAt(lineNo, start, end int) ast.Base {
	return ast.Base{Pos: rawtext.Position{
		StartLine:   lineNo,
		StartColumn: start,
		EndLine:     lineNo,
		EndColumn:   end,
	}}
}
