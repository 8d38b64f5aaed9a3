// Package source extracts constructor signatures from Solidity source
// text. It is a best-effort lexical scan, not a parser: comments are
// stripped, the first constructor declaration wins, and everything after
// the parameter list's closing paren (modifiers, base constructor calls)
// is ignored.
package source

import (
	"regexp"
	"strings"

	"github.com/hyperkit-labs/hyperkit/internal/domain"
)

// Param is one parameter lexed from a constructor declaration.
type Param struct {
	RawType string
	Name    string
	// Default is a literal following '='. Standard Solidity has no
	// parameter defaults, but the scan tolerates them so annotated
	// templates can carry deploy-time values.
	Default string
}

// Signature is the constructor signature recovered from source text.
type Signature struct {
	Params []Param
	// Raw is the matched parameter list, kept for diagnostics.
	Raw string
}

// Arity returns the scanned parameter count.
func (s *Signature) Arity() int {
	if s == nil {
		return 0
	}
	return len(s.Params)
}

var constructorRe = regexp.MustCompile(`\bconstructor\s*\(`)

// locationKeywords are dropped from parameter declarations before the
// type and name are read.
var locationKeywords = map[string]bool{
	"memory":   true,
	"calldata": true,
	"storage":  true,
	"payable":  true,
}

// Scan extracts the first constructor declaration from Solidity source.
// It returns domain.ErrNoConstructor when the source has none and a
// *domain.SourceParseError when a declaration is present but its
// parameter list cannot be read.
func Scan(text string) (*Signature, error) {
	stripped := stripComments(text)

	loc := constructorRe.FindStringIndex(stripped)
	if loc == nil {
		return nil, domain.ErrNoConstructor
	}

	// loc[1] is just past the opening paren.
	list, ok := balancedParens(stripped[loc[1]:])
	if !ok {
		return nil, &domain.SourceParseError{Reason: "unbalanced parentheses in constructor parameter list"}
	}

	sig := &Signature{Raw: strings.TrimSpace(list)}
	if strings.TrimSpace(list) == "" {
		return sig, nil
	}

	for _, raw := range splitTopLevel(list, ',') {
		param, err := parseParam(raw)
		if err != nil {
			return nil, err
		}
		sig.Params = append(sig.Params, param)
	}
	return sig, nil
}

// balancedParens returns the text up to the paren balancing an already
// consumed '('. The bool is false when the list never closes.
func balancedParens(s string) (string, bool) {
	depth := 1
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[:i], true
			}
		}
	}
	return "", false
}

// splitTopLevel splits on sep, ignoring occurrences nested inside
// parentheses or brackets.
func splitTopLevel(s string, sep rune) []string {
	var parts []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// parseParam reads "type [location] [name] [= literal]".
func parseParam(raw string) (Param, error) {
	var param Param

	decl := raw
	if eq := indexTopLevel(raw, '='); eq != -1 {
		decl = raw[:eq]
		param.Default = strings.TrimSpace(raw[eq+1:])
	}

	var tokens []string
	for _, tok := range strings.Fields(decl) {
		if locationKeywords[tok] {
			continue
		}
		tokens = append(tokens, tok)
	}

	switch len(tokens) {
	case 0:
		return param, &domain.SourceParseError{Reason: "empty constructor parameter: " + strings.TrimSpace(raw)}
	case 1:
		param.RawType = tokens[0]
	default:
		param.RawType = strings.Join(tokens[:len(tokens)-1], " ")
		param.Name = tokens[len(tokens)-1]
	}
	return param, nil
}

// indexTopLevel finds the first occurrence of c outside parens/brackets,
// or -1.
func indexTopLevel(s string, c rune) int {
	depth := 0
	for i, r := range s {
		switch r {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		default:
			if r == c && depth == 0 {
				return i
			}
		}
	}
	return -1
}

// stripComments removes // and /* */ comments, preserving string
// literals so commented-out constructors cannot be matched.
func stripComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		switch {
		case strings.HasPrefix(s[i:], "//"):
			if nl := strings.IndexByte(s[i:], '\n'); nl != -1 {
				i += nl
			} else {
				i = len(s)
			}
		case strings.HasPrefix(s[i:], "/*"):
			if end := strings.Index(s[i+2:], "*/"); end != -1 {
				i += 2 + end + 2
			} else {
				i = len(s)
			}
			// Keep token separation where the comment was.
			b.WriteByte(' ')
		case s[i] == '"' || s[i] == '\'':
			quote := s[i]
			b.WriteByte(s[i])
			i++
			for i < len(s) && s[i] != quote {
				if s[i] == '\\' && i+1 < len(s) {
					b.WriteByte(s[i])
					i++
				}
				b.WriteByte(s[i])
				i++
			}
			if i < len(s) {
				b.WriteByte(s[i])
				i++
			}
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}
