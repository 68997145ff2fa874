// cmd/archstage/variables.go
package main

import (
	"fmt"
	"regexp"
	"strings"
)

var varNameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+`)

// VariableStore holds the placeholders available to source templates.
// Only ARCH is defined today.
type VariableStore struct {
	vars map[string]string
}

func NewVariableStore(arch string) *VariableStore {
	return &VariableStore{
		vars: map[string]string{ArchVariable: arch},
	}
}

func (vs *VariableStore) Get(key string) (string, bool) {
	val, ok := vs.vars[key]
	return val, ok
}

// Expand substitutes $(NAME) and $NAME references. $$ yields a literal '$'.
// Referencing an undefined variable is an error.
func (vs *VariableStore) Expand(input string) (string, error) {
	var result strings.Builder
	i := 0
	for i < len(input) {
		char := input[i]
		if char != '$' {
			result.WriteByte(char)
			i++
			continue
		}

		if i+1 >= len(input) {
			return "", fmt.Errorf("dangling '$' at end of template: %s", input)
		}

		switch input[i+1] {
		case '$':
			result.WriteByte('$')
			i += 2
		case '(':
			start := i + 2
			balance := 1
			end := -1
			for j := start; j < len(input); j++ {
				if input[j] == '(' {
					balance++
				} else if input[j] == ')' {
					balance--
					if balance == 0 {
						end = j
						break
					}
				}
			}
			if end == -1 {
				return "", fmt.Errorf("unmatched parenthesis in variable expression: %s", input[i:])
			}
			content := input[start:end]
			i = end + 1

			name, err := vs.Expand(content)
			if err != nil {
				return "", err
			}
			val, err := vs.lookup(strings.TrimSpace(name))
			if err != nil {
				return "", err
			}
			result.WriteString(val)
		default:
			name := varNameRegex.FindString(input[i+1:])
			if name == "" {
				return "", fmt.Errorf("invalid variable reference: %s", input[i:])
			}
			i += 1 + len(name)
			val, err := vs.lookup(name)
			if err != nil {
				return "", err
			}
			result.WriteString(val)
		}
	}
	return result.String(), nil
}

func (vs *VariableStore) lookup(name string) (string, error) {
	val, ok := vs.Get(name)
	if !ok {
		return "", fmt.Errorf("undefined variable '%s'", name)
	}
	return val, nil
}

// hasPlaceholder reports whether s contains anything Expand would substitute.
func hasPlaceholder(s string) bool {
	return strings.Contains(s, "$")
}
