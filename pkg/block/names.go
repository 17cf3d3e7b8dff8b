package block

import (
	"strings"
	"unicode"
)

// FromMixedCase converts a mixedCase Lua API name to lower snake_case.
// An underscore is inserted only at a lowercase-to-uppercase boundary, so a
// run of capitals collapses into one word (getID -> get_id).
func FromMixedCase(s string) string {
	var result strings.Builder
	prevLower := false

	for _, r := range s {
		if unicode.IsUpper(r) {
			if prevLower {
				result.WriteByte('_')
			}
			result.WriteRune(unicode.ToLower(r))
			prevLower = false
		} else {
			result.WriteRune(r)
			prevLower = unicode.IsLower(r)
		}
	}
	return result.String()
}

// DeriveBlockName computes the canonical block-type name for a prefix and
// metadata record. The explicit BlockName wins; otherwise the name is derived
// from FuncName, which must be present.
func DeriveBlockName(prefix string, meta Metadata) (string, error) {
	if meta.BlockName != "" {
		return prefix + "_" + meta.BlockName, nil
	}
	if meta.FuncName == "" {
		return "", NewDefinitionError(KindConfiguration, ErrMissingFuncName, "",
			"funcName not defined")
	}
	return prefix + "_" + FromMixedCase(meta.FuncName), nil
}

// capitalize uppercases the first letter of s, used for wiki help URLs.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
