package records

import (
	"fmt"
	"regexp"
	"sort"
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Filter es igualdad por campo del documento. Vacío = todos.
type Filter map[string]string

// ByName es el filtro que usan findByName y compañía.
func ByName(name string) Filter {
	return Filter{"name": name}
}

// Keys devuelve los campos en orden estable (los adapters SQL arman el WHERE con esto).
func (f Filter) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate exige que cada campo sea un identificador simple; los adapters SQL
// interpolan el nombre del campo en la query.
func (f Filter) Validate() error {
	for k := range f {
		if !ValidIdentifier(k) {
			return fmt.Errorf("invalid filter field %q", k)
		}
	}
	return nil
}

// ValidIdentifier reporta si s sirve como nombre de campo o de colección.
func ValidIdentifier(s string) bool {
	return identRe.MatchString(s)
}
