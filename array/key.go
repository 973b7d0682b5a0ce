package array

import "strconv"

// Key addresses one slot of an [Array]: either an ordered index or an
// associative name.
//
// Key is comparable and may be used as a map key. The zero Key is Index(0).
type Key struct {
	index int
	name  string
	named bool
}

// Index returns the ordered key for position i.
// Negative positions never address a slot.
func Index(i int) Key { return Key{index: i} }

// Name returns the associative key for name, without classification.
// Name("3") is an associative key distinct from Index(3); use [ParseKey]
// to classify a string the way the container does.
func Name(name string) Key { return Key{name: name, named: true} }

// ParseKey classifies s: the canonical decimal form of a non-negative
// integer ("0", "7", "42") yields an ordered key, anything else ("01",
// "+1", "-1", "x") an associative one.
func ParseKey(s string) Key {
	if i, ok := parseIndex(s); ok {
		return Index(i)
	}
	return Name(s)
}

func parseIndex(s string) (int, bool) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return i, true
}

// IsOrdered reports whether k is an ordered index.
func (k Key) IsOrdered() bool { return !k.named }

// Int returns the ordered index and true, or 0 and false for a name.
func (k Key) Int() (int, bool) {
	if k.named {
		return 0, false
	}
	return k.index, true
}

// Name returns the associative name and true, or "" and false for an index.
func (k Key) Name() (string, bool) {
	if !k.named {
		return "", false
	}
	return k.name, true
}

// String renders the index in decimal or the name verbatim.
func (k Key) String() string {
	if k.named {
		return k.name
	}
	return strconv.Itoa(k.index)
}
