package condition

import (
	"strconv"
	"strings"
)

const (
	keyIsDirty      = "is_dirty"
	keyIsOverweight = "is_overweight"
	keyIsBroken     = "is_broken"

	valueTrue  = "true"
	valueFalse = "false"
)

// flagKeys is the canonical field order of the wire format.
var flagKeys = [...]string{keyIsDirty, keyIsOverweight, keyIsBroken}

// Flags is the decoded form of a condition string.
type Flags struct {
	IsDirty      bool
	IsOverweight bool
	IsBroken     bool
}

// Count returns how many flags are set.
func (f Flags) Count() int {
	n := 0
	for _, v := range [...]bool{f.IsDirty, f.IsOverweight, f.IsBroken} {
		if v {
			n++
		}
	}
	return n
}

// Parse decodes "is_dirty=<bool>,is_overweight=<bool>,is_broken=<bool>".
// Field order is fixed and nothing else may surround or follow the fields.
func Parse(raw string) (Flags, error) {
	var values [len(flagKeys)]bool
	rest := raw

	for i, key := range flagKeys {
		if i > 0 {
			next, ok := strings.CutPrefix(rest, ",")
			if !ok {
				return Flags{}, &FormatError{Raw: raw, Reason: "expected ',' before " + key}
			}
			rest = next
		}

		next, ok := strings.CutPrefix(rest, key+"=")
		if !ok {
			return Flags{}, &FormatError{Raw: raw, Reason: "expected field " + key}
		}
		rest = next

		switch {
		case strings.HasPrefix(rest, valueTrue):
			values[i] = true
			rest = rest[len(valueTrue):]
		case strings.HasPrefix(rest, valueFalse):
			rest = rest[len(valueFalse):]
		default:
			return Flags{}, &FormatError{Raw: raw, Reason: key + " must be true or false"}
		}
	}

	if rest != "" {
		return Flags{}, &FormatError{Raw: raw, Reason: "unexpected trailing text"}
	}

	return Flags{IsDirty: values[0], IsOverweight: values[1], IsBroken: values[2]}, nil
}

// Format is the exact inverse of Parse.
func Format(f Flags) string {
	var b strings.Builder
	b.Grow(len("is_dirty=false,is_overweight=false,is_broken=false"))
	for i, v := range [...]bool{f.IsDirty, f.IsOverweight, f.IsBroken} {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(flagKeys[i])
		b.WriteByte('=')
		b.WriteString(strconv.FormatBool(v))
	}
	return b.String()
}

// Validate reports whether raw is acceptable for ingestion.
func Validate(raw string) error {
	_, err := Parse(raw)
	return err
}
