package constants

import "strings"

// Field is the canonical identifier for one of the four extracted
// receipt fields.
type Field string

// Stable values (these exact strings cross the wire and appear in logs).
const (
	FieldDate    Field = "date"
	FieldPayee   Field = "payee"
	FieldAmount  Field = "amount"
	FieldPurpose Field = "purpose"
)

var allFields = []Field{FieldDate, FieldPayee, FieldAmount, FieldPurpose}

// AllFields returns the four fields in presentation order.
func AllFields() []Field {
	out := make([]Field, len(allFields))
	copy(out, allFields)
	return out
}

// ParseField canonicalizes a field name from external input.
func ParseField(input string) (Field, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, f := range allFields {
		if normalized == string(f) {
			return f, true
		}
	}
	return "", false
}
