package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Fields flattens binding errors into a field-to-reason map for 422 bodies.
// Non-validator errors (malformed JSON, type mismatches) yield nil.
func Fields(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = "this field is required"
		default:
			fields[name] = fmt.Sprintf("failed %q validation", fe.Tag())
		}
	}
	return fields
}
