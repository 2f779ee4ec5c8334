package validation

import (
	"regexp"
	"strings"
)

// dateShapes are the accepted date formats for startDate/endDate/
// graduationDate fields, per spec.md §4.2.
var dateShapes = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}-\d{2}$`),          // YYYY-MM
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),    // YYYY-MM-DD
	regexp.MustCompile(`^\d{2}-\d{4}$`),          // MM-YYYY
	regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`),    // MM-DD-YYYY
}

// IsValidDateShape reports whether value matches one of the accepted date
// shapes, is empty, or is the literal "Present" (case-insensitive).
func IsValidDateShape(value string) bool {
	if value == "" {
		return true
	}
	if strings.EqualFold(value, "present") {
		return true
	}
	for _, re := range dateShapes {
		if re.MatchString(value) {
			return true
		}
	}
	return false
}
