package notice

import (
	"fmt"
	"strings"
)

// Severity of a notice, derived from the first letter of its code.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	return []string{"ERROR", "WARNING"}[s]
}

// Notice is one validation finding. Notices are values: they are never
// mutated after construction and never deduplicated.
type Notice struct {
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Filename    string `json:"filename"`
	FieldName   string `json:"fieldName,omitempty"`
	EntityID    string `json:"entityId,omitempty"`
	// Row is the 1-based line number of the record involved, when known.
	Row int `json:"row,omitempty"`
}

// Severity reports whether the notice is an error or a warning.
func (n Notice) Severity() Severity {
	if strings.HasPrefix(n.Code, "W") {
		return SeverityWarning
	}
	return SeverityError
}

// IsZero reports whether n carries no code, which is never a valid notice.
func (n Notice) IsZero() bool {
	return n.Code == ""
}

// AtRow returns a copy of n tied to the record at the given line.
func (n Notice) AtRow(row int) Notice {
	n.Row = row
	return n
}

func (n Notice) String() string {
	return fmt.Sprintf("[%s] %s (%s): %s", n.Code, n.Title, n.Filename, n.Description)
}

// NoID stands in for the entity id when a row carries no identifier column.
const NoID = "no id"

func CannotOpenFeed(path string, reason error) Notice {
	return Notice{
		Code:        "E001",
		Title:       "Cannot open feed",
		Description: fmt.Sprintf("An error occurred while trying to open the feed: %v", reason),
		Filename:    path,
	}
}

func MissingRequiredFile(filename string) Notice {
	return Notice{
		Code:        "E002",
		Title:       "Missing required file",
		Description: "File " + filename + " is required.",
		Filename:    filename,
	}
}

func CannotConstructDataProvider(filename string) Notice {
	return Notice{
		Code:        "E002",
		Title:       "Data provider error",
		Description: "An error occurred while trying to access raw data for file: " + filename,
		Filename:    filename,
	}
}

func MissingHeader(filename, column string) Notice {
	return Notice{
		Code:        "E003",
		Title:       "Missing required column",
		Description: fmt.Sprintf("Column %s is required in file: %s", column, filename),
		Filename:    filename,
		FieldName:   column,
	}
}

func InvalidRowLength(filename string, rowIndex, expected, actual int) Notice {
	return Notice{
		Code:        "E004",
		Title:       "Invalid row length",
		Description: fmt.Sprintf("Invalid length for row:%d -- expected:%d actual:%d", rowIndex, expected, actual),
		Filename:    filename,
		Row:         rowIndex,
	}
}

// fieldValue builds the notices raised by the row type parser, which all
// share one description layout.
func fieldValue(code, title, filename, field, entityID, value, detail string) Notice {
	desc := fmt.Sprintf("Invalid value: %q for field: %s in file: %s for entity with id: %s", value, field, filename, entityID)
	if detail != "" {
		desc += " -- " + detail
	}
	return Notice{
		Code:        code,
		Title:       title,
		Description: desc,
		Filename:    filename,
		FieldName:   field,
		EntityID:    entityID,
	}
}

func CannotParseFloat(filename, field, entityID, value string) Notice {
	return fieldValue("E005", "Invalid float value", filename, field, entityID, value, "")
}

func CannotParseInteger(filename, field, entityID, value string) Notice {
	return fieldValue("E006", "Invalid integer value", filename, field, entityID, value, "")
}

func CannotParseDate(filename, field, entityID, value string) Notice {
	return fieldValue("E007", "Invalid date value", filename, field, entityID, value, "expected format YYYYMMDD")
}

func InvalidTime(filename, field, entityID, value string) Notice {
	return fieldValue("E008", "Invalid time value", filename, field, entityID, value, "expected format HH:MM:SS")
}

func InvalidColor(filename, field, entityID, value string) Notice {
	return fieldValue("E009", "Invalid color value", filename, field, entityID, value, "expected six hexadecimal digits")
}

func FloatFieldValueOutOfRange(filename, field, entityID, value string, min, max float64) Notice {
	return fieldValue("E010", "Out of range float value", filename, field, entityID, value,
		fmt.Sprintf("expected range: [%g, %g]", min, max))
}

func IntegerFieldValueOutOfRange(filename, field, entityID, value string, min, max float64) Notice {
	return fieldValue("E011", "Out of range integer value", filename, field, entityID, value,
		fmt.Sprintf("expected range: [%g, %g]", min, max))
}

func InvalidURL(filename, field, entityID, value string) Notice {
	return fieldValue("E012", "Invalid url", filename, field, entityID, value, "")
}

func InvalidTimezone(filename, field, entityID, value string) Notice {
	return fieldValue("E013", "Invalid timezone", filename, field, entityID, value, "")
}

func InvalidLanguageCode(filename, field, entityID, value string) Notice {
	return fieldValue("E014", "Invalid language code", filename, field, entityID, value, "")
}

func InvalidCurrencyCode(filename, field, entityID, value string) Notice {
	return fieldValue("E022", "Invalid currency code", filename, field, entityID, value, "")
}

func InvalidEmail(filename, field, entityID, value string) Notice {
	return fieldValue("E023", "Invalid email", filename, field, entityID, value, "")
}

func MissingRequiredValue(filename, field, entityID string) Notice {
	return Notice{
		Code:        "E015",
		Title:       "Missing required value",
		Description: fmt.Sprintf("Missing value for field: %s in file: %s for entity with id: %s", field, filename, entityID),
		Filename:    filename,
		FieldName:   field,
		EntityID:    entityID,
	}
}

func UnexpectedEnumValue(filename, field, entityID string, value any) Notice {
	return Notice{
		Code:        "E016",
		Title:       "Unexpected enum value",
		Description: fmt.Sprintf("Unexpected value: %v for field: %s in file: %s", value, field, filename),
		Filename:    filename,
		FieldName:   field,
		EntityID:    entityID,
	}
}

func ConflictingFields(filename, fieldA, fieldB, entityID string) Notice {
	return Notice{
		Code:        "E017",
		Title:       "Conflicting fields",
		Description: fmt.Sprintf("%s and %s can not both be defined", fieldA, fieldB),
		Filename:    filename,
		FieldName:   fieldA,
		EntityID:    entityID,
	}
}

func MissingConditionalFields(filename, fieldA, fieldB, entityID string) Notice {
	return Notice{
		Code:        "E018",
		Title:       "Missing conditionally required fields",
		Description: fmt.Sprintf("%s and %s can not both be undefined", fieldA, fieldB),
		Filename:    filename,
		FieldName:   fieldA,
		EntityID:    entityID,
	}
}

func DuplicatedEntity(filename, field, entityID string) Notice {
	return Notice{
		Code:        "E019",
		Title:       "Duplicated entity",
		Description: fmt.Sprintf("Entity must be unique in file: %s -- field: %s -- entity id: %s", filename, field, entityID),
		Filename:    filename,
		FieldName:   field,
		EntityID:    entityID,
	}
}

// ForbiddenField reports a value present where the row's other fields rule
// it out. reason completes the sentence, e.g. "when table_name is feed_info".
func ForbiddenField(filename, field, entityID, reason string) Notice {
	desc := field + " can not be defined"
	if reason != "" {
		desc += " " + reason
	}
	return Notice{
		Code:        "E020",
		Title:       "Forbidden field value",
		Description: desc,
		Filename:    filename,
		FieldName:   field,
		EntityID:    entityID,
	}
}

func InconsistentDateRange(filename, startField, endField, entityID, start, end string) Notice {
	return Notice{
		Code:        "E021",
		Title:       "Inconsistent date range",
		Description: fmt.Sprintf("%s: %s is after %s: %s", startField, start, endField, end),
		Filename:    filename,
		FieldName:   startField,
		EntityID:    entityID,
	}
}

func InconsistentTimeRange(filename, startField, endField, entityID, start, end string) Notice {
	return Notice{
		Code:        "E024",
		Title:       "Inconsistent time range",
		Description: fmt.Sprintf("%s: %s is not before %s: %s", startField, start, endField, end),
		Filename:    filename,
		FieldName:   startField,
		EntityID:    entityID,
	}
}

func NonStandardFile(filename string) Notice {
	return Notice{
		Code:        "W001",
		Title:       "Non standard file found",
		Description: fmt.Sprintf("File %s is not part of the GTFS specification", filename),
		Filename:    filename,
	}
}
