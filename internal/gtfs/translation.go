package gtfs

import (
	"slices"

	"gtfsvalidator/internal/notice"
)

const TranslationFile = "translations.txt"

// Tables whose values translations.txt may translate.
var translatableTables = []string{
	"agency", "stops", "routes", "trips", "stop_times", "pathways", "levels", "feed_info", "attributions",
}

type TranslationKey struct {
	TableName   string
	FieldName   string
	Language    string
	RecordID    string
	RecordSubID string
	FieldValue  string
}

// Translation targets a value either by record (RecordID, plus RecordSubID
// for stop_times) or by the original FieldValue, never both. feed_info rows
// carry neither.
type Translation struct {
	TableName   string
	FieldName   string
	Language    string
	Translation string
	RecordID    string
	RecordSubID string
	FieldValue  string
}

func (t *Translation) Key() TranslationKey {
	return TranslationKey{
		TableName:   t.TableName,
		FieldName:   t.FieldName,
		Language:    t.Language,
		RecordID:    t.RecordID,
		RecordSubID: t.RecordSubID,
		FieldValue:  t.FieldValue,
	}
}

type TranslationBuilder struct {
	tableName   *string
	fieldName   *string
	language    *string
	translation *string
	recordID    *string
	recordSubID *string
	fieldValue  *string
}

func NewTranslationBuilder() *TranslationBuilder {
	return &TranslationBuilder{}
}

func (b *TranslationBuilder) TableName(v *string) *TranslationBuilder { b.tableName = v; return b }
func (b *TranslationBuilder) FieldName(v *string) *TranslationBuilder { b.fieldName = v; return b }
func (b *TranslationBuilder) Language(v *string) *TranslationBuilder { b.language = v; return b }
func (b *TranslationBuilder) Translation(v *string) *TranslationBuilder { b.translation = v; return b }
func (b *TranslationBuilder) RecordID(v *string) *TranslationBuilder { b.recordID = v; return b }
func (b *TranslationBuilder) RecordSubID(v *string) *TranslationBuilder { b.recordSubID = v; return b }
func (b *TranslationBuilder) FieldValue(v *string) *TranslationBuilder { b.fieldValue = v; return b }

func (b *TranslationBuilder) Clear() *TranslationBuilder {
	*b = TranslationBuilder{}
	return b
}

func (b *TranslationBuilder) Build() BuildResult[Translation] {
	c := newCheck(TranslationFile, nil)
	t := &Translation{
		TableName:   text(b.tableName),
		FieldName:   requireText(c, "field_name", b.fieldName),
		Language:    requireText(c, "language", b.language),
		Translation: requireText(c, "translation", b.translation),
		RecordID:    text(b.recordID),
		RecordSubID: text(b.recordSubID),
		FieldValue:  text(b.fieldValue),
	}

	hasRecordID := t.RecordID != ""
	hasRecordSubID := t.RecordSubID != ""
	hasFieldValue := t.FieldValue != ""

	switch {
	case t.TableName == "":
		c.missing("table_name")
	case !slices.Contains(translatableTables, t.TableName):
		c.add(notice.UnexpectedEnumValue(TranslationFile, "table_name", c.entityID, t.TableName))
	}

	// Without a usable table_name the record rules of ordinary tables apply.
	switch t.TableName {
	case "feed_info":
		const reason = "when table_name is feed_info"
		if hasRecordID {
			c.add(notice.ForbiddenField(TranslationFile, "record_id", c.entityID, reason))
		}
		if hasRecordSubID {
			c.add(notice.ForbiddenField(TranslationFile, "record_sub_id", c.entityID, reason))
		}
		if hasFieldValue {
			c.add(notice.ForbiddenField(TranslationFile, "field_value", c.entityID, reason))
		}

	case "stop_times":
		if hasFieldValue {
			if hasRecordID {
				c.add(notice.ConflictingFields(TranslationFile, "record_id", "field_value", c.entityID))
			}
			if hasRecordSubID {
				c.add(notice.ConflictingFields(TranslationFile, "record_sub_id", "field_value", c.entityID))
			}
		} else {
			if !hasRecordID {
				c.missing("record_id")
			}
			if !hasRecordSubID {
				c.missing("record_sub_id")
			}
		}

	default:
		switch {
		case hasRecordID && hasFieldValue:
			c.add(notice.ConflictingFields(TranslationFile, "record_id", "field_value", c.entityID))
		case !hasRecordID && !hasFieldValue:
			c.add(notice.MissingConditionalFields(TranslationFile, "record_id", "field_value", c.entityID))
		}
		if hasRecordSubID && hasFieldValue {
			c.add(notice.ConflictingFields(TranslationFile, "record_sub_id", "field_value", c.entityID))
		}
	}

	if c.failed() {
		return Failure[Translation](c.notices...)
	}
	return Success(t)
}
