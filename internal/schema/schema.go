package schema

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed gtfs.yaml
var defaultYAML []byte

// Type is the primitive type a column's raw text must conform to.
type Type string

const (
	TypeText     Type = "text"
	TypeID       Type = "id"
	TypeInteger  Type = "integer"
	TypeFloat    Type = "float"
	TypeDate     Type = "date"
	TypeTime     Type = "time"
	TypeColor    Type = "color"
	TypeURL      Type = "url"
	TypeEmail    Type = "email"
	TypeTimezone Type = "timezone"
	TypeLanguage Type = "language"
	TypeCurrency Type = "currency"
)

var knownTypes = map[Type]bool{
	TypeText: true, TypeID: true, TypeInteger: true, TypeFloat: true,
	TypeDate: true, TypeTime: true, TypeColor: true, TypeURL: true,
	TypeEmail: true, TypeTimezone: true, TypeLanguage: true, TypeCurrency: true,
}

// Column describes one column of a GTFS file.
type Column struct {
	Name     string   `yaml:"name"`
	Type     Type     `yaml:"type"`
	Required bool     `yaml:"required"`
	Min      *float64 `yaml:"min"`
	Max      *float64 `yaml:"max"`
}

// File describes one GTFS file: whether the feed must contain it, the
// column that identifies its rows in notices, and its columns.
type File struct {
	Name     string `yaml:"name"`
	Required bool   `yaml:"required"`
	// Alternative names a file whose presence satisfies the requirement
	// for this one.
	Alternative string   `yaml:"alternative"`
	ID          string   `yaml:"id"`
	Columns     []Column `yaml:"columns"`
}

// Column returns the named column.
func (f *File) Column(name string) (Column, bool) {
	for _, c := range f.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// MissingColumns lists the required columns that header lacks, in schema order.
func (f *File) MissingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	var missing []string
	for _, c := range f.Columns {
		if c.Required && !present[c.Name] {
			missing = append(missing, c.Name)
		}
	}
	return missing
}

// Schema is the set of files a feed is validated against.
type Schema struct {
	files  []*File
	byName map[string]*File
}

type document struct {
	Files []*File `yaml:"files"`
}

// Load parses a YAML schema document.
func Load(data []byte) (*Schema, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	s := &Schema{byName: make(map[string]*File, len(doc.Files))}
	for _, f := range doc.Files {
		if f.Name == "" {
			return nil, fmt.Errorf("parse schema: file without a name")
		}
		if _, dup := s.byName[f.Name]; dup {
			return nil, fmt.Errorf("parse schema: file %s declared twice", f.Name)
		}
		for _, c := range f.Columns {
			if !knownTypes[c.Type] {
				return nil, fmt.Errorf("parse schema: %s.%s: unknown type %q", f.Name, c.Name, c.Type)
			}
		}
		if f.ID != "" {
			if _, ok := f.Column(f.ID); !ok {
				return nil, fmt.Errorf("parse schema: %s: id column %s is not declared", f.Name, f.ID)
			}
		}
		s.files = append(s.files, f)
		s.byName[f.Name] = f
	}
	return s, nil
}

var (
	defaultOnce   sync.Once
	defaultSchema *Schema
)

// Default returns the embedded GTFS schema. The embedded document is part of
// the binary, so failing to parse it is a build defect.
func Default() *Schema {
	defaultOnce.Do(func() {
		s, err := Load(defaultYAML)
		if err != nil {
			panic(err)
		}
		defaultSchema = s
	})
	return defaultSchema
}

// Files returns every file in validation order.
func (s *Schema) Files() []*File {
	return s.files
}

// File looks up a file by name.
func (s *Schema) File(name string) (*File, bool) {
	f, ok := s.byName[name]
	return f, ok
}

// IsStandard reports whether name is a file the schema knows about.
func (s *Schema) IsStandard(name string) bool {
	_, ok := s.byName[name]
	return ok
}
