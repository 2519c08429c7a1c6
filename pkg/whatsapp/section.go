package whatsapp

import (
	"github.com/google/uuid"

	"github.com/example/meta-wrappers/pkg/wrapper"
)

// rowNamespace scopes the name-based UUIDs used as row identifiers.
var rowNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://graph.facebook.com/whatsapp/list-row"))

// Section is a titled group of rows in a list message.
type Section struct {
	title string
	rows  []string
}

var _ wrapper.Section = (*Section)(nil)

// NewSection builds a section from a title and row labels. rows is copied.
func NewSection(title string, rows ...string) *Section {
	return &Section{
		title: title,
		rows:  append([]string(nil), rows...),
	}
}

// Title returns the section title.
func (s *Section) Title() string {
	return s.title
}

// Rows returns a copy of the row labels.
func (s *Section) Rows() []string {
	return append([]string(nil), s.rows...)
}

// Render returns the section as a SectionPayload.
func (s *Section) Render() any {
	return s.Payload()
}

// Payload renders the section with one row per label, in order. Row IDs are
// version 5 UUIDs of the label; equal labels share an ID. They are stable for
// this package but carry no meaning for other implementations.
func (s *Section) Payload() SectionPayload {
	rows := make([]RowPayload, 0, len(s.rows))
	for _, label := range s.rows {
		rows = append(rows, RowPayload{
			ID:    RowID(label),
			Title: label,
		})
	}
	return SectionPayload{
		Title: s.title,
		Rows:  rows,
	}
}

// RowID derives the wire identifier of a row label.
func RowID(label string) string {
	return uuid.NewSHA1(rowNamespace, []byte(label)).String()
}
