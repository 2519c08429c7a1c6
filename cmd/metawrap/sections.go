package main

import (
	"fmt"
	"strings"

	"github.com/example/meta-wrappers/pkg/whatsapp"
	"github.com/example/meta-wrappers/pkg/wrapper"
)

// parseSections turns "Title:row one,row two" flags into sections.
func parseSections(values []string) ([]wrapper.Section, error) {
	sections := make([]wrapper.Section, 0, len(values))
	for _, value := range values {
		title, rawRows, ok := strings.Cut(value, ":")
		if !ok {
			return nil, fmt.Errorf("section %q: expected Title:row,row", value)
		}
		var rows []string
		for _, row := range strings.Split(rawRows, ",") {
			if row = strings.TrimSpace(row); row != "" {
				rows = append(rows, row)
			}
		}
		if len(rows) == 0 {
			return nil, fmt.Errorf("section %q: at least one row is required", value)
		}
		sections = append(sections, whatsapp.NewSection(strings.TrimSpace(title), rows...))
	}
	return sections, nil
}
