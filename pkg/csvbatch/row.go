package csvbatch

import (
	"fmt"
	"strings"

	"github.com/bft-labs/urlfreezer/internal/domain"
)

// Column names of the input and output formats.
var (
	InputHeader  = []string{"page", "link", "label"}
	OutputHeader = []string{"page", "original", "label", "link", "action"}
)

// InputRow is one decoded input record.
type InputRow struct {
	Page  string
	Link  string
	Label string
}

// OutputRow is one resolved output record.
type OutputRow struct {
	Page     string
	Original string
	Label    string
	Link     string
	Action   string
}

// Record returns the row in OutputHeader order.
func (r OutputRow) Record() []string {
	return []string{r.Page, r.Original, r.Label, r.Link, r.Action}
}

// NewOutputRow builds the output for in. Page, original and label come
// from the input row; the echoed label is ignored.
func NewOutputRow(in InputRow, info domain.LinkInfo) OutputRow {
	return OutputRow{
		Page:     in.Page,
		Original: in.Link,
		Label:    in.Label,
		Link:     info.Link,
		Action:   info.Action.String(),
	}
}

// columns maps input column names to record positions; -1 means missing.
type columns struct {
	page, link, label int
}

func newColumns(header []string) columns {
	c := columns{page: -1, link: -1, label: -1}
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		switch name {
		case InputHeader[0]:
			c.page = i
		case InputHeader[1]:
			c.link = i
		case InputHeader[2]:
			c.label = i
		}
	}
	return c
}

func (c columns) decode(record []string) (InputRow, error) {
	page, err := field(record, "page", c.page)
	if err != nil {
		return InputRow{}, err
	}
	link, err := field(record, "link", c.link)
	if err != nil {
		return InputRow{}, err
	}
	label, err := field(record, "label", c.label)
	if err != nil {
		return InputRow{}, err
	}
	return InputRow{Page: page, Link: link, Label: label}, nil
}

func field(record []string, name string, idx int) (string, error) {
	if idx < 0 {
		return "", fmt.Errorf("missing column %q", name)
	}
	if idx >= len(record) {
		return "", fmt.Errorf("record has %d fields, column %q is at %d", len(record), name, idx)
	}
	return record[idx], nil
}
