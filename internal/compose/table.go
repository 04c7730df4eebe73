package compose

import (
	"encoding/csv"
	"fmt"
	"html"
	"strings"
)

const (
	tableOpen   = `<table style="border-collapse: collapse; width: 100%; margin: 10px 0;">`
	headRowOpen = `<tr style="background-color: #f5f5f5;">`
	headerCell  = `<th style="border: 1px solid #ddd; padding: 8px; text-align: left;">`
	dataCell    = `<td style="border: 1px solid #ddd; padding: 8px;">`
)

// TableFromCSV renders comma-separated data as a styled table. The first
// record is the header. Cells are encoded like any other text.
func (c *Composer) TableFromCSV(data, title string) (string, error) {
	rows, err := ReadCSV(data)
	if err != nil {
		return "", err
	}
	if len(rows) < 2 {
		return "", ErrTableTooShort
	}
	return c.Table(rows, title), nil
}

// ReadCSV parses comma-separated rows, tolerating stray quotes and ragged
// rows. Cells are trimmed.
func ReadCSV(data string) ([][]string, error) {
	reader := csv.NewReader(strings.NewReader(strings.TrimSpace(data)))
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	for _, rec := range records {
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
	}
	return records, nil
}

// Table renders rows as a styled table with rows[0] as the header. An
// empty title omits the caption heading.
func (c *Composer) Table(rows [][]string, title string) string {
	var b strings.Builder
	if title != "" {
		b.WriteString("<h3>📊 " + html.EscapeString(title) + "</h3>")
	}
	if len(rows) == 0 {
		return b.String()
	}

	b.WriteString(tableOpen)
	b.WriteString("<thead>" + headRowOpen)
	for _, cell := range rows[0] {
		b.WriteString(headerCell + c.enc.Encode(cell) + "</th>")
	}
	b.WriteString("</tr></thead><tbody>")
	for _, row := range rows[1:] {
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString(dataCell + c.enc.Encode(cell) + "</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}
