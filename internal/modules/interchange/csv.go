// Package interchange implements the CSV round trip between trade records
// and the fixed-schema text format used for import and export.
//
// The format is deliberately minimal: comma-delimited with a mandatory
// header row and no quoting or escaping. Fields containing commas or
// newlines are not supported; this is a documented constraint of the
// format, not a parser defect.
package interchange

import (
	"strconv"
	"strings"
)

// Schema is the fixed, ordered column list for generated files. The source
// format carried two bare "time" and "price" columns for the open and close
// values; consumers relied on their position, not their names. The exported
// header disambiguates them with _open/_close suffixes while keeping the
// positions unchanged.
var Schema = []string{
	"time",
	"position",
	"symbol",
	"type",
	"volume",
	"price_open",
	"sl",
	"tp",
	"time_close",
	"price_close",
	"commission",
	"swap",
	"profit",
}

// Record is one parsed CSV row: column name to value. Values are float64
// when the raw field fully parses as a number, otherwise string. Columns
// missing from a short row are absent from the map.
type Record map[string]any

// Parse reads a CSV text blob into records.
//
// The first line is the header; every following line is split positionally
// against it. Fields that fully parse as numbers are coerced to float64.
// Rows with fewer fields than headers yield partial records rather than an
// error, and blank trailing lines are ignored. Empty input yields an empty
// result.
func Parse(text string) []Record {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return []Record{}
	}

	headers := strings.Split(strings.TrimSuffix(lines[0], "\r"), ",")
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	records := make([]Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		values := strings.Split(line, ",")
		record := make(Record, len(headers))
		for i, header := range headers {
			if i >= len(values) {
				break
			}
			record[header] = coerce(values[i])
		}
		records = append(records, record)
	}

	return records
}

// Generate renders records as CSV text using the given column schema.
// Missing fields emit empty strings; it never fails for well-formed input.
//
// Numbers are stringified with the shortest exact decimal form, so a value
// parsed from "100.50" generates as "100.5". The round trip preserves
// numeric values, not their original spelling.
func Generate(records []Record, schema []string) string {
	var b strings.Builder
	b.WriteString(strings.Join(schema, ","))

	for _, record := range records {
		b.WriteByte('\n')
		for i, column := range schema {
			if i > 0 {
				b.WriteByte(',')
			}
			if value, ok := record[column]; ok {
				b.WriteString(formatValue(value))
			}
		}
	}

	return b.String()
}

// coerce converts a raw field to float64 when it fully parses as a number
func coerce(raw string) any {
	trimmed := strings.TrimSpace(raw)
	if trimmed != "" {
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return f
		}
	}
	return raw
}

func formatValue(value any) string {
	switch v := value.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	case nil:
		return ""
	default:
		return ""
	}
}
