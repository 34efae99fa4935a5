package export

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/adscomb/adscomb/app/ads"
)

// Supported output formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatXML  = "xml"
)

// Export serializes the canonical records to destination in the requested
// format. An unsupported format is rejected before any file I/O, and the
// output is written through a temporary file so a failed run never leaves a
// partial file behind. Re-running with the same destination replaces it.
func Export(records []ads.Ad, format, destination string) error {
	var write func(io.Writer, []ads.Ad) error

	switch strings.ToLower(format) {
	case FormatJSON:
		write = writeJSON
	case FormatCSV:
		write = writeCSV
	case FormatXML:
		write = writeXML
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}

	if records == nil {
		records = []ads.Ad{}
	}

	dir := filepath.Dir(destination)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(destination)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp, records); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Rename(tmp.Name(), destination); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}

	return nil
}

func writeJSON(w io.Writer, records []ads.Ad) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

func writeCSV(w io.Writer, records []ads.Ad) error {
	// An empty record set still produces a file, just an empty one.
	if len(records) == 0 {
		return nil
	}

	maps := make([]map[string]any, 0, len(records))
	keys := make(map[string]bool)
	for _, ad := range records {
		m, err := recordMap(ad)
		if err != nil {
			return err
		}
		maps = append(maps, m)
		for k := range m {
			keys[k] = true
		}
	}

	header := make([]string, 0, len(keys))
	for k := range keys {
		header = append(header, k)
	}
	sort.Strings(header)

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, m := range maps {
		row := make([]string, len(header))
		for i, key := range header {
			cell, err := cellText(m[key])
			if err != nil {
				return err
			}
			row[i] = cell
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	return nil
}

func writeXML(w io.Writer, records []ads.Ad) error {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString("<ads>")

	for _, ad := range records {
		m, err := recordMap(ad)
		if err != nil {
			return err
		}

		b.WriteString("<ad>")
		for _, field := range ads.FieldNames {
			text, err := cellText(m[field])
			if err != nil {
				return err
			}

			b.WriteString("<" + field + ">")
			if err := xml.EscapeText(&b, []byte(text)); err != nil {
				return fmt.Errorf("failed to escape XML text: %w", err)
			}
			b.WriteString("</" + field + ">")
		}
		b.WriteString("</ad>")
	}

	b.WriteString("</ads>\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write XML: %w", err)
	}

	return nil
}

// recordMap converts a canonical record to its map form, keyed by the
// canonical field names.
func recordMap(ad ads.Ad) (map[string]any, error) {
	data, err := json.Marshal(ad)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize record: %w", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to deserialize record: %w", err)
	}

	return m, nil
}

// cellText renders one field value as cell text. Nested structures become
// compact embedded JSON, the same rule for CSV cells and XML elements; null
// dates become empty text.
func cellText(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case float64:
		return ads.EnsureString(t), nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to serialize nested value: %w", err)
		}
		return string(data), nil
	}
}
