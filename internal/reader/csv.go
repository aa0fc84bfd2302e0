package reader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"github.com/avicente/tabload/pkg/tabload"
)

// CSVReader parses delimited text files. All fields are kept as text and
// blank fields stay literal empty strings.
type CSVReader struct {
	sep      rune
	encoding string
}

// NewCSVReader creates a CSV reader with the given field separator and
// IANA charset name. An empty or UTF-8 charset name disables transcoding.
func NewCSVReader(sep rune, encoding string) *CSVReader {
	return &CSVReader{sep: sep, encoding: encoding}
}

// Read parses content into a Table. The first record is the header row.
// Records must be rectangular; a ragged row is a parse error, which in
// turn aborts the run.
func (r *CSVReader) Read(content []byte) (*tabload.Table, error) {
	decoded, err := decodeCharset(content, r.encoding)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(bytes.NewReader(decoded))
	cr.Comma = r.sep

	headers, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("file is empty, no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	// Some producers prepend a UTF-8 byte order mark.
	headers[0] = strings.TrimPrefix(headers[0], "\ufeff")

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		rows = append(rows, rec)
	}

	return &tabload.Table{Headers: headers, Rows: rows}, nil
}

// decodeCharset transcodes content from the named IANA charset to UTF-8.
func decodeCharset(content []byte, name string) ([]byte, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" || normalized == "utf-8" || normalized == "utf8" {
		return content, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), content)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return decoded, nil
}

// Verify CSVReader implements the interface at compile time
var _ tabload.TableReader = (*CSVReader)(nil)
