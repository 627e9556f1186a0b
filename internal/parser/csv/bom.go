package csv

import (
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const utf8BOM = "\uFEFF"

// StripHeaderBOM removes a UTF-8 BOM from the first header cell if present.
func StripHeaderBOM(headers []string) []string {
	if len(headers) == 0 {
		return headers
	}
	if strings.HasPrefix(headers[0], utf8BOM) {
		headers[0] = strings.TrimPrefix(headers[0], utf8BOM)
	}
	return headers
}

// NewBOMReader wraps r so that a leading UTF-8 or UTF-16 byte-order mark is
// consumed and the stream is decoded to UTF-8. Input without a BOM passes
// through as UTF-8.
func NewBOMReader(r io.Reader) io.Reader {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	return transform.NewReader(r, dec)
}
