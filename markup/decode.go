package markup

import (
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// Decode returns a reader producing UTF-8. A forced charset is looked up in
// the IANA index; otherwise the encoding is sniffed from a BOM or a <meta>
// declaration, falling back to UTF-8 compatible detection.
func Decode(r io.Reader, forced string) (io.Reader, error) {
	if len(forced) == 0 {
		dr, err := charset.NewReader(r, "")
		if err != nil {
			return nil, fmt.Errorf("unable to detect input encoding: %w", err)
		}
		return dr, nil
	}

	enc, err := ianaindex.IANA.Encoding(forced)
	if err != nil {
		return nil, fmt.Errorf("unknown character set %q: %w", forced, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("character set %q is not supported", forced)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
