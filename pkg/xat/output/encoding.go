package output

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// NewEncodingWriter returns a writer that transcodes the UTF-8 text written
// to it into the named encoding before passing it to w. Names are WHATWG
// labels such as "shift_jis", "euc-jp" or "windows-1252". Runes that the
// target encoding cannot represent are replaced.
//
// Close flushes pending bytes and must be called once writing is done; it
// does not close w.
func NewEncodingWriter(w io.Writer, name string) (io.WriteCloser, error) {
	if name == "" {
		return nopCloser{w}, nil
	}

	enc, err := htmlindex.Get(strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", name, err)
	}

	if canonical, err := htmlindex.Name(enc); err == nil && canonical == "utf-8" {
		return nopCloser{w}, nil
	}

	return transform.NewWriter(w, encoding.ReplaceUnsupported(enc.NewEncoder())), nil
}
