// Package sauce parses the SAUCE ("Standard Architecture for Universal
// Comment Extensions") metadata trailer BBS-era ANSI art files carry: a
// fixed 128-byte record appended after the artwork itself, holding title,
// author, group, and a flags byte this package uses to detect iCE colors.
//
// purfecterm's Cell/Buffer model has no concept of this — it is Unicode
// terminal state, not an ANSI-art file format — so there is nothing to
// adapt here; this is new functionality grounded on the real SAUCE
// specification and cross-checked against the CP437 handling in
// other_examples/bengarrett-ansibump__ansibump.go.
package sauce

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

const (
	recordSize = 128
	id         = "SAUCE"
)

// Record holds the fields callers are likely to want; the full SAUCE
// layout has more (DataType, FileType, TInfo1-4) that a CP437 renderer
// doesn't need to interpret on its own.
type Record struct {
	Title, Author, Group string
	// ICEColors reports whether the TFlags byte's bit 0 (iCE colors /
	// "non-blink mode") is set: when true, SGR code 5 (blink) should be
	// reinterpreted as selecting a bright background instead of a true
	// blink, the same toggle the teacher models as BlinkMode in color.go.
	ICEColors bool
}

// Parse looks for a SAUCE record at the end of data and returns it if
// found. The second return value is false when data has no trailer at all
// (an ordinary .ans file with no metadata), which is not an error.
func Parse(data []byte) (*Record, bool) {
	if len(data) < recordSize {
		return nil, false
	}
	block := data[len(data)-recordSize:]
	if string(block[0:5]) != id {
		return nil, false
	}

	dec := charmap.CodePage437.NewDecoder()
	field := func(b []byte) string {
		s, err := dec.String(string(b))
		if err != nil {
			s = string(b)
		}
		return strings.TrimRight(s, " \x00")
	}

	title := field(block[7:42])
	author := field(block[42:62])
	group := field(block[62:82])

	commentLines := block[104]
	tFlags := byte(0)
	// TFlags (the type-dependent flags byte for ANSI files) sits at the
	// fixed offset 105, right after the comment-line count at 104. The
	// offset does not depend on whether a COMNT block precedes the
	// record, since COMNT lives before SAUCE, not inside it.
	if len(block) > 105 {
		tFlags = block[105]
	}
	_ = commentLines // comment-block line count; unused until comments are surfaced

	return &Record{
		Title:     title,
		Author:    author,
		Group:     group,
		ICEColors: tFlags&0x01 != 0,
	}, true
}
