// Package header renders binary data as a C array declaration suitable for
// inclusion in a source tree.
package header

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	// DefaultLineBudget is the character budget of one body line.
	DefaultLineBudget = 80
	// DefaultEntryWidth is the widest an entry gets, separator included.
	DefaultEntryWidth = 6

	// BytesPerLine is the number of entries on a full body line.
	BytesPerLine = DefaultLineBudget / DefaultEntryWidth

	// entryFieldWidth is the minimum width of a rendered literal.
	entryFieldWidth = 4
	separator       = ", "
)

// Layout controls how many entries fit on a body line.
type Layout struct {
	// LineBudget is the number of characters available per line.
	LineBudget int
	// EntryWidth is the number of characters reserved per entry.
	EntryWidth int
}

// DefaultLayout returns the 80 column layout.
func DefaultLayout() Layout {
	return Layout{LineBudget: DefaultLineBudget, EntryWidth: DefaultEntryWidth}
}

// PerLine returns the number of entries placed on one body line.
// It never returns less than one.
func (l Layout) PerLine() int {
	if l.EntryWidth <= 0 {
		return 1
	}
	n := l.LineBudget / l.EntryWidth
	if n < 1 {
		return 1
	}
	return n
}

// Write renders data as an array named name into w.
func (l Layout) Write(w io.Writer, data []byte, name string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "const unsigned char %s [] = {\n", name)
	for _, chunk := range Chunks(data, l.PerLine()) {
		bw.WriteByte('\t')
		for _, b := range chunk {
			bw.WriteString(Entry(b))
			bw.WriteString(separator)
		}
		bw.WriteByte('\n')
	}
	bw.WriteString("};\n")

	return bw.Flush()
}

// Format returns the declaration as a string.
func (l Layout) Format(data []byte, name string) string {
	var sb strings.Builder
	// strings.Builder never fails
	_ = l.Write(&sb, data, name)
	return sb.String()
}

// Write renders data with the default layout.
func Write(w io.Writer, data []byte, name string) error {
	return DefaultLayout().Write(w, data, name)
}

// Format renders data with the default layout and returns the text.
func Format(data []byte, name string) string {
	return DefaultLayout().Format(data, name)
}

// Entry renders a single byte as a space padded hex literal, e.g. " 0x0"
// or "0xff".
func Entry(b byte) string {
	lit := "0x" + strconv.FormatUint(uint64(b), 16)
	if pad := entryFieldWidth - len(lit); pad > 0 {
		return strings.Repeat(" ", pad) + lit
	}
	return lit
}

// Chunks splits data into consecutive slices of at most size bytes.
// The returned slices share data's backing array. An empty input yields
// no chunks.
func Chunks(data []byte, size int) [][]byte {
	if size < 1 {
		size = 1
	}
	chunks := make([][]byte, 0, (len(data)+size-1)/size)
	for i := 0; i < len(data); i += size {
		end := i + size
		if end > len(data) {
			end = len(data)
		}
		chunks = append(chunks, data[i:end:end])
	}
	return chunks
}
