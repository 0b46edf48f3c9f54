package items

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineSize bounds a single encoded item when scanning the data file.
const maxLineSize = 1 << 20

// escaper turns an item into a single line. Backslash is escaped first so
// decoding is unambiguous.
var escaper = strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\r", `\r`)

// EncodeItem returns the single-line form of text.
func EncodeItem(text string) string {
	return escaper.Replace(text)
}

// DecodeItem reverses EncodeItem. Unknown escape sequences and a trailing
// backslash are kept as-is.
//
// Files written without escaping read back verbatim unless a line contains
// the literal pairs \\, \n or \r. Those are decoded: a legacy line C:\new
// comes back as "C:" and "ew" split by a line break, and a\\b as a\b.
func DecodeItem(line string) string {
	if !strings.Contains(line, `\`) {
		return line
	}

	var b strings.Builder
	b.Grow(len(line))
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c != '\\' || i+1 == len(line) {
			b.WriteByte(c)
			continue
		}
		switch line[i+1] {
		case '\\':
			b.WriteByte('\\')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte(c)
			continue
		}
		i++
	}
	return b.String()
}

// WriteItems writes one encoded item per line, each terminated by "\n".
func WriteItems(w io.Writer, items []string) error {
	bw := bufio.NewWriter(w)
	for _, item := range items {
		if _, err := bw.WriteString(EncodeItem(item)); err != nil {
			return fmt.Errorf("failed to write item: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write item: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush items: %w", err)
	}
	return nil
}

// ReadItems reads a line-delimited item list. Both "\n" and "\r\n" line
// endings are accepted. An empty reader yields an empty, non-nil slice.
func ReadItems(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	items := []string{}
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		items = append(items, DecodeItem(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	return items, nil
}
