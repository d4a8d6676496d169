package program

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sarchlab/ttasm/instr"
)

// InstsPerLine is how many instructions share one boot memory line.
const InstsPerLine = 4

// WriteBootMem writes the program as hex text, four instructions per line.
// Each instruction contributes its words as 8-digit hex groups, separated by
// single spaces.
func WriteBootMem(w io.Writer, p Program) error {
	bw := bufio.NewWriter(w)

	for start := 0; start < len(p); start += InstsPerLine {
		end := min(start+InstsPerLine, len(p))

		groups := make([]string, 0, InstsPerLine)
		for _, i := range p[start:end] {
			groups = append(groups, instr.Hex(i))
		}

		if _, err := bw.WriteString(strings.Join(groups, " ") + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadBootMem reads a file written by WriteBootMem. Instructions may span
// lines; only the word order matters.
func ReadBootMem(r io.Reader) (Program, error) {
	var words []uint32

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		for _, field := range strings.Fields(scanner.Text()) {
			w, err := strconv.ParseUint(field, 16, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad word %q: %w",
					lineNo, field, err)
			}
			words = append(words, uint32(w))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	insts, err := instr.DecodeAll(words)
	if err != nil {
		return nil, err
	}

	return Program(insts), nil
}

// WriteListing writes one disassembled instruction per line.
func WriteListing(w io.Writer, p Program) error {
	if len(p) == 0 {
		return nil
	}

	_, err := io.WriteString(w, p.Listing()+"\n")
	return err
}
