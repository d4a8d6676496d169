package program

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/ttasm/instr"
)

// RenderTable renders the program as a table of addresses, encoded words and
// disassembly.
func RenderTable(title string, p Program) string {
	t := table.NewWriter()
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Addr", "Words", "Instruction"})

	img := NewImage(p)
	for n, i := range p {
		t.AppendRow(table.Row{
			fmt.Sprintf("%04x", img.InstAddr(n)),
			instr.Hex(i),
			instr.Disassemble(i),
		})
	}

	t.AppendFooter(table.Row{"", fmt.Sprintf("%d words", img.Len()), ""})

	return t.Render()
}
