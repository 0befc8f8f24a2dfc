package listing

import (
	"fmt"
	"io"
	"strings"
)

const gridGap = 2

type cell struct {
	text  string
	width int // display width, excluding colour escapes
}

// writeGrid packs cells into as many equal-width columns as fit in width.
// Cells run down each column unless across is set.
func writeGrid(w io.Writer, cells []cell, width int, across bool) {
	if len(cells) == 0 {
		return
	}
	maxW := 0
	for _, c := range cells {
		if c.width > maxW {
			maxW = c.width
		}
	}
	cols := (width + gridGap) / (maxW + gridGap)
	if cols < 1 {
		cols = 1
	}
	if cols > len(cells) {
		cols = len(cells)
	}
	rows := (len(cells) + cols - 1) / cols
	if !across {
		cols = (len(cells) + rows - 1) / rows
	}

	for r := 0; r < rows; r++ {
		var line []cell
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if !across {
				i = c*rows + r
			}
			if i < len(cells) {
				line = append(line, cells[i])
			}
		}
		var sb strings.Builder
		for k, c := range line {
			sb.WriteString(c.text)
			if k < len(line)-1 {
				sb.WriteString(strings.Repeat(" ", maxW-c.width+gridGap))
			}
		}
		_, _ = fmt.Fprintln(w, sb.String())
	}
}
