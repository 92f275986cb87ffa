package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/loomworks/knitgraph/pkg/symbols"
)

// newSymbolsCmd creates the symbols command listing the built-in stitch
// vocabulary of the pattern compiler.
func newSymbolsCmd() *cobra.Command {
	var cables bool

	cmd := &cobra.Command{
		Use:   "symbols",
		Short: "List the built-in stitch and cable symbols",
		Long: `List the built-in symbol vocabulary: basic stitches, decreases, and the
cable crossing space. Cable symbols are hidden by default; pass --cables to
include all 72 of them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := symbols.NewTable()
			fmt.Println(symbolTable("Stitches", []string{"Name", "Direction", "Parent Offsets", "Produces"}, stitchRows(t)))
			if cables {
				fmt.Println(symbolTable("Cables", []string{"Name", "Lean", "Left Group", "Right Group"}, cableRows(t)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&cables, "cables", false, "include the cable symbol space")

	return cmd
}

// stitchRows collects every built-in stitch definition as table rows, sorted
// by name.
func stitchRows(t *symbols.Table) [][]string {
	var rows [][]string
	for _, name := range t.Names() {
		def, err := t.Stitch(name)
		if err != nil {
			continue
		}
		rows = append(rows, []string{
			name,
			def.Direction.String(),
			joinOffsets(def.ParentOffsets),
			strconv.Itoa(def.ChildLoops),
		})
	}
	return rows
}

// cableRows collects every built-in cable definition as table rows, sorted
// by name.
func cableRows(t *symbols.Table) [][]string {
	var rows [][]string
	for _, name := range t.Names() {
		def, err := t.Cable(name)
		if err != nil {
			continue
		}
		rows = append(rows, []string{
			name,
			def.Lean.String(),
			fmt.Sprintf("%d %s", def.LeftLoops, def.LeftDirection),
			fmt.Sprintf("%d %s", def.RightLoops, def.RightDirection),
		})
	}
	return rows
}

// symbolTable renders a titled, bordered symbol table.
func symbolTable(title string, headers []string, rows [][]string) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			return StyleValue
		})

	return StyleTitle.Render(title) + "\n" + t.Render()
}

// joinOffsets formats signed parent offsets in stacking order, or a dash for
// parentless stitches.
func joinOffsets(offsets []int) string {
	if len(offsets) == 0 {
		return "—"
	}
	parts := make([]string, len(offsets))
	for i, o := range offsets {
		parts[i] = fmt.Sprintf("%+d", o)
	}
	return strings.Join(parts, ", ")
}
