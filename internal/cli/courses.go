package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/loomworks/knitgraph/pkg/graphio"
	"github.com/loomworks/knitgraph/pkg/knit"
)

// coursesOpts holds the command-line flags for the courses command.
type coursesOpts struct {
	asJSON bool // emit the course assignment as JSON instead of a table
}

// newCoursesCmd creates the courses command for inspecting the row structure
// of a serialized knit graph.
func newCoursesCmd() *cobra.Command {
	var opts coursesOpts

	cmd := &cobra.Command{
		Use:   "courses <graph.json>",
		Short: "Show the course structure of a knit graph",
		Long: `Show the course (row) assignment of a serialized knit graph.

Each loop is assigned to the course it is knit on; the table lists every
course with its loops in yarnwise order. With --json the raw assignment is
printed instead, the hand-off format for machine-instruction generators.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCourses(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "emit the course assignment as JSON")

	return cmd
}

// runCourses loads the graph, computes its courses, and prints them.
func runCourses(ctx context.Context, input string, opts *coursesOpts) error {
	logger := loggerFromContext(ctx)

	g, err := graphio.ReadGraphFile(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded graph: %d loops, %d stitches", g.LoopCount(), g.EdgeCount())

	if opts.asJSON {
		data, err := graphio.MarshalCourses(g)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	}

	fmt.Println(coursesTable(g))
	logger.Infof("%d loops across %d courses", g.LoopCount(), g.CourseCount())
	return nil
}

// coursesTable renders the graph's course assignment as a bordered table,
// one row per course, loops listed in yarnwise order.
func coursesTable(g *knit.Graph) string {
	_, byCourse := g.Courses()

	rows := make([][]string, 0, len(byCourse))
	for course := 0; course < len(byCourse); course++ {
		loops := byCourse[course]
		rows = append(rows, []string{
			strconv.Itoa(course),
			strconv.Itoa(len(loops)),
			joinLoopIDs(loops),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Course", "Loops", "Loop IDs").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleNumber
			}
			return StyleValue
		}).
		Render()
}

// joinLoopIDs formats loop ids as a comma-separated list.
func joinLoopIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}
