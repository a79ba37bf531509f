package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/solmirano/aula/internal/model"
)

// RenderSummaries writes the severity report as an aligned terminal table.
func RenderSummaries(w io.Writer, rows []model.TeacherSummary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "docente\tasignaturas\talumnos\tvalidos\tneg\tneu\tpos\tproporcion\tindice")
	for _, s := range rows {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%d\t%.2f\t%.4f\n",
			s.TeacherID, s.SubjectsTaught, s.StudentsServed, s.ValidComments,
			s.NegativeCount, s.NeutralCount, s.PositiveCount,
			s.NegativeProportion, s.SeverityIndex)
	}
	return tw.Flush()
}

// RenderMatches writes keyword search results as an aligned terminal table.
func RenderMatches(w io.Writer, rows []model.KeywordMatch) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "docente\tcoincidencias\tcomentarios")
	for _, m := range rows {
		fmt.Fprintf(tw, "%d\t%d\t%s\n", m.TeacherID, m.Count, strings.Join(m.Comments, " | "))
	}
	return tw.Flush()
}

// RenderFlags writes the risk-flag report as an aligned terminal table.
func RenderFlags(w io.Writer, rows []model.RiskFlag) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "docente\tcategorias\tcomentario")
	for _, f := range rows {
		names := make([]string, len(f.Categories))
		for i, c := range f.Categories {
			names[i] = c.String()
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", f.TeacherID, strings.Join(names, ";"), f.Text)
	}
	return tw.Flush()
}

// RenderDetail writes the per-teacher drill-down: counts, then comments
// grouped by polarity bucket.
func RenderDetail(w io.Writer, d model.TeacherDetail) error {
	fmt.Fprintf(w, "docente %d: %d comentarios, %d validos (NEG %d / NEU %d / POS %d)\n",
		d.TeacherID, len(d.Rows), d.ValidComments,
		d.NegativeCount, d.NeutralCount, d.PositiveCount)
	for _, lbl := range model.Labels() {
		comments := d.ByLabel[lbl]
		if len(comments) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s:\n", lbl)
		for _, c := range comments {
			fmt.Fprintf(w, "  - %s\n", c)
		}
	}
	return nil
}
