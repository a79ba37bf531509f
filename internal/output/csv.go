// Package output renders analysis results as delimited text and terminal
// tables. Column names match the original evaluation reports.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/solmirano/aula/internal/model"
)

// WriteSummaryCSV writes the severity report as UTF-8 CSV with a header
// row. The proportion is rounded to 2 decimals and the index to 4, as in
// the original reports; in-memory values keep full precision.
func WriteSummaryCSV(w io.Writer, rows []model.TeacherSummary) error {
	cw := csv.NewWriter(w)
	header := []string{
		"id_docente", "asignaturas_impartidas", "alumnos_atendidos",
		"comentarios_validos", "comentarios_negativos", "comentarios_neutros",
		"comentarios_positivos", "proporcion_negativa", "indice_severidad",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	for _, s := range rows {
		rec := []string{
			strconv.Itoa(s.TeacherID),
			strconv.Itoa(s.SubjectsTaught),
			strconv.Itoa(s.StudentsServed),
			strconv.Itoa(s.ValidComments),
			strconv.Itoa(s.NegativeCount),
			strconv.Itoa(s.NeutralCount),
			strconv.Itoa(s.PositiveCount),
			strconv.FormatFloat(s.NegativeProportion, 'f', 2, 64),
			strconv.FormatFloat(s.SeverityIndex, 'f', 4, 64),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("output: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

// WriteMatchesCSV writes keyword search results as CSV, one row per teacher
// with at least one match. Matching comments are joined with " | ".
func WriteMatchesCSV(w io.Writer, rows []model.KeywordMatch) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id_docente", "coincidencias", "comentarios_donde_aparece"}); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	for _, m := range rows {
		rec := []string{
			strconv.Itoa(m.TeacherID),
			strconv.Itoa(m.Count),
			strings.Join(m.Comments, " | "),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("output: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

// WriteFlagsCSV writes the risk-flag report: one row per flagged comment
// with its triggered categories.
func WriteFlagsCSV(w io.Writer, rows []model.RiskFlag) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id_docente", "comentario", "categorias"}); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	for _, f := range rows {
		names := make([]string, len(f.Categories))
		for i, c := range f.Categories {
			names[i] = c.String()
		}
		rec := []string{
			strconv.Itoa(f.TeacherID),
			f.Text,
			strings.Join(names, ";"),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("output: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}
