package server

import "github.com/solmirano/aula/internal/model"

// Response shapes keep the Spanish field names of the original reports.

type summaryJSON struct {
	TeacherID          int     `json:"id_docente"`
	SubjectsTaught     int     `json:"asignaturas_impartidas"`
	StudentsServed     int     `json:"alumnos_atendidos"`
	ValidComments      int     `json:"comentarios_validos"`
	NegativeCount      int     `json:"comentarios_negativos"`
	NeutralCount       int     `json:"comentarios_neutros"`
	PositiveCount      int     `json:"comentarios_positivos"`
	NegativeProportion float64 `json:"proporcion_negativa"`
	SeverityIndex      float64 `json:"indice_severidad"`
}

func toSummaryJSON(rows []model.TeacherSummary) []summaryJSON {
	out := make([]summaryJSON, len(rows))
	for i, s := range rows {
		out[i] = summaryJSON{
			TeacherID:          s.TeacherID,
			SubjectsTaught:     s.SubjectsTaught,
			StudentsServed:     s.StudentsServed,
			ValidComments:      s.ValidComments,
			NegativeCount:      s.NegativeCount,
			NeutralCount:       s.NeutralCount,
			PositiveCount:      s.PositiveCount,
			NegativeProportion: s.NegativeProportion,
			SeverityIndex:      s.SeverityIndex,
		}
	}
	return out
}

type matchJSON struct {
	TeacherID int      `json:"id_docente"`
	Count     int      `json:"coincidencias"`
	Comments  []string `json:"comentarios_donde_aparece"`
}

func toMatchJSON(rows []model.KeywordMatch) []matchJSON {
	out := make([]matchJSON, len(rows))
	for i, m := range rows {
		out[i] = matchJSON{TeacherID: m.TeacherID, Count: m.Count, Comments: m.Comments}
	}
	return out
}

type flagJSON struct {
	TeacherID  int      `json:"id_docente"`
	Text       string   `json:"comentario"`
	Categories []string `json:"categorias"`
}

func toFlagJSON(rows []model.RiskFlag) []flagJSON {
	out := make([]flagJSON, len(rows))
	for i, f := range rows {
		names := make([]string, len(f.Categories))
		for j, c := range f.Categories {
			names[j] = c.String()
		}
		out[i] = flagJSON{TeacherID: f.TeacherID, Text: f.Text, Categories: names}
	}
	return out
}

type detailJSON struct {
	TeacherID     int                 `json:"id_docente"`
	TotalComments int                 `json:"comentarios_totales"`
	ValidComments int                 `json:"comentarios_validos"`
	NegativeCount int                 `json:"comentarios_negativos"`
	NeutralCount  int                 `json:"comentarios_neutros"`
	PositiveCount int                 `json:"comentarios_positivos"`
	ByLabel       map[string][]string `json:"comentarios_por_sentimiento"`
}

func toDetailJSON(d model.TeacherDetail) detailJSON {
	byLabel := make(map[string][]string, len(d.ByLabel))
	for lbl, comments := range d.ByLabel {
		byLabel[lbl.String()] = comments
	}
	return detailJSON{
		TeacherID:     d.TeacherID,
		TotalComments: len(d.Rows),
		ValidComments: d.ValidComments,
		NegativeCount: d.NegativeCount,
		NeutralCount:  d.NeutralCount,
		PositiveCount: d.PositiveCount,
		ByLabel:       byLabel,
	}
}
