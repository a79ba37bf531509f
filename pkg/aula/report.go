package aula

import "github.com/solmirano/aula/internal/model"

// Comment is one evaluation comment as ingested from a survey export.
type Comment struct {
	TeacherID int    `json:"id_docente"`
	SubjectID *int   `json:"id_asignatura,omitempty"`
	Text      string `json:"comentarios"`
}

// TeacherReport is one row of the per-teacher severity report.
// This is the stable public type — internal representations may evolve
// independently without breaking consumers.
type TeacherReport struct {
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

// TeacherDetail is the drill-down view for a single teacher: overall counts
// plus the original comments grouped by sentiment label ("NEG", "NEU", "POS").
type TeacherDetail struct {
	TeacherID     int                 `json:"id_docente"`
	TotalComments int                 `json:"comentarios_totales"`
	ValidComments int                 `json:"comentarios_validos"`
	NegativeCount int                 `json:"comentarios_negativos"`
	NeutralCount  int                 `json:"comentarios_neutros"`
	PositiveCount int                 `json:"comentarios_positivos"`
	ByLabel       map[string][]string `json:"comentarios_por_sentimiento"`
}

// Match is one teacher's keyword-search result.
type Match struct {
	TeacherID int      `json:"id_docente"`
	Count     int      `json:"coincidencias"`
	Comments  []string `json:"comentarios_donde_aparece"`
}

// Flag marks one comment that triggered the risk detector, with the
// category identifiers it matched (e.g. "maltrato_verbal_fisico").
type Flag struct {
	TeacherID  int      `json:"id_docente"`
	Text       string   `json:"comentario"`
	Categories []string `json:"categorias"`
}

func toInternal(comments []Comment) []model.Comment {
	records := make([]model.Comment, len(comments))
	for i, c := range comments {
		records[i] = model.Comment{TeacherID: c.TeacherID, SubjectID: c.SubjectID, Text: c.Text}
	}
	return records
}

func reportFromSummary(s model.TeacherSummary) TeacherReport {
	return TeacherReport{
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

func detailFromInternal(d model.TeacherDetail) TeacherDetail {
	byLabel := make(map[string][]string, len(d.ByLabel))
	for lbl, texts := range d.ByLabel {
		byLabel[lbl.String()] = texts
	}
	return TeacherDetail{
		TeacherID:     d.TeacherID,
		TotalComments: len(d.Rows),
		ValidComments: d.ValidComments,
		NegativeCount: d.NegativeCount,
		NeutralCount:  d.NeutralCount,
		PositiveCount: d.PositiveCount,
		ByLabel:       byLabel,
	}
}
