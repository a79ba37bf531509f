package model

// Comment is one evaluation row from the uploaded corpus: a free-text
// student comment about a teacher. Immutable once ingested.
type Comment struct {
	TeacherID int
	SubjectID *int // nil when the corpus carries no id_asignatura column
	Text      string
}

// NormalizedComment pairs a comment with its cleaned form and validity.
type NormalizedComment struct {
	Comment
	Cleaned string
	Valid   bool
}
