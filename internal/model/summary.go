package model

// TeacherSummary is one row of the severity report: per-teacher comment
// counts and the severity ranking index. Rebuilt in full on every analysis.
type TeacherSummary struct {
	TeacherID          int
	SubjectsTaught     int // distinct subjects across all rows, valid or not
	StudentsServed     int // all rows for the teacher, valid or not
	ValidComments      int
	NegativeCount      int
	NeutralCount       int
	PositiveCount      int
	NegativeProportion float64 // negatives / valid, 0 when no valid comments
	SeverityIndex      float64 // proportion * ln(1 + negatives), relative ranking key
}

// KeywordMatch is one row of a keyword search result: a teacher with at
// least one matching comment. Teachers with zero matches never appear.
type KeywordMatch struct {
	TeacherID int
	Count     int
	Comments  []string // original texts, corpus order
}

// RiskFlag marks a single comment that triggered one or more risk categories.
type RiskFlag struct {
	TeacherID  int
	Text       string // original text
	Categories []Category
}

// TeacherDetail is the per-teacher drill-down: every row for one teacher
// plus sentiment counts and comments grouped by label.
type TeacherDetail struct {
	TeacherID     int
	Rows          []Comment
	ValidComments int
	NegativeCount int
	NeutralCount  int
	PositiveCount int
	ByLabel       map[Label][]string // cleaned comments per polarity bucket
}
