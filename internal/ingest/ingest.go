// Package ingest reads the evaluation corpus from tabular CSV sources.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/solmirano/aula/internal/model"
)

// Expected column names in the uploaded corpus. id_asignatura is optional:
// search-only exports ship without it.
const (
	colTeacher = "id_docente"
	colSubject = "id_asignatura"
	colComment = "comentarios"
)

// ReadComments parses a CSV corpus. The header row is required; columns are
// resolved by name in any order. A missing id_docente or comentarios column
// is a fatal validation error. Blank or missing comment cells become empty
// strings and stay in the corpus (they still count toward audience size).
func ReadComments(r io.Reader) ([]model.Comment, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("ingest: empty corpus")
	}
	if err != nil {
		return nil, fmt.Errorf("ingest: read header: %w", err)
	}

	teacherCol, subjectCol, commentCol := -1, -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case colTeacher:
			teacherCol = i
		case colSubject:
			subjectCol = i
		case colComment:
			commentCol = i
		}
	}
	if teacherCol == -1 {
		return nil, fmt.Errorf("ingest: missing required column %q", colTeacher)
	}
	if commentCol == -1 {
		return nil, fmt.Errorf("ingest: missing required column %q", colComment)
	}

	var records []model.Comment
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("ingest: line %d: %w", line, err)
		}

		if teacherCol >= len(row) {
			return nil, fmt.Errorf("ingest: line %d: missing %s value", line, colTeacher)
		}
		teacherID, err := strconv.Atoi(strings.TrimSpace(row[teacherCol]))
		if err != nil {
			return nil, fmt.Errorf("ingest: line %d: %s %q is not an integer", line, colTeacher, row[teacherCol])
		}

		rec := model.Comment{TeacherID: teacherID}
		if subjectCol != -1 && subjectCol < len(row) {
			if s := strings.TrimSpace(row[subjectCol]); s != "" {
				subjectID, err := strconv.Atoi(s)
				if err != nil {
					return nil, fmt.Errorf("ingest: line %d: %s %q is not an integer", line, colSubject, s)
				}
				rec.SubjectID = &subjectID
			}
		}
		if commentCol < len(row) {
			rec.Text = row[commentCol]
		}
		records = append(records, rec)
	}
	return records, nil
}

// ReadCommentsFile reads a CSV corpus from disk.
func ReadCommentsFile(path string) ([]model.Comment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	defer f.Close()
	return ReadComments(f)
}
