package ingest

import (
	"strings"
	"testing"
)

func TestReadComments(t *testing.T) {
	csv := `id_docente,id_asignatura,comentarios
1,10,Buen profesor
1,10,.
2,30,"me grito, y me humillo"
`
	got, err := ReadComments(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadComments() error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	if got[0].TeacherID != 1 || got[0].Text != "Buen profesor" {
		t.Errorf("first record = %+v", got[0])
	}
	if got[0].SubjectID == nil || *got[0].SubjectID != 10 {
		t.Errorf("first record subject = %v, want 10", got[0].SubjectID)
	}
	if got[2].Text != "me grito, y me humillo" {
		t.Errorf("quoted comment = %q", got[2].Text)
	}
}

func TestReadCommentsColumnOrder(t *testing.T) {
	csv := "comentarios,id_docente\nhola,7\n"
	got, err := ReadComments(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadComments() error: %v", err)
	}
	if got[0].TeacherID != 7 || got[0].Text != "hola" {
		t.Errorf("record = %+v", got[0])
	}
	if got[0].SubjectID != nil {
		t.Errorf("subject = %v, want nil when column absent", got[0].SubjectID)
	}
}

func TestReadCommentsMissingRequiredColumn(t *testing.T) {
	for _, csv := range []string{
		"id_asignatura,comentarios\n1,hola\n",
		"id_docente,id_asignatura\n1,2\n",
	} {
		if _, err := ReadComments(strings.NewReader(csv)); err == nil {
			t.Errorf("expected error for header %q, got nil", strings.SplitN(csv, "\n", 2)[0])
		}
	}
}

func TestReadCommentsBlankCells(t *testing.T) {
	csv := "id_docente,id_asignatura,comentarios\n3,,\n"
	got, err := ReadComments(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadComments() error: %v", err)
	}
	rec := got[0]
	if rec.SubjectID != nil {
		t.Errorf("blank subject = %v, want nil", rec.SubjectID)
	}
	if rec.Text != "" {
		t.Errorf("blank comment = %q, want empty", rec.Text)
	}
}

func TestReadCommentsBadTeacherID(t *testing.T) {
	csv := "id_docente,comentarios\nabc,hola\n"
	if _, err := ReadComments(strings.NewReader(csv)); err == nil {
		t.Fatal("expected error for non-integer id_docente, got nil")
	}
}

func TestReadCommentsEmptyInput(t *testing.T) {
	if _, err := ReadComments(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty input, got nil")
	}
}
