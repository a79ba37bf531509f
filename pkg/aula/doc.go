// Package aula provides an analysis engine for student evaluation comments:
// sentiment classification, risk-keyword detection, per-teacher severity
// reporting and keyword search.
//
// Quick start:
//
//	a, err := aula.New(aula.WithRemoteClassifier("http://localhost:8500"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer a.Close()
//
//	comments := []aula.Comment{{TeacherID: 7, Text: "Excelente profesora"}}
//	report, _ := a.Summarize(ctx, comments, 0, 100)
//	fmt.Println(report[0].SeverityIndex)
//
// The Aula instance is safe for concurrent use. Create once, reuse across
// requests. See the README for full documentation.
package aula
