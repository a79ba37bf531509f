package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/solmirano/aula/internal/config"
	"github.com/solmirano/aula/internal/engine"
	"github.com/solmirano/aula/internal/engine/normalizer"
	"github.com/solmirano/aula/internal/engine/risk"
	"github.com/solmirano/aula/internal/engine/search"
	"github.com/solmirano/aula/internal/engine/sentiment"
	"github.com/solmirano/aula/internal/ingest"
	"github.com/solmirano/aula/internal/logging"
	"github.com/solmirano/aula/internal/model"
	"github.com/solmirano/aula/internal/output"
)

const usage = `usage: aula [flags] <resumen|docente|buscar|riesgo>

comandos:
  resumen   reporte de severidad por docente
  docente   detalle de un docente (-id)
  buscar    busqueda de palabra clave (-palabra, -ambito)
  riesgo    comentarios con indicadores de riesgo

flags:
`

func main() {
	var (
		cfgPath = flag.String("config", "", "ruta del archivo de configuracion YAML")
		file    = flag.String("file", "", "archivo CSV de comentarios (obligatorio)")
		from    = flag.Int("desde", 0, "id de docente inicial (resumen)")
		to      = flag.Int("hasta", int(^uint(0)>>1), "id de docente final (resumen)")
		id      = flag.Int("id", 0, "id de docente (docente)")
		word    = flag.String("palabra", "", "palabra a buscar (buscar)")
		scope   = flag.String("ambito", "todos", "ambito de busqueda: todos o riesgo")
		outPath = flag.String("o", "", "escribir CSV a esta ruta en vez de tabla")
	)
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 || *file == "" {
		flag.Usage()
		os.Exit(2)
	}
	command := flag.Arg(0)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "aula: %v\n", err)
		os.Exit(1)
	}
	log, err := logging.New(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "aula: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	records, err := ingest.ReadCommentsFile(*file)
	if err != nil {
		log.Fatal("reading comments", zap.Error(err))
	}
	log.Info("corpus loaded", zap.String("file", *file), zap.Int("comments", len(records)))

	det, err := buildDetector(cfg)
	if err != nil {
		log.Fatal("building risk detector", zap.Error(err))
	}

	// The classifier is only needed for the sentiment commands; buscar and
	// riesgo run without one.
	var cls sentiment.Classifier
	if command == "resumen" || command == "docente" {
		cls, err = buildClassifier(cfg)
		if err != nil {
			log.Fatal("building classifier", zap.Error(err))
		}
		defer cls.Close()
	}
	eng := engine.New(cls, det, engineOptions(cfg)...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	w, closeOut, err := openOutput(*outPath)
	if err != nil {
		log.Fatal("opening output", zap.Error(err))
	}
	defer closeOut()

	switch command {
	case "resumen":
		err = runSummary(ctx, eng, records, *from, *to, w, *outPath != "")
	case "docente":
		err = runDetail(ctx, eng, records, *id, w)
	case "buscar":
		err = runSearch(eng, records, *word, *scope, w, *outPath != "")
	case "riesgo":
		err = runRisk(eng, records, w, *outPath != "")
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal("command failed", zap.String("command", command), zap.Error(err))
	}
}

func buildDetector(cfg config.Config) (*risk.Detector, error) {
	dict := risk.DefaultDictionary()
	if cfg.Engine.DictionaryPath != "" {
		var err error
		dict, err = risk.LoadDictionary(cfg.Engine.DictionaryPath)
		if err != nil {
			return nil, err
		}
	}
	return risk.NewDetector(dict)
}

func buildClassifier(cfg config.Config) (sentiment.Classifier, error) {
	switch cfg.Classifier.Backend {
	case "remote":
		return sentiment.NewRemote(cfg.Classifier.URL), nil
	case "onnx":
		return sentiment.NewONNX(cfg.Classifier.ModelPath, cfg.Classifier.VocabPath)
	default:
		return nil, fmt.Errorf("unknown classifier backend %q", cfg.Classifier.Backend)
	}
}

func engineOptions(cfg config.Config) []engine.Option {
	var opts []engine.Option
	if cfg.Engine.Validity == "min-length" {
		opts = append(opts, engine.WithSentimentPolicy(normalizer.MinLengthPolicy{N: cfg.Engine.MinLength}))
	}
	return opts
}

// openOutput returns stdout or the CSV file at path, plus a close func.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func runSummary(ctx context.Context, eng *engine.Engine, records []model.Comment, from, to int, w io.Writer, asCSV bool) error {
	rows, err := eng.Summarize(ctx, records, from, to)
	if err != nil {
		return err
	}
	if asCSV {
		return output.WriteSummaryCSV(w, rows)
	}
	return output.RenderSummaries(w, rows)
}

func runDetail(ctx context.Context, eng *engine.Engine, records []model.Comment, id int, w io.Writer) error {
	d, err := eng.TeacherDetail(ctx, records, id)
	if err != nil {
		return err
	}
	return output.RenderDetail(w, d)
}

func runSearch(eng *engine.Engine, records []model.Comment, word, scopeName string, w io.Writer, asCSV bool) error {
	scope, ok := search.ParseScope(scopeName)
	if !ok {
		return fmt.Errorf("unknown search scope %q", scopeName)
	}
	rows := eng.Search(records, word, scope)
	if asCSV {
		return output.WriteMatchesCSV(w, rows)
	}
	return output.RenderMatches(w, rows)
}

func runRisk(eng *engine.Engine, records []model.Comment, w io.Writer, asCSV bool) error {
	rows := eng.FlagRisks(records)
	if asCSV {
		return output.WriteFlagsCSV(w, rows)
	}
	return output.RenderFlags(w, rows)
}
