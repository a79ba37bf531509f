package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/solmirano/aula/internal/config"
	"github.com/solmirano/aula/internal/engine"
	"github.com/solmirano/aula/internal/engine/normalizer"
	"github.com/solmirano/aula/internal/engine/risk"
	"github.com/solmirano/aula/internal/engine/sentiment"
	"github.com/solmirano/aula/internal/logging"
	"github.com/solmirano/aula/internal/server"
)

func main() {
	cfgPath := flag.String("config", "", "ruta del archivo de configuracion YAML")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "aulad: %v\n", err)
		os.Exit(1)
	}
	log, err := logging.New(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "aulad: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	dict := risk.DefaultDictionary()
	if cfg.Engine.DictionaryPath != "" {
		dict, err = risk.LoadDictionary(cfg.Engine.DictionaryPath)
		if err != nil {
			log.Fatal("loading risk dictionary", zap.String("path", cfg.Engine.DictionaryPath), zap.Error(err))
		}
	}
	det, err := risk.NewDetector(dict)
	if err != nil {
		log.Fatal("building risk detector", zap.Error(err))
	}

	var cls sentiment.Classifier
	switch cfg.Classifier.Backend {
	case "remote":
		cls = sentiment.NewRemote(cfg.Classifier.URL)
	case "onnx":
		cls, err = sentiment.NewONNX(cfg.Classifier.ModelPath, cfg.Classifier.VocabPath)
		if err != nil {
			log.Fatal("loading onnx classifier", zap.Error(err))
		}
	default:
		log.Fatal("unknown classifier backend", zap.String("backend", cfg.Classifier.Backend))
	}
	defer cls.Close()

	var opts []engine.Option
	if cfg.Engine.Validity == "min-length" {
		opts = append(opts, engine.WithSentimentPolicy(normalizer.MinLengthPolicy{N: cfg.Engine.MinLength}))
	}
	eng := engine.New(cls, det, opts...)

	srv := server.New(eng, log)
	log.Info("aulad starting",
		zap.String("port", cfg.Server.Port),
		zap.String("classifier", cfg.Classifier.Backend))
	if err := srv.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
