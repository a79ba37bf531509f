// Package server exposes the analysis engine over HTTP: the host surface
// for uploading a corpus and retrieving reports.
package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/solmirano/aula/internal/engine"
	"github.com/solmirano/aula/internal/engine/search"
	"github.com/solmirano/aula/internal/ingest"
	"github.com/solmirano/aula/internal/model"
)

// Server wires the analysis engine into a gin router. The engine (and its
// classifier) is created once at startup and reused for every request.
type Server struct {
	router *gin.Engine
	eng    *engine.Engine
	log    *zap.Logger
}

// New creates a Server around an analysis engine.
func New(eng *engine.Engine, log *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{router: router, eng: eng, log: log}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api/v1")
	{
		api.POST("/resumen", s.handleSummary)
		api.POST("/docentes/:id", s.handleTeacherDetail)
		api.POST("/riesgos", s.handleRiskFlags)
		api.POST("/busqueda", s.handleSearch)
	}
}

// Run starts the HTTP server. Blocks until the listener fails.
func (s *Server) Run(addr string) error {
	s.log.Info("server starting", zap.String("addr", addr))
	return s.router.Run(addr)
}

// readCorpus parses the uploaded CSV from the "archivo" multipart field.
func (s *Server) readCorpus(c *gin.Context) ([]model.Comment, bool) {
	fh, err := c.FormFile("archivo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "falta el archivo CSV"})
		return nil, false
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	defer f.Close()

	records, err := ingest.ReadComments(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return records, true
}

// handleSummary handles POST /api/v1/resumen: corpus upload plus a desde/
// hasta teacher id range, returning the severity report.
func (s *Server) handleSummary(c *gin.Context) {
	records, ok := s.readCorpus(c)
	if !ok {
		return
	}
	from, err := strconv.Atoi(c.DefaultPostForm("desde", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "desde no es un entero"})
		return
	}
	to, err := strconv.Atoi(c.DefaultPostForm("hasta", strconv.Itoa(int(^uint(0)>>1))))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hasta no es un entero"})
		return
	}

	summaries, err := s.eng.Summarize(c.Request.Context(), records, from, to)
	if err != nil {
		s.log.Error("summarize failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"docentes": toSummaryJSON(summaries)})
}

// handleTeacherDetail handles POST /api/v1/docentes/:id.
func (s *Server) handleTeacherDetail(c *gin.Context) {
	records, ok := s.readCorpus(c)
	if !ok {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id no es un entero"})
		return
	}

	detail, err := s.eng.TeacherDetail(c.Request.Context(), records, id)
	if err == nil {
		c.JSON(http.StatusOK, toDetailJSON(detail))
		return
	}
	if errors.Is(err, engine.ErrTeacherNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "docente no encontrado"})
		return
	}
	s.log.Error("teacher detail failed", zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}

// handleRiskFlags handles POST /api/v1/riesgos: risk-flagged comments only.
func (s *Server) handleRiskFlags(c *gin.Context) {
	records, ok := s.readCorpus(c)
	if !ok {
		return
	}
	flags := s.eng.FlagRisks(records)
	c.JSON(http.StatusOK, gin.H{"comentarios": toFlagJSON(flags)})
}

// handleSearch handles POST /api/v1/busqueda: keyword search with an
// optional ambito=riesgo restriction.
func (s *Server) handleSearch(c *gin.Context) {
	records, ok := s.readCorpus(c)
	if !ok {
		return
	}
	query := c.PostForm("palabra")
	scope, ok := search.ParseScope(c.DefaultPostForm("ambito", "todos"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ambito desconocido"})
		return
	}

	matches := s.eng.Search(records, query, scope)
	c.JSON(http.StatusOK, gin.H{"coincidencias": toMatchJSON(matches)})
}
