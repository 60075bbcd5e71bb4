// Package ui serves a finished evaluation report over HTTP: the rendered ROC
// figure, a JSON view of the report, and a small index page. This is the
// interactive counterpart of headless PNG capture; Run blocks the process the
// way a figure window would.
package ui

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"rocfold/domain/evaluation"
	"rocfold/ports"
)

const indexPage = `<!DOCTYPE html>
<html>
<head><title>%s</title></head>
<body>
<h2>%s</h2>
<p>run %s &mdash; %d folds, %d samples &times; %d features, mean area %.2f</p>
<img src="/figure.png" alt="ROC curves" width="800" height="600"/>
<p><a href="/api/report">report JSON</a></p>
</body>
</html>`

// Server exposes one evaluation report.
type Server struct {
	router   *gin.Engine
	report   *evaluation.Report
	renderer ports.FigureRenderer
	title    string

	renderOnce sync.Once
	figure     []byte
	renderErr  error
}

// NewServer creates the viewer for a finished report.
func NewServer(report *evaluation.Report, renderer ports.FigureRenderer, title, ginMode string) *Server {
	if ginMode != "" {
		gin.SetMode(ginMode)
	}

	s := &Server{
		router:   gin.Default(),
		report:   report,
		renderer: renderer,
		title:    title,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/figure.png", s.handleFigure)
	s.router.GET("/api/report", s.handleReport)
}

// Run serves until the process is interrupted.
func (s *Server) Run(port string) error {
	return s.router.Run(":" + port)
}

// Router returns the underlying engine, used by tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) handleIndex(c *gin.Context) {
	page := fmt.Sprintf(indexPage,
		s.title, s.title,
		s.report.RunID.String(),
		s.report.Folds, s.report.Samples, s.report.Features,
		s.report.Mean.AUC,
	)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

func (s *Server) handleFigure(c *gin.Context) {
	s.renderOnce.Do(func() {
		s.figure, s.renderErr = s.renderer.Render(s.report)
	})
	if s.renderErr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": s.renderErr.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", s.figure)
}

func (s *Server) handleReport(c *gin.Context) {
	c.JSON(http.StatusOK, s.report)
}
