// Package web exposes the assessment engine over HTTP: scoring, report
// submission with persistence, and report retrieval by token.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/dotcommander/scorekit/internal/crm"
	"github.com/dotcommander/scorekit/internal/report"
	"github.com/dotcommander/scorekit/internal/scoring"
	"github.com/dotcommander/scorekit/internal/store"
	"github.com/dotcommander/scorekit/internal/template"
)

// Service is the embedded web server around the registry and report store.
type Service struct {
	e        *echo.Echo
	registry *template.Registry
	reports  store.Store
	crm      *crm.Client
	host     string
	port     int
}

// New wires the service routes. The crm client may be disabled; report
// submission then skips the contact upsert.
func New(registry *template.Registry, reports store.Store, crmClient *crm.Client, host string, port int) *Service {
	s := &Service{
		e:        echo.New(),
		registry: registry,
		reports:  reports,
		crm:      crmClient,
		host:     host,
		port:     port,
	}

	s.e.HideBanner = true
	s.e.Logger.SetLevel(log.INFO)

	// pingable method to know we're up
	s.e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, "OK")
	})
	s.e.GET("/templates", s.handleListTemplates)
	s.e.POST("/score", s.handleScore)
	s.e.POST("/report", s.handleCreateReport)
	s.e.GET("/report/:token", s.handleGetReport)

	return s
}

// Start runs the server in the background; errors surface through the echo
// logger.
func (s *Service) Start() {
	address := fmt.Sprintf("%s:%d", s.host, s.port)
	go func(addr string) {
		if err := s.e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.e.Logger.Info("error starting server: ", err)
		}
	}(address)
}

// Shutdown stops the server gracefully.
func (s *Service) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.e.Shutdown(ctx)
}

// Handler exposes the routing tree for tests.
func (s *Service) Handler() http.Handler {
	return s.e
}

type templateSummary struct {
	ID               string `json:"id"`
	Version          string `json:"version"`
	Name             string `json:"name"`
	EstimatedMinutes int    `json:"estimatedMinutes"`
}

func (s *Service) handleListTemplates(c echo.Context) error {
	templates := s.registry.List()
	out := make([]templateSummary, 0, len(templates))
	for _, t := range templates {
		out = append(out, templateSummary{
			ID:               t.ID,
			Version:          t.Version,
			Name:             t.Name,
			EstimatedMinutes: t.EstimatedMinutes,
		})
	}
	return c.JSON(http.StatusOK, out)
}

type scoreRequest struct {
	TemplateID string         `json:"templateId" form:"templateId"`
	Answers    map[string]any `json:"answers"`
}

func (s *Service) handleScore(c echo.Context) error {
	req := &scoreRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}
	if req.TemplateID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "must supply a templateId")
	}

	t, ok := s.registry.Get(req.TemplateID)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown template: "+req.TemplateID)
	}

	result := scoring.Calculate(t, scoring.DiagnosticAnswers(req.Answers))
	return c.JSON(http.StatusOK, result)
}

type createReportRequest struct {
	TemplateID string         `json:"templateId"`
	Answers    map[string]any `json:"answers"`
	Lead       store.Lead     `json:"lead"`
}

type createReportResponse struct {
	Token  string `json:"token"`
	Result any    `json:"result"`
}

func (s *Service) handleCreateReport(c echo.Context) error {
	req := &createReportRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}
	if req.TemplateID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "must supply a templateId")
	}

	t, ok := s.registry.Get(req.TemplateID)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown template: "+req.TemplateID)
	}

	result := scoring.Calculate(t, scoring.DiagnosticAnswers(req.Answers))

	token, err := s.reports.CreateReport(c.Request().Context(), store.CreateReportInput{
		TemplateID: req.TemplateID,
		Answers:    req.Answers,
		Result:     result,
		Lead:       req.Lead,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// CRM sync is best-effort: a failed upsert must never block the report.
	if s.crm != nil && s.crm.Enabled() && req.Lead.Email != "" {
		contact := crm.Contact{Email: req.Lead.Email, Name: req.Lead.Name, Company: req.Lead.Company}
		fields := map[string]any{
			"assessment_band":  result.Band,
			"assessment_score": result.Percentage,
		}
		if _, err := s.crm.UpsertContact(c.Request().Context(), contact, []string{"assessment-completed"}, fields); err != nil {
			s.e.Logger.Warn("crm upsert failed: ", err)
		}
	}

	return c.JSON(http.StatusCreated, createReportResponse{Token: token, Result: result})
}

type reportResponse struct {
	Record *store.ReportRecord `json:"record"`
	Report report.View         `json:"report"`
}

func (s *Service) handleGetReport(c echo.Context) error {
	token := c.Param("token")

	record, err := s.reports.GetReport(c.Request().Context(), token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "no report for token")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	t, ok := s.registry.Get(record.TemplateID)
	if !ok {
		return echo.NewHTTPError(http.StatusConflict, "report references unregistered template: "+record.TemplateID)
	}

	return c.JSON(http.StatusOK, reportResponse{
		Record: record,
		Report: report.Build(t, record.Answers),
	})
}
