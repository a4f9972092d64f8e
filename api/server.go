package api

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherdash.app/config"
	weathererr "weatherdash.app/errors"
	"weatherdash.app/models"
	"weatherdash.app/service"
)

// maxImportSize bounds the accepted CSV upload body.
const maxImportSize = 1 << 20

// Server represents the HTTP server and API handler
type Server struct {
	router    *gin.Engine
	config    *config.Config
	dashboard service.DashboardServiceInterface
}

// NewServer creates and configures a new HTTP server
func NewServer(config *config.Config, dashboard service.DashboardServiceInterface) *Server {
	router := gin.Default()

	server := &Server{
		router:    router,
		config:    config,
		dashboard: dashboard,
	}

	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/weather", s.getWeather)
		api.GET("/weather/coords", s.getWeatherByCoordinates)
		api.GET("/weather/address", s.getWeatherByAddress)
		api.GET("/locations", s.searchLocations)
		api.GET("/view", s.getView)
		api.GET("/background", s.getBackground)
		api.GET("/export", s.exportCSV)
		api.POST("/import", s.importCSV)
		api.GET("/history", s.getSearchHistory)
		api.DELETE("/history", s.clearSearchHistory)
		api.DELETE("/history/:id", s.deleteSearchEntry)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Start begins the HTTP server
func (s *Server) Start() error {
	return s.router.Run(fmt.Sprintf(":%d", s.config.Server.Port))
}

// GetRouter returns the router for testing purposes
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

type pageQuery struct {
	Page    int `form:"page" binding:"omitempty,min=0"`
	PerPage int `form:"per_page" binding:"omitempty,oneof=5 10 15"`
}

type cityQuery struct {
	City    string `form:"city" binding:"required"`
	Page    int    `form:"page" binding:"omitempty,min=0"`
	PerPage int    `form:"per_page" binding:"omitempty,oneof=5 10 15"`
}

type coordinatesQuery struct {
	Lat     *float64 `form:"lat" binding:"required"`
	Lon     *float64 `form:"lon" binding:"required"`
	Page    int      `form:"page" binding:"omitempty,min=0"`
	PerPage int      `form:"per_page" binding:"omitempty,oneof=5 10 15"`
}

type addressQuery struct {
	Address string `form:"address" binding:"required"`
	Page    int    `form:"page" binding:"omitempty,min=0"`
	PerPage int    `form:"per_page" binding:"omitempty,oneof=5 10 15"`
}

func (s *Server) getWeather(c *gin.Context) {
	var q cityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, weathererr.NewValidationError("city parameter is required"))
		return
	}

	slog.Debug("Getting weather for city", "city", q.City)
	state, err := s.dashboard.QueryCity(c.Request.Context(), q.City, q.Page, q.PerPage)
	if err != nil {
		slog.Error("Dashboard service error", "error", err, "city", q.City)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

func (s *Server) getWeatherByCoordinates(c *gin.Context) {
	var q coordinatesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, weathererr.NewValidationError("lat and lon parameters are required"))
		return
	}

	slog.Debug("Getting weather for coordinates", "lat", *q.Lat, "lon", *q.Lon)
	state, err := s.dashboard.QueryCoordinates(c.Request.Context(), *q.Lat, *q.Lon, q.Page, q.PerPage)
	if err != nil {
		slog.Error("Dashboard service error", "error", err, "lat", *q.Lat, "lon", *q.Lon)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

func (s *Server) getWeatherByAddress(c *gin.Context) {
	var q addressQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, weathererr.NewValidationError("address parameter is required"))
		return
	}

	slog.Debug("Getting weather for address", "address", q.Address)
	state, err := s.dashboard.QueryAddress(c.Request.Context(), q.Address, q.Page, q.PerPage)
	if err != nil {
		slog.Error("Dashboard service error", "error", err, "address", q.Address)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

func (s *Server) searchLocations(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		s.handleError(c, weathererr.NewValidationError("q parameter is required"))
		return
	}

	suggestions, err := s.dashboard.Autocomplete(c.Request.Context(), query)
	if err != nil {
		slog.Error("Location search error", "error", err, "query", query)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"locations": suggestions})
}

func (s *Server) getView(c *gin.Context) {
	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		s.handleError(c, weathererr.NewValidationError("invalid pagination parameters"))
		return
	}

	state, err := s.dashboard.Paginate(q.Page, q.PerPage)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

func (s *Server) getBackground(c *gin.Context) {
	state, err := s.dashboard.View()
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"video": state.BackgroundVideo})
}

func (s *Server) exportCSV(c *gin.Context) {
	content, filename, err := s.dashboard.ExportCSV()
	if err != nil {
		slog.Error("CSV export error", "error", err)
		s.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(content))
}

func (s *Server) importCSV(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportSize))
	if err != nil {
		s.handleError(c, weathererr.NewValidationError("unable to read request body"))
		return
	}
	if len(body) == 0 {
		s.handleError(c, weathererr.NewValidationError("request body cannot be empty"))
		return
	}

	state, err := s.dashboard.ImportCSV(string(body))
	if err != nil {
		slog.Error("CSV import error", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

func (s *Server) getSearchHistory(c *gin.Context) {
	entries, err := s.dashboard.SearchHistory()
	if err != nil {
		s.handleError(c, err)
		return
	}
	if entries == nil {
		entries = []models.SearchEntry{}
	}

	c.JSON(http.StatusOK, gin.H{"history": entries})
}

func (s *Server) clearSearchHistory(c *gin.Context) {
	if err := s.dashboard.ClearHistory(); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Search history cleared"})
}

func (s *Server) deleteSearchEntry(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		s.handleError(c, weathererr.NewValidationError("id must be a positive integer"))
		return
	}

	if err := s.dashboard.DeleteHistoryEntry(uint(id)); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Search entry deleted"})
}

// handleError handles different types of application errors
func (s *Server) handleError(c *gin.Context, err error) {
	var appErr *weathererr.AppError
	var statusCode int
	var message string

	if errors.As(err, &appErr) {
		switch appErr.Type {
		case weathererr.ValidationError:
			statusCode = http.StatusBadRequest
			message = appErr.Message
		case weathererr.NotFoundError:
			statusCode = http.StatusNotFound
			message = appErr.Message
		case weathererr.ParseError:
			statusCode = http.StatusBadRequest
			message = appErr.Message
		case weathererr.ExternalAPIError:
			statusCode = http.StatusServiceUnavailable
			message = "External service unavailable"
		case weathererr.GeocodingError:
			statusCode = http.StatusServiceUnavailable
			message = appErr.Message
		case weathererr.DatabaseError:
			statusCode = http.StatusInternalServerError
			message = "Internal server error"
		default:
			statusCode = http.StatusInternalServerError
			message = "Internal server error"
		}
	} else {
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	c.JSON(statusCode, models.ErrorResponse{Error: message})
}
