package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gitlab.com/urlp/parsers"
	"gitlab.com/urlp/store"
	"gitlab.com/urlp/urlp"
)

// Server exposes the parser over HTTP. History is optional, when nil
// results are not recorded and the history routes are not registered.
type Server struct {
	parser  *parsers.Parser
	history *store.History
}

type parseRequest struct {
	URI string `json:"uri" binding:"required"`
}

// New server using parser and optionally recording into history
func New(parser *parsers.Parser, history *store.History) *Server {
	return &Server{parser: parser, history: history}
}

// Router with all routes registered
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET("/parse", s.handleParseQuery)
	router.POST("/parse", s.handleParseBody)
	if s.history != nil {
		router.GET("/history", s.handleHistoryList)
		router.GET("/history/:id", s.handleHistoryGet)
	}
	return router
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		log.Debug().Str("method", c.Request.Method).Str("path", c.Request.URL.Path).Int("status", c.Writer.Status()).Msg("request")
	}
}

func (s *Server) handleParseQuery(c *gin.Context) {
	input, ok := c.GetQuery("uri")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing uri query parameter"})
		return
	}
	s.parse(c, input)
}

func (s *Server) handleParseBody(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.parse(c, req.URI)
}

func (s *Server) parse(c *gin.Context, input string) {
	u, rest, err := s.parser.Parse(input)
	result := urlp.NewResult(input, u, rest, err)

	if s.history != nil {
		if id, herr := s.history.Add(store.NewEntry(input, u, rest, err)); herr != nil {
			log.Error().Err(herr).Msg("failed to record parse")
		} else {
			c.Header("X-History-Id", strconv.FormatUint(id, 10))
		}
	}

	status := http.StatusOK
	if err != nil {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, result)
}

func (s *Server) handleHistoryList(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	entries, err := s.history.List(limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to list history")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (s *Server) handleHistoryGet(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	entry, err := s.history.Get(id)
	if errors.Is(err, urlp.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}
