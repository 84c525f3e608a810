// Package api exposes squiggle prediction over HTTP.
package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v5"

	"github.com/scottcoutts/scrappie/internal/logger"
	"github.com/scottcoutts/scrappie/internal/squiggle"
)

type Server struct {
	model *squiggle.Model
	log   logger.Logger
}

func NewServer(model *squiggle.Model, log logger.Logger) *Server {
	if model == nil {
		model = squiggle.Default()
	}
	if log == nil {
		log = logger.Default()
	}
	return &Server{model: model, log: log}
}

func (s *Server) Register(e *echo.Echo) {
	e.POST("/v1/squiggle", s.handleSquiggle)
}

// SquiggleRequest asks for the predicted signal of one sequence. Rescale
// defaults to true when omitted.
type SquiggleRequest struct {
	ID       string `json:"id,omitempty"`
	Sequence string `json:"sequence"`
	Rescale  *bool  `json:"rescale,omitempty"`
}

type SquigglePosition struct {
	Pos     int     `json:"pos"`
	Base    string  `json:"base"`
	Current float32 `json:"current"`
	Sd      float32 `json:"sd"`
	Dwell   float32 `json:"dwell"`
}

type SquiggleResponse struct {
	ID        string             `json:"id"`
	Length    int                `json:"length"`
	Positions []SquigglePosition `json:"positions"`
}

func (s *Server) handleSquiggle(c *echo.Context) error {
	var req SquiggleRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_request", "malformed JSON body")
	}
	if req.Sequence == "" {
		return writeError(c, http.StatusBadRequest, "invalid_request", "sequence is required")
	}
	rescale := true
	if req.Rescale != nil {
		rescale = *req.Rescale
	}

	sq, err := s.model.Predict(req.Sequence, rescale)
	if err != nil {
		s.log.Warn("squiggle prediction failed", "error", err)
		if errors.Is(err, squiggle.ErrInvalidSequence) {
			return writeError(c, http.StatusBadRequest, "invalid_sequence", err.Error())
		}
		return writeError(c, http.StatusInternalServerError, "prediction_failed", err.Error())
	}

	id := req.ID
	if id == "" {
		id = "sqg_" + uuid.NewString()
	}
	resp := SquiggleResponse{
		ID:        id,
		Length:    sq.Len(),
		Positions: make([]SquigglePosition, sq.Len()),
	}
	for i := 0; i < sq.Len(); i++ {
		current, sd, dwell := sq.At(i)
		resp.Positions[i] = SquigglePosition{
			Pos:     i,
			Base:    string(sq.Base(i)),
			Current: current,
			Sd:      sd,
			Dwell:   dwell,
		}
	}
	return c.JSON(http.StatusOK, resp)
}

func writeError(c *echo.Context, status int, errType, msg string) error {
	return c.JSON(status, map[string]any{
		"error": map[string]any{
			"type":    errType,
			"message": msg,
		},
	})
}
