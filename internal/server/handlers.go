// Package server exposes the consultation services over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/TALA-AI/tala-web/internal/rag"
	"github.com/TALA-AI/tala-web/internal/refdata"
)

// NoSimilarCaseDetail is the client-facing message when the case index
// yields zero candidates.
const NoSimilarCaseDetail = "유사한 사고 사례를 찾을 수 없습니다."

// Consultant is the handler-facing subset of the RAG service.
type Consultant interface {
	SearchAccidents(ctx context.Context, accidentText string) ([]rag.AccidentMatch, error)
	Answer(ctx context.Context, accidentText, question string) (string, error)
	Ask(ctx context.Context, question string) (*rag.AskResult, error)
}

// Handler holds the request handlers for the consultation API.
type Handler struct {
	service Consultant
}

// NewHandler creates a Handler backed by the given service.
func NewHandler(service Consultant) *Handler {
	return &Handler{service: service}
}

type accidentQuery struct {
	AccidentText string `json:"accident_text"`
}

type aiQuery struct {
	AccidentText string `json:"accident_text"`
	UserQuestion string `json:"user_question"`
}

type askQuery struct {
	Question string `json:"question"`
}

type errorBody struct {
	Detail string `json:"detail"`
}

// SearchAccidents handles POST /search_accidents/.
// Returns the top similar cases nearest first, or 404 when none exist.
func (h *Handler) SearchAccidents(c echo.Context) error {
	var body accidentQuery
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Detail: "invalid request body"})
	}

	matches, err := h.service.SearchAccidents(c.Request().Context(), body.AccidentText)
	if err != nil {
		if errors.Is(err, rag.ErrNoSimilarCases) {
			return c.JSON(http.StatusNotFound, errorBody{Detail: NoSimilarCaseDetail})
		}
		return c.JSON(http.StatusBadGateway, errorBody{Detail: err.Error()})
	}

	return c.JSON(http.StatusOK, matches)
}

// AskAI handles POST /ask_ai/: a question about a previously selected
// accident case.
func (h *Handler) AskAI(c echo.Context) error {
	var body aiQuery
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Detail: "invalid request body"})
	}

	answer, err := h.service.Answer(c.Request().Context(), body.AccidentText, body.UserQuestion)
	if err != nil {
		if errors.Is(err, refdata.ErrCaseNotFound) {
			return c.JSON(http.StatusNotFound, errorBody{Detail: err.Error()})
		}
		return c.JSON(http.StatusBadGateway, errorBody{Detail: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]string{"response": answer})
}

// Ask handles POST /ask: a general legal question answered from the
// law-chunk index.
func (h *Handler) Ask(c echo.Context) error {
	var body askQuery
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Detail: "invalid request body"})
	}

	result, err := h.service.Ask(c.Request().Context(), body.Question)
	if err != nil {
		return c.JSON(http.StatusBadGateway, errorBody{Detail: err.Error()})
	}

	return c.JSON(http.StatusOK, result)
}
