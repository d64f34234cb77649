package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TALA-AI/tala-web/internal/rag"
	"github.com/TALA-AI/tala-web/internal/refdata"
)

type fakeService struct {
	matches   []rag.AccidentMatch
	searchErr error
	answer    string
	answerErr error
	askResult *rag.AskResult
	askErr    error
}

func (f *fakeService) SearchAccidents(ctx context.Context, accidentText string) ([]rag.AccidentMatch, error) {
	return f.matches, f.searchErr
}

func (f *fakeService) Answer(ctx context.Context, accidentText, question string) (string, error) {
	return f.answer, f.answerErr
}

func (f *fakeService) Ask(ctx context.Context, question string) (*rag.AskResult, error) {
	return f.askResult, f.askErr
}

func doRequest(t *testing.T, svc Consultant, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	handler := NewHandler(svc)
	e.POST("/search_accidents/", handler.SearchAccidents)
	e.POST("/ask_ai/", handler.AskAI)
	e.POST("/ask", handler.Ask)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSearchAccidents_OK(t *testing.T) {
	svc := &fakeService{matches: []rag.AccidentMatch{
		{Accident: "교차로 좌회전 추돌", URL: "http://one"},
		{Accident: "신호위반 직진 충돌", URL: "http://two"},
	}}

	rec := doRequest(t, svc, http.MethodPost, "/search_accidents/", `{"accident_text":"교차로 사고"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var matches []rag.AccidentMatch
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matches))
	require.Len(t, matches, 2)
	assert.Equal(t, "교차로 좌회전 추돌", matches[0].Accident)
	assert.Equal(t, "http://one", matches[0].URL)
}

func TestSearchAccidents_NotFound(t *testing.T) {
	svc := &fakeService{searchErr: rag.ErrNoSimilarCases}

	rec := doRequest(t, svc, http.MethodPost, "/search_accidents/", `{"accident_text":"사고"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, NoSimilarCaseDetail, body.Detail)
}

func TestSearchAccidents_UpstreamFailure(t *testing.T) {
	svc := &fakeService{searchErr: errors.New("qdrant unreachable")}

	rec := doRequest(t, svc, http.MethodPost, "/search_accidents/", `{"accident_text":"사고"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestAskAI_OK(t *testing.T) {
	svc := &fakeService{answer: "기본 과실비율은 70:30입니다."}

	rec := doRequest(t, svc, http.MethodPost, "/ask_ai/", `{"accident_text":"교차로 좌회전 추돌","user_question":"과실비율은?"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "기본 과실비율은 70:30입니다.", body["response"])
}

func TestAskAI_UnknownAccident(t *testing.T) {
	svc := &fakeService{answerErr: refdata.ErrCaseNotFound}

	rec := doRequest(t, svc, http.MethodPost, "/ask_ai/", `{"accident_text":"모르는 사고","user_question":"질문"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAsk_OK(t *testing.T) {
	svc := &fakeService{askResult: &rag.AskResult{
		Answer: "교차로에서는 ...",
		Sources: []rag.Source{
			{CaseID: "도로교통법 개정문#0", Chunk: "제25조 교차로 통행방법"},
		},
	}}

	rec := doRequest(t, svc, http.MethodPost, "/ask", `{"question":"교차로 통행방법은?"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var result rag.AskResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "교차로에서는 ...", result.Answer)
	require.Len(t, result.Sources, 1)
	assert.Equal(t, "도로교통법 개정문#0", result.Sources[0].CaseID)
}

func TestAsk_UpstreamFailure(t *testing.T) {
	svc := &fakeService{askErr: errors.New("llm down")}

	rec := doRequest(t, svc, http.MethodPost, "/ask", `{"question":"질문"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

type fakeHealth struct{ err error }

func (f *fakeHealth) Health(ctx context.Context) error { return f.err }

func TestHealth(t *testing.T) {
	e := echo.New()
	e.GET("/health", NewHealthHandler(&fakeHealth{}).Check)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "connected", body.Qdrant)
}

func TestHealth_Unavailable(t *testing.T) {
	e := echo.New()
	e.GET("/health", NewHealthHandler(&fakeHealth{err: errors.New("down")}).Check)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
