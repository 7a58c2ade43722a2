package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/agencyflow/agency-manager-api/infrastructure/database/jsonfile"
	geminimocks "github.com/agencyflow/agency-manager-api/infrastructure/integrator/gemini/mocks"
	"github.com/agencyflow/agency-manager-api/infrastructure/repository"
	"github.com/agencyflow/agency-manager-api/internal/api/handler/router"
	"github.com/agencyflow/agency-manager-api/internal/config"
	"github.com/agencyflow/agency-manager-api/internal/domain"
	"github.com/agencyflow/agency-manager-api/internal/usecases/analyzing"
)

func newAnalysisServer(t *testing.T, gemini *geminimocks.MockClient) *httptest.Server {
	t.Helper()

	db, err := jsonfile.Open(config.Database{
		DataDir:  t.TempDir(),
		DataFile: "data.json",
	})
	require.NoError(t, err)

	service := analyzing.NewService(gemini, repository.NewActivityRepository(db))

	rt := router.New(router.WithRoutes(Analysis(service)...))

	server := httptest.NewServer(rt)
	t.Cleanup(server.Close)

	return server
}

func TestAnalyzeReturnsGeminiResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	gemini := geminimocks.NewMockClient(ctrl)
	gemini.EXPECT().
		GenerateContent(gomock.Any(), gomock.Any()).
		Return("Plano de marketing", nil)

	server := newAnalysisServer(t, gemini)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/ai/analyze", analyzing.AnalysisRequest{
		ClientID:     "client-1",
		AnalysisType: analyzing.AnalysisTypeStrategy,
		ClientData:   domain.Client{ID: "client-1", Name: "Acme"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decode[analyzing.AnalysisResult](t, resp)
	assert.Equal(t, "Plano de marketing", result.Result)
	assert.Equal(t, analyzing.SourceGeminiAPI, result.Source)
	assert.Equal(t, "Acme", result.ClientName)
}

func TestAnalyzeMissingFieldsReturns400(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := newAnalysisServer(t, geminimocks.NewMockClient(ctrl))

	resp := doJSON(t, http.MethodPost, server.URL+"/api/ai/analyze", map[string]any{
		"clientId": "client-1",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnalyzeNullBodyReturns400(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := newAnalysisServer(t, geminimocks.NewMockClient(ctrl))

	resp, err := http.Post(server.URL+"/api/ai/analyze", "application/json", strings.NewReader("null"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
