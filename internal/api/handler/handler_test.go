package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/justinas/alice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agencyflow/agency-manager-api/infrastructure/database/jsonfile"
	"github.com/agencyflow/agency-manager-api/infrastructure/repository"
	"github.com/agencyflow/agency-manager-api/internal/api/handler/router"
	"github.com/agencyflow/agency-manager-api/internal/config"
	"github.com/agencyflow/agency-manager-api/internal/domain"
	"github.com/agencyflow/agency-manager-api/pkg/middleware"
)

// newTestServer monta o servidor HTTP completo sobre um banco jsonfile em
// diretório temporário, um por teste.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := jsonfile.Open(config.Database{
		DataDir:  t.TempDir(),
		DataFile: "data.json",
	})
	require.NoError(t, err)

	clientRepo := repository.NewClientRepository(db)
	strategyRepo := repository.NewStrategyRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	assetRepo := repository.NewClientAssetRepository(db)
	userRepo := repository.NewUserRepository(db)

	rt := router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Clients(clientRepo, activityRepo)...),
		router.WithRoutes(Strategies(strategyRepo, activityRepo)...),
		router.WithRoutes(Campaigns(campaignRepo, activityRepo)...),
		router.WithRoutes(Activities(activityRepo)...),
		router.WithRoutes(ClientAssets(assetRepo, activityRepo)...),
		router.WithRoutes(Users(userRepo)...),
	)

	chain := alice.New(
		middleware.LogPanicMiddleware(),
		middleware.Cors(),
	).Then(rt)

	server := httptest.NewServer(chain)
	t.Cleanup(server.Close)

	return server
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHealthcheck(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/healthcheck")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[map[string]string](t, resp)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestCreateAndGetClient(t *testing.T) {
	server := newTestServer(t)

	budget := 3000
	resp := doJSON(t, http.MethodPost, server.URL+"/api/clients", domain.Client{
		Name:          "Acme",
		MonthlyBudget: &budget,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	created := decode[domain.Client](t, resp)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.DefaultPrimaryColor, created.PrimaryColor)

	resp, err := http.Get(server.URL + "/api/clients/" + created.ID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	fetched := decode[domain.Client](t, resp)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Acme", fetched.Name)
	require.NotNil(t, fetched.MonthlyBudget)
	assert.Equal(t, 3000, *fetched.MonthlyBudget)
}

func TestGetClientMissingReturns404(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/clients/nope")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateClientWithoutNameReturns400(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/clients", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Corpo `null` é JSON válido e deve cair na validação de campos obrigatórios,
// nunca em pânico do handler.
func TestCreateWithNullBodyReturns400(t *testing.T) {
	server := newTestServer(t)

	paths := []string{
		"/api/clients",
		"/api/strategies",
		"/api/campaigns",
		"/api/client-assets",
		"/api/users",
	}

	for _, path := range paths {
		resp, err := http.Post(server.URL+path, "application/json", strings.NewReader("null"))
		require.NoError(t, err)
		assert.Equalf(t, http.StatusBadRequest, resp.StatusCode, "POST %s", path)
	}
}

func TestUpdateStrategyWithNullBodyDoesNotPanic(t *testing.T) {
	server := newTestServer(t)

	created := decode[domain.Strategy](t, doJSON(t, http.MethodPost, server.URL+"/api/strategies", map[string]any{
		"name": "Plano Q3",
	}))

	req, err := http.NewRequest(http.MethodPatch, server.URL+"/api/strategies/"+created.ID, strings.NewReader("null"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	got := decode[domain.Strategy](t, resp)
	assert.Equal(t, "Plano Q3", got.Name)
}

// Cenário completo: cliente → campanha → filtro por clientId → feed de
// atividades com o registro da campanha.
func TestCampaignLifecycleWithActivityFeed(t *testing.T) {
	server := newTestServer(t)

	budget := 3000
	resp := doJSON(t, http.MethodPost, server.URL+"/api/clients", domain.Client{
		Name:          "Acme",
		MonthlyBudget: &budget,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	client := decode[domain.Client](t, resp)

	resp = doJSON(t, http.MethodPost, server.URL+"/api/campaigns", domain.Campaign{
		Name:     "Lançamento de verão",
		ClientID: &client.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	campaign := decode[domain.Campaign](t, resp)
	assert.Equal(t, domain.CampaignStatusDraft, campaign.Status)

	resp, err := http.Get(server.URL + "/api/campaigns?clientId=" + client.ID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	campaigns := decode[[]domain.Campaign](t, resp)
	require.Len(t, campaigns, 1)
	assert.Equal(t, campaign.ID, campaigns[0].ID)

	resp, err = http.Get(server.URL + "/api/activities")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	activities := decode[[]domain.Activity](t, resp)

	var found bool
	for _, activity := range activities {
		if activity.Action == "created" && activity.Target == "campaign" {
			found = true
			assert.Equal(t, domain.DefaultActivityUser, activity.User)
		}
	}
	assert.True(t, found, "atividade da campanha ausente no feed")
}

func TestUpdateStrategyMergesFields(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/strategies", domain.Strategy{
		Name:     "Plano Q1",
		Sections: map[string]string{"Market Analysis": "texto"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	strategy := decode[domain.Strategy](t, resp)

	resp = doJSON(t, http.MethodPatch, server.URL+"/api/strategies/"+strategy.ID, map[string]any{
		"status": domain.StrategyStatusArchived,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	updated := decode[domain.Strategy](t, resp)
	assert.Equal(t, domain.StrategyStatusArchived, updated.Status)
	assert.Equal(t, "Plano Q1", updated.Name)
	assert.Equal(t, map[string]string{"Market Analysis": "texto"}, updated.Sections)
}

func TestUpdateStrategyUnknownReturns404(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodPatch, server.URL+"/api/strategies/nope", map[string]any{
		"name": "Novo nome",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestClientAssetUploadAndDelete(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/client-assets", domain.ClientAsset{
		ClientID: "client-1",
		Name:     "Brand guidelines",
		Type:     domain.AssetTypeDocument,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	asset := decode[domain.ClientAsset](t, resp)
	assert.Equal(t, "false", asset.IsURL)

	req, err := http.NewRequest(http.MethodDelete, server.URL+"/api/client-assets/"+asset.ID, nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.Get(server.URL + "/api/client-assets?clientId=client-1")
	require.NoError(t, err)
	assets := decode[[]domain.ClientAsset](t, resp)
	assert.Empty(t, assets)
}

func TestCreateUserHidesPasswordHash(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/users", domain.CreateUserRequest{
		Username: "maria",
		Password: "s3nh4-f0rte",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	raw := decode[map[string]any](t, resp)
	assert.Equal(t, "maria", raw["username"])
	assert.NotEmpty(t, raw["id"])
	assert.NotContains(t, raw, "password")
}

func TestCreateUserDuplicateUsernameRejected(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/users", domain.CreateUserRequest{
		Username: "maria",
		Password: "s3nh4",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, server.URL+"/api/users", domain.CreateUserRequest{
		Username: "maria",
		Password: "outra",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
