package handler

import (
	"net/http"

	"github.com/agencyflow/agency-manager-api/infrastructure/repository"
	"github.com/agencyflow/agency-manager-api/internal/api/handler/router"
	"github.com/agencyflow/agency-manager-api/internal/usecases/analyzing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Clients(clientRepo repository.ClientRepository, activityRepo repository.ActivityRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/api/clients",
			Method:  http.MethodGet,
			Handler: ListClients(clientRepo),
		},
		{
			Path:    "/api/clients",
			Method:  http.MethodPost,
			Handler: CreateClient(clientRepo, activityRepo),
		},
		{
			Path:    "/api/clients/:id",
			Method:  http.MethodGet,
			Handler: GetClient(clientRepo),
		},
	}
}

func Strategies(strategyRepo repository.StrategyRepository, activityRepo repository.ActivityRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/api/strategies",
			Method:  http.MethodGet,
			Handler: ListStrategies(strategyRepo),
		},
		{
			Path:    "/api/strategies",
			Method:  http.MethodPost,
			Handler: CreateStrategy(strategyRepo, activityRepo),
		},
		{
			Path:    "/api/strategies/:id",
			Method:  http.MethodPatch,
			Handler: UpdateStrategy(strategyRepo),
		},
	}
}

func Campaigns(campaignRepo repository.CampaignRepository, activityRepo repository.ActivityRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/api/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(campaignRepo),
		},
		{
			Path:    "/api/campaigns",
			Method:  http.MethodPost,
			Handler: CreateCampaign(campaignRepo, activityRepo),
		},
	}
}

func Activities(activityRepo repository.ActivityRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/api/activities",
			Method:  http.MethodGet,
			Handler: ListActivities(activityRepo),
		},
	}
}

func ClientAssets(assetRepo repository.ClientAssetRepository, activityRepo repository.ActivityRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/api/client-assets",
			Method:  http.MethodGet,
			Handler: ListClientAssets(assetRepo),
		},
		{
			Path:    "/api/client-assets",
			Method:  http.MethodPost,
			Handler: CreateClientAsset(assetRepo, activityRepo),
		},
		{
			Path:    "/api/client-assets/:id",
			Method:  http.MethodDelete,
			Handler: DeleteClientAsset(assetRepo, activityRepo),
		},
	}
}

func Users(userRepo repository.UserRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/api/users",
			Method:  http.MethodPost,
			Handler: CreateUser(userRepo),
		},
		{
			Path:    "/api/users/:id",
			Method:  http.MethodGet,
			Handler: GetUser(userRepo),
		},
	}
}

func Analysis(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/api/ai/analyze",
			Method:  http.MethodPost,
			Handler: Analyze(service),
		},
	}
}
