package analyzing

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	geminimocks "github.com/agencyflow/agency-manager-api/infrastructure/integrator/gemini/mocks"
	repomocks "github.com/agencyflow/agency-manager-api/infrastructure/repository/mocks"
	"github.com/agencyflow/agency-manager-api/internal/domain"
)

func analysisFixture(analysisType string) *AnalysisRequest {
	industry := "Technology"
	budget := 5000

	return &AnalysisRequest{
		ClientID:     "client-1",
		AnalysisType: analysisType,
		ClientData: domain.Client{
			ID:            "client-1",
			Name:          "Acme Corp",
			Industry:      &industry,
			MonthlyBudget: &budget,
		},
	}
}

func TestAnalyzeSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)

	client := geminimocks.NewMockClient(ctrl)
	activityRepo := repomocks.NewMockActivityRepository(ctrl)

	client.EXPECT().
		GenerateContent(gomock.Any(), gomock.Any()).
		Return("Plano de marketing detalhado", nil)
	activityRepo.EXPECT().
		Create(gomock.Any()).
		Return(&domain.Activity{}, nil)

	service := NewService(client, activityRepo)

	result, err := service.Analyze(context.Background(), analysisFixture(AnalysisTypeStrategy))
	require.NoError(t, err)

	assert.Equal(t, "Plano de marketing detalhado", result.Result)
	assert.Equal(t, "Acme Corp", result.ClientName)
	assert.Equal(t, AnalysisTypeStrategy, result.AnalysisType)
	assert.Equal(t, SourceGeminiAPI, result.Source)
	assert.False(t, result.Timestamp.IsZero())
}

func TestAnalyzeFallbackOnError(t *testing.T) {
	ctrl := gomock.NewController(t)

	client := geminimocks.NewMockClient(ctrl)
	activityRepo := repomocks.NewMockActivityRepository(ctrl)

	client.EXPECT().
		GenerateContent(gomock.Any(), gomock.Any()).
		Return("", errors.New("api indisponível"))
	activityRepo.EXPECT().
		Create(gomock.Any()).
		Return(&domain.Activity{}, nil)

	service := NewService(client, activityRepo)

	result, err := service.Analyze(context.Background(), analysisFixture(AnalysisTypeStrategy))
	require.NoError(t, err)

	assert.Equal(t, SourceFallback, result.Source)
	assert.Contains(t, result.Result, "Acme Corp")
	assert.Contains(t, result.Result, "Marketing Strategy")
}

func TestAnalyzeFallbackOnEmptyResponse(t *testing.T) {
	ctrl := gomock.NewController(t)

	client := geminimocks.NewMockClient(ctrl)
	activityRepo := repomocks.NewMockActivityRepository(ctrl)

	client.EXPECT().
		GenerateContent(gomock.Any(), gomock.Any()).
		Return("", nil)
	activityRepo.EXPECT().
		Create(gomock.Any()).
		Return(&domain.Activity{}, nil)

	service := NewService(client, activityRepo)

	result, err := service.Analyze(context.Background(), analysisFixture(AnalysisTypeContent))
	require.NoError(t, err)

	assert.Equal(t, SourceFallback, result.Source)
	assert.Contains(t, result.Result, "Content Calendar")
}

func TestAnalyzeCustomPromptOnRegenerate(t *testing.T) {
	ctrl := gomock.NewController(t)

	client := geminimocks.NewMockClient(ctrl)
	activityRepo := repomocks.NewMockActivityRepository(ctrl)

	req := analysisFixture(AnalysisTypeStrategy)
	req.IsRegenerate = true
	req.Section = "Channels"
	req.Prompt = "Rewrite only the channel mix for Acme Corp"

	client.EXPECT().
		GenerateContent(gomock.Any(), req.Prompt).
		Return("Novo mix de canais", nil)
	activityRepo.EXPECT().
		Create(gomock.Any()).
		Return(&domain.Activity{}, nil)

	service := NewService(client, activityRepo)

	result, err := service.Analyze(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Novo mix de canais", result.Result)
}

func TestAnalyzeActivityFailureIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)

	client := geminimocks.NewMockClient(ctrl)
	activityRepo := repomocks.NewMockActivityRepository(ctrl)

	client.EXPECT().
		GenerateContent(gomock.Any(), gomock.Any()).
		Return("Plano", nil)
	activityRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(activity *domain.Activity) (*domain.Activity, error) {
			assert.Equal(t, "generated", activity.Action)
			assert.Equal(t, "analysis", activity.Target)
			return nil, errors.New("disco cheio")
		})

	service := NewService(client, activityRepo)

	result, err := service.Analyze(context.Background(), analysisFixture(AnalysisTypeOptimization))
	require.NoError(t, err)
	assert.Equal(t, "Plano", result.Result)
}

func TestBuildPromptIncludesClientProfile(t *testing.T) {
	req := analysisFixture(AnalysisTypeStrategy)

	prompt := buildPrompt(req)
	assert.Contains(t, prompt, "Acme Corp")
	assert.Contains(t, prompt, "Technology")
	assert.True(t, strings.Contains(prompt, "5000"))
}
