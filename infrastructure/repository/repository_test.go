package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agencyflow/agency-manager-api/infrastructure/database/jsonfile"
	"github.com/agencyflow/agency-manager-api/internal/config"
	"github.com/agencyflow/agency-manager-api/internal/domain"
)

func openTestDatabase(t *testing.T) *jsonfile.Database {
	t.Helper()

	db, err := jsonfile.Open(config.Database{
		DataDir:  t.TempDir(),
		DataFile: "data.json",
	})
	require.NoError(t, err)

	return db
}

func strPtr(s string) *string { return &s }

func TestClientCreateAppliesDefaults(t *testing.T) {
	repo := NewClientRepository(openTestDatabase(t))

	client, err := repo.Create(&domain.Client{Name: "Acme Corp"})
	require.NoError(t, err)

	assert.NotEmpty(t, client.ID)
	assert.Equal(t, domain.DefaultPrimaryColor, client.PrimaryColor)
	assert.Equal(t, domain.DefaultBrandFont, client.BrandFont)
	assert.Equal(t, domain.ClientStatusActive, client.Status)
	assert.NotNil(t, client.BrandVoice)
	assert.False(t, client.CreatedAt.IsZero())
}

func TestClientGetByIDMissingReturnsNil(t *testing.T) {
	repo := NewClientRepository(openTestDatabase(t))

	client, err := repo.GetByID("nope")
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestClientListOrderedByCreation(t *testing.T) {
	repo := NewClientRepository(openTestDatabase(t))

	first, err := repo.Create(&domain.Client{Name: "Primeiro"})
	require.NoError(t, err)
	second, err := repo.Create(&domain.Client{Name: "Segundo"})
	require.NoError(t, err)

	clients, err := repo.List()
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, first.ID, clients[0].ID)
	assert.Equal(t, second.ID, clients[1].ID)
}

func TestStrategyUpdateMergesOnlyPresentFields(t *testing.T) {
	repo := NewStrategyRepository(openTestDatabase(t))

	strategy, err := repo.Create(&domain.Strategy{
		Name:        "Plano Q1",
		ClientID:    strPtr("client-1"),
		Description: strPtr("Plano original"),
		Sections:    map[string]string{"Market Analysis": "texto"},
	})
	require.NoError(t, err)

	createdAt := strategy.CreatedAt
	time.Sleep(5 * time.Millisecond)

	updated, err := repo.Update(strategy.ID, &domain.UpdateStrategyRequest{
		Name: strPtr("Plano Q1 revisado"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Plano Q1 revisado", updated.Name)
	assert.Equal(t, "Plano original", *updated.Description)
	assert.Equal(t, map[string]string{"Market Analysis": "texto"}, updated.Sections)
	assert.Equal(t, createdAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(createdAt))
}

func TestStrategyUpdateReplacesSectionsWholesale(t *testing.T) {
	repo := NewStrategyRepository(openTestDatabase(t))

	strategy, err := repo.Create(&domain.Strategy{
		Name:     "Plano",
		Sections: map[string]string{"A": "1", "B": "2"},
	})
	require.NoError(t, err)

	sections := map[string]string{"C": "3"}
	updated, err := repo.Update(strategy.ID, &domain.UpdateStrategyRequest{
		Sections: &sections,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"C": "3"}, updated.Sections)
}

func TestStrategyUpdateMissingReturnsErrNotFound(t *testing.T) {
	repo := NewStrategyRepository(openTestDatabase(t))

	_, err := repo.Update("nope", &domain.UpdateStrategyRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStrategyListByClientID(t *testing.T) {
	repo := NewStrategyRepository(openTestDatabase(t))

	_, err := repo.Create(&domain.Strategy{Name: "Do cliente", ClientID: strPtr("client-1")})
	require.NoError(t, err)
	_, err = repo.Create(&domain.Strategy{Name: "De outro", ClientID: strPtr("client-2")})
	require.NoError(t, err)
	_, err = repo.Create(&domain.Strategy{Name: "Sem cliente"})
	require.NoError(t, err)

	strategies, err := repo.ListByClientID("client-1")
	require.NoError(t, err)
	require.Len(t, strategies, 1)
	assert.Equal(t, "Do cliente", strategies[0].Name)
}

func TestCampaignCreateDefaultsToDraft(t *testing.T) {
	repo := NewCampaignRepository(openTestDatabase(t))

	campaign, err := repo.Create(&domain.Campaign{Name: "Lançamento"})
	require.NoError(t, err)

	assert.NotEmpty(t, campaign.ID)
	assert.Equal(t, domain.CampaignStatusDraft, campaign.Status)
}

func TestActivityListDefaultLimitAndOrder(t *testing.T) {
	repo := NewActivityRepository(openTestDatabase(t))

	for i := 0; i < 12; i++ {
		_, err := repo.Create(&domain.Activity{Action: "created", Target: "client"})
		require.NoError(t, err)
		time.Sleep(time.Millisecond)
	}

	activities, err := repo.List(0)
	require.NoError(t, err)
	require.Len(t, activities, DefaultActivityLimit)

	for i := 1; i < len(activities); i++ {
		assert.False(t, activities[i].CreatedAt.After(activities[i-1].CreatedAt))
	}
}

func TestActivityCreateDefaultsUserToSystem(t *testing.T) {
	repo := NewActivityRepository(openTestDatabase(t))

	activity, err := repo.Create(&domain.Activity{Action: "created", Target: "client"})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultActivityUser, activity.User)
}

func TestClientAssetDeleteMissingIsNoop(t *testing.T) {
	repo := NewClientAssetRepository(openTestDatabase(t))

	assert.NoError(t, repo.Delete("nope"))
}

func TestClientAssetCreateAndDelete(t *testing.T) {
	repo := NewClientAssetRepository(openTestDatabase(t))

	asset, err := repo.Create(&domain.ClientAsset{
		ClientID: "client-1",
		Name:     "Brand guidelines",
		Type:     domain.AssetTypeDocument,
	})
	require.NoError(t, err)
	assert.Equal(t, "false", asset.IsURL)

	require.NoError(t, repo.Delete(asset.ID))

	assets, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, assets)
}

func TestUserCreateAndLookup(t *testing.T) {
	repo := NewUserRepository(openTestDatabase(t))

	user, err := repo.Create(&domain.User{Username: "maria", Password: "hash"})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)

	byID, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)

	byUsername, err := repo.GetByUsername("maria")
	require.NoError(t, err)
	require.NotNil(t, byUsername)
	assert.Equal(t, user.ID, byUsername.ID)

	missing, err := repo.GetByUsername("joao")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
