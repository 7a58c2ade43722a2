package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/agencyflow/agency-manager-api/infrastructure/repository"
	"github.com/agencyflow/agency-manager-api/internal/domain"
	"github.com/agencyflow/agency-manager-api/pkg/apiErrors"
)

// ListStrategies lista as estratégias, opcionalmente filtradas por clientId
func ListStrategies(strategyRepo repository.StrategyRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			strategies []*domain.Strategy
			err        error
		)

		if clientID := r.URL.Query().Get("clientId"); clientID != "" {
			strategies, err = strategyRepo.ListByClientID(clientID)
		} else {
			strategies, err = strategyRepo.List()
		}
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao buscar estratégias", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(strategies); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// CreateStrategy cria uma nova estratégia e registra a atividade
func CreateStrategy(strategyRepo repository.StrategyRepository, activityRepo repository.ActivityRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.Strategy

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome da estratégia é obrigatório", nil)
			return
		}

		strategy, err := strategyRepo.Create(&req)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao criar estratégia", nil)
			return
		}

		details := "New strategy created"
		logActivity(activityRepo, &domain.Activity{
			Action:     "created",
			Target:     "strategy",
			TargetName: &strategy.Name,
			TargetID:   &strategy.ID,
			ClientID:   strategy.ClientID,
			Details:    &details,
		})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(strategy); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// UpdateStrategy aplica uma atualização parcial: somente os campos presentes
// no corpo são alterados
func UpdateStrategy(strategyRepo repository.StrategyRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var updates domain.UpdateStrategyRequest
		if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		strategy, err := strategyRepo.Update(id, &updates)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrStrategyNotFound, "Estratégia não encontrada", nil)
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao atualizar estratégia", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(strategy); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
