package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/agencyflow/agency-manager-api/infrastructure/repository"
	"github.com/agencyflow/agency-manager-api/internal/domain"
	"github.com/agencyflow/agency-manager-api/pkg/apiErrors"
)

// ListActivities retorna o feed de atividades, mais recentes primeiro
func ListActivities(activityRepo repository.ActivityRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Limite inválido", nil)
				return
			}
			limit = parsed
		}

		activities, err := activityRepo.List(limit)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao buscar atividades", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(activities); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// logActivity registra a atividade derivada de uma mutação. A falha é apenas
// registrada em log: a mutação já aconteceu e a resposta não depende do feed.
func logActivity(activityRepo repository.ActivityRepository, activity *domain.Activity) {
	if _, err := activityRepo.Create(activity); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"action": activity.Action,
			"target": activity.Target,
		}).Warn("Erro ao registrar atividade")
	}
}
