package v1

import (
	"github.com/shenikar/safety_reporting_system/internal/models"
)

// DTOToIncidentModel преобразует DTO создания в доменную модель
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	return &models.Incident{
		Title:       dto.Title,
		Description: dto.Description,
		Category:    models.IncidentCategory(dto.Category),
		Severity:    dto.Severity,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
		Address:     dto.Address,
		IsAnonymous: dto.IsAnonymous,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:                  model.ID,
		UserID:              model.UserID,
		Title:               model.Title,
		Description:         model.Description,
		Category:            string(model.Category),
		Severity:            model.Severity,
		RiskScore:           model.RiskScore,
		Latitude:            model.Latitude,
		Longitude:           model.Longitude,
		Address:             model.Address,
		IsAnonymous:         model.IsAnonymous,
		Status:              string(model.Status),
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
		RespondedAt:         model.RespondedAt,
		ResolvedAt:          model.ResolvedAt,
		ResponseTimeMinutes: model.ResponseTimeMinutes,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

func ModelToActorResponse(actor models.Actor) ActorResponse {
	return ActorResponse{
		ID:    actor.ID,
		Email: actor.Email,
		Role:  string(actor.Role),
	}
}

func ModelToUpdateStatusResponse(result *models.StatusUpdateResult) *UpdateStatusResponse {
	return &UpdateStatusResponse{
		Success:   true,
		Message:   result.Message,
		Incident:  ModelToIncidentResponse(result.Incident),
		UpdatedBy: ModelToActorResponse(result.UpdatedBy),
	}
}

func ModelsToIncidentLogResponses(entries []*models.IncidentLog) []*IncidentLogResponse {
	responses := make([]*IncidentLogResponse, len(entries))
	for i, e := range entries {
		responses[i] = &IncidentLogResponse{
			ID:         e.ID,
			IncidentID: e.IncidentID,
			UserID:     e.UserID,
			Action:     string(e.Action),
			Details:    e.Details,
			CreatedAt:  e.CreatedAt,
		}
	}
	return responses
}

func DTOToAlertModel(dto CreateAlertRequest) *models.Alert {
	return &models.Alert{
		IncidentID: dto.IncidentID,
		Title:      dto.Title,
		Message:    dto.Message,
		Severity:   dto.Severity,
		ExpiresAt:  dto.ExpiresAt,
	}
}

func DTOToRiskRequest(dto AnalyzeIncidentRequest) models.RiskAnalysisRequest {
	return models.RiskAnalysisRequest{
		Title:       dto.Title,
		Description: dto.Description,
		Category:    models.IncidentCategory(dto.Category),
		Severity:    dto.Severity,
	}
}

func validStatusNames() []string {
	names := make([]string, len(models.ValidStatuses))
	for i, s := range models.ValidStatuses {
		names[i] = string(s)
	}
	return names
}
