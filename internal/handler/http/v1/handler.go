package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/safety_reporting_system/internal/auth"
	"github.com/shenikar/safety_reporting_system/internal/config"
	"github.com/shenikar/safety_reporting_system/internal/models"
	"github.com/shenikar/safety_reporting_system/internal/realtime"
	"github.com/shenikar/safety_reporting_system/internal/service"
	"github.com/sirupsen/logrus"
)

// Services - зависимости HTTP-слоя
type Services struct {
	Incidents  service.IncidentService
	Alerts     service.AlertService
	Analytics  service.AnalyticsService
	Chat       service.ChatService
	Profiles   service.ProfileService
	Subscriber realtime.Subscriber
}

type Handler struct {
	incidentService  service.IncidentService
	alertService     service.AlertService
	analyticsService service.AnalyticsService
	chatService      service.ChatService
	profileService   service.ProfileService
	subscriber       realtime.Subscriber
	verifier         *auth.TokenVerifier
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(services Services, verifier *auth.TokenVerifier, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService:  services.Incidents,
		alertService:     services.Alerts,
		analyticsService: services.Analytics,
		chatService:      services.Chat,
		profileService:   services.Profiles,
		subscriber:       services.Subscriber,
		verifier:         verifier,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// @Summary Create a new incident
// @Description Report a new incident. Risk is scored automatically; dangerous incidents raise an alert.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadBody(c, log, err)
		return
	}

	if err := h.validate.Struct(input); err != nil {
		respondValidation(c, log, err)
		return
	}

	model := DTOToIncidentModel(input)
	if err := h.incidentService.CreateIncident(c.Request.Context(), actorFromContext(c), model); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary Get a list of incidents
// @Description Get a paginated list of incidents, newest first.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Param status query string false "Filter by status"
// @Param category query string false "Filter by category"
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	filter := models.IncidentFilter{
		Status:   models.IncidentStatus(c.Query("status")),
		Category: models.IncidentCategory(c.Query("category")),
		Page:     page,
		PageSize: pageSize,
	}

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), filter)
	if err != nil {
		respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} ErrorResponse "Invalid incident ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Change incident status
// @Description Move an incident through its lifecycle. Allowed for officer, leader and admin roles.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param status body UpdateStatusRequest true "Target status and optional note"
// @Success 200 {object} UpdateStatusResponse
// @Failure 400 {object} ErrorResponse "Invalid status, lists valid_statuses"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Role or row-level policy rejected the change"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 500 {object} ErrorResponse "Schema mismatch or internal error"
// @Router /incidents/{id}/status [patch]
func (h *Handler) updateIncidentStatus(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateIncidentStatus").WithField("id", id)

	var input UpdateStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadBody(c, log, err)
		return
	}

	if err := h.validate.Struct(input); err != nil {
		respondValidation(c, log, err)
		return
	}

	result, err := h.incidentService.UpdateStatus(
		c.Request.Context(),
		actorFromContext(c),
		id,
		models.IncidentStatus(input.Status),
		input.Notes,
	)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToUpdateStatusResponse(result))
}

// @Summary Find open incidents nearby
// @Description Open (pending, reviewing, dispatched) incidents within radius meters of a point.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param radius query int false "Radius in meters" default(1000)
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} ErrorResponse "Invalid coordinates"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /incidents/nearby [get]
func (h *Handler) nearbyIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "nearbyIncidents")

	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "lat and lon must be valid coordinates",
		})
		return
	}
	radius, _ := strconv.Atoi(c.Query("radius"))

	incidents, err := h.incidentService.FindNearby(c.Request.Context(), lat, lon, radius)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Incident audit trail
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {array} IncidentLogResponse
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Router /incidents/{id}/logs [get]
func (h *Handler) incidentLogs(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "incidentLogs").WithField("id", id)

	entries, err := h.incidentService.ListLogs(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentLogResponses(entries))
}

// @Summary Analyze incident risk
// @Description Score an incident description without saving it. Always answers, falling back to a heuristic.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param incident body AnalyzeIncidentRequest true "Incident to analyze"
// @Success 200 {object} models.RiskAssessment
// @Failure 400 {object} ErrorResponse "Validation error"
// @Router /incidents/analyze [post]
func (h *Handler) analyzeIncident(c *gin.Context) {
	var input AnalyzeIncidentRequest
	log := h.logger.WithField("method", "analyzeIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadBody(c, log, err)
		return
	}
	if err := h.validate.Struct(input); err != nil {
		respondValidation(c, log, err)
		return
	}

	assessment := h.incidentService.AnalyzeIncident(c.Request.Context(), DTOToRiskRequest(input))
	c.JSON(http.StatusOK, assessment)
}

// @Summary Current user
// @Tags System
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ActorResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /me [get]
func (h *Handler) me(c *gin.Context) {
	actor := actorFromContext(c)
	if actor == nil {
		respondError(c, h.logger.WithField("method", "me"), service.ErrAuthenticationRequired)
		return
	}
	c.JSON(http.StatusOK, ModelToActorResponse(*actor))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "invalid ID",
		})
		return uuid.Nil, false
	}
	return id, true
}
