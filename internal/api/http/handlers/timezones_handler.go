package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/timezone-service/internal/api/dto"
	"github.com/spec-kit/timezone-service/internal/auth"
	"github.com/spec-kit/timezone-service/internal/domain"
	"github.com/spec-kit/timezone-service/internal/service"
	apperrors "github.com/spec-kit/timezone-service/pkg/util"
)

// TimezonesHandler exposes timezone record endpoints.
type TimezonesHandler struct {
	timezones *service.TimezoneService
}

// NewTimezonesHandler constructs handler.
func NewTimezonesHandler(timezoneService *service.TimezoneService) *TimezonesHandler {
	return &TimezonesHandler{timezones: timezoneService}
}

// Create handles POST /timezones.
func (h *TimezonesHandler) Create(c *fiber.Ctx) error {
	var req dto.TimezoneCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	timezone, err := h.timezones.Create(c.UserContext(), service.TimezoneCreateInput{
		Name:            req.Name,
		City:            req.City,
		DifferenceToGMT: req.DifferenceToGMT,
	}, auth.IdentityFromContext(c))
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": toTimezoneResponse(timezone)})
}

// List handles GET /timezones.
func (h *TimezonesHandler) List(c *fiber.Ctx) error {
	timezones, err := h.timezones.List(c.UserContext())
	if err != nil {
		return err
	}

	responses := make([]dto.TimezoneResponse, 0, len(timezones))
	for i := range timezones {
		responses = append(responses, toTimezoneResponse(&timezones[i]))
	}
	return c.JSON(fiber.Map{"data": responses})
}

func toTimezoneResponse(timezone *domain.Timezone) dto.TimezoneResponse {
	return dto.TimezoneResponse{
		ID:              timezone.ID,
		Name:            timezone.Name,
		City:            timezone.City,
		DifferenceToGMT: timezone.DifferenceToGMT,
		CreatorID:       timezone.CreatorID,
		CreatedAt:       timezone.CreatedAt,
	}
}
