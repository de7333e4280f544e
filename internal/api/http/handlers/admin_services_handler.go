package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/registration-service/internal/api/dto"
	"github.com/spec-kit/registration-service/internal/domain"
	"github.com/spec-kit/registration-service/internal/service"
	apperrors "github.com/spec-kit/registration-service/pkg/util"
)

// AdminServicesHandler manages the admin service-list endpoints. Responses
// use the {success, data}/{success, message} envelope the admin frontend
// expects.
type AdminServicesHandler struct {
	admin *service.AdminService
}

// NewAdminServicesHandler constructs handler.
func NewAdminServicesHandler(admin *service.AdminService) *AdminServicesHandler {
	return &AdminServicesHandler{admin: admin}
}

// ListServices GET /admin/services.
func (h *AdminServicesHandler) ListServices(c *fiber.Ctx) error {
	filter := service.ServiceListFilter{}

	if raw := c.Query("progress"); raw != "" {
		bucket, ok := domain.ParseProgressBucket(raw)
		if !ok {
			return apperrors.NewValidationError("unknown progress value", map[string]any{"progress": raw})
		}
		filter.Progress = &bucket
	}
	if raw := c.Query("service"); raw != "" {
		svc := domain.CanonicalService(raw)
		filter.Service = &svc
	}
	if raw := strings.TrimSpace(c.Query("q")); raw != "" {
		filter.SearchTerm = &raw
	}
	filter.Limit = parsePositiveInt(c.Query("limit"), 100)
	filter.Offset = parsePositiveInt(c.Query("offset"), 0)

	views, err := h.admin.ListServices(c.UserContext(), filter)
	if err != nil {
		return err
	}

	items := make([]dto.ServiceRecordResponse, 0, len(views))
	for _, view := range views {
		items = append(items, serviceRecordResponse(view))
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

// CreateService POST /admin/services.
func (h *AdminServicesHandler) CreateService(c *fiber.Ctx) error {
	var req dto.ServiceRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.TicketID) == "" {
		return apperrors.NewValidationError("ticket_id required", nil)
	}

	rec := recordFromRequest(req)
	if err := h.admin.UpsertRecord(c.UserContext(), &rec); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"success": true, "data": fiber.Map{"ticket_id": rec.TicketID}})
}

// UpdateStatus POST /admin/update-service-status.
func (h *AdminServicesHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateServiceStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.TicketID) == "" || strings.TrimSpace(req.Status) == "" {
		return apperrors.NewValidationError("ticketId and status required", nil)
	}

	if err := h.admin.UpdateStatus(c.UserContext(), req.TicketID, req.Status); err != nil {
		return statusMutationError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "status updated"})
}

// UpdateProgress POST /admin/update-service-progress.
func (h *AdminServicesHandler) UpdateProgress(c *fiber.Ctx) error {
	var req dto.UpdateServiceProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.TicketID) == "" {
		return apperrors.NewValidationError("ticketId required", nil)
	}
	bucket, ok := domain.ParseProgressBucket(req.Progress)
	if !ok {
		return apperrors.NewValidationError("unknown progress value", map[string]any{"progress": req.Progress})
	}

	newStatus, changed, err := h.admin.UpdateProgress(c.UserContext(), req.TicketID, bucket)
	if err != nil {
		return statusMutationError(c, err)
	}
	message := "status updated"
	if !changed {
		message = "status unchanged"
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    fiber.Map{"status": newStatus, "changed": changed},
	})
}

// DeleteService DELETE /admin/delete-service.
func (h *AdminServicesHandler) DeleteService(c *fiber.Ctx) error {
	var req dto.DeleteServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.TicketID) == "" {
		return apperrors.NewValidationError("ticketId required", nil)
	}

	if err := h.admin.DeleteService(c.UserContext(), req.TicketID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("service", map[string]any{"ticketId": req.TicketID})
		}
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "service deleted"})
}

// statusMutationError keeps backend schema failures distinguishable for the
// operator: a missing service_status column reads differently from a generic
// failure, so the defect is reportable verbatim.
func statusMutationError(c *fiber.Ctx, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("service", nil)
	}
	msg := err.Error()
	if strings.Contains(msg, "column") && strings.Contains(msg, "does not exist") {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "status column missing in service database; run pending migrations",
		})
	}
	return err
}

func recordFromRequest(req dto.ServiceRecordRequest) domain.ServiceRecord {
	return domain.ServiceRecord{
		TicketID:              req.TicketID,
		ServiceName:           req.ServiceName,
		RegistrationType:      req.RegistrationType,
		ServiceType:           req.ServiceType,
		BusinessName:          req.BusinessName,
		PackageName:           req.PackageName,
		PaymentStatus:         req.PaymentStatus,
		PaymentCompleted:      req.PaymentCompleted,
		RazorpayPaymentID:     req.RazorpayPaymentID,
		PaymentID:             req.PaymentID,
		ServiceStatus:         req.ServiceStatus,
		TeamFillRequested:     req.TeamFillRequested,
		RegistrationSubmitted: req.RegistrationSubmitted,
	}
}

func serviceRecordResponse(view service.ServiceView) dto.ServiceRecordResponse {
	rec := view.Record
	return dto.ServiceRecordResponse{
		TicketID:              rec.TicketID,
		ServiceName:           rec.ServiceName,
		RegistrationType:      rec.RegistrationType,
		ServiceType:           rec.ServiceType,
		BusinessName:          rec.BusinessName,
		PackageName:           rec.PackageName,
		PaymentStatus:         rec.PaymentStatus,
		PaymentCompleted:      rec.PaymentCompleted,
		RazorpayPaymentID:     rec.RazorpayPaymentID,
		PaymentID:             rec.PaymentID,
		ServiceStatus:         rec.ServiceStatus,
		TeamFillRequested:     rec.TeamFillRequested,
		RegistrationSubmitted: rec.RegistrationSubmitted,
		CanonicalService:      view.CanonicalService,
		StatusLabel:           view.StatusLabel,
		Progress:              view.Progress,
		CreatedAt:             rec.CreatedAt,
		UpdatedAt:             rec.UpdatedAt,
	}
}

func parsePositiveInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}
