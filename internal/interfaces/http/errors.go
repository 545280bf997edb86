package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Mantenimiento-api/internal/application/dto"
	"github.com/jhoicas/Mantenimiento-api/internal/domain"
)

// errorStatus mapa 1:1 de errores de dominio a (status HTTP, código).
var errorStatus = map[error]struct {
	status int
	code   string
}{
	domain.ErrNotFound:              {fiber.StatusNotFound, "NOT_FOUND"},
	domain.ErrUserNotFound:          {fiber.StatusNotFound, "USER_NOT_FOUND"},
	domain.ErrInvalidInput:          {fiber.StatusBadRequest, "VALIDATION"},
	domain.ErrEmailAlreadyExists:    {fiber.StatusConflict, "EMAIL_EXISTS"},
	domain.ErrDuplicate:             {fiber.StatusConflict, "DUPLICATE"},
	domain.ErrUnauthorized:          {fiber.StatusUnauthorized, "UNAUTHORIZED"},
	domain.ErrForbidden:             {fiber.StatusForbidden, "FORBIDDEN"},
	domain.ErrInsufficientAvailable: {fiber.StatusConflict, "INSUFFICIENT_AVAILABLE"},
	domain.ErrInsufficientReserved:  {fiber.StatusConflict, "INSUFFICIENT_RESERVED"},
	domain.ErrInsufficientInventory: {fiber.StatusConflict, "INSUFFICIENT_INVENTORY"},
	domain.ErrWouldGoNegative:       {fiber.StatusConflict, "WOULD_GO_NEGATIVE"},
	domain.ErrHasRemainingStock:     {fiber.StatusConflict, "HAS_REMAINING_STOCK"},
	domain.ErrInvalidWarehousePair:  {fiber.StatusBadRequest, "INVALID_WAREHOUSE_PAIR"},
	domain.ErrMovementNotPending:    {fiber.StatusConflict, "MOVEMENT_NOT_PENDING"},
	domain.ErrMovementNotApproved:   {fiber.StatusConflict, "MOVEMENT_NOT_APPROVED"},
	domain.ErrMovementCompleted:     {fiber.StatusConflict, "MOVEMENT_COMPLETED"},
	domain.ErrMovementActive:        {fiber.StatusConflict, "MOVEMENT_ACTIVE"},
	domain.ErrWorkOrderReleased:     {fiber.StatusConflict, "WORK_ORDER_RELEASED"},
	domain.ErrCancelledReopen:       {fiber.StatusConflict, "CANCELLED_REOPEN"},
	domain.ErrWorkOrderNotCompleted: {fiber.StatusConflict, "NOT_COMPLETED"},
	domain.ErrWorkOrderNotReleased:  {fiber.StatusConflict, "NOT_RELEASED"},
	domain.ErrWorkOrderActive:       {fiber.StatusConflict, "WORK_ORDER_ACTIVE"},
	domain.ErrPendingInspection:     {fiber.StatusConflict, "PENDING_INSPECTION"},
	domain.ErrRiiRequiresSignOff:    {fiber.StatusConflict, "RII_REQUIRES_SIGNOFF"},
	domain.ErrNotRii:                {fiber.StatusBadRequest, "NOT_RII"},
	domain.ErrInvalidTransition:     {fiber.StatusConflict, "INVALID_TRANSITION"},
}

// respondError traduce un error de dominio al status y código HTTP correspondientes.
// Errores no mapeados responden 500 INTERNAL.
func respondError(c *fiber.Ctx, err error) error {
	for domainErr, m := range errorStatus {
		if errors.Is(err, domainErr) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: domainErr.Error()})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
