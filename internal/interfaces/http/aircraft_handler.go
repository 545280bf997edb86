package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Mantenimiento-api/internal/application/dto"
	"github.com/jhoicas/Mantenimiento-api/internal/application/usecase"
)

// AircraftHandler maneja las peticiones HTTP de la flota (protegido).
type AircraftHandler struct {
	uc *usecase.AircraftUseCase
}

// NewAircraftHandler construye el handler.
func NewAircraftHandler(uc *usecase.AircraftUseCase) *AircraftHandler {
	return &AircraftHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar aeronave
// @Tags         aircraft
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAircraftRequest  true  "tail_number, model"
// @Success      201   {object}  dto.AircraftResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/aircraft [post]
func (h *AircraftHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAircraftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	aircraft, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(aircraft)
}

// GetByID godoc
// @Summary      Obtener aeronave
// @Tags         aircraft
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la aeronave"
// @Success      200  {object}  dto.AircraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/aircraft/{id} [get]
func (h *AircraftHandler) GetByID(c *fiber.Ctx) error {
	aircraft, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(aircraft)
}

// Update godoc
// @Summary      Actualizar aeronave
// @Tags         aircraft
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la aeronave"
// @Param        body  body  dto.UpdateAircraftRequest  true  "model, status, flight_hours"
// @Success      200   {object}  dto.AircraftResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/aircraft/{id} [put]
func (h *AircraftHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAircraftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	aircraft, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(aircraft)
}

// List godoc
// @Summary      Listar flota
// @Tags         aircraft
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo de ítems (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.AircraftListResponse
// @Router       /api/aircraft [get]
func (h *AircraftHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	page.DefaultPage()
	list, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Delete godoc
// @Summary      Eliminar aeronave
// @Tags         aircraft
// @Security     Bearer
// @Param        id  path  string  true  "ID de la aeronave"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/aircraft/{id} [delete]
func (h *AircraftHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
