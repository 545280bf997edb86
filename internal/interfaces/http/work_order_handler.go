package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Mantenimiento-api/internal/application/dto"
	"github.com/jhoicas/Mantenimiento-api/internal/application/workorder"
)

// WorkOrderHandler maneja el ciclo de vida de órdenes de trabajo, su checklist
// y sus consumos de repuestos (protegido).
type WorkOrderHandler struct {
	uc    *workorder.UseCase
	tasks *workorder.TaskUseCase
	parts *workorder.PartUsageUseCase
	pdf   *workorder.PDFUseCase
}

// NewWorkOrderHandler construye el handler.
func NewWorkOrderHandler(uc *workorder.UseCase, tasks *workorder.TaskUseCase, parts *workorder.PartUsageUseCase, pdf *workorder.PDFUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{uc: uc, tasks: tasks, parts: parts, pdf: pdf}
}

// Create godoc
// @Summary      Crear orden de trabajo
// @Tags         work-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWorkOrderRequest  true  "aircraft_id, type, priority, description"
// @Success      201   {object}  dto.WorkOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/work-orders [post]
func (h *WorkOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorkOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	wo, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(wo)
}

// GetByID godoc
// @Summary      Obtener orden con checklist y consumos
// @Tags         work-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.WorkOrderDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/work-orders/{id} [get]
func (h *WorkOrderHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	wo, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	tasks, err := h.tasks.ListByWorkOrder(id)
	if err != nil {
		return respondError(c, err)
	}
	parts, err := h.parts.ListParts(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.WorkOrderDetailResponse{
		WorkOrderResponse: *wo,
		Tasks:             tasks,
		Parts:             parts,
	})
}

// List godoc
// @Summary      Listar órdenes de trabajo
// @Tags         work-orders
// @Security     Bearer
// @Produce      json
// @Param        status       query  string  false  "DRAFT|OPEN|IN_PROGRESS|COMPLETED|RELEASED|CANCELLED"
// @Param        aircraft_id  query  string  false  "Historial de una aeronave"
// @Param        limit   query  int  false  "Máximo de ítems (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.WorkOrderListResponse
// @Router       /api/work-orders [get]
func (h *WorkOrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	page.DefaultPage()
	if aircraftID := c.Query("aircraft_id"); aircraftID != "" {
		list, err := h.uc.ListByAircraft(aircraftID, page.Limit, page.Offset)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(list)
	}
	list, err := h.uc.List(c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Update godoc
// @Summary      Actualizar orden (bloqueado en RELEASED)
// @Tags         work-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdateWorkOrderRequest  true  "campos editables"
// @Success      200   {object}  dto.WorkOrderResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/work-orders/{id} [put]
func (h *WorkOrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWorkOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	wo, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(wo)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de la orden
// @Tags         work-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdateWorkOrderStatusRequest  true  "nuevo estado"
// @Success      200   {object}  dto.WorkOrderResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/work-orders/{id}/status [patch]
func (h *WorkOrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateWorkOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	wo, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(wo)
}

// Assign godoc
// @Summary      Asignar mecánico (DRAFT pasa a OPEN)
// @Tags         work-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.AssignWorkOrderRequest  true  "user_id del mecánico"
// @Success      200   {object}  dto.WorkOrderResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/work-orders/{id}/assign [patch]
func (h *WorkOrderHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignWorkOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	wo, err := h.uc.Assign(c.Params("id"), in.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(wo)
}

// Start godoc
// @Summary      Iniciar trabajo (pasa a IN_PROGRESS)
// @Tags         work-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.WorkOrderResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/work-orders/{id}/start [post]
func (h *WorkOrderHandler) Start(c *fiber.Ctx) error {
	wo, err := h.uc.Start(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(wo)
}

// Complete godoc
// @Summary      Completar orden (rechazada si hay tareas RII sin firmar)
// @Tags         work-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.CompleteWorkOrderRequest  false  "notas de cierre"
// @Success      200   {object}  dto.WorkOrderResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/work-orders/{id}/complete [post]
func (h *WorkOrderHandler) Complete(c *fiber.Ctx) error {
	var in dto.CompleteWorkOrderRequest
	if err := c.BodyParser(&in); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	wo, err := h.uc.Complete(c.Context(), c.Params("id"), GetUserID(c), in.Notes)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(wo)
}

// Release godoc
// @Summary      Liberar orden a servicio (solo inspector; exige COMPLETED)
// @Tags         work-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.WorkOrderResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/work-orders/{id}/release [post]
func (h *WorkOrderHandler) Release(c *fiber.Ctx) error {
	wo, err := h.uc.Release(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(wo)
}

// Cancel godoc
// @Summary      Cancelar orden (bloqueado en RELEASED)
// @Tags         work-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.WorkOrderResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/work-orders/{id}/cancel [post]
func (h *WorkOrderHandler) Cancel(c *fiber.Ctx) error {
	wo, err := h.uc.Cancel(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(wo)
}

// Delete godoc
// @Summary      Eliminar orden (soft delete; bloqueado si está OPEN o IN_PROGRESS)
// @Tags         work-orders
// @Security     Bearer
// @Param        id  path  string  true  "ID de la orden"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/work-orders/{id} [delete]
func (h *WorkOrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ReleaseCertificate godoc
// @Summary      Certificado PDF de liberación (solo órdenes RELEASED)
// @Tags         work-orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {file}  binary
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/work-orders/{id}/pdf [get]
func (h *WorkOrderHandler) ReleaseCertificate(c *fiber.Ctx) error {
	data, err := h.pdf.GenerateReleaseCertificate(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="certificado-liberacion.pdf"`)
	return c.Send(data)
}

// AddTask godoc
// @Summary      Agregar tarea al checklist
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.CreateTaskRequest  true  "sequence, title, is_rii"
// @Success      201   {object}  dto.TaskResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/work-orders/{id}/tasks [post]
func (h *WorkOrderHandler) AddTask(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	task, err := h.tasks.AddTask(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

// AddTasks godoc
// @Summary      Agregar tareas en lote
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.CreateTasksRequest  true  "lista de tareas"
// @Success      201   {array}  dto.TaskResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/work-orders/{id}/tasks/batch [post]
func (h *WorkOrderHandler) AddTasks(c *fiber.Ctx) error {
	var in dto.CreateTasksRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tasks, err := h.tasks.AddTasks(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tasks)
}

// ListTasks godoc
// @Summary      Listar checklist de la orden
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {array}  dto.TaskResponse
// @Router       /api/work-orders/{id}/tasks [get]
func (h *WorkOrderHandler) ListTasks(c *fiber.Ctx) error {
	tasks, err := h.tasks.ListByWorkOrder(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tasks)
}

// UpdateTask godoc
// @Summary      Actualizar tarea
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarea"
// @Param        body  body  dto.UpdateTaskRequest  true  "campos editables"
// @Success      200   {object}  dto.TaskResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tasks/{id} [put]
func (h *WorkOrderHandler) UpdateTask(c *fiber.Ctx) error {
	var in dto.UpdateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	task, err := h.tasks.UpdateTask(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(task)
}

// UpdateTaskStatus godoc
// @Summary      Cambiar estado de la tarea (COMPLETED en RII se rechaza)
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarea"
// @Param        body  body  dto.UpdateTaskStatusRequest  true  "nuevo estado"
// @Success      200   {object}  dto.TaskResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tasks/{id}/status [patch]
func (h *WorkOrderHandler) UpdateTaskStatus(c *fiber.Ctx) error {
	var in dto.UpdateTaskStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	task, err := h.tasks.UpdateTaskStatus(c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(task)
}

// SignOffTask godoc
// @Summary      Firmar tarea RII (solo inspector)
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la tarea"
// @Success      200  {object}  dto.TaskResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/tasks/{id}/sign-off [post]
func (h *WorkOrderHandler) SignOffTask(c *fiber.Ctx) error {
	task, err := h.tasks.SignOffRii(c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(task)
}

// DeleteTask godoc
// @Summary      Eliminar tarea (bloqueado si la orden está RELEASED)
// @Tags         tasks
// @Security     Bearer
// @Param        id  path  string  true  "ID de la tarea"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/tasks/{id} [delete]
func (h *WorkOrderHandler) DeleteTask(c *fiber.Ctx) error {
	if err := h.tasks.DeleteTask(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddPart godoc
// @Summary      Registrar consumo de repuesto en la orden
// @Tags         parts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.AddPartRequest  true  "part_number, quantity"
// @Success      201   {object}  dto.PartUsageResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/work-orders/{id}/parts [post]
func (h *WorkOrderHandler) AddPart(c *fiber.Ctx) error {
	var in dto.AddPartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	part, err := h.parts.AddPart(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(part)
}

// ListParts godoc
// @Summary      Listar consumos de la orden
// @Tags         parts
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {array}  dto.PartUsageResponse
// @Router       /api/work-orders/{id}/parts [get]
func (h *WorkOrderHandler) ListParts(c *fiber.Ctx) error {
	parts, err := h.parts.ListParts(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(parts)
}

// DeletePart godoc
// @Summary      Eliminar consumo de repuesto
// @Tags         parts
// @Security     Bearer
// @Param        id  path  string  true  "ID del consumo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parts/{id} [delete]
func (h *WorkOrderHandler) DeletePart(c *fiber.Ctx) error {
	if err := h.parts.DeletePart(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
