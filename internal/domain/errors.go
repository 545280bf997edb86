package domain

import "errors"

// Errores de dominio (sin dependencias externas). Cada regla de negocio violada
// tiene su propio error para que la capa HTTP pueda mapearlos 1:1 a códigos.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// Ledger de inventario.
	ErrInsufficientAvailable = errors.New("cantidad disponible insuficiente para reservar")
	ErrInsufficientReserved  = errors.New("cantidad reservada insuficiente para liberar")
	ErrInsufficientInventory = errors.New("inventario insuficiente para la salida")
	ErrWouldGoNegative       = errors.New("el ajuste dejaría la existencia en negativo")
	ErrHasRemainingStock     = errors.New("el ítem aún tiene existencias y no puede eliminarse")

	// Movimientos de stock.
	ErrInvalidWarehousePair = errors.New("bodegas origen/destino inválidas para el tipo de movimiento")
	ErrMovementNotPending   = errors.New("el movimiento no está en estado PENDING")
	ErrMovementNotApproved  = errors.New("el movimiento no está en estado APPROVED")
	ErrMovementCompleted    = errors.New("el movimiento ya fue completado")
	ErrMovementActive       = errors.New("el movimiento está activo y no puede eliminarse")

	// Órdenes de trabajo y tareas RII.
	ErrWorkOrderReleased     = errors.New("la orden de trabajo está liberada y es inmutable")
	ErrCancelledReopen       = errors.New("una orden cancelada solo puede reabrirse a DRAFT")
	ErrWorkOrderNotCompleted = errors.New("la orden de trabajo no está en estado COMPLETED")
	ErrWorkOrderNotReleased  = errors.New("la orden de trabajo aún no está liberada")
	ErrWorkOrderActive       = errors.New("la orden de trabajo está abierta o en progreso y no puede eliminarse")
	ErrPendingInspection     = errors.New("hay tareas RII pendientes de firma de inspector")
	ErrRiiRequiresSignOff    = errors.New("una tarea RII solo se completa con firma de inspector")
	ErrNotRii                = errors.New("la tarea no es de inspección requerida (RII)")
	ErrInvalidTransition     = errors.New("transición de estado inválida")
)
