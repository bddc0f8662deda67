// File: handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers and the middleware they need.
type HandlerBundle struct {
	// Availability endpoints
	GetAvailabilityHandler      gin.HandlerFunc
	ToggleSlotHandler           gin.HandlerFunc
	RemoveSlotHandler           gin.HandlerFunc
	ApplyWeekdayTemplateHandler gin.HandlerFunc
	ClearAvailabilityHandler    gin.HandlerFunc
	GetMonthHandler             gin.HandlerFunc
	GetWeekHandler              gin.HandlerFunc
	GetWeekCalendarHandler      gin.HandlerFunc

	// Health
	HealthHandler gin.HandlerFunc

	// Middleware
	NamespaceMiddleware gin.HandlerFunc
}

// NewHandlerBundle wires an AvailabilityHandler into a bundle.
func NewHandlerBundle(h *AvailabilityHandler, health, namespace gin.HandlerFunc) *HandlerBundle {
	return &HandlerBundle{
		GetAvailabilityHandler:      h.GetAvailabilityHandler,
		ToggleSlotHandler:           h.ToggleSlotHandler,
		RemoveSlotHandler:           h.RemoveSlotHandler,
		ApplyWeekdayTemplateHandler: h.ApplyWeekdayTemplateHandler,
		ClearAvailabilityHandler:    h.ClearAvailabilityHandler,
		GetMonthHandler:             h.GetMonthHandler,
		GetWeekHandler:              h.GetWeekHandler,
		GetWeekCalendarHandler:      h.GetWeekCalendarHandler,
		HealthHandler:               health,
		NamespaceMiddleware:         namespace,
	}
}
