package handler

import (
    "errors"
    "log"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/unisport/gym-calendar-gateway/internal/gymapi"
    "github.com/unisport/gym-calendar-gateway/internal/navigation"
)

// User-facing fallback messages, shown inline next to the triggering
// action when the backend's error payload carries nothing usable.
const (
    msgCalendarFailed      = "No se pudo cargar el calendario."
    msgBookFailed          = "No se pudo crear la reserva."
    msgCancelFailed        = "No se pudo cancelar la reserva."
    msgUpdateFailed        = "No se pudo actualizar la sesión."
    msgSessionCancelFailed = "No se pudo cancelar la sesión."
    msgAlreadyCancelled    = "La reserva ya está cancelada."
    msgReservationMissing  = "Reserva no encontrada."
)

// upstreamError maps a gym API failure onto the gateway's response
// taxonomy: authentication errors always send the caller back to
// login, business rejections surface the backend's own message, and
// anything else is logged and answered with a generic inline message.
// Operations are never retried here.
func upstreamError(c echo.Context, err error, fallback string) error {
    var apiErr *gymapi.APIError
    switch {
    case errors.Is(err, gymapi.ErrUnauthorized):
        return c.JSON(http.StatusUnauthorized, echo.Map{
            "error":    "unauthorized",
            "redirect": navigation.RouteLogin,
        })
    case errors.As(err, &apiErr):
        return c.JSON(apiErr.Status, echo.Map{"message": apiErr.Message})
    default:
        log.Printf("handler: upstream call failed: %v", err)
        return c.JSON(http.StatusBadGateway, echo.Map{"message": fallback})
    }
}
