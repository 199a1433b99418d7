package handler

import (
    "net/http"

    "github.com/go-playground/validator/v10"
    "github.com/labstack/echo/v4"
)

// Validator adapts go-playground/validator to Echo's Validator
// interface so handlers can call c.Validate on bound request bodies.
type Validator struct {
    v *validator.Validate
}

// NewValidator returns a ready Validator.  Struct rules live on the
// model types' validate tags.
func NewValidator() *Validator {
    return &Validator{v: validator.New()}
}

// Validate checks i against its validate tags and converts failures
// into a 400 response.
func (val *Validator) Validate(i any) error {
    if err := val.v.Struct(i); err != nil {
        return echo.NewHTTPError(http.StatusBadRequest, err.Error())
    }
    return nil
}
