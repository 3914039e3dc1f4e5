package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/shvendra/bookmyworker-back/models"
)

// Validator plugs go-playground/validator into echo's c.Validate.
type Validator struct {
	V *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{V: validator.New()}
}

func (v *Validator) Validate(i any) error {
	return v.V.Struct(i)
}

// callerFrom rebuilds the authenticated identity from context values set by
// middlewares.RequireAuth.
func callerFrom(c echo.Context) models.Caller {
	id, _ := c.Get("user_id").(uint)
	role, _ := c.Get("role").(string)
	name, _ := c.Get("name").(string)
	phone, _ := c.Get("phone").(string)
	district, _ := c.Get("district").(string)
	return models.Caller{ID: id, Role: role, Name: name, Phone: phone, District: district}
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
