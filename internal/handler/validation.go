package handler

import (
	"tourism-api/internal/domain/restaurant"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by the request DTOs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("mealslot", validateMealSlot)
}

func validateMealSlot(fl validator.FieldLevel) bool {
	_, err := restaurant.ParseMealSlot(fl.Field().String())
	return err == nil
}
