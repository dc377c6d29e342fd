package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/sidharthsanthos/PKRA/internal/core/domain"
)

// RegisterValidations hooks custom rules into gin's validator engine.
// Must be called once before the router starts serving.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("division", validDivision)
	}
}

// validDivision accepts only the association's fixed divisions (A through E).
func validDivision(fl validator.FieldLevel) bool {
	return domain.Division(fl.Field().String()).IsValid()
}
