package helper

import (
	"faithstories/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators installs the "slug" binding tag on gin's
// validator engine. Called once from main and from test setup.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return models.IsValidSlug(fl.Field().String())
		})
	}
}
