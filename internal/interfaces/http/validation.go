package http

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Belkouche/jarvis-sub000/internal/domain/analysis"
)

var validationOnce sync.Once

// registerValidations installs the custom binding tags used by the request
// DTOs on gin's validator engine. Registration is process-wide, so it runs
// once even when tests build several servers.
func registerValidations() {
	validationOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("contract_number", func(fl validator.FieldLevel) bool {
			return analysis.IsValidContractNumber(fl.Field().String())
		})
	})
}
