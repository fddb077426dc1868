package http

import "github.com/go-playground/validator/v10"

// validate instancia compartida para los DTOs de entrada.
var validate = validator.New(validator.WithRequiredStructEnabled())
