package dto

import "github.com/shopspring/decimal"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Soles convierte un importe en centavos a su representación decimal en
// soles. Única vía de conversión a unidades mayores: el dominio trabaja
// exclusivamente en centavos.
func Soles(centavos int64) decimal.Decimal {
	return decimal.New(centavos, -2)
}
