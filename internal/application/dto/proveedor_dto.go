package dto

import "github.com/jhoicas/puntoventa-api/internal/domain/entity"

// RegistrarProveedorRequest datos para registrar un proveedor.
type RegistrarProveedorRequest struct {
	ID     int64  `json:"id" validate:"required,gt=0"`
	Nombre string `json:"nombre" validate:"required,max=45"`
	RUC    int64  `json:"ruc" validate:"required"`
}

// ActualizarProveedorRequest datos para actualizar un proveedor.
type ActualizarProveedorRequest struct {
	Nombre string `json:"nombre" validate:"required,max=45"`
	RUC    int64  `json:"ruc" validate:"required"`
}

// ProveedorResponse representación de salida de un proveedor.
type ProveedorResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	RUC    int64  `json:"ruc"`
}

// NewProveedorResponse arma la respuesta desde la entidad.
func NewProveedorResponse(p *entity.Proveedor) *ProveedorResponse {
	if p == nil {
		return nil
	}
	return &ProveedorResponse{ID: p.ID(), Nombre: p.Nombre(), RUC: p.RUC()}
}
