package repository

import "github.com/jhoicas/puntoventa-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
// El sistema es mono-usuario: la capa de persistencia debe respaldar esa
// unicidad (tabla de fila única o índice), además del chequeo del caso de uso.
type UsuarioRepository interface {
	Crear(usuario *entity.Usuario) error
	Actualizar(usuario *entity.Usuario) error
	// Obtener retorna el único usuario registrado, o nil si no existe.
	Obtener() (*entity.Usuario, error)
	BuscarPorNombre(username string) (*entity.Usuario, error)
	Existe() (bool, error)
}
