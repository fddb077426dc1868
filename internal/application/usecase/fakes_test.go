package usecase_test

import (
	"time"

	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Sin mocks generados: el
// comportamiento relevante (nil cuando no existe, listados ordenados por
// inserción) se implementa a mano.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductoRepo struct {
	productos map[int64]*entity.Producto
	orden     []int64
}

func newFakeProductoRepo() *fakeProductoRepo {
	return &fakeProductoRepo{productos: make(map[int64]*entity.Producto)}
}

func (r *fakeProductoRepo) Guardar(p *entity.Producto) error {
	if _, ok := r.productos[p.ID()]; !ok {
		r.orden = append(r.orden, p.ID())
	}
	r.productos[p.ID()] = p
	return nil
}

func (r *fakeProductoRepo) Actualizar(p *entity.Producto) error {
	r.productos[p.ID()] = p
	return nil
}

func (r *fakeProductoRepo) BuscarPorID(id int64) (*entity.Producto, error) {
	return r.productos[id], nil
}

func (r *fakeProductoRepo) BuscarPorNombre(nombre string) (*entity.Producto, error) {
	for _, p := range r.productos {
		if p.Nombre() == nombre {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductoRepo) Listar() ([]*entity.Producto, error) {
	out := make([]*entity.Producto, 0, len(r.orden))
	for _, id := range r.orden {
		out = append(out, r.productos[id])
	}
	return out, nil
}

func (r *fakeProductoRepo) Eliminar(id int64) error {
	if p, ok := r.productos[id]; ok {
		p.Eliminar()
	}
	return nil
}

func (r *fakeProductoRepo) Restaurar(id int64) error {
	if p, ok := r.productos[id]; ok {
		p.Restaurar()
	}
	return nil
}

type fakeVentaRepo struct {
	ventas     map[int64]*entity.Venta
	orden      []int64
	enVentas   map[int64]bool // productoID → referenciado
	eliminadas []int64
}

func newFakeVentaRepo() *fakeVentaRepo {
	return &fakeVentaRepo{
		ventas:   make(map[int64]*entity.Venta),
		enVentas: make(map[int64]bool),
	}
}

func (r *fakeVentaRepo) Agregar(v *entity.Venta) error {
	if _, ok := r.ventas[v.ID()]; !ok {
		r.orden = append(r.orden, v.ID())
	}
	r.ventas[v.ID()] = v
	for _, d := range v.Detalles() {
		if d.ProductoID != 0 {
			r.enVentas[d.ProductoID] = true
		}
	}
	return nil
}

func (r *fakeVentaRepo) Eliminar(id int64) error {
	delete(r.ventas, id)
	r.eliminadas = append(r.eliminadas, id)
	return nil
}

func (r *fakeVentaRepo) Listar() ([]*entity.Venta, error) {
	out := make([]*entity.Venta, 0, len(r.orden))
	for _, id := range r.orden {
		if v, ok := r.ventas[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVentaRepo) BuscarPorID(id int64) (*entity.Venta, error) {
	return r.ventas[id], nil
}

func (r *fakeVentaRepo) BuscarPorFecha(fecha time.Time) ([]*entity.Venta, error) {
	var out []*entity.Venta
	for _, id := range r.orden {
		v, ok := r.ventas[id]
		if !ok {
			continue
		}
		y1, m1, d1 := v.Fecha().Date()
		y2, m2, d2 := fecha.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVentaRepo) ProductoEnVentas(productoID int64) (bool, error) {
	return r.enVentas[productoID], nil
}

type fakeProveedorRepo struct {
	proveedores  map[int64]*entity.Proveedor
	orden        []int64
	conProductos map[int64]bool
}

func newFakeProveedorRepo() *fakeProveedorRepo {
	return &fakeProveedorRepo{
		proveedores:  make(map[int64]*entity.Proveedor),
		conProductos: make(map[int64]bool),
	}
}

func (r *fakeProveedorRepo) Guardar(p *entity.Proveedor) error {
	if _, ok := r.proveedores[p.ID()]; !ok {
		r.orden = append(r.orden, p.ID())
	}
	r.proveedores[p.ID()] = p
	return nil
}

func (r *fakeProveedorRepo) Actualizar(p *entity.Proveedor) error {
	r.proveedores[p.ID()] = p
	return nil
}

func (r *fakeProveedorRepo) Eliminar(id int64) error {
	delete(r.proveedores, id)
	return nil
}

func (r *fakeProveedorRepo) Listar() ([]*entity.Proveedor, error) {
	out := make([]*entity.Proveedor, 0, len(r.orden))
	for _, id := range r.orden {
		if p, ok := r.proveedores[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProveedorRepo) BuscarPorID(id int64) (*entity.Proveedor, error) {
	return r.proveedores[id], nil
}

func (r *fakeProveedorRepo) BuscarPorNombre(nombre string) (*entity.Proveedor, error) {
	for _, p := range r.proveedores {
		if p.Nombre() == nombre {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProveedorRepo) BuscarPorRUC(ruc int64) (*entity.Proveedor, error) {
	for _, p := range r.proveedores {
		if p.RUC() == ruc {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProveedorRepo) TieneProductos(id int64) (bool, error) {
	return r.conProductos[id], nil
}

type fakeCajaRepo struct {
	cajas map[int64]*entity.Caja
	orden []int64
}

func newFakeCajaRepo() *fakeCajaRepo {
	return &fakeCajaRepo{cajas: make(map[int64]*entity.Caja)}
}

func (r *fakeCajaRepo) Guardar(c *entity.Caja) error {
	if _, ok := r.cajas[c.ID()]; !ok {
		r.orden = append(r.orden, c.ID())
	}
	r.cajas[c.ID()] = c
	return nil
}

func (r *fakeCajaRepo) ObtenerActiva() (*entity.Caja, error) {
	for _, id := range r.orden {
		if c := r.cajas[id]; c != nil && !c.EstaCerrada() {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCajaRepo) Cerrar(c *entity.Caja) error {
	r.cajas[c.ID()] = c
	return nil
}

func (r *fakeCajaRepo) ListarCerradas() ([]*entity.Caja, error) {
	var out []*entity.Caja
	for _, id := range r.orden {
		if c := r.cajas[id]; c != nil && c.EstaCerrada() {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCajaRepo) BuscarPorID(id int64) (*entity.Caja, error) {
	return r.cajas[id], nil
}

func (r *fakeCajaRepo) BuscarPorFecha(fecha time.Time) (*entity.Caja, error) {
	for _, id := range r.orden {
		c := r.cajas[id]
		if c == nil {
			continue
		}
		y1, m1, d1 := c.FechaApertura().Date()
		y2, m2, d2 := fecha.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			return c, nil
		}
	}
	return nil, nil
}

type fakeInformeRepo struct {
	informes map[int64]*entity.Informe
	orden    []int64
	porCaja  []int64 // cajaIDs recibidos en GenerarPorCaja
}

func newFakeInformeRepo() *fakeInformeRepo {
	return &fakeInformeRepo{informes: make(map[int64]*entity.Informe)}
}

func (r *fakeInformeRepo) GenerarPorCaja(cajaID int64) error {
	r.porCaja = append(r.porCaja, cajaID)
	return nil
}

func (r *fakeInformeRepo) GenerarPorFechas(i *entity.Informe) error {
	if _, ok := r.informes[i.ID()]; !ok {
		r.orden = append(r.orden, i.ID())
	}
	r.informes[i.ID()] = i
	return nil
}

func (r *fakeInformeRepo) Eliminar(id int64) error {
	delete(r.informes, id)
	return nil
}

func (r *fakeInformeRepo) Listar() ([]*entity.Informe, error) {
	out := make([]*entity.Informe, 0, len(r.orden))
	for _, id := range r.orden {
		if i, ok := r.informes[id]; ok {
			out = append(out, i)
		}
	}
	return out, nil
}

func (r *fakeInformeRepo) BuscarPorID(id int64) (*entity.Informe, error) {
	return r.informes[id], nil
}

func (r *fakeInformeRepo) BuscarPorFecha(fecha time.Time) ([]*entity.Informe, error) {
	var out []*entity.Informe
	for _, id := range r.orden {
		i, ok := r.informes[id]
		if !ok {
			continue
		}
		if !fecha.Before(i.FechaInicial()) && !fecha.After(i.FechaFinal()) {
			out = append(out, i)
		}
	}
	return out, nil
}
