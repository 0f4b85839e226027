// Comando seed: carga los datos de demostración en el almacén configurado.
// Solo escribe en colecciones vacías; repetirlo no duplica datos.
package main

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoseph/loomtrack-api/internal/domain/entity"
	"github.com/jhoseph/loomtrack-api/internal/infrastructure/blobstore"
	"github.com/jhoseph/loomtrack-api/internal/infrastructure/jsonstore"
	"github.com/jhoseph/loomtrack-api/internal/infrastructure/postgres"
	"github.com/jhoseph/loomtrack-api/pkg/config"
	"github.com/jhoseph/loomtrack-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})
	ctx := context.Background()

	var store blobstore.Store
	switch cfg.Store.Driver {
	case "memory":
		log.Fatal().Msg("seed sobre driver memory no tiene sentido: los datos se pierden al salir")
	case "file":
		fs, err := blobstore.NewFileStore(cfg.Store.DataDir)
		if err != nil {
			log.Fatal().Err(err).Str("dir", cfg.Store.DataDir).Msg("abrir almacén de archivos")
		}
		store = fs
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		bs := postgres.NewBlobStore(pool)
		if err := bs.Init(ctx); err != nil {
			log.Fatal().Err(err).Msg("inicializar tabla de colecciones")
		}
		store = bs
	default:
		log.Fatal().Str("driver", cfg.Store.Driver).Msg("driver de almacenamiento desconocido")
	}

	seedColeccion(ctx, log, store, jsonstore.ClaveMateriales, materialesDemo())
	seedColeccion(ctx, log, store, jsonstore.ClaveClientes, clientesDemo())
	seedColeccion(ctx, log, store, jsonstore.ClavePedidos, pedidosDemo())
	seedColeccion(ctx, log, store, jsonstore.ClaveProductos, productosDemo())
	seedColeccion(ctx, log, store, jsonstore.ClaveUsuarios, usuariosDemo(log))

	log.Info().Msg("seed finalizado")
}

func seedColeccion[T any](ctx context.Context, log *logger.Logger, store blobstore.Store, clave string, items []T) {
	col := jsonstore.NewColeccion[T](store, clave)
	err := col.Mutate(ctx, func(list []T) ([]T, error) {
		if len(list) > 0 {
			log.Info().Str("coleccion", clave).Int("existentes", len(list)).Msg("colección no vacía, se omite")
			return list, nil
		}
		log.Info().Str("coleccion", clave).Int("items", len(items)).Msg("sembrando colección")
		return items, nil
	})
	if err != nil {
		log.Fatal().Err(err).Str("coleccion", clave).Msg("sembrar colección")
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func material(id int64, nombre, tipo, unidad, stock, minimo string, creado time.Time) entity.Material {
	return entity.Material{
		ID:           id,
		Nombre:       nombre,
		Tipo:         tipo,
		Unidad:       unidad,
		StockActual:  dec(stock),
		StockMinimo:  dec(minimo),
		FechaIngreso: creado,
		Activo:       true,
		Movimientos: []entity.Movimiento{{
			ID:         1,
			TipoMov:    entity.TipoMovCreacion,
			Cantidad:   dec(stock),
			Usuario:    "system",
			FechaMov:   creado,
			Comentario: "Creación inicial",
		}},
	}
}

func materialesDemo() []entity.Material {
	base := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	return []entity.Material{
		material(1, "Tela Algodón", "Tela", "metros", "120", "30", base),
		material(2, "Tela Drill", "Tela", "metros", "80", "25", base.Add(time.Hour)),
		material(3, "Hilo Poliéster Blanco", "Hilo", "conos", "45", "10", base.Add(2*time.Hour)),
		material(4, "Hilo Poliéster Negro", "Hilo", "conos", "8", "10", base.Add(3*time.Hour)),
		material(5, "Botones Camisa 12mm", "Insumo", "unidad", "600", "200", base.Add(4*time.Hour)),
		material(6, "Cremallera 20cm", "Insumo", "unidad", "150", "50", base.Add(5*time.Hour)),
	}
}

func clientesDemo() []entity.Cliente {
	base := time.Date(2025, 5, 12, 10, 0, 0, 0, time.UTC)
	return []entity.Cliente{
		{ID: 1, TipoCliente: entity.ClienteNatural, Nombre: "María Fernanda López", Identificacion: "1032456789", Correo: "mafe.lopez@gmail.com", Telefono: "3104567890", Direccion: "Cra 15 # 45-32, Bogotá", FechaRegistro: base},
		{ID: 2, TipoCliente: entity.ClienteJuridica, Nombre: "Dotaciones El Progreso SAS", Identificacion: "901234567-8", Correo: "compras@elprogreso.co", Telefono: "6015558899", Direccion: "Calle 80 # 68-20, Bogotá", Notas: "Pedidos corporativos mensuales", FechaRegistro: base.AddDate(0, 0, 3)},
		{ID: 3, TipoCliente: entity.ClienteNatural, Nombre: "Jorge Ramírez", Identificacion: "79845123", Correo: "jramirez@hotmail.com", Telefono: "3202223344", Direccion: "Av 68 # 22-15, Bogotá", FechaRegistro: base.AddDate(0, 0, 10)},
	}
}

func pedidosDemo() []entity.Pedido {
	p1 := entity.Pedido{
		ID: 1, Cliente: "Dotaciones El Progreso SAS", Telefono: "6015558899",
		Direccion: "Calle 80 # 68-20, Bogotá",
		Items: []entity.ItemPedido{
			{ID: 1, Producto: "Camisa Oxford", Cantidad: dec("24"), Talla: "M", Color: "Blanco", Precio: dec("45000")},
			{ID: 2, Producto: "Pantalón Drill", Cantidad: dec("24"), Talla: "32", Color: "Caqui", Precio: dec("62000")},
		},
		Fecha: "2025-07-01", Estado: entity.PedidoEnProduccion,
		MetodoPago: "Transferencia", TipoComprobante: "Factura", Prioridad: "Alta",
	}
	p1.Total = p1.CalcularTotal()

	p2 := entity.Pedido{
		ID: 2, Cliente: "María Fernanda López", Telefono: "3104567890",
		Items: []entity.ItemPedido{
			{ID: 1, Producto: "Blusa Lino", Cantidad: dec("2"), Talla: "S", Color: "Azul", Precio: dec("78000")},
		},
		Fecha: "2025-07-08", Estado: entity.PedidoPendiente,
		MetodoPago: "Efectivo", TipoComprobante: "Recibo", Prioridad: "Normal",
	}
	p2.Total = p2.CalcularTotal()

	return []entity.Pedido{p1, p2}
}

func productosDemo() []entity.Producto {
	return []entity.Producto{
		{ID: 1, SKU: "CAM-OXF-001", Nombre: "Camisa Oxford", Categoria: "Camisas", Precio: dec("45000"), Stock: dec("35"), Unidad: "unidad", Proveedor: "Confección propia", Tallas: []string{"S", "M", "L", "XL"}, Colores: []string{"Blanco", "Azul"}, Estado: "Disponible", Fecha: "2025-06-01"},
		{ID: 2, SKU: "PAN-DRL-001", Nombre: "Pantalón Drill", Categoria: "Pantalones", Precio: dec("62000"), Stock: dec("28"), Unidad: "unidad", Proveedor: "Confección propia", Tallas: []string{"30", "32", "34", "36"}, Colores: []string{"Caqui", "Negro"}, Estado: "Disponible", Fecha: "2025-06-01"},
		{ID: 3, SKU: "BLU-LIN-001", Nombre: "Blusa Lino", Categoria: "Blusas", Precio: dec("78000"), Stock: dec("0"), Unidad: "unidad", Proveedor: "Confección propia", Tallas: []string{"S", "M"}, Colores: []string{"Azul", "Beige"}, Estado: "Agotado", Fecha: "2025-06-15"},
	}
}

func usuariosDemo(log *logger.Logger) []entity.Usuario {
	hash := func(pw string) string {
		h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hashear password de demo")
		}
		return string(h)
	}
	creado := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	return []entity.Usuario{
		{
			ID: 1, Username: "jhoseph", NombreCompleto: "Jhoseph Torres",
			Email: "jhoseph@loomtrack.co", Rol: entity.RolAdmin, Estado: entity.UsuarioActivo,
			PasswordHash: hash("admin123"), FechaCreacion: creado,
		},
		{
			ID: 2, Username: "secretaria1", NombreCompleto: "Ana Correa",
			Email: "ana@loomtrack.co", Rol: entity.RolSecretaria, Estado: entity.UsuarioActivo,
			PasswordHash: hash("secretaria123"), FechaCreacion: creado.AddDate(0, 0, 2),
		},
	}
}
