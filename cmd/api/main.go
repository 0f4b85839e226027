package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoseph/loomtrack-api/internal/application/auth"
	"github.com/jhoseph/loomtrack-api/internal/application/clientes"
	"github.com/jhoseph/loomtrack-api/internal/application/materiales"
	"github.com/jhoseph/loomtrack-api/internal/application/pedidos"
	"github.com/jhoseph/loomtrack-api/internal/application/productos"
	"github.com/jhoseph/loomtrack-api/internal/application/usuarios"
	"github.com/jhoseph/loomtrack-api/internal/domain/entity"
	"github.com/jhoseph/loomtrack-api/internal/infrastructure/blobstore"
	"github.com/jhoseph/loomtrack-api/internal/infrastructure/jsonstore"
	infrapdf "github.com/jhoseph/loomtrack-api/internal/infrastructure/pdf"
	"github.com/jhoseph/loomtrack-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoseph/loomtrack-api/internal/interfaces/http"
	"github.com/jhoseph/loomtrack-api/pkg/config"
	"github.com/jhoseph/loomtrack-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var store blobstore.Store
	switch cfg.Store.Driver {
	case "memory":
		store = blobstore.NewMemoryStore()
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

	materialStore := jsonstore.NewColeccion[entity.Material](store, jsonstore.ClaveMateriales)
	clienteStore := jsonstore.NewColeccion[entity.Cliente](store, jsonstore.ClaveClientes)
	pedidoStore := jsonstore.NewColeccion[entity.Pedido](store, jsonstore.ClavePedidos)
	productoStore := jsonstore.NewColeccion[entity.Producto](store, jsonstore.ClaveProductos)
	usuarioStore := jsonstore.NewColeccion[entity.Usuario](store, jsonstore.ClaveUsuarios)

	materialesUC := materiales.NewUseCase(materialStore)
	clientesUC := clientes.NewUseCase(clienteStore)
	pedidosUC := pedidos.NewUseCase(pedidoStore)
	productosUC := productos.NewUseCase(productoStore)
	usuariosUC := usuarios.NewUseCase(usuarioStore)
	authUC := auth.NewUseCase(usuarioStore, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	// El JSON lo genera swag; si no está presente se arranca sin UI.
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "LoomTrack API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MaterialesUC: materialesUC,
		ListadoPDF:   infrapdf.NewMarotoListadoGenerator(),
		ClientesUC:   clientesUC,
		PedidosUC:    pedidosUC,
		ProductosUC:  productosUC,
		UsuariosUC:   usuariosUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
