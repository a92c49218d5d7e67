package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/inventario-cliente/internal/application/productos"
	"github.com/jhoicas/inventario-cliente/internal/application/store"
	"github.com/jhoicas/inventario-cliente/internal/infrastructure/api"
	"github.com/jhoicas/inventario-cliente/internal/interfaces/cli"
	"github.com/jhoicas/inventario-cliente/pkg/config"
	"github.com/jhoicas/inventario-cliente/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando cliente de inventario")

	// Un Store por sesión, construido acá y pasado por referencia; nadie lo
	// busca de forma ambiental.
	st := store.New()
	gateway := api.NewCliente(cfg.API, log)
	operaciones := productos.NewOperaciones(st, gateway, log, cfg.API.ItemsPorPagina)

	// Ctrl+C cancela el context y con él cualquier petición en vuelo.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := cli.NewApp(st, operaciones, os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("la consola terminó con error")
	}
	log.Info().Msg("sesión finalizada")
}
