// Backend local de productos para desarrollar el cliente sin servidor real.
// Implementa el mismo contrato REST bajo /api.
package main

import (
	"os"

	"github.com/jhoicas/inventario-cliente/internal/stubserver"
	"github.com/jhoicas/inventario-cliente/pkg/logger"
)

func main() {
	log := logger.New(logger.Config{Env: "development", Level: "info"})

	addr := os.Getenv("STUB_ADDR")
	if addr == "" {
		addr = ":3001"
	}

	app := stubserver.New(stubserver.NewRepositorioDeEjemplo())
	log.Info().Str("addr", addr).Msg("backend de pruebas escuchando")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("el backend de pruebas terminó con error")
	}
}
