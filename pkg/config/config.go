package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del cliente (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App AppConfig
	API APIConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// APIConfig configuración del backend REST de productos.
type APIConfig struct {
	BaseURL        string        // ej. http://localhost:3001/api
	Timeout        time.Duration // presupuesto por petición
	ItemsPorPagina int           // límite por defecto al paginar
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo .env).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, API_TIMEOUT_MS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env en el directorio actual
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:      v.GetString("APP_ENV"),
			Name:     v.GetString("APP_NAME"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		API: APIConfig{
			BaseURL:        strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
			Timeout:        time.Duration(v.GetInt("API_TIMEOUT_MS")) * time.Millisecond,
			ItemsPorPagina: v.GetInt("API_ITEMS_POR_PAGINA"),
		},
	}

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL no puede estar vacío")
	}
	if cfg.API.ItemsPorPagina <= 0 {
		return nil, fmt.Errorf("API_ITEMS_POR_PAGINA debe ser mayor a 0 (valor: %d)", cfg.API.ItemsPorPagina)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "inventario-cliente")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("API_BASE_URL", "http://localhost:3001/api")
	v.SetDefault("API_TIMEOUT_MS", 10000)
	v.SetDefault("API_ITEMS_POR_PAGINA", 12)
}
