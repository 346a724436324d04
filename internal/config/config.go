package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/xavierca1/console-clientes/internal/infra/integration/clienteapi"
)

type Config struct {
	Port              string
	ClienteAPIURL     string
	ClienteAPITimeout time.Duration
	RecargaIntervalo  time.Duration
	AMQPURL           string
	CORSOrigins       []string
}

// Load lê o .env (se existir) e depois as variáveis de ambiente.
func Load(files ...string) (*Config, error) {
	godotenv.Load(files...)

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		ClienteAPIURL: strings.TrimRight(getEnv("CLIENTE_API_URL", clienteapi.BaseURL), "/"),
		AMQPURL:       os.Getenv("AMQP_URL"),
		CORSOrigins:   splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,*")),
	}

	timeout, err := getDuration("CLIENTE_API_TIMEOUT")
	if err != nil {
		return nil, err
	}
	cfg.ClienteAPITimeout = timeout

	intervalo, err := getDuration("CLIENTE_RECARGA_INTERVALO")
	if err != nil {
		return nil, err
	}
	cfg.RecargaIntervalo = intervalo

	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) EventosHabilitados() bool {
	return c.AMQPURL != ""
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// getDuration lê uma duração Go ("30s", "5m"); ausente vale zero.
func getDuration(key string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, "0s"))
	if err != nil {
		return 0, fmt.Errorf("%s inválido: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s não pode ser negativo: %s", key, d)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
