package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/edmarfarias/library-api/internal/notify"
	"github.com/edmarfarias/library-api/internal/scheduler"
	"github.com/edmarfarias/library-api/pkg/kafka"
	"github.com/edmarfarias/library-api/pkg/logger"
	"github.com/edmarfarias/library-api/pkg/postgres"

	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"LIBRARY_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"LIBRARY_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration
}

type Config struct {
	Server    HTTPServer       `yaml:"server"`
	Database  postgres.DB      `yaml:"db"`
	Kafka     kafka.Config     `yaml:"kafka"`
	Mail      notify.Config    `yaml:"mail"`
	Scheduler scheduler.Config `yaml:"scheduler"`
	Log       logger.Log       `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
