package server

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`
}

func GetConfig() *Config {
	cfg := new(Config)
	if err := envconfig.Process("SERVER", cfg); err != nil {
		panic(err)
	}

	return cfg
}
