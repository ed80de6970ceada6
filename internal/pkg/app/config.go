package app

import (
	"github.com/nil-go/konf"
	"github.com/nil-go/konf/provider/file"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type WebConfig struct {
	Host string
	Port string
}

type LoggingConfig struct {
	Level int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type DBConfig struct {
	DriverName       string
	ConnectionString string
}

type KafkaConfig struct {
	Addresses []string
	Topic     string
}

type Config struct {
	Web     WebConfig
	Logging LoggingConfig
	Redis   RedisConfig
	DB      DBConfig
	Kafka   KafkaConfig
}

// ReadLocalConfig loads a YAML config file from path.
func ReadLocalConfig(path string) (Config, error) {
	var config Config

	k := konf.New()
	if err := k.Load(file.New(path, file.WithUnmarshal(yaml.Unmarshal))); err != nil {
		return Config{}, errors.Wrap(err, "load config file")
	}

	if err := k.Unmarshal("", &config); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}

	return config, nil
}
