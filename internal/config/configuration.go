package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Configuration struct {
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
}

type StorageConfig struct {
	DatabasePath string `yaml:"databasePath"`
	UploadPath   string `yaml:"uploadPath"`
	PublicPath   string `yaml:"publicPath"`
}

type ServerConfig struct {
	Port          int           `yaml:"port"`
	Host          string        `yaml:"host"`
	Concurrency   int           `yaml:"concurrency"`
	RequestConfig RequestConfig `yaml:"request"`
	LogConfig     LogConfig     `yaml:"log"`
	CleanConfig   CleanConfig   `yaml:"clean"`
}

type RequestConfig struct {
	SizeLimit int `yaml:"sizeLimit"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"logPath"`
}

type CleanConfig struct {
	Schedule string `yaml:"schedule"`
}

// LoadConfiguration reads the yaml configuration file. A missing file is
// not an error; the service runs on defaults alone.
func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	config := defaultConfiguration()
	data, err := os.ReadFile(configurationFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}
	if err = yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	applyDefaults(config)
	return config, nil
}

func defaultConfiguration() *Configuration {
	config := &Configuration{}
	applyDefaults(config)
	return config
}

func applyDefaults(config *Configuration) {
	if config.Server.Port == 0 {
		config.Server.Port = 3000
	}
	if config.Server.Host == "" {
		config.Server.Host = "0.0.0.0"
	}
	if config.Server.Concurrency == 0 {
		config.Server.Concurrency = 256
	}
	if config.Server.RequestConfig.SizeLimit == 0 {
		config.Server.RequestConfig.SizeLimit = 25
	}
	if config.Server.LogConfig.Level == "" {
		config.Server.LogConfig.Level = "info"
	}
	if config.Server.LogConfig.Format == "" {
		config.Server.LogConfig.Format = "text"
	}
	if config.Server.LogConfig.Output == "" {
		config.Server.LogConfig.Output = "stdout"
	}
	if config.Storage.DatabasePath == "" {
		config.Storage.DatabasePath = "inventory.db"
	}
	if config.Storage.UploadPath == "" {
		config.Storage.UploadPath = "uploads"
	}
	if config.Storage.PublicPath == "" {
		config.Storage.PublicPath = "public"
	}
}
