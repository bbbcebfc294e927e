package config

import "time"

type Config struct {
	Application Application `yaml:"Application"`
}

type Application struct {
	LogLevel     string `yaml:"LogLevel"`
	Port         int    `yaml:"Port"`
	ProxyURL     string `yaml:"ProxyURL"`
	DownloadsDir string `yaml:"DownloadsDir"`
	PublicDir    string `yaml:"PublicDir"`

	MetadataTimeout Duration `yaml:"MetadataTimeout"`
	MediaTimeout    Duration `yaml:"MediaTimeout"`
	SweepMaxAge     Duration `yaml:"SweepMaxAge"`
}

func setDefaults(c *Config) {
	a := &c.Application

	if a.Port == 0 {
		a.Port = 3000
	}

	if a.DownloadsDir == "" {
		a.DownloadsDir = "downloads"
	}

	if a.PublicDir == "" {
		a.PublicDir = "public"
	}

	if a.MetadataTimeout == 0 {
		a.MetadataTimeout = Duration(10 * time.Second)
	}

	if a.MediaTimeout == 0 {
		a.MediaTimeout = Duration(30 * time.Second)
	}

	if a.SweepMaxAge == 0 {
		a.SweepMaxAge = Duration(24 * time.Hour)
	}
}
