package config

import (
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

const envPrefix = "CALENDAR_"

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Application struct {
	Listen   string   `koanf:"listen"`
	Database Database `koanf:"db"`
	Pdf      Pdf      `koanf:"pdf"`
	Calendar Calendar `koanf:"calendar"`
}

type Database struct {
	Driver string `koanf:"driver"`
	Path   string `koanf:"path"`
	Host   string `koanf:"host"`
	Port   int    `koanf:"port"`
	User   string `koanf:"user"`
	Pass   string `koanf:"pass"`
	Name   string `koanf:"name"`
	Schema string `koanf:"schema"`
}

type Pdf struct {
	Enabled   bool          `koanf:"enabled"`
	Timeout   time.Duration `koanf:"timeout"`
	Landscape bool          `koanf:"landscape"`
}

type Calendar struct {
	DefaultTitle string `koanf:"defaulttitle"`
}

func defaults() Application {
	return Application{
		Listen: ":8181",
		Database: Database{
			Driver: DriverSQLite,
			Path:   "./calendar.db",
			Host:   "localhost",
			Port:   5432,
			User:   "calendar",
			Pass:   "",
			Name:   "calendar",
			Schema: "public",
		},
		Pdf: Pdf{
			Enabled:   true,
			Timeout:   30 * time.Second,
			Landscape: true,
		},
		Calendar: Calendar{
			DefaultTitle: "Event Calendar",
		},
	}
}

// Load reads the configuration from struct defaults, the optional YAML file at
// path and CALENDAR_ prefixed environment variables, in that order.
func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(defaults(), "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(k, v string) (string, any) {
			// CALENDAR_DB_DRIVER -> db.driver
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, envPrefix)), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
