package main

import (
	"github.com/ilyakaznacheev/cleanenv"
	bytesize "github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/shivanshs9/wordcheck/set"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Backend         string `yaml:"backend" env:"WORDCHECK_BACKEND" env-default:"avl"`
	SuggestionCache int    `yaml:"suggestion_cache" env:"WORDCHECK_SUGGESTION_CACHE" env-default:"1024"`
	MaxWordListSize string `yaml:"max_word_list_size" env:"WORDCHECK_MAX_WORD_LIST_SIZE" env-default:"64MB"`
	LogLevel        string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	Profile         string `yaml:"profile" env:"WORDCHECK_PROFILE"`
	ProfilePath     string `yaml:"profile_path" env:"WORDCHECK_PROFILE_PATH"`
}

// settings are the parsed forms of the Config fields
type settings struct {
	kind     set.Kind
	maxSize  bytesize.ByteSize
	logLevel logrus.Level
}

// LoadConfig reads the yaml file at path when path is set, then applies
// environment overrides.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "read config %s", path)
		}
		return cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, errors.Wrap(err, "read env")
	}
	return cfg, nil
}

func (cfg Config) parse() (settings, error) {
	var s settings
	var err error

	if s.kind, err = set.ParseKind(cfg.Backend); err != nil {
		return s, errors.Wrap(err, "backend")
	}

	if s.maxSize, err = bytesize.Parse(cfg.MaxWordListSize); err != nil {
		return s, errors.Wrapf(err, "max word list size %q", cfg.MaxWordListSize)
	}

	if s.logLevel, err = logrus.ParseLevel(cfg.LogLevel); err != nil {
		return s, errors.Wrap(err, "log level")
	}

	switch cfg.Profile {
	case "", "cpu", "mem":
	default:
		return s, errors.Errorf("unknown profile mode %q", cfg.Profile)
	}

	return s, nil
}
