// Package config loads the toygpt CLI configuration from flags, an
// optional config file and TOYGPT_-prefixed environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config carries the resolved CLI settings.
type Config struct {
	Mode      string `mapstructure:"mode"`       // train, encode, decode or roundtrip
	Tokenizer string `mapstructure:"tokenizer"`  // byte, bpe or regex
	Corpus    string `mapstructure:"corpus"`     // training corpus file
	Text      string `mapstructure:"text"`       // text to encode or round-trip
	Tokens    string `mapstructure:"tokens"`     // comma-separated token IDs to decode
	ModelPath string `mapstructure:"model_path"` // prefix for .model/.vocab files
	VocabSize int    `mapstructure:"vocab_size"`
	HFExport  string `mapstructure:"hf_export"` // optional tokenizer.json output path
	LogLevel  string `mapstructure:"log_level"`
}

// LoadAndParse resolves the configuration. Precedence: flags, then
// environment, then config file, then defaults.
func LoadAndParse() (*Config, error) {
	viper.SetDefault("mode", "train")
	viper.SetDefault("tokenizer", "regex")
	viper.SetDefault("model_path", "toygpt")
	viper.SetDefault("vocab_size", 512)
	viper.SetDefault("log_level", "info")

	flagSet := pflag.NewFlagSet("toygpt", pflag.ContinueOnError)
	configFile := flagSet.StringP("config", "c", "", "Path to config file")
	flagSet.StringP("mode", "M", "", "Mode: train, encode, decode, roundtrip")
	flagSet.StringP("tokenizer", "k", "", "Tokenizer kind: byte, bpe, regex")
	flagSet.StringP("corpus", "f", "", "Training corpus file")
	flagSet.StringP("text", "t", "", "Text to encode or round-trip (use '-' to read from stdin)")
	flagSet.String("tokens", "", "Comma-separated token IDs to decode")
	flagSet.StringP("model", "m", "", "Model path prefix for save/load")
	flagSet.IntP("vocab-size", "s", 512, "Target vocabulary size (>= 256)")
	flagSet.String("hf-export", "", "Write HuggingFace tokenizer.json to this path after training")
	flagSet.StringP("log-level", "l", "", "Log level (debug, info, warn, error)")
	helpFlag := flagSet.BoolP("help", "h", false, "Show help message")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if *helpFlag {
		fmt.Fprintf(os.Stderr, "Usage: toygpt [options]\n\nOptions:\n")
		flagSet.PrintDefaults()
		os.Exit(0)
	}

	bindings := map[string]string{
		"mode":       "mode",
		"tokenizer":  "tokenizer",
		"corpus":     "corpus",
		"text":       "text",
		"tokens":     "tokens",
		"model_path": "model",
		"vocab_size": "vocab-size",
		"hf_export":  "hf-export",
		"log_level":  "log-level",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, flagSet.Lookup(flag)); err != nil {
			return nil, err
		}
	}

	if *configFile != "" {
		viper.SetConfigFile(*configFile)
	} else {
		viper.SetConfigName("toygpt.cfg")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "toygpt"))
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	viper.SetEnvPrefix("TOYGPT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Mode {
	case "train", "encode", "decode", "roundtrip":
	default:
		return fmt.Errorf("unknown mode %q (want train, encode, decode or roundtrip)", c.Mode)
	}

	switch c.Tokenizer {
	case "byte", "bpe", "regex":
	default:
		return fmt.Errorf("unknown tokenizer %q (want byte, bpe or regex)", c.Tokenizer)
	}

	if c.VocabSize < 256 {
		return fmt.Errorf("vocab size must be at least 256, got %d", c.VocabSize)
	}

	switch c.Mode {
	case "train":
		if c.Corpus == "" {
			return fmt.Errorf("train mode requires --corpus")
		}
	case "encode":
		if c.Text == "" {
			return fmt.Errorf("encode mode requires --text")
		}
	case "decode":
		if c.Tokens == "" {
			return fmt.Errorf("decode mode requires --tokens")
		}
	case "roundtrip":
		if c.Corpus == "" {
			return fmt.Errorf("roundtrip mode requires --corpus")
		}
	}
	return nil
}
