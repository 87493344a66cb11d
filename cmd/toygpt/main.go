// Package main provides the toygpt tokenizer CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mandal13/toyGPT/internal/config"
	"github.com/mandal13/toyGPT/tokenizer"
)

const version = "v0.1.0-dev"

// trainableModel is a trainable tokenizer that can be persisted.
type trainableModel interface {
	tokenizer.Trainable
	Save(prefix string) error
	Load(path string) error
}

func main() {
	fmt.Fprintf(os.Stderr, "toygpt %s\n", version)

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.LoadAndParse()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse configuration")
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Text == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read from stdin")
		}
		cfg.Text = string(content)
	}

	tok, err := newTokenizer(cfg.Tokenizer)
	if err != nil {
		log.Fatal().Err(err).Str("tokenizer", cfg.Tokenizer).Msg("Failed to create tokenizer")
	}

	log.Debug().
		Str("mode", cfg.Mode).
		Str("tokenizer", cfg.Tokenizer).
		Str("model", cfg.ModelPath).
		Int("vocab_size", cfg.VocabSize).
		Msg("Configuration loaded")

	switch cfg.Mode {
	case "train":
		runTrain(cfg, tok)
	case "encode":
		runEncode(cfg, tok)
	case "decode":
		runDecode(cfg, tok)
	case "roundtrip":
		runRoundtrip(cfg, tok)
	}
}

func newTokenizer(kind string) (trainableModel, error) {
	switch kind {
	case "byte":
		return tokenizer.NewByteTokenizer(), nil
	case "bpe":
		return tokenizer.NewBPETokenizer(), nil
	case "regex":
		return tokenizer.NewRegexBPETokenizer()
	default:
		return nil, fmt.Errorf("unknown tokenizer kind %q", kind)
	}
}

func runTrain(cfg *config.Config, tok trainableModel) {
	corpus := readCorpus(cfg.Corpus)

	log.Info().Int("corpus_bytes", len(corpus)).Int("vocab_size", cfg.VocabSize).Msg("Training...")
	start := time.Now()
	if err := tok.Train(corpus, cfg.VocabSize); err != nil {
		log.Fatal().Err(err).Msg("Training failed")
	}
	log.Info().
		Dur("elapsed", time.Since(start)).
		Int("vocab_size", tok.VocabSize()).
		Msg("Training complete")

	if tok.VocabSize() < cfg.VocabSize {
		log.Warn().
			Int("requested", cfg.VocabSize).
			Int("learned", tok.VocabSize()).
			Msg("Training converged early: no mergeable pairs remained")
	}

	if err := tok.Save(cfg.ModelPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to save model")
	}
	log.Info().Str("model", cfg.ModelPath+".model").Str("vocab", cfg.ModelPath+".vocab").Msg("Model saved")

	if cfg.HFExport != "" {
		bpe, ok := tok.(*tokenizer.BPETokenizer)
		if !ok {
			log.Fatal().Str("tokenizer", cfg.Tokenizer).Msg("HF export requires a BPE tokenizer")
		}
		if err := tokenizer.WriteHFTokenizerJSON(cfg.HFExport, bpe); err != nil {
			log.Fatal().Err(err).Msg("Failed to write tokenizer.json")
		}
		log.Info().Str("output", cfg.HFExport).Msg("HuggingFace tokenizer.json written")
	}
}

func runEncode(cfg *config.Config, tok trainableModel) {
	loadModel(cfg, tok)

	ids, err := tok.Encode(cfg.Text)
	if err != nil {
		log.Fatal().Err(err).Msg("Encoding failed")
	}
	log.Debug().Int("tokens", len(ids)).Int("bytes", len(cfg.Text)).Msg("Encoded")

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(int(id))
	}
	fmt.Println(strings.Join(parts, " "))
}

func runDecode(cfg *config.Config, tok trainableModel) {
	loadModel(cfg, tok)

	var ids []int32
	for _, field := range strings.Split(cfg.Tokens, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseInt(field, 10, 32)
		if err != nil {
			log.Fatal().Str("token", field).Msg("Token IDs must be integers")
		}
		ids = append(ids, int32(v))
	}

	text, err := tok.Decode(ids)
	if err != nil {
		log.Fatal().Err(err).Msg("Decoding failed")
	}
	fmt.Println(text)
}

func runRoundtrip(cfg *config.Config, tok trainableModel) {
	corpus := readCorpus(cfg.Corpus)

	if err := tok.Train(corpus, cfg.VocabSize); err != nil {
		log.Fatal().Err(err).Msg("Training failed")
	}

	text := cfg.Text
	if text == "" {
		text = corpus
	}

	ids, err := tok.Encode(text)
	if err != nil {
		log.Fatal().Err(err).Msg("Encoding failed")
	}
	decoded, err := tok.Decode(ids)
	if err != nil {
		log.Fatal().Err(err).Msg("Decoding failed")
	}

	ratio := 0.0
	if len(ids) > 0 {
		ratio = float64(len(text)) / float64(len(ids))
	}
	log.Info().
		Int("bytes", len(text)).
		Int("tokens", len(ids)).
		Float64("compression", ratio).
		Bool("lossless", decoded == text).
		Msg("Round trip complete")

	if decoded != text {
		log.Fatal().Msg("Round trip mismatch: decoded text differs from input")
	}
}

func loadModel(cfg *config.Config, tok trainableModel) {
	// The byte tokenizer's vocabulary is fixed; nothing to load.
	if cfg.Tokenizer == "byte" {
		return
	}
	path := cfg.ModelPath + ".model"
	if err := tok.Load(path); err != nil {
		log.Fatal().Err(err).Str("model", path).Msg("Failed to load model")
	}
	log.Debug().Str("model", path).Int("vocab_size", tok.VocabSize()).Msg("Model loaded")
}

func readCorpus(path string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("corpus", path).Msg("Failed to read corpus")
	}
	return string(content)
}
