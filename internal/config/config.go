package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Tokenizer TokenizerConfig `mapstructure:"tokenizer"`
	Espeak    EspeakConfig    `mapstructure:"espeak"`
	Server    ServerConfig    `mapstructure:"server"`
	LogLevel  string          `mapstructure:"log_level"`
}

type TokenizerConfig struct {
	// Type selects the tokenizer family: phoneme, char, word, or
	// sentencepiece.
	Type string `mapstructure:"type"`
	// G2PType selects the phoneme backend (phoneme type only).
	G2PType string `mapstructure:"g2p_type"`
	// SymbolFile is a newline-delimited non-linguistic symbol list.
	SymbolFile string `mapstructure:"symbol_file"`
	// SpaceSymbol replaces plain spaces in char tokenization and is
	// stored on the phoneme tokenizer for callers that read it.
	SpaceSymbol string `mapstructure:"space_symbol"`
	// RemoveSymbols drops matched non-linguistic symbols.
	RemoveSymbols bool `mapstructure:"remove_symbols"`
	// Delimiter separates words for the word tokenizer; empty means
	// whitespace.
	Delimiter string `mapstructure:"delimiter"`
	// ModelPath is the SentencePiece model file (sentencepiece type only).
	ModelPath string `mapstructure:"model_path"`
}

type EspeakConfig struct {
	// Command is the espeak-ng executable; empty resolves from PATH.
	Command string `mapstructure:"command"`
}

type ServerConfig struct {
	ListenAddr     string `mapstructure:"listen_addr"`
	MaxTextBytes   int    `mapstructure:"max_text_bytes"`
	RequestTimeout int    `mapstructure:"request_timeout"`
	Workers        int    `mapstructure:"workers"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Tokenizer: TokenizerConfig{
			Type:        "phoneme",
			G2PType:     "g2p_en",
			SymbolFile:  "",
			SpaceSymbol: "<space>",
			Delimiter:   "",
			ModelPath:   "",
		},
		Espeak: EspeakConfig{
			Command: "",
		},
		Server: ServerConfig{
			ListenAddr:     ":8080",
			MaxTextBytes:   4096,
			RequestTimeout: 60,
			Workers:        2,
		},
		LogLevel: "info",
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("tokenizer-type", defaults.Tokenizer.Type, "Tokenizer family (phoneme|char|word|sentencepiece)")
	fs.String("g2p-type", defaults.Tokenizer.G2PType, "G2P backend key (see 'phonemize backends')")
	fs.String("symbol-file", defaults.Tokenizer.SymbolFile, "Newline-delimited non-linguistic symbol file")
	fs.String("space-symbol", defaults.Tokenizer.SpaceSymbol, "Symbol standing in for a space character")
	fs.Bool("remove-symbols", defaults.Tokenizer.RemoveSymbols, "Drop non-linguistic symbols instead of keeping them")
	fs.String("delimiter", defaults.Tokenizer.Delimiter, "Word delimiter for the word tokenizer (empty = whitespace)")
	fs.String("model-path", defaults.Tokenizer.ModelPath, "SentencePiece model file for the sentencepiece tokenizer")
	fs.String("espeak-command", defaults.Espeak.Command, "espeak-ng executable path (empty = from PATH)")
	fs.String("server-listen-addr", defaults.Server.ListenAddr, "HTTP listen address")
	fs.Int("server-max-text-bytes", defaults.Server.MaxTextBytes, "Maximum request text size in bytes")
	fs.Int("server-request-timeout", defaults.Server.RequestTimeout, "Per-request timeout in seconds")
	fs.Int("server-workers", defaults.Server.Workers, "Maximum concurrent tokenization requests")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("PHONEMIZE")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("phonemize")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("tokenizer.type", c.Tokenizer.Type)
	v.SetDefault("tokenizer.g2p_type", c.Tokenizer.G2PType)
	v.SetDefault("tokenizer.symbol_file", c.Tokenizer.SymbolFile)
	v.SetDefault("tokenizer.space_symbol", c.Tokenizer.SpaceSymbol)
	v.SetDefault("tokenizer.remove_symbols", c.Tokenizer.RemoveSymbols)
	v.SetDefault("tokenizer.delimiter", c.Tokenizer.Delimiter)
	v.SetDefault("tokenizer.model_path", c.Tokenizer.ModelPath)
	v.SetDefault("espeak.command", c.Espeak.Command)
	v.SetDefault("server.listen_addr", c.Server.ListenAddr)
	v.SetDefault("server.max_text_bytes", c.Server.MaxTextBytes)
	v.SetDefault("server.request_timeout", c.Server.RequestTimeout)
	v.SetDefault("server.workers", c.Server.Workers)
	v.SetDefault("log_level", c.LogLevel)
}

// bindFlags binds each command-line flag to its dotted configuration key.
// Binding per key keeps flags, env vars, config files, and defaults all
// resolving through the same key; a whole-set BindPFlags would register
// the dashed flag names as separate top-level keys and shadow the dotted
// ones for every other source.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	bindings := map[string]string{
		"tokenizer.type":           "tokenizer-type",
		"tokenizer.g2p_type":       "g2p-type",
		"tokenizer.symbol_file":    "symbol-file",
		"tokenizer.space_symbol":   "space-symbol",
		"tokenizer.remove_symbols": "remove-symbols",
		"tokenizer.delimiter":      "delimiter",
		"tokenizer.model_path":     "model-path",
		"espeak.command":           "espeak-command",
		"server.listen_addr":       "server-listen-addr",
		"server.max_text_bytes":    "server-max-text-bytes",
		"server.request_timeout":   "server-request-timeout",
		"server.workers":           "server-workers",
		"log_level":                "log-level",
	}
	for key, name := range bindings {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	return nil
}
