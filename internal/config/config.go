package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CorpusConfig locates the question/answer CSV and its column layout.
type CorpusConfig struct {
	Path        string `yaml:"path"`
	QuestionCol int    `yaml:"question_col"`
	AnswerCol   int    `yaml:"answer_col"`
}

// TokenizerConfig selects and configures the tokenizer implementation.
type TokenizerConfig struct {
	Type      string   `yaml:"type"`
	Stopwords bool     `yaml:"stopwords"`
	DictPaths []string `yaml:"dict_paths,omitempty"`
}

// MatcherConfig configures model persistence and the similarity cutoff.
type MatcherConfig struct {
	ModelDir  string  `yaml:"model_dir"`
	Threshold float64 `yaml:"threshold"`
}

// ServerConfig configures the HTTP invocation surface.
type ServerConfig struct {
	Addr         string `yaml:"addr"`
	AccessKeyEnv string `yaml:"access_key_env"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Corpus    CorpusConfig    `yaml:"corpus"`
	Tokenizer TokenizerConfig `yaml:"tokenizer"`
	Matcher   MatcherConfig   `yaml:"matcher"`
	Server    ServerConfig    `yaml:"server"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/faqmatch/config.yaml.
// If neither exists, it writes defaults to ~/.config/faqmatch/config.yaml and
// returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "faqmatch", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		// Column layout of the upstream FAQ export: answer in column 2,
		// question in column 3.
		Corpus:    CorpusConfig{Path: "input/study_qa.csv", QuestionCol: 3, AnswerCol: 2},
		Tokenizer: TokenizerConfig{Type: "unicode", Stopwords: true},
		Matcher:   MatcherConfig{ModelDir: "output", Threshold: 0.3},
		Server:    ServerConfig{Addr: ":8080", AccessKeyEnv: "FAQMATCH_ACCESS_KEY"},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Corpus.Path == "" {
		cfg.Corpus.Path = "input/study_qa.csv"
	}
	if cfg.Corpus.QuestionCol == 0 && cfg.Corpus.AnswerCol == 0 {
		cfg.Corpus.QuestionCol = 3
		cfg.Corpus.AnswerCol = 2
	}
	if cfg.Matcher.ModelDir == "" {
		cfg.Matcher.ModelDir = "output"
	}
	if cfg.Matcher.Threshold == 0 {
		cfg.Matcher.Threshold = 0.3
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.AccessKeyEnv == "" {
		cfg.Server.AccessKeyEnv = "FAQMATCH_ACCESS_KEY"
	}
}
