package commands

import (
	"fmt"

	"faqmatch/internal/config"
	"faqmatch/internal/domain"
	"faqmatch/internal/service"
	"faqmatch/internal/store"
	"faqmatch/internal/tokenizer"
	"faqmatch/internal/tokenizer/jieba"
)

func loadConfig() (*config.AppConfig, error) {
	if cfgPath != "" {
		return config.Load(cfgPath)
	}
	cfg, _, err := config.LoadDefault()
	return cfg, err
}

func newTokenizer(cfg *config.AppConfig) (domain.Tokenizer, func(), error) {
	switch cfg.Tokenizer.Type {
	case "unicode", "":
		return tokenizer.New(cfg.Tokenizer.Stopwords), func() {}, nil
	case "jieba":
		t := jieba.New(cfg.Tokenizer.DictPaths...)
		return t, t.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown tokenizer: %s", cfg.Tokenizer.Type)
	}
}

// newService assembles the matching service from config. The returned close
// function releases tokenizer resources.
func newService(cfg *config.AppConfig) (*service.Service, func(), error) {
	tok, closeTok, err := newTokenizer(cfg)
	if err != nil {
		return nil, nil, err
	}
	corpus := store.NewCorpusFile(cfg.Corpus.Path, cfg.Corpus.QuestionCol, cfg.Corpus.AnswerCol)
	models := store.NewModelStore(cfg.Matcher.ModelDir)
	return service.New(corpus, tok, models, cfg.Matcher.Threshold), closeTok, nil
}
