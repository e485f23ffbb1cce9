package usecase

import (
	"context"
	"errors"
	"strings"

	"socialhub/pkg/logger"
	"socialhub/pkg/translate"
	"socialhub/services/translate/internal/entity"
)

type PostSource interface {
	GetPost(ctx context.Context, postID, authToken string) (*entity.Post, error)
}

type LanguageSource interface {
	Language(ctx context.Context, authToken string) (string, error)
}

// TranslationCache stores post translations keyed by post, language and post version.
type TranslationCache interface {
	Get(ctx context.Context, postID, language string, version int64) (*entity.PostTranslation, error)
	Set(ctx context.Context, version int64, t *entity.PostTranslation) error
}

type TranslateUseCase interface {
	Translate(ctx context.Context, req entity.TranslateRequest) (*entity.TranslateResponse, error)
	TranslatePost(ctx context.Context, postID, authToken string) (*entity.PostTranslation, error)
}

type translateUseCase struct {
	translator translate.Translator
	posts      PostSource
	languages  LanguageSource
	cache      TranslationCache
	logger     *logger.Logger
}

// NewTranslateUseCase accepts a nil cache.
func NewTranslateUseCase(
	translator translate.Translator,
	posts PostSource,
	languages LanguageSource,
	cache TranslationCache,
	logger *logger.Logger,
) TranslateUseCase {
	return &translateUseCase{
		translator: translator,
		posts:      posts,
		languages:  languages,
		cache:      cache,
		logger:     logger,
	}
}

func (uc *translateUseCase) Translate(ctx context.Context, req entity.TranslateRequest) (*entity.TranslateResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, entity.ErrEmptyText
	}

	out, err := uc.translator.Translate(ctx, req.Text, req.TargetLanguage, req.SourceLanguage)
	if err != nil {
		if !errors.Is(err, translate.ErrNotConfigured) {
			uc.logger.Error("Translation to %q failed: %v", req.TargetLanguage, err)
		}
		return nil, err
	}

	return &entity.TranslateResponse{TranslatedText: out}, nil
}

// language falls back to DefaultLanguage for anonymous callers and profile lookup failures.
func (uc *translateUseCase) language(ctx context.Context, authToken string) string {
	if authToken == "" {
		return entity.DefaultLanguage
	}
	lang, err := uc.languages.Language(ctx, authToken)
	if err != nil {
		uc.logger.Warn("Failed to resolve caller language: %v, using %s", err, entity.DefaultLanguage)
		return entity.DefaultLanguage
	}
	if lang == "" {
		return entity.DefaultLanguage
	}
	return lang
}

func (uc *translateUseCase) TranslatePost(ctx context.Context, postID, authToken string) (*entity.PostTranslation, error) {
	post, err := uc.posts.GetPost(ctx, postID, authToken)
	if err != nil {
		return nil, err
	}

	lang := uc.language(ctx, authToken)

	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, post.ID, lang, post.Version())
		if err != nil {
			uc.logger.Warn("Translation cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	title, err := uc.translator.Translate(ctx, post.Title, lang, "")
	if err != nil {
		uc.logger.Error("Failed to translate title of post %s: %v", post.ID, err)
		return nil, err
	}
	content, err := uc.translator.Translate(ctx, post.Content, lang, "")
	if err != nil {
		uc.logger.Error("Failed to translate content of post %s: %v", post.ID, err)
		return nil, err
	}

	result := &entity.PostTranslation{
		PostID:   post.ID,
		Language: lang,
		Title:    title,
		Content:  content,
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, post.Version(), result); err != nil {
			uc.logger.Warn("Translation cache write failed: %v", err)
		}
	}

	return result, nil
}
