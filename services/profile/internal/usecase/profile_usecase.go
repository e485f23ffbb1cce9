package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"

	"socialhub/pkg/logger"
	"socialhub/pkg/s3"
	"socialhub/services/profile/internal/entity"
	"socialhub/services/profile/internal/repo/persistent"

	"github.com/google/uuid"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.]{3,30}$`)

var avatarContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

type ObjectStorage interface {
	Upload(ctx context.Context, bucket, key string, body io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, bucket, key string) error
}

type ProfileUseCase interface {
	Me(ctx context.Context, userID string) (*entity.Profile, error)
	Username(ctx context.Context, userID string) (string, error)
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	GetByUsername(ctx context.Context, username string) (*entity.Profile, error)
	Update(ctx context.Context, userID string, update entity.ProfileUpdate) (*entity.Profile, error)
	UploadAvatar(ctx context.Context, userID string, file *multipart.FileHeader) (*entity.Profile, error)
	DeleteAvatar(ctx context.Context, userID string) (*entity.Profile, error)
}

type profileUseCase struct {
	profileRepo persistent.ProfileRepository
	usernames   UsernameCache
	storage     ObjectStorage
	bucket      string
	logger      *logger.Logger
}

func NewProfileUseCase(
	profileRepo persistent.ProfileRepository,
	usernames UsernameCache,
	storage ObjectStorage,
	bucket string,
	logger *logger.Logger,
) ProfileUseCase {
	return &profileUseCase{
		profileRepo: profileRepo,
		usernames:   usernames,
		storage:     storage,
		bucket:      bucket,
		logger:      logger,
	}
}

// Me returns the caller's profile, creating an empty one on first access.
func (uc *profileUseCase) Me(ctx context.Context, userID string) (*entity.Profile, error) {
	profile, err := uc.profileRepo.GetByID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, entity.ErrProfileNotFound) {
		return nil, err
	}

	uc.logger.Info("Creating profile for user %s", userID)
	if err := uc.profileRepo.Create(ctx, &entity.Profile{ID: userID, Language: entity.DefaultLanguage}); err != nil {
		return nil, err
	}
	return uc.profileRepo.GetByID(ctx, userID)
}

// Username returns "" when the caller has not picked a username yet.
func (uc *profileUseCase) Username(ctx context.Context, userID string) (string, error) {
	if name, ok := uc.usernames.Get(userID); ok {
		return name, nil
	}

	profile, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if profile.Username == nil {
		return "", nil
	}

	uc.usernames.Set(userID, *profile.Username)
	return *profile.Username, nil
}

func (uc *profileUseCase) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	return uc.profileRepo.GetByID(ctx, id)
}

func (uc *profileUseCase) GetByUsername(ctx context.Context, username string) (*entity.Profile, error) {
	return uc.profileRepo.GetByUsername(ctx, username)
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

func (uc *profileUseCase) Update(ctx context.Context, userID string, update entity.ProfileUpdate) (*entity.Profile, error) {
	update.Username = trimmed(update.Username)
	update.FullName = trimmed(update.FullName)
	update.Bio = trimmed(update.Bio)
	update.Website = trimmed(update.Website)
	update.Language = trimmed(update.Language)

	if update.Username != nil && !usernamePattern.MatchString(*update.Username) {
		return nil, entity.ErrInvalidUsername
	}
	if update.Language != nil && (len(*update.Language) < 2 || len(*update.Language) > 8) {
		return nil, entity.ErrInvalidLanguage
	}

	profile, err := uc.profileRepo.Update(ctx, userID, update)
	if err != nil {
		return nil, err
	}

	uc.usernames.Invalidate(userID)
	return profile, nil
}

func (uc *profileUseCase) UploadAvatar(ctx context.Context, userID string, file *multipart.FileHeader) (*entity.Profile, error) {
	if file.Size > entity.MaxAvatarSize {
		return nil, entity.ErrAvatarTooLarge
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType, ok := avatarContentTypes[ext]
	if !ok {
		return nil, entity.ErrInvalidAvatarType
	}

	current, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	fileKey := fmt.Sprintf("%s/%s%s", userID, uuid.New().String(), ext)
	avatarURL, err := uc.storage.Upload(ctx, uc.bucket, fileKey, src, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload avatar: %v", err)
		return nil, err
	}

	if err := uc.profileRepo.SetAvatarURL(ctx, userID, avatarURL); err != nil {
		uc.logger.Error("Failed to save avatar for user %s: %v", userID, err)
		uc.removeAvatar(context.Background(), avatarURL)
		return nil, err
	}

	uc.removeAvatar(ctx, current.AvatarURL)
	current.AvatarURL = avatarURL
	return current, nil
}

// DeleteAvatar reverts the caller to the default avatar.
func (uc *profileUseCase) DeleteAvatar(ctx context.Context, userID string) (*entity.Profile, error) {
	current, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current.AvatarURL == "" {
		return current, nil
	}

	if err := uc.profileRepo.SetAvatarURL(ctx, userID, ""); err != nil {
		return nil, err
	}

	uc.removeAvatar(ctx, current.AvatarURL)
	current.AvatarURL = ""
	return current, nil
}

// removeAvatar deletes a stored avatar best-effort; URLs outside the bucket are left alone.
func (uc *profileUseCase) removeAvatar(ctx context.Context, avatarURL string) {
	if avatarURL == "" {
		return
	}
	key, ok := s3.KeyFromURL(uc.bucket, avatarURL)
	if !ok {
		return
	}
	if err := uc.storage.Delete(ctx, uc.bucket, key); err != nil {
		uc.logger.Warn("Failed to delete avatar %s: %v", key, err)
	}
}
