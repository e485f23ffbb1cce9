package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"time"

	"socialhub/pkg/config"
	"socialhub/pkg/database"
	"socialhub/pkg/jwt"
	"socialhub/pkg/logger"
	"socialhub/pkg/models"
	"socialhub/pkg/s3"

	"gorm.io/gorm"
)

type seedUser struct {
	email    string
	username string
	fullName string
	language string
}

func main() {
	var withImages bool
	flag.BoolVar(&withImages, "images", false, "Fetch cat images from cataas.com and attach them to seeded posts")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	var s3Client *s3.Client
	if withImages {
		s3Client, err = s3.NewClient(cfg, cfg.PostImagesBucket)
		if err != nil {
			log.Error("Failed to create S3 client: %v", err)
			panic(err)
		}
	}

	jwtService := jwt.NewService(cfg.JWTSecret)

	if err := seedDatabase(db, s3Client, cfg.PostImagesBucket, jwtService, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, s3Client *s3.Client, bucket string, jwtService *jwt.Service, log *logger.Logger) error {
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	testUsers := []seedUser{
		{"alice@test.com", "alice", "Alice Martin", "en"},
		{"bob@test.com", "bob.builder", "Bob Builder", "fr"},
		{"charlie@test.com", "charlie_k", "Charlie Kim", "ko"},
		{"diana@test.com", "diana", "Diana Prince", "es"},
		{"eve@test.com", "eve_writes", "Eve Adams", "de"},
	}

	profileIDs := make([]string, 0, len(testUsers))
	postIDs := make([]string, 0)

	for i, userData := range testUsers {
		username := userData.username
		profile := &models.Profile{
			Username: &username,
			FullName: userData.fullName,
			Bio:      fmt.Sprintf("Hi, I'm %s.", userData.fullName),
			Language: userData.language,
		}

		var existing models.Profile
		result := db.Where("username = ?", username).First(&existing)
		if result.Error == nil {
			log.Info("Profile %s already exists, skipping", username)
			profileIDs = append(profileIDs, existing.ID)
			printToken(jwtService, existing.ID, userData.email, username, log)
			continue
		}

		if err := db.Create(profile).Error; err != nil {
			log.Error("Failed to create profile %s: %v", username, err)
			continue
		}

		log.Info("Created profile: %s (%s)", username, userData.email)
		profileIDs = append(profileIDs, profile.ID)
		printToken(jwtService, profile.ID, userData.email, username, log)

		postsCount := 2 + (i % 3)
		for j := 0; j < postsCount; j++ {
			postID, err := createPost(db, s3Client, bucket, httpClient, profile.ID, username, j, log)
			if err != nil {
				log.Error("Failed to create post %d for %s: %v", j+1, username, err)
				continue
			}
			postIDs = append(postIDs, postID)
		}
	}

	for i := 0; i < len(profileIDs); i++ {
		for j := i + 1; j < len(profileIDs); j++ {
			if err := createFollow(db, profileIDs[i], profileIDs[j]); err != nil {
				log.Error("Failed to create follow: %v", err)
			}
		}
	}
	log.Info("Created test follows")

	for i, postID := range postIDs {
		author := profileIDs[(i+1)%len(profileIDs)]
		replier := profileIDs[(i+2)%len(profileIDs)]
		if err := createThread(db, postID, author, replier); err != nil {
			log.Error("Failed to create comments for post %s: %v", postID, err)
			continue
		}
		if err := createPostLike(db, replier, postID); err != nil {
			log.Error("Failed to like post %s: %v", postID, err)
		}
	}
	log.Info("Created test comments and likes")

	return nil
}

func printToken(jwtService *jwt.Service, profileID, email, username string, log *logger.Logger) {
	token, err := jwtService.GenerateToken(profileID, email)
	if err != nil {
		log.Error("Failed to mint token for %s: %v", username, err)
		return
	}
	log.Info("Token for %s: %s", username, token)
}

func createPost(db *gorm.DB, s3Client *s3.Client, bucket string, httpClient *http.Client, userID, username string, index int, log *logger.Logger) (string, error) {
	post := &models.Post{
		UserID:  userID,
		Title:   fmt.Sprintf("Post #%d by %s", index+1, username),
		Content: fmt.Sprintf("Seeded post number %d from %s.", index+1, username),
	}
	if err := post.BeforeCreate(nil); err != nil {
		return "", fmt.Errorf("failed to generate post ID: %w", err)
	}

	if s3Client != nil {
		imageURL, err := uploadCatImage(s3Client, bucket, httpClient, userID, post.ID, username, index, log)
		if err != nil {
			log.Warn("Skipping image for post %s: %v", post.ID, err)
		} else {
			post.ImageURL = &imageURL
		}
	}

	if err := db.Create(post).Error; err != nil {
		return "", fmt.Errorf("failed to create post: %w", err)
	}

	log.Info("Created post: %s by %s", post.Title, username)
	return post.ID, nil
}

func uploadCatImage(s3Client *s3.Client, bucket string, httpClient *http.Client, userID, postID, username string, index int, log *logger.Logger) (string, error) {
	cataasURL := "https://cataas.com/cat"
	if index%2 == 0 {
		cataasURL += fmt.Sprintf("/says/Hello from %s", username)
	}

	log.Info("Fetching cat image from %s", cataasURL)
	resp, err := httpClient.Get(cataasURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch cat image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cataas API returned status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read image data: %w", err)
	}
	if len(imageData) == 0 {
		return "", fmt.Errorf("received empty image data")
	}

	fileKey := fmt.Sprintf("posts/%s/%s.jpg", userID, postID)
	imageURL, err := s3Client.Upload(context.Background(), bucket, fileKey, bytes.NewReader(imageData), "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to upload image to S3: %w", err)
	}

	log.Info("Image uploaded successfully: %s", imageURL)
	return imageURL, nil
}

func createFollow(db *gorm.DB, followerID, followingID string) error {
	var count int64
	db.Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count)
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.Follow{FollowerID: followerID, FollowingID: followingID}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Profile{}).Where("id = ?", followingID).
			UpdateColumn("followers_count", gorm.Expr("followers_count + 1")).Error; err != nil {
			return err
		}
		return tx.Model(&models.Profile{}).Where("id = ?", followerID).
			UpdateColumn("following_count", gorm.Expr("following_count + 1")).Error
	})
}

func createThread(db *gorm.DB, postID, authorID, replierID string) error {
	top := &models.Comment{
		PostID:  postID,
		UserID:  authorID,
		Content: "Love this!",
	}
	if err := db.Create(top).Error; err != nil {
		return err
	}

	reply := &models.Comment{
		PostID:   postID,
		UserID:   replierID,
		Content:  "Agreed, great post.",
		ParentID: &top.ID,
	}
	return db.Create(reply).Error
}

func createPostLike(db *gorm.DB, userID, postID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.Like{UserID: userID, PostID: &postID}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).Where("id = ?", postID).
			UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error
	})
}
