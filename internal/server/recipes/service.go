// Package recipes stores user-saved recipes and hands out presigned
// object-storage URLs for their images, so image bytes never pass through
// this backend.
package recipes

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/mealgenie/backend/internal/server/config"
)

const presignValidity = 15 * time.Minute

type Service struct {
	repo Repository
	s3   config.S3
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo: repo,
		s3:   cfg.S3,
	}
}

func (s *Service) List(ctx context.Context, userID string) ([]SavedRecipe, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Save(ctx context.Context, userID, title, recipe, imageKey string) (*SavedRecipe, error) {
	return s.repo.Create(ctx, &SavedRecipe{UserID: userID, Title: title, Recipe: recipe, ImageKey: imageKey})
}

func (s *Service) Remove(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}

func randomImageKey() string {
	d := time.Now()
	return fmt.Sprintf("recipes/%d/%02d/%02d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *Service) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(s.s3.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.s3.AccessKey,
			s.s3.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s.s3.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.s3.BaseEndpoint)
		}
	})

	return s3.NewPresignClient(client), nil
}

// NewImageUploadURL returns a fresh object key and a presigned PUT URL the
// client uploads the image to directly.
func (s *Service) NewImageUploadURL(ctx context.Context) (key, url string, err error) {

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", "", err
	}

	bucket := s.s3.Bucket
	key = randomImageKey()

	req, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}

// ImageURL returns a presigned GET URL for the image of the given saved
// recipe, verifying ownership first.
func (s *Service) ImageURL(ctx context.Context, userID, recipeID string) (string, error) {

	rec, err := s.repo.GetByID(ctx, userID, recipeID)
	if err != nil {
		return "", err
	}
	if rec.ImageKey == "" {
		return "", nil
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := s.s3.Bucket

	req, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &rec.ImageKey,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
