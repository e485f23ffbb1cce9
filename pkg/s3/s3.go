package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"socialhub/pkg/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type Client struct {
	s3Client *s3.S3
}

// NewClient connects to S3 (or MinIO when AWS_ENDPOINT is set) and makes
// sure the given buckets exist.
func NewClient(cfg *config.Config, buckets ...string) (*Client, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.AWSRegion),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		),
	}

	// Support MinIO for local development
	if cfg.AWSEndpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.AWSEndpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
		if cfg.S3UseSSL == "false" {
			awsConfig.DisableSSL = aws.Bool(true)
		}
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	client := &Client{s3Client: s3.New(sess)}

	for _, bucket := range buckets {
		_, err = client.s3Client.HeadBucket(&s3.HeadBucketInput{
			Bucket: aws.String(bucket),
		})
		if err != nil {
			// Bucket may already exist under another owner; uploads will surface real problems.
			_, _ = client.s3Client.CreateBucket(&s3.CreateBucketInput{
				Bucket: aws.String(bucket),
			})
		}
	}

	return client, nil
}

// Upload stores body under bucket/key and returns its public URL.
func (c *Client) Upload(ctx context.Context, bucket, key string, body io.Reader, contentType string) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	_, err = c.s3Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return c.PublicURL(bucket, key), nil
}

func (c *Client) Delete(ctx context.Context, bucket, key string) error {
	_, err := c.s3Client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}
	return nil
}

func (c *Client) PublicURL(bucket, key string) string {
	return publicURL(
		aws.StringValue(c.s3Client.Config.Endpoint),
		aws.StringValue(c.s3Client.Config.Region),
		aws.BoolValue(c.s3Client.Config.DisableSSL),
		bucket,
		key,
	)
}

func publicURL(endpoint, region string, disableSSL bool, bucket, key string) string {
	if endpoint != "" && !strings.Contains(endpoint, "amazonaws.com") {
		// MinIO URL format
		protocol := "https"
		if disableSSL {
			protocol = "http"
		}
		endpoint = strings.TrimPrefix(endpoint, "http://")
		endpoint = strings.TrimPrefix(endpoint, "https://")
		return fmt.Sprintf("%s://%s/%s/%s", protocol, endpoint, bucket, key)
	}

	if region == "" {
		region = "us-east-1"
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key)
}

// KeyFromURL recovers the object key from a URL produced by PublicURL.
func KeyFromURL(bucket, url string) (string, bool) {
	for _, marker := range []string{"/" + bucket + "/", bucket + ".s3."} {
		idx := strings.Index(url, marker)
		if idx < 0 {
			continue
		}
		rest := url[idx+len(marker):]
		if marker != "/"+bucket+"/" {
			slash := strings.Index(rest, "/")
			if slash < 0 {
				return "", false
			}
			rest = rest[slash+1:]
		}
		if rest == "" {
			return "", false
		}
		return rest, true
	}
	return "", false
}
