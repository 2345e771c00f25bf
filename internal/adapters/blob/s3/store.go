// Package s3 guarda las fotos en un bucket S3 (AWS o MinIO).
package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Store implementa blob.Store sobre un backend compatible con S3.
// Un solo bucket; la key del blob es la key del objeto tal cual.
type Store struct {
	client    *s3.Client
	bucket    string
	publicURL string // base para construir URLs públicas
}

type Config struct {
	Region          string
	Bucket          string
	Endpoint        string // opcional; para MinIO u otro endpoint custom
	AccessKeyID     string // opcional (si no, la cadena default de credenciales)
	SecretAccessKey string
	PathStyle       bool
	PublicURL       string // opcional; default https://<bucket>.s3.<region>.amazonaws.com
}

func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	publicURL := strings.TrimRight(cfg.PublicURL, "/")
	if publicURL == "" {
		if cfg.Endpoint != "" {
			publicURL = strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
		} else {
			publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, region)
		}
	}

	return &Store{client: client, bucket: cfg.Bucket, publicURL: publicURL}, nil
}

// OpenFromEnv arma el store desde variables de entorno:
//
//	BLOB_S3_BUCKET (requerido)
//	BLOB_S3_REGION (default us-east-1)
//	BLOB_S3_ENDPOINT (opcional, MinIO)
//	BLOB_S3_PATH_STYLE=true|false
//	BLOB_S3_PUBLIC_URL (opcional)
//	AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (opcional)
func OpenFromEnv(ctx context.Context) (*Store, error) {
	bucket := os.Getenv("BLOB_S3_BUCKET")
	if bucket == "" {
		return nil, fmt.Errorf("BLOB_S3_BUCKET required for s3 driver")
	}
	cfg := Config{
		Bucket:          bucket,
		Region:          os.Getenv("BLOB_S3_REGION"),
		Endpoint:        os.Getenv("BLOB_S3_ENDPOINT"),
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		PathStyle:       strings.EqualFold(os.Getenv("BLOB_S3_PATH_STYLE"), "true"),
		PublicURL:       os.Getenv("BLOB_S3_PUBLIC_URL"),
	}
	return New(ctx, cfg)
}

func (s *Store) Put(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	input := &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		input.ContentType = &contentType
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", err
	}
	return s.urlFor(key), nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	return err
}

func (s *Store) urlFor(key string) string {
	// escapamos cada segmento, no los slashes
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return s.publicURL + "/" + strings.Join(parts, "/")
}
