package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-sync-api/internal/config"
)

// S3Storage implementa Uploader sobre um bucket S3 (ou compatível, via
// endpoint customizado)
type S3Storage struct {
	client    *s3.Client
	region    string
	cdnDomain string
}

func NewS3Storage(cfg config.Storage) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração AWS: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{
		client:    client,
		region:    cfg.Region,
		cdnDomain: cfg.CDNDomain,
	}, nil
}

// Upload envia o objeto e retorna a URL pública
func (s *S3Storage) Upload(ctx context.Context, bucket, filename string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(filename),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"bucket":   bucket,
			"filename": filename,
			"error":    err.Error(),
		}).Error("Erro ao enviar objeto para o S3")
		return "", fmt.Errorf("erro ao enviar objeto para o S3: %w", err)
	}

	return s.PublicURL(bucket, filename), nil
}

// PublicURL monta a URL pública de um objeto, preferindo o CDN quando
// configurado
func (s *S3Storage) PublicURL(bucket, filename string) string {
	if s.cdnDomain != "" {
		return fmt.Sprintf("https://%s/%s", s.cdnDomain, filename)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, s.region, filename)
}
