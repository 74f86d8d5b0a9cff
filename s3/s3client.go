package s3client

import (
	"context"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"hr-office-backend/config"
)

type Provider interface {
	MakeBucket(ctx context.Context) error
	PresignedPut(ctx context.Context, objectName string, expires time.Duration) (*url.URL, error)
}

var Client Provider

type s3client struct {
	minioClient *minio.Client
}

func (s s3client) MakeBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.BucketName
	location := "us-east-1"
	exists, err := s.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = s.minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
	if err != nil {
		return err
	}
	return nil
}

// PresignedPut выдаёт временную ссылку на запись объекта,
// файл принимает blob-хранилище напрямую.
func (s s3client) PresignedPut(ctx context.Context, objectName string, expires time.Duration) (*url.URL, error) {
	return s.minioClient.PresignedPutObject(ctx, config.Conf.S3.BucketName, objectName, expires)
}

func NewClient() (Provider, error) {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	return &s3client{minioClient: minioClient}, nil
}
