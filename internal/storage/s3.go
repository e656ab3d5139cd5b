package storage

import (
	"context"
	"errors"
	"io"
	"strings"

	"image-board/internal/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

type S3Provider struct {
	api       s3iface.S3API
	bucket    string
	publicURL string
}

func NewS3Provider(cfg config.S3Config) (*S3Provider, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("storage.s3.bucket is required")
	}
	s3Config := &aws.Config{
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(cfg.PathStyle),
	}
	if cfg.AccessKey != "" {
		s3Config.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		s3Config.Endpoint = aws.String(cfg.Endpoint)
	}
	sess, err := session.NewSession(s3Config)
	if err != nil {
		return nil, err
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = "https://" + cfg.Bucket + ".s3." + cfg.Region + ".amazonaws.com"
	}
	return newS3ProviderWithAPI(s3.New(sess), cfg.Bucket, publicURL), nil
}

func newS3ProviderWithAPI(api s3iface.S3API, bucket, publicURL string) *S3Provider {
	return &S3Provider{
		api:       api,
		bucket:    bucket,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}
}

func (s *S3Provider) Put(ctx context.Context, key string, body io.ReadSeeker, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
		ACL:    aws.String(s3.ObjectCannedACLPublicRead),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	_, err := s.api.PutObjectWithContext(ctx, input)
	return err
}

func (s *S3Provider) Get(ctx context.Context, key string) (*FileObject, error) {
	out, err := s.api.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	return &FileObject{
		Body:          out.Body,
		ContentType:   aws.StringValue(out.ContentType),
		ContentLength: aws.Int64Value(out.ContentLength),
		LastModified:  aws.TimeValue(out.LastModified),
	}, nil
}

func (s *S3Provider) Delete(ctx context.Context, key string) error {
	_, err := s.api.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

func (s *S3Provider) List(ctx context.Context) ([]string, error) {
	var keys []string
	input := &s3.ListObjectsV2Input{Bucket: aws.String(s.bucket)}
	err := s.api.ListObjectsV2PagesWithContext(ctx, input, func(page *s3.ListObjectsV2Output, lastPage bool) bool {
		for _, item := range page.Contents {
			keys = append(keys, aws.StringValue(item.Key))
		}
		return true
	})
	return keys, err
}

func (s *S3Provider) URL(key string) string {
	return s.publicURL + "/" + key
}
