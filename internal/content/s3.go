package content

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/journalquiz/internal/models"
)

// S3Config locates a quiz file in an S3-compatible bucket (AWS, MinIO).
type S3Config struct {
	Bucket       string
	Key          string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
}

type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// seams for tests
var (
	loadDefaultAWSConfig  = config.LoadDefaultConfig
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) objectGetter {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// S3Object downloads a quiz file and decodes it by the key's extension.
type S3Object struct {
	cfg    S3Config
	client objectGetter
}

func NewS3Object(cfg S3Config) *S3Object {
	return &S3Object{cfg: cfg}
}

func (s *S3Object) getClient(ctx context.Context) (objectGetter, error) {
	if s.client != nil {
		return s.client, nil
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(s.cfg.Region),
	}
	if s.cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s.cfg.AccessKey, s.cfg.SecretKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	s.client = newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if s.cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	})
	return s.client, nil
}

func (s *S3Object) Load(ctx context.Context) ([]models.QuizItem, error) {
	format, err := FormatOf(s.cfg.Key)
	if err != nil {
		return nil, err
	}

	client, err := s.getClient(ctx)
	if err != nil {
		return nil, err
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(s.cfg.Key),
	})
	if err != nil {
		return nil, fmt.Errorf("get s3://%s/%s: %w", s.cfg.Bucket, s.cfg.Key, err)
	}
	defer out.Body.Close()

	return Decode(format, out.Body)
}
