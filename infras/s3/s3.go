package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"hostel/config"
	"hostel/infras/otel"
	"hostel/shared/constant"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"
)

// Object is a file to store. Size must match the bytes Body yields.
type Object struct {
	Directory   string
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// S3 stores room photos in an S3 compatible bucket and returns their public URLs.
type S3 interface {
	Upload(ctx context.Context, object Object) (url string, err error)
	Delete(ctx context.Context, objectKey string) error
	ObjectKeyFromURL(url string) (objectKey string)
}

type s3Impl struct {
	client       *s3.Client
	bucket       string
	publicDomain string
	apiEndpoint  string
	otel         otel.Otel
}

func (svc *s3Impl) Upload(ctx context.Context, object Object) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	objectKey := path.Join(object.Directory, object.FileName)

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: objectKey,
		otelAttrBucket:    svc.bucket,
	})

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(svc.bucket),
		Key:           aws.String(objectKey),
		Body:          object.Body,
		ContentType:   aws.String(object.ContentType),
		ContentLength: aws.Int64(object.Size),
	})
	if err != nil {
		log.Error().Err(err).Str("key", objectKey).Msg("failed to upload file to S3")

		return constant.Empty, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return strings.TrimSuffix(svc.publicDomain, "/") + "/" + objectKey, nil
}

func (svc *s3Impl) Delete(ctx context.Context, objectKey string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: objectKey,
		otelAttrBucket:    svc.bucket,
	})

	_, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(svc.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		log.Error().Err(err).Str("key", objectKey).Msg("failed to delete file from S3")

		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

// ObjectKeyFromURL reverses Upload. URLs that point elsewhere yield an empty key.
func (svc *s3Impl) ObjectKeyFromURL(url string) string {
	return objectKeyFromURL(url, svc.publicDomain, svc.apiEndpoint, svc.bucket)
}

func objectKeyFromURL(url, publicDomain, apiEndpoint, bucket string) string {
	prefixes := []string{}

	if publicDomain != "" {
		prefixes = append(prefixes, strings.TrimSuffix(publicDomain, "/")+"/")
	}

	if apiEndpoint != "" {
		prefixes = append(prefixes, strings.TrimSuffix(apiEndpoint, "/")+"/"+bucket+"/")
	}

	for _, prefix := range prefixes {
		if key, ok := strings.CutPrefix(url, prefix); ok && key != "" {
			return key
		}
	}

	return constant.Empty
}

func New(config *config.Config, otel otel.Otel) S3 {
	staticProvider := credentials.NewStaticCredentialsProvider(
		config.External.S3.AccessKeyID,
		config.External.S3.SecretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(staticProvider),
	)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if config.External.S3.APIEndpoint != "" {
			o.BaseEndpoint = aws.String(config.External.S3.APIEndpoint)
		}

		o.UsePathStyle = true
		o.Region = "auto"
	})

	return &s3Impl{
		client:       s3Client,
		bucket:       config.External.S3.BucketName,
		publicDomain: config.External.S3.PublicDomain,
		apiEndpoint:  config.External.S3.APIEndpoint,
		otel:         otel,
	}
}
