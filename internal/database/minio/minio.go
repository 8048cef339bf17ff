package minio

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"piercing-service/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioClient stores the signature and ID images captured by release forms.
type MinioClient struct {
	client *minio.Client
	config config.MinioConfig
}

var Storage = struct {
	Signatures string
	IDPhotos   string
}{
	Signatures: "release-signatures",
	IDPhotos:   "release-id-photos",
}

var BucketNames = []string{
	Storage.Signatures,
	Storage.IDPhotos,
}

func NewMinioClient(cfg config.MinioConfig) (*MinioClient, error) {
	endpoint := strings.TrimPrefix(cfg.MinioURL, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	isSecure, err := strconv.ParseBool(cfg.MinioSecure)
	if err != nil {
		log.Printf("Invalid value for MinIO secure flag: %v. Defaulting to false.", err)
		isSecure = false
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: isSecure,
		Region: cfg.MinioLocation,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MinIO client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err = minioClient.ListBuckets(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO server: %w", err)
	}

	log.Printf("Successfully connected to MinIO at %s", cfg.MinioURL)

	mc := &MinioClient{
		client: minioClient,
		config: cfg,
	}

	if err := mc.ensureRequiredBuckets(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure required buckets: %w", err)
	}

	return mc, nil
}

// ensureRequiredBuckets creates all required buckets if they don't exist.
// Release documents hold personal data, so no public policy is applied.
func (mc *MinioClient) ensureRequiredBuckets(ctx context.Context) error {
	for _, bucketName := range BucketNames {
		exists, err := mc.client.BucketExists(ctx, bucketName)
		if err != nil {
			return fmt.Errorf("error checking bucket existence: %w", err)
		}
		if exists {
			continue
		}
		err = mc.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{
			Region: mc.config.MinioLocation,
		})
		if err != nil {
			return fmt.Errorf("error creating bucket %s: %w", bucketName, err)
		}
		log.Printf("Created bucket: %s", bucketName)
	}
	return nil
}

func (mc *MinioClient) UploadBytes(ctx context.Context, bucketName, objectName string, data []byte, contentType string) error {
	reader := bytes.NewReader(data)
	_, err := mc.client.PutObject(ctx, bucketName, objectName, reader, int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("failed to upload bytes to %s in bucket %s: %w", objectName, bucketName, err)
	}

	log.Printf("Successfully uploaded %d bytes to: %s in bucket: %s", len(data), objectName, bucketName)
	return nil
}

func (mc *MinioClient) RemoveObject(ctx context.Context, bucketName, objectName string) error {
	err := mc.client.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove %s from bucket %s: %w", objectName, bucketName, err)
	}
	log.Printf("Removed object: %s from bucket: %s", objectName, bucketName)
	return nil
}

// Ping reports whether the server answers a bucket lookup.
func (mc *MinioClient) Ping(ctx context.Context) error {
	if _, err := mc.client.BucketExists(ctx, Storage.Signatures); err != nil {
		return fmt.Errorf("minio unreachable: %w", err)
	}
	return nil
}

// ObjectURL is the stable reference persisted with the client record.
func (mc *MinioClient) ObjectURL(bucketName, objectName string) string {
	return ObjectURL(mc.config.MinioResourceURL, bucketName, objectName)
}

func ObjectURL(resourceURL, bucketName, objectName string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(resourceURL, "/"), bucketName, objectName)
}

func (mc *MinioClient) Close() error {
	log.Println("MinIO client connection closed")
	return nil
}
