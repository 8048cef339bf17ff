package minio

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
)

const textContentType = "text/plain; charset=utf-8"

// StoreDocument uploads a document captured by the release form and returns
// the object URL to persist. "data:<mime>;base64,<payload>" URLs are decoded;
// any other value (typed signatures, placeholders) is stored as plain text.
func (mc *MinioClient) StoreDocument(ctx context.Context, bucketName, objectName, document string) (string, error) {
	data, contentType, err := DecodeDocument(document)
	if err != nil {
		return "", err
	}
	if err := mc.UploadBytes(ctx, bucketName, objectName, data, contentType); err != nil {
		return "", err
	}
	return mc.ObjectURL(bucketName, objectName), nil
}

// RemoveDocument deletes a stored document. Removing a missing object is not
// an error.
func (mc *MinioClient) RemoveDocument(ctx context.Context, bucketName, objectName string) error {
	return mc.RemoveObject(ctx, bucketName, objectName)
}

func DecodeDocument(document string) ([]byte, string, error) {
	document = strings.TrimSpace(document)
	if document == "" {
		return nil, "", fmt.Errorf("empty document payload")
	}
	if !strings.HasPrefix(document, "data:") {
		return []byte(document), textContentType, nil
	}

	header, body, found := strings.Cut(document, ",")
	if !found {
		return nil, "", fmt.Errorf("malformed data url: missing payload")
	}
	meta := strings.TrimPrefix(header, "data:")
	if !strings.HasSuffix(meta, ";base64") {
		return nil, "", fmt.Errorf("malformed data url: only base64 payloads are supported")
	}
	contentType := strings.TrimSuffix(meta, ";base64")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	data, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, "", fmt.Errorf("malformed base64 payload: %w", err)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("empty document payload")
	}
	return data, contentType, nil
}
