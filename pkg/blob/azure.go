package blob

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	azblobpkg "github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/sas"
	"go.uber.org/zap"

	"github.com/zainaaazz/FullStackWebApplication/config"
)

// AzureStore Azure Blob Storage backend; read URLs carry a SAS token
type AzureStore struct {
	client    *azblob.Client
	cred      *azblob.SharedKeyCredential
	container string
	logger    *zap.Logger
}

// NewAzureStore connects with the connection string and makes sure the container exists
func NewAzureStore(ctx context.Context, cfg *config.StorageConfig, logger *zap.Logger) (*AzureStore, error) {
	client, err := azblob.NewClientFromConnectionString(cfg.Azure.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("creating azure blob client: %w", err)
	}

	cred, err := azblob.NewSharedKeyCredential(cfg.Azure.AccountName, cfg.Azure.AccountKey)
	if err != nil {
		return nil, fmt.Errorf("creating azure shared key credential: %w", err)
	}

	if _, err := client.CreateContainer(ctx, cfg.Container, nil); err != nil &&
		!bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil, fmt.Errorf("creating container %s: %w", cfg.Container, err)
	}

	logger.Info("azure blob storage ready",
		zap.String("account", cfg.Azure.AccountName),
		zap.String("container", cfg.Container),
	)

	return &AzureStore{client: client, cred: cred, container: cfg.Container, logger: logger}, nil
}

func (s *AzureStore) Upload(ctx context.Context, name string, r io.Reader, _ int64, contentType string) error {
	_, err := s.client.UploadStream(ctx, s.container, name, r, &azblob.UploadStreamOptions{
		HTTPHeaders: &azblobpkg.HTTPHeaders{BlobContentType: to.Ptr(contentType)},
	})
	if err != nil {
		return fmt.Errorf("uploading %s: %w", name, err)
	}
	return nil
}

func (s *AzureStore) Delete(ctx context.Context, name string) error {
	if _, err := s.client.DeleteBlob(ctx, s.container, name, nil); err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting %s: %w", name, err)
	}
	return nil
}

func (s *AzureStore) URL(name string) string {
	return s.client.ServiceClient().NewContainerClient(s.container).NewBlobClient(name).URL()
}

func (s *AzureStore) SignedURL(_ context.Context, name string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	perms := sas.BlobPermissions{Read: true}

	qp, err := sas.BlobSignatureValues{
		Protocol:      sas.ProtocolHTTPS,
		StartTime:     now.Add(-5 * time.Minute),
		ExpiryTime:    now.Add(ttl),
		Permissions:   perms.String(),
		ContainerName: s.container,
		BlobName:      name,
	}.SignWithSharedKey(s.cred)
	if err != nil {
		return "", fmt.Errorf("signing %s: %w", name, err)
	}

	return s.URL(name) + "?" + qp.Encode(), nil
}

func (s *AzureStore) Open(ctx context.Context, name string) (*Object, error) {
	resp, err := s.client.DownloadStream(ctx, s.container, name, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("downloading %s: %w", name, err)
	}

	obj := &Object{Body: resp.Body, Size: -1, ContentType: "video/mp4"}
	if resp.ContentLength != nil {
		obj.Size = *resp.ContentLength
	}
	if resp.ContentType != nil && *resp.ContentType != "" {
		obj.ContentType = *resp.ContentType
	}
	return obj, nil
}
