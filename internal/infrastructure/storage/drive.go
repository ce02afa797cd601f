package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"time"

	libraryapp "github.com/bookshelf/backend/internal/application/library"
	"github.com/bookshelf/backend/internal/domain/shared"
	infraconfig "github.com/bookshelf/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

const (
	defaultUploadURL = "https://www.googleapis.com/upload/drive/v3/files?uploadType=multipart"
	defaultFilesURL  = "https://www.googleapis.com/drive/v3/files"
)

var _ libraryapp.ObjectStorage = (*DriveStorage)(nil)

// DriveStorage stores book assets in a remote drive through its REST API.
// Every request fetches a fresh token snapshot from the credential provider.
type DriveStorage struct {
	creds     CredentialProvider
	client    *http.Client
	uploadURL string
	filesURL  string
	folderID  string
	logger    *zap.Logger
}

// DriveOption is a functional option for configuring DriveStorage
type DriveOption func(*DriveStorage)

// WithDriveLogger sets a custom logger for DriveStorage
func WithDriveLogger(logger *zap.Logger) DriveOption {
	return func(d *DriveStorage) {
		d.logger = logger
	}
}

// WithDriveHTTPClient sets a custom HTTP client for DriveStorage
func WithDriveHTTPClient(client *http.Client) DriveOption {
	return func(d *DriveStorage) {
		d.client = client
	}
}

// NewDriveStorage creates a DriveStorage backed by the given credentials
func NewDriveStorage(cfg *infraconfig.DriveConfig, creds CredentialProvider, opts ...DriveOption) *DriveStorage {
	uploadURL := cfg.UploadURL
	if uploadURL == "" {
		uploadURL = defaultUploadURL
	}

	storage := &DriveStorage{
		creds:     creds,
		client:    &http.Client{Timeout: 2 * time.Minute},
		uploadURL: uploadURL,
		filesURL:  defaultFilesURL,
		folderID:  cfg.FolderID,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(storage)
	}
	return storage
}

type driveFile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type driveFileList struct {
	Files []driveFile `json:"files"`
}

// Upload sends data as a multipart upload, makes the file readable by link
// and returns its public URL
func (d *DriveStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}

	token, err := d.creds.Token(ctx)
	if err != nil {
		return "", err
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	metadata := map[string]any{"name": key}
	if d.folderID != "" {
		metadata["parents"] = []string{d.folderID}
	}
	metaPart, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"application/json; charset=UTF-8"},
	})
	if err != nil {
		return "", err
	}
	if err := json.NewEncoder(metaPart).Encode(metadata); err != nil {
		return "", err
	}

	mediaPart, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Type": {contentType},
	})
	if err != nil {
		return "", err
	}
	if _, err := mediaPart.Write(data); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.uploadURL, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Content-Type", "multipart/related; boundary="+writer.Boundary())

	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("drive upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", d.apiError("upload", resp)
	}

	var file driveFile
	if err := json.NewDecoder(resp.Body).Decode(&file); err != nil {
		return "", fmt.Errorf("failed to decode drive response: %w", err)
	}

	if err := d.makePublic(ctx, token.AccessToken, file.ID); err != nil {
		d.logger.Warn("Failed to set drive file permission",
			zap.String("file_id", file.ID),
			zap.Error(err))
	}

	return "https://drive.google.com/uc?id=" + file.ID, nil
}

// DeleteObject removes every drive file stored under the given key
func (d *DriveStorage) DeleteObject(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("storage key is required")
	}

	token, err := d.creds.Token(ctx)
	if err != nil {
		return err
	}

	listURL := fmt.Sprintf("%s?q=%s", d.filesURL,
		url.QueryEscape(fmt.Sprintf("name = '%s' and trashed = false", key)))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("drive list failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return d.apiError("list", resp)
	}

	var list driveFileList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return fmt.Errorf("failed to decode drive response: %w", err)
	}

	for _, file := range list.Files {
		if err := d.deleteFile(ctx, token.AccessToken, file.ID); err != nil {
			return err
		}
	}
	return nil
}

func (d *DriveStorage) makePublic(ctx context.Context, accessToken, fileID string) error {
	payload, _ := json.Marshal(map[string]string{
		"role": "reader",
		"type": "anyone",
	})

	permURL := fmt.Sprintf("%s/%s/permissions", d.filesURL, fileID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, permURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return d.apiError("permission", resp)
	}
	return nil
}

func (d *DriveStorage) deleteFile(ctx context.Context, accessToken, fileID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, d.filesURL+"/"+fileID, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("drive delete failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return d.apiError("delete", resp)
	}
	return nil
}

func (d *DriveStorage) apiError(op string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	d.logger.Warn("Drive API request failed",
		zap.String("op", op),
		zap.Int("status", resp.StatusCode),
		zap.ByteString("body", body))
	return fmt.Errorf("drive %s returned status %d: %w", op, resp.StatusCode, shared.ErrUpstream)
}
