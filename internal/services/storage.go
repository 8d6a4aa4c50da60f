package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// StorageService stages uploads on disk for the lifetime of their session.
// Files live in a per-session directory and are removed when the session
// expires; nothing is kept beyond that.
type StorageService interface {
	SaveFile(sessionID uuid.UUID, file *multipart.FileHeader, fileType string) (string, error)
	RemoveSessionFiles(sessionID uuid.UUID) error
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

func (s *storageService) SaveFile(sessionID uuid.UUID, file *multipart.FileHeader, fileType string) (string, error) {
	// Validate file extension
	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".pdf", ".docx", ".txt":
	default:
		return "", fmt.Errorf("invalid file extension: %s", ext)
	}

	sessionDir := filepath.Join(s.uploadPath, sessionID.String())
	if err := os.MkdirAll(sessionDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create session directory: %w", err)
	}

	// Generate the unique filename
	uniqueFilename := fmt.Sprintf("%s_%s%s", fileType, uuid.New().String(), ext)
	filePath := filepath.Join(sessionDir, uniqueFilename)

	// Open source file
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Create destination file
	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	// Copy file
	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return filePath, nil
}

func (s *storageService) RemoveSessionFiles(sessionID uuid.UUID) error {
	sessionDir := filepath.Join(s.uploadPath, sessionID.String())
	if err := os.RemoveAll(sessionDir); err != nil {
		return fmt.Errorf("failed to remove session files: %w", err)
	}
	return nil
}
