package services

import (
	"Stowed/internal/config"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ImageService owns the upload directory: storing incoming photos under
// collision-free names, resolving names for serving, and best-effort removal.
type ImageService interface {
	Store(fileHeader *multipart.FileHeader) (string, error)
	Remove(path string)
	Resolve(name string) (string, error)
	UploadPath() string
}

type ImageServiceImpl struct {
	configuration config.Configuration
	logService    LogService
}

func NewImageService(configuration *config.Configuration, logService LogService) ImageService {
	return &ImageServiceImpl{
		configuration: *configuration,
		logService:    logService,
	}
}

// Store writes the uploaded file as <unix-ms>-<originalName> inside the
// upload directory, creating the directory on first use. The returned path
// is what gets persisted on the row and served back under /uploads.
func (s *ImageServiceImpl) Store(fileHeader *multipart.FileHeader) (string, error) {
	uploadDir := s.configuration.Storage.UploadPath
	if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(fileHeader.Filename))
	destination := filepath.Join(uploadDir, name)

	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(destination)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return destination, nil
}

// Remove deletes a stored image. A missing file is success; any other
// failure is logged and swallowed so row cleanup never hangs on disk state.
func (s *ImageServiceImpl) Remove(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logService.Log.WithField("path", path).Warnf("could not remove image: %v", err)
	}
}

// Resolve maps a bare file name from the URL to its on-disk path.
func (s *ImageServiceImpl) Resolve(name string) (string, error) {
	if name == "" || strings.Contains(name, "..") || strings.ContainsAny(name, "/\\") {
		return "", fmt.Errorf("invalid image name")
	}
	return filepath.Join(s.configuration.Storage.UploadPath, name), nil
}

func (s *ImageServiceImpl) UploadPath() string {
	return s.configuration.Storage.UploadPath
}
