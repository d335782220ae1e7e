package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkpress/backend/internal/upload"
)

var (
	errFileTooLarge = errors.New("file exceeds the 5MB limit")
	errFileType     = errors.New("only images of jpg, jpeg, png and webp format are allowed")
)

// stageFile persists the optional multipart "file" field into the temp
// directory. An empty path means no file was sent.
func stageFile(c *gin.Context, tempDir string) (path, contentType string, err error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		// ErrMissingFile and non-multipart bodies both mean no file sent.
		return "", "", nil
	}

	if fileHeader.Size > upload.MaxFileSize {
		return "", "", errFileTooLarge
	}

	contentType = fileHeader.Header.Get("Content-Type")
	if !upload.Accepted(contentType) {
		return "", "", errFileType
	}

	path = upload.DestinationPath(tempDir, fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, path); err != nil {
		return "", "", err
	}
	return path, contentType, nil
}

// writeStageError renders staging failures; anything not recognized is
// an I/O problem saving the upload.
func writeStageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errFileTooLarge):
		fail(c, http.StatusBadRequest, "File must not exceed 5MB")
	case errors.Is(err, errFileType):
		fail(c, http.StatusBadRequest, "Only images of jpg, jpeg, png and webp format are allowed")
	default:
		fail(c, http.StatusInternalServerError, "Failed to store the uploaded file")
	}
}
