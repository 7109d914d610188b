package utils

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/Sanuxal/SOCRATES.AI/internal/models"
)

// LoadAttachment reads a file from disk and packages it for the model API.
// The MIME type comes from the extension when known, otherwise from content
// sniffing. File bytes are carried base64-encoded.
func LoadAttachment(path string) (models.Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Attachment{}, fmt.Errorf("read attachment: %w", err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	return models.Attachment{
		Name:     filepath.Base(path),
		MIMEType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(data),
	}, nil
}
