package utils

import (
	"encoding/base64"
	"io"
	"mime/multipart"
	"net/http"
)

// MaxPhotoSize bounds uploaded profile photos, which are stored inline.
const MaxPhotoSize = 5 << 20

// DataURI inlines data as a base64 data URI.
func DataURI(mime string, data []byte) string {
	if mime == "" {
		mime = http.DetectContentType(data)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// ReadUploadedFile reads an uploaded file into memory, returning its content
// type and bytes.
func ReadUploadedFile(file *multipart.FileHeader) (string, []byte, error) {
	src, err := file.Open()
	if err != nil {
		return "", nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, MaxPhotoSize+1))
	if err != nil {
		return "", nil, err
	}
	if len(data) > MaxPhotoSize {
		return "", nil, ErrFileTooLarge
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	return contentType, data, nil
}
