package artstore

import (
	"bytes"
	"io"
	"mime/multipart"
)

// Upload is a named byte stream handed to the store. Name is taken as the
// original client filename; only its base name is ever used on disk.
type Upload struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// FromMultipart adapts parsed multipart file headers into Uploads.
func FromMultipart(headers []*multipart.FileHeader) []Upload {
	uploads := make([]Upload, 0, len(headers))
	for _, fh := range headers {
		fh := fh
		uploads = append(uploads, Upload{
			Name: fh.Filename,
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		})
	}
	return uploads
}

// FromBytes builds an Upload from an in-memory payload.
func FromBytes(name string, data []byte) Upload {
	return Upload{
		Name: name,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}
