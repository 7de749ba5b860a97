package service

import (
	"context"
	"io"
)

// FileStorage abstracts where uploaded assets (profile images, product
// photos) end up. Save returns the public URL path for the stored object.
type FileStorage interface {
	Save(ctx context.Context, directory, filename string, content io.Reader) (string, error)
	Delete(ctx context.Context, url string) error
}
