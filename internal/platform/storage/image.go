package storage

import (
	"net/http"

	"youthcup_backend/internal/shared/apperror"
)

// MaxImageSize is the largest accepted image, in bytes.
const MaxImageSize = 5 << 20

var (
	// ErrUnsupportedImage is returned for content that is not jpeg, png, gif or webp.
	ErrUnsupportedImage = apperror.Validation("only jpeg, png, gif and webp images are allowed")

	// ErrImageTooLarge is returned for images over MaxImageSize.
	ErrImageTooLarge = apperror.Validation("image must be at most 5MB")
)

// imageExts maps sniffed content types to the extension files are stored with.
var imageExts = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// imageExt sniffs data and returns the extension for an allowed image type.
func imageExt(data []byte) (string, error) {
	ext, ok := imageExts[http.DetectContentType(data)]
	if !ok {
		return "", ErrUnsupportedImage
	}
	return ext, nil
}
