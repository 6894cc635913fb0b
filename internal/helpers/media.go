package helpers

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const PostFolder = "posts"

// UploadImage pushes a post image to Cloudinary and returns its secure
// URL. The source may be a local path, a remote URL or a base64 data URI.
func UploadImage(ctx context.Context, cld *cloudinary.Cloudinary, source, folder string) (string, error) {
	uploadResult, err := cld.Upload.Upload(ctx, source, uploader.UploadParams{
		Folder: folder,
		Tags:   []string{"sociogram"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %v", err)
	}
	return uploadResult.SecureURL, nil
}
