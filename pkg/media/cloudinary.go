package media

import (
	"context"
	"errors"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/example/cravecurve/pkg/config"
)

// CloudinaryUploader uploads with auto-detected resource type and secure URLs.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

var _ Uploader = (*CloudinaryUploader)(nil)

func NewCloudinaryUploader(cfg *config.CloudinaryConfig) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, err
	}
	cld.Config.URL.Secure = true
	return &CloudinaryUploader{cld: cld}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, localPath string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, localPath, uploader.UploadParams{
		ResourceType: "auto",
	})
	if err != nil {
		return "", err
	}
	// Cloudinary reports some failures in the response body, not as an error.
	if resp.Error.Message != "" {
		return "", errors.New(resp.Error.Message)
	}
	return resp.SecureURL, nil
}
