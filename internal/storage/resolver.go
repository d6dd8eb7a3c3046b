package storage

import (
	"path"
	"strings"

	"github.com/code-hero23/peopledesk-sub002/internal/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"go.uber.org/zap"
)

// Resolver mengubah path foto yang tersimpan (mis. /uploads/x.jpg) menjadi URL yang bisa dibuka.
type Resolver interface {
	URL(stored string) string
}

type resolver struct {
	baseURL string
	folder  string
	cld     *cloudinary.Cloudinary
	logger  *zap.Logger
}

// NewResolver memakai Cloudinary jika kredensialnya lengkap, selain itu PublicBaseURL.
func NewResolver(cfg config.StorageConfig, logger ...*zap.Logger) (Resolver, error) {
	l := zap.L().Named("storage.resolver")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("storage.resolver")
	}

	r := &resolver{
		baseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		folder:  strings.Trim(cfg.CloudinaryFolder, "/"),
		logger:  l,
	}
	if !cfg.CloudinaryEnabled() {
		return r, nil
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudinaryName, cfg.CloudinaryKey, cfg.CloudinarySecret)
	if err != nil {
		return nil, err
	}
	cld.Config.URL.Secure = true
	r.cld = cld
	return r, nil
}

func (r *resolver) URL(stored string) string {
	stored = strings.TrimSpace(stored)
	if stored == "" {
		return ""
	}
	if strings.HasPrefix(stored, "http://") || strings.HasPrefix(stored, "https://") {
		return stored
	}

	if r.cld != nil {
		publicID := path.Base(stored)
		if r.folder != "" {
			publicID = r.folder + "/" + publicID
		}
		u, err := r.cloudinaryURL(publicID)
		if err == nil {
			return u
		}
		r.logger.Warn("cloudinary url build failed, fallback to public base url",
			zap.String("path", stored),
			zap.Error(err),
		)
	}

	if r.baseURL == "" {
		return stored
	}
	return r.baseURL + "/" + strings.TrimLeft(stored, "/")
}

func (r *resolver) cloudinaryURL(publicID string) (string, error) {
	img, err := r.cld.Image(publicID)
	if err != nil {
		return "", err
	}
	return img.String()
}
