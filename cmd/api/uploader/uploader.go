package uploader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	cldupload "github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"promptvault/cmd/internal/logger"
	"promptvault/errs"
)

// Allow-lists per declared media type. Both the filename extension and
// the declared MIME type must pass; matching on either alone is not
// sufficient.
var (
	imageExts = map[string]bool{".jpeg": true, ".jpg": true, ".png": true, ".gif": true, ".webp": true}
	videoExts = map[string]bool{".mp4": true, ".mov": true}

	imageMIMEs = map[string]bool{
		"image/jpeg": true, "image/jpg": true, "image/png": true,
		"image/gif": true, "image/webp": true,
	}
	videoMIMEs = map[string]bool{"video/mp4": true, "video/quicktime": true}
)

// Uploader stages one file locally, forwards it to the asset host with
// automatic format/quality transformation, and returns the public URL.
type Uploader struct {
	cld        *cloudinary.Cloudinary
	stagingDir string
	maxBytes   int64
}

// New builds an Uploader from the Cloudinary URL credential. maxSizeMB
// caps the accepted file size.
func New(cloudinaryURL, stagingDir string, maxSizeMB int64) (*Uploader, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	if err := os.MkdirAll(stagingDir, 0o755); err != nil {
		return nil, fmt.Errorf("create staging dir: %w", err)
	}
	return &Uploader{
		cld:        cld,
		stagingDir: stagingDir,
		maxBytes:   maxSizeMB << 20,
	}, nil
}

// ErrFileRequired is returned when a handler that needs an attachment
// receives none. Callers surface it before any field validation.
var ErrFileRequired = errors.New("file required")

// FileFromForm pulls the single expected attachment out of a multipart
// request. More than one file anywhere in the form is rejected.
func FileFromForm(c *gin.Context, field string) (*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, errs.NewUploadRejectedError("invalid multipart form")
	}

	total := 0
	for _, headers := range form.File {
		total += len(headers)
	}
	if total > 1 {
		return nil, errs.NewUploadRejectedError("at most one file per request")
	}

	headers := form.File[field]
	if len(headers) == 0 {
		return nil, ErrFileRequired
	}
	return headers[0], nil
}

// Validate checks the attachment against the size cap and the MIME +
// extension allow-lists for the declared media type. Pure; no I/O.
func (u *Uploader) Validate(fh *multipart.FileHeader, mediaType string) error {
	if fh.Size > u.maxBytes {
		return errs.NewUploadRejectedError(fmt.Sprintf("file exceeds %d MB limit", u.maxBytes>>20))
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	mime := strings.ToLower(fh.Header.Get("Content-Type"))

	var extOK, mimeOK bool
	switch mediaType {
	case "image":
		extOK, mimeOK = imageExts[ext], imageMIMEs[mime]
	case "video":
		extOK, mimeOK = videoExts[ext], videoMIMEs[mime]
	default:
		return errs.NewBadRequestError("mediaType must be image or video")
	}
	if !extOK || !mimeOK {
		return errs.NewUploadRejectedError(fmt.Sprintf("unsupported %s file %q (%s)", mediaType, fh.Filename, mime))
	}
	return nil
}

// Upload validates the attachment, stages it locally, forwards it to
// the asset host, and returns the host-assigned public URL. The staged
// copy is removed only on success; a failed forward leaves it in place
// for manual inspection or retry, and logs where it is.
func (u *Uploader) Upload(ctx context.Context, fh *multipart.FileHeader, mediaType string) (string, error) {
	if err := u.Validate(fh, mediaType); err != nil {
		return "", err
	}

	staged, err := u.stage(fh)
	if err != nil {
		return "", errs.NewUpstreamError(err)
	}

	resp, err := u.cld.Upload.Upload(ctx, staged, cldupload.UploadParams{
		Folder:         "promptvault",
		ResourceType:   mediaType,
		Transformation: "q_auto/f_auto",
	})
	if err == nil && resp != nil && resp.Error.Message != "" {
		err = errors.New(resp.Error.Message)
	}
	if err != nil {
		logger.WarnWithFields("asset host upload failed, staged file kept", logger.Fields{
			"staged_path": staged,
			"error":       err.Error(),
		})
		return "", errs.NewUpstreamError(err)
	}

	if rmErr := os.Remove(staged); rmErr != nil {
		logger.Log.Warnf("failed to remove staged file %s: %v", staged, rmErr)
	}
	return resp.SecureURL, nil
}

// stage copies the attachment into the staging dir under a name that
// cannot collide between concurrent uploads (unix-nano + random uuid).
func (u *Uploader) stage(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.NewString(), ext)
	path := filepath.Join(u.stagingDir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
