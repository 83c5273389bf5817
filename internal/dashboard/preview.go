package dashboard

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var previewMimeTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// AttachImage reads a local image and stores its data-URI preview on
// the open dialog. It is a side channel: it touches neither the form
// fields nor their validation.
func (ctl *Controller) AttachImage(path string) error {
	mime, ok := previewMimeTypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return fmt.Errorf("unsupported image type: %s", filepath.Ext(path))
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	uri := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw)

	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	ctl.Dialog.ImagePreview = uri
	return nil
}
