package imgbb

import (
	"encoding/base64"
	"fmt"
	"os"
)

// Uploader accumulates the payload and optional parameters for one upload.
// Setters may be chained in any order; the last write to a field wins. The
// payload must be set through Data, Bytes or File before calling Upload.
//
// An Uploader is cheap to create and meant for a single call; use
// Client.NewUpload for each upload.
type Uploader struct {
	client     *Client
	data       string
	expiration *uint64
	name       string
	title      string
	album      string
	err        error
}

// Data sets an already base64-encoded payload
func (u *Uploader) Data(data string) *Uploader {
	u.data = data
	u.err = nil
	return u
}

// Bytes sets the payload from raw image bytes
func (u *Uploader) Bytes(data []byte) *Uploader {
	u.data = base64.StdEncoding.EncodeToString(data)
	u.err = nil
	return u
}

// File sets the payload from an image file on disk. A read failure is
// reported by Upload, before any request is sent.
func (u *Uploader) File(path string) *Uploader {
	f, err := os.ReadFile(path)
	if err != nil {
		u.data = ""
		u.err = fmt.Errorf("imgbb: read image file: %w", err)
		return u
	}
	u.data = base64.StdEncoding.EncodeToString(f)
	u.err = nil
	return u
}

// Expiration sets the time in seconds after which the provider removes the
// image
func (u *Uploader) Expiration(seconds uint64) *Uploader {
	u.expiration = &seconds
	return u
}

// Name sets the image name
func (u *Uploader) Name(name string) *Uploader {
	u.name = name
	return u
}

// Title sets the image title
func (u *Uploader) Title(title string) *Uploader {
	u.title = title
	return u
}

// Album sets the ID of the album the image is added to
func (u *Uploader) Album(albumID string) *Uploader {
	u.album = albumID
	return u
}

// Upload validates the accumulated parameters and performs the upload.
// A missing payload or an earlier file-read failure is returned here,
// without touching the network.
func (u *Uploader) Upload() (*Response, error) {
	if u.err != nil {
		return nil, u.err
	}
	if u.data == "" {
		return nil, ErrMissingImage
	}
	return u.client.submit(u)
}
