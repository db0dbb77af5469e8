package upstream

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
)

type uploadData struct {
	URL string `json:"url"`
}

type multiUploadData struct {
	URLs []string `json:"urls"`
}

// UploadImage sends one file to upload.php and returns its hosted URL.
func (c *Client) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload.php", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var data uploadData
	if err := c.send(req, &data); err != nil {
		return "", err
	}
	return data.URL, nil
}

type UploadFile struct {
	Name   string
	Reader io.Reader
}

// UploadImages sends a batch to multi-upload.php, preserving order.
func (c *Client) UploadImages(ctx context.Context, files []UploadFile) ([]string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		part, err := w.CreateFormFile("images[]", f.Name)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/multi-upload.php", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var data multiUploadData
	if err := c.send(req, &data); err != nil {
		return nil, err
	}
	return data.URLs, nil
}
