package csvimport

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sangeeth-21/velkani-admin/internal/upstream"
)

type Handler struct {
	importer *Importer
}

func NewHandler(importer *Importer) *Handler {
	return &Handler{importer: importer}
}

// ImportProducts accepts the CSV either as a multipart "file" field or as
// the raw request body, and always finishes the batch it can.
func (h *Handler) ImportProducts(c *gin.Context) {
	text, err := readCSV(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read csv upload"})
		return
	}

	res, err := h.importer.Import(c.Request.Context(), text)
	if err != nil {
		if errors.Is(err, ErrTooShort) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) {
			c.JSON(http.StatusBadGateway, gin.H{"error": apiErr.Message})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "store api unreachable"})
		return
	}

	c.JSON(http.StatusOK, res)
}

func readCSV(c *gin.Context) (string, error) {
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			return "", err
		}
		defer f.Close()
		raw, err := io.ReadAll(f)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
