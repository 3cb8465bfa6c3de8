package service

import (
	"bytes"
	"errors"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/otiai10/gosseract/v2"
	"go.uber.org/zap"
)

// pdfRenderDPI is the resolution receipts are rasterized at before OCR.
// Tesseract accuracy drops sharply below ~300 DPI on thermal-printer fonts.
const pdfRenderDPI = 300

// TextExtractor turns an uploaded receipt (raster image or PDF) into raw text.
// Extraction failures are never fatal: a corrupt file, an unreadable image or
// an OCR engine error degrade into an empty string for the parser to default.
type TextExtractor struct {
	logger *zap.Logger
}

func NewTextExtractor(logger *zap.Logger) *TextExtractor {
	return &TextExtractor{
		logger: logger,
	}
}

// Extract runs OCR against the file content. PDFs are rasterized first; only
// the first page is considered, multi-page documents are intentionally
// truncated to page one.
func (e *TextExtractor) Extract(data []byte, fileName string) string {
	imageData := data

	if strings.ToLower(filepath.Ext(fileName)) == ".pdf" {
		rendered, err := renderFirstPage(data)
		if err != nil {
			e.logger.Warn("Failed to render PDF page",
				zap.String("file", fileName),
				zap.Error(err),
			)
			return ""
		}
		imageData = rendered
	}

	text, err := recognize(imageData)
	if err != nil {
		e.logger.Warn("OCR failed",
			zap.String("file", fileName),
			zap.Error(err),
		)
		return ""
	}

	text = sanitizeUTF8(strings.TrimSpace(text))

	e.logger.Info("Text extraction completed",
		zap.String("file", fileName),
		zap.Int("text_length", len(text)),
	)

	return text
}

// renderFirstPage rasterizes the first PDF page to a PNG for the OCR engine.
func renderFirstPage(data []byte) ([]byte, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return nil, errors.New("pdf has no pages")
	}

	img, err := doc.ImageDPI(0, pdfRenderDPI)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// recognize runs tesseract over the image bytes. A gosseract client is not
// safe for concurrent use, so one is created per call.
func recognize(imageData []byte) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImageFromBytes(imageData); err != nil {
		return "", err
	}

	return client.Text()
}
