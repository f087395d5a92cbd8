package ocr

import (
	"bytes"
	"context"
	"image/png"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/otiai10/gosseract/v2"
)

// engineConfidence is the coarse quality estimate reported for any
// successful extraction. The engine does not score individual documents;
// the only contract that matters downstream is that 0.0 means "no
// usable text".
const engineConfidence = 0.8

// TesseractExtractor renders PDF pages with MuPDF and feeds them to
// Tesseract. Raster images go to Tesseract directly.
type TesseractExtractor struct {
	language string
	logger   *slog.Logger
}

func NewTesseractExtractor(language string, logger *slog.Logger) *TesseractExtractor {
	return &TesseractExtractor{language: language, logger: logger}
}

// Extract implements Extractor. Per-page text is concatenated in page
// order with a newline separator. Any engine or decode failure yields
// the empty result.
func (e *TesseractExtractor) Extract(ctx context.Context, documentPath string) Result {
	var (
		text string
		err  error
	)

	if strings.EqualFold(filepath.Ext(documentPath), ".pdf") {
		text, err = e.extractPDF(ctx, documentPath)
	} else {
		text, err = e.extractImage(documentPath)
	}

	if err != nil {
		e.logger.Warn("ocr extraction failed",
			slog.String("document", documentPath),
			slog.String("error", err.Error()),
		)
		return Failure()
	}
	if strings.TrimSpace(text) == "" {
		return Failure()
	}

	return Result{Text: text, Confidence: engineConfidence}
}

func (e *TesseractExtractor) extractPDF(ctx context.Context, path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", err
	}
	defer doc.Close()

	client := gosseract.NewClient()
	defer client.Close()
	if err := client.SetLanguage(e.language); err != nil {
		return "", err
	}

	pages := make([]string, 0, doc.NumPage())
	for page := 0; page < doc.NumPage(); page++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		img, err := doc.Image(page)
		if err != nil {
			return "", err
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return "", err
		}
		if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
			return "", err
		}

		pageText, err := client.Text()
		if err != nil {
			return "", err
		}
		pages = append(pages, pageText)
	}

	return strings.Join(pages, "\n"), nil
}

func (e *TesseractExtractor) extractImage(path string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()
	if err := client.SetLanguage(e.language); err != nil {
		return "", err
	}
	if err := client.SetImage(path); err != nil {
		return "", err
	}
	return client.Text()
}
