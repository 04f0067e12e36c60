package service

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"strings"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/rs/zerolog"

	"github.com/Aashish23092/ocr-autofill/dto"
)

// TextRecognizer runs OCR on one encoded image.
type TextRecognizer interface {
	ExtractTextFromBytes(data []byte) (string, error)
}

// Upload is one file received from the client.
type Upload struct {
	Name     string
	MimeType string
	Data     []byte
}

// ImageTextService produces raw text from uploaded scans: OCR on every page,
// plus the decoded Aadhaar secure QR when a page carries one.
type ImageTextService struct {
	recognizer   TextRecognizer
	pdfProcessor PDFProcessor
}

func NewImageTextService(recognizer TextRecognizer, pdfProcessor PDFProcessor) *ImageTextService {
	return &ImageTextService{
		recognizer:   recognizer,
		pdfProcessor: pdfProcessor,
	}
}

// ExtractText OCRs the uploads in order and joins the page texts with
// newlines. Scanned PDFs contribute one page per embedded image. Pages that
// fail are skipped; it is an error only when no page produced text.
func (s *ImageTextService) ExtractText(ctx context.Context, uploads []Upload, password string) (string, int, error) {
	logger := zerolog.Ctx(ctx)
	if len(uploads) == 0 {
		return "", 0, dto.InvalidRequestError("at least one image is required")
	}

	var pages []string
	for i, up := range uploads {
		if strings.Contains(up.MimeType, "pdf") {
			images, err := s.pdfProcessor.ExtractImages(up.Data, password)
			if err != nil {
				logger.Warn().Err(err).Int("upload", i+1).Msg("failed to extract images from pdf")
				continue
			}
			for j, img := range images {
				buf := new(bytes.Buffer)
				if err := png.Encode(buf, img); err != nil {
					logger.Warn().Err(err).Int("upload", i+1).Int("image", j+1).Msg("png encode failed")
					continue
				}
				if text := s.pageText(ctx, img, buf.Bytes()); text != "" {
					pages = append(pages, text)
				}
			}
			continue
		}

		img, err := decodeImage(up.Data, up.MimeType)
		if err != nil {
			logger.Warn().Err(err).Int("upload", i+1).Str("file", up.Name).Msg("failed to decode image")
			img = nil
		}
		if text := s.pageText(ctx, img, up.Data); text != "" {
			pages = append(pages, text)
		}
	}

	if len(pages) == 0 {
		return "", 0, fmt.Errorf("no text could be extracted from %d upload(s)", len(uploads))
	}
	return strings.Join(pages, "\n"), len(pages), nil
}

func (s *ImageTextService) pageText(ctx context.Context, img image.Image, data []byte) string {
	logger := zerolog.Ctx(ctx)

	var b strings.Builder
	text, err := s.recognizer.ExtractTextFromBytes(data)
	if err != nil {
		logger.Warn().Err(err).Msg("OCR failed")
	} else {
		b.WriteString(strings.TrimSpace(text))
	}

	if img != nil {
		if qr, err := decodeAadhaarQR(img); err == nil {
			logger.Debug().Msg("aadhaar QR decoded")
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(strings.TrimSpace(qr.Text()))
		}
	}
	return b.String()
}

// decodeAadhaarQR reads a UIDAI XML QR code from the image.
func decodeAadhaarQR(img image.Image) (*dto.AadhaarQRData, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("failed to create binary bitmap: %w", err)
	}

	result, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decode QR code: %w", err)
	}

	var qrData dto.AadhaarQRData
	if err := xml.Unmarshal([]byte(result.GetText()), &qrData); err != nil {
		return nil, fmt.Errorf("failed to parse QR XML data: %w", err)
	}
	if qrData.Name == "" && qrData.UID == "" {
		return nil, fmt.Errorf("QR code is not an Aadhaar payload")
	}
	return &qrData, nil
}

// decodeImage decodes an image from bytes based on MIME type
func decodeImage(data []byte, mimeType string) (image.Image, error) {
	reader := bytes.NewReader(data)

	if strings.Contains(mimeType, "png") {
		return png.Decode(reader)
	} else if strings.Contains(mimeType, "jpeg") || strings.Contains(mimeType, "jpg") {
		return jpeg.Decode(reader)
	}

	img, _, err := image.Decode(reader)
	return img, err
}
