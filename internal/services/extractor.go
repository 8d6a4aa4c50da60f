package services

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeText = "text/plain"
)

// ExtractorService turns an uploaded document into one plain string.
type ExtractorService interface {
	ExtractText(filePath, mimeType string) (string, error)
}

type extractorService struct{}

func NewExtractorService() ExtractorService {
	return &extractorService{}
}

// ExtractText dispatches on the document type. PDF pages are concatenated
// with no separator between them; page boundaries are not preserved. Plain
// text uploads skip document parsing entirely and are decoded as UTF-8.
func (e *extractorService) ExtractText(filePath, mimeType string) (string, error) {
	switch resolveMimeType(mimeType, filePath) {
	case mimePDF:
		return extractPDF(filePath)
	case mimeDOCX:
		return extractDOCX(filePath)
	case mimeText:
		return extractPlainText(filePath)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedDocument, mimeType)
	}
}

func extractPDF(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest.
			continue
		}

		textBuilder.WriteString(text)
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyDocument
	}

	return text, nil
}

func extractDOCX(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read DOCX: %w", err)
	}

	doc, err := docx.ReadDocxFromMemory(strings.NewReader(string(data)), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse DOCX: %w", err)
	}
	defer doc.Close()

	text := stripDocxXML(doc.Editable().GetContent())
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyDocument
	}

	return text, nil
}

func extractPlainText(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("file is not valid UTF-8 text")
	}

	text := string(data)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyDocument
	}

	return text, nil
}

// stripDocxXML keeps the character data of document.xml, inserting line
// breaks at paragraph and break boundaries.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

func resolveMimeType(mimeType, filePath string) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	switch clean {
	case mimePDF, mimeDOCX, mimeText:
		return clean
	}

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		return mimePDF
	case ".docx":
		return mimeDOCX
	case ".txt":
		return mimeText
	default:
		return clean
	}
}
