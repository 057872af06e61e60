package services

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"
)

type FileExtractService struct{}

func NewFileExtractService() *FileExtractService {
	return &FileExtractService{}
}

// ExtractText pulls plain text out of a downloaded document. The format
// is chosen by file extension. Unsupported extensions and documents that
// resolve to empty text return typed errors the handlers map to 400s.
func (s *FileExtractService) ExtractText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var (
		text string
		err  error
	)
	switch ext {
	case ".docx":
		text, err = s.extractDOCX(data)
	case ".pdf":
		text, err = s.extractPDF(data)
	case ".pptx":
		text, err = s.extractPPTX(data)
	default:
		return "", &UnsupportedFileError{Ext: ext}
	}
	if err != nil {
		return "", err
	}

	text = normalizeExtractedText(text)
	if text == "" {
		return "", &EmptyContentError{Filename: filename}
	}

	return text, nil
}

func (s *FileExtractService) extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	totalPage := reader.NumPage()
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}

	return b.String(), nil
}

func (s *FileExtractService) extractDOCX(data []byte) (string, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var documentXML []byte
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", err
			}
			defer rc.Close()

			documentXML, err = io.ReadAll(rc)
			if err != nil {
				return "", err
			}
			break
		}
	}

	if len(documentXML) == 0 {
		return "", fmt.Errorf("docx document.xml not found")
	}

	return stripOfficeXML(documentXML), nil
}

var slideNamePattern = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

func (s *FileExtractService) extractPPTX(data []byte) (string, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	type slide struct {
		index int
		file  *zip.File
	}
	var slides []slide
	for _, f := range r.File {
		m := slideNamePattern.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		idx, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		slides = append(slides, slide{index: idx, file: f})
	}

	// Archive entries carry no order guarantee; sort by slide number.
	sort.Slice(slides, func(i, j int) bool { return slides[i].index < slides[j].index })

	var b strings.Builder
	for _, sl := range slides {
		rc, err := sl.file.Open()
		if err != nil {
			return "", err
		}
		slideXML, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", err
		}
		b.WriteString(stripOfficeXML(slideXML))
		b.WriteString("\n")
	}

	return b.String(), nil
}

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

func stripOfficeXML(src []byte) string {
	s := string(src)

	// WordprocessingML paragraphs and line breaks
	s = strings.ReplaceAll(s, "</w:p>", "\n")
	s = strings.ReplaceAll(s, "<w:br/>", "\n")
	s = strings.ReplaceAll(s, "<w:br />", "\n")
	s = strings.ReplaceAll(s, "<w:tab/>", "\t")

	// DrawingML paragraphs and line breaks (pptx slides)
	s = strings.ReplaceAll(s, "</a:p>", "\n")
	s = strings.ReplaceAll(s, "<a:br/>", "\n")
	s = strings.ReplaceAll(s, "<a:br />", "\n")

	// Remove all xml tags
	s = xmlTagPattern.ReplaceAllString(s, "")

	// Basic XML entities
	replacer := strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
	)
	s = replacer.Replace(s)

	return s
}

func normalizeExtractedText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	buf := bytes.Buffer{}

	emptyCount := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			emptyCount++
			if emptyCount > 1 {
				continue
			}
			buf.WriteString("\n")
			continue
		}
		emptyCount = 0
		buf.WriteString(trimmed)
		buf.WriteString("\n")
	}

	return strings.TrimSpace(buf.String())
}
