package trebuchet

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/tsawler/trebuchet/format"
	"github.com/tsawler/trebuchet/htmldoc"
	"github.com/tsawler/trebuchet/ocr"
)

// ErrUnsupportedFormat is returned for inputs that are neither text, HTML,
// nor a supported image.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// load reads and decodes the document.
func (e *Extractor) load() (*loadedDocument, error) {
	data := e.data
	if !e.hasData {
		if e.filename == "" {
			return nil, fmt.Errorf("no filename specified")
		}
		var err error
		data, err = os.ReadFile(e.filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
	}

	f := format.Unknown
	if !e.hasData {
		f = format.Detect(e.filename)
	}
	if f == format.Unknown {
		f = format.DetectFromMagic(data)
	}
	if f == format.Unknown && len(data) == 0 {
		f = format.Text
	}

	doc := &loadedDocument{format: f}
	var err error
	switch {
	case f == format.Text:
		doc.text, err = decodeText(data)
	case f == format.HTML:
		doc.text, err = e.htmlText(data)
	case f.IsImage():
		doc.text, err = e.imageText(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, e.source())
	}
	if err != nil {
		return nil, err
	}

	e.options.logger.Debug("document loaded",
		zap.String("source", e.source()),
		zap.Stringer("format", f),
		zap.Int("bytes", len(data)))

	return doc, nil
}

// decodeText converts text with a UTF-8 or UTF-16 byte order mark to plain
// UTF-8. Text without a byte order mark is returned unchanged.
func decodeText(data []byte) (string, error) {
	enc := format.DetectEncoding(data)

	var dec encoding.Encoding
	switch enc {
	case format.UTF8BOM:
		dec = unicode.UTF8BOM
	case format.UTF16LE:
		dec = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case format.UTF16BE:
		dec = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	default:
		return string(data), nil
	}

	out, _, err := transform.Bytes(dec.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("decoding %s text: %w", enc, err)
	}
	return string(out), nil
}

// htmlText returns the selected code block of an HTML page.
func (e *Extractor) htmlText(data []byte) (string, error) {
	r, err := htmldoc.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	defer r.Close()

	if e.options.htmlBlock >= 0 {
		b, err := r.Block(e.options.htmlBlock)
		if err != nil {
			return "", err
		}
		return b.Text, nil
	}

	examples := r.Examples()
	if e.options.htmlExample >= len(examples) {
		return "", fmt.Errorf("HTML example %d out of range (page has %d)", e.options.htmlExample, len(examples))
	}
	return examples[e.options.htmlExample].Text, nil
}

// imageText runs OCR over a prepared copy of the image.
func (e *Extractor) imageText(data []byte) (string, error) {
	prepared, err := ocr.Prepare(data, e.options.minHeight)
	if err != nil {
		return "", err
	}

	cfg := ocr.DefaultConfig()
	cfg.Language = e.options.ocrLanguage

	r, err := ocr.NewRecognizer(cfg)
	if err != nil {
		return "", err
	}
	defer r.Close()

	text, err := r.Recognize(prepared)
	if err != nil {
		return "", err
	}
	return text, nil
}
