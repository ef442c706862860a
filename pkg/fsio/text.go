package fsio

import (
	"bufio"
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NewLine is the platform line terminator written after each line.
var NewLine = newLine()

func newLine() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// DefaultEncoding is UTF-8 without a byte order mark.
var DefaultEncoding encoding.Encoding = unicode.UTF8

// TextOptions is the resolved configuration of a text operation.
type TextOptions struct {
	Encoding encoding.Encoding
}

// TextOption configures a text operation.
type TextOption func(*TextOptions)

// WithEncoding selects the character encoding. A nil encoding keeps the default.
func WithEncoding(enc encoding.Encoding) TextOption {
	return func(o *TextOptions) {
		if enc != nil {
			o.Encoding = enc
		}
	}
}

// ResolveTextOptions applies opts over the default UTF-8 encoding.
func ResolveTextOptions(opts ...TextOption) TextOptions {
	o := TextOptions{Encoding: DefaultEncoding}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// LookupEncoding returns the encoding registered under an IANA name or alias,
// such as "utf-8", "utf-16le" or "iso-8859-1". "utf-8-bom" selects UTF-8
// with a byte order mark.
func LookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf8", "utf-8":
		return unicode.UTF8, nil
	case "utf8bom", "utf-8-bom":
		return unicode.UTF8BOM, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, fmt.Errorf("encoding %q is not supported", name)
	}
	return enc, nil
}

// decoder honours a UTF-8 or UTF-16 byte order mark and falls back to enc.
func decoder(enc encoding.Encoding) transform.Transformer {
	return unicode.BOMOverride(enc.NewDecoder())
}

// appendEncoding drops the byte order mark when writing after existing content.
func appendEncoding(enc encoding.Encoding, size int64) encoding.Encoding {
	if size == 0 {
		return enc
	}
	switch enc {
	case unicode.UTF8BOM:
		return unicode.UTF8
	case unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM):
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case unicode.UTF16(unicode.BigEndian, unicode.UseBOM), unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM):
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	}
	return enc
}

// TextReader reads decoded text from a file. Close releases the file.
type TextReader struct {
	file File
	r    *bufio.Reader
}

func newTextReader(f File, enc encoding.Encoding) *TextReader {
	return &TextReader{
		file: f,
		r:    bufio.NewReader(transform.NewReader(f, decoder(enc))),
	}
}

// Read reads decoded UTF-8 bytes.
func (r *TextReader) Read(p []byte) (int, error) { return r.r.Read(p) }

// ReadLine returns the next line without its terminator. It returns io.EOF
// once no text remains.
func (r *TextReader) ReadLine() (string, error) {
	line, err := r.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// ReadToEnd returns the remaining text.
func (r *TextReader) ReadToEnd() (string, error) {
	var b strings.Builder
	if _, err := io.Copy(&b, r.r); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Close closes the underlying file.
func (r *TextReader) Close() error { return r.file.Close() }

// TextWriter writes encoded text to a file. Close flushes and releases the file.
// Runes the encoding cannot represent are written as its replacement byte.
type TextWriter struct {
	file File
	enc  *transform.Writer
	w    *bufio.Writer
}

func newTextWriter(f File, enc encoding.Encoding) *TextWriter {
	tw := transform.NewWriter(f, encoding.ReplaceUnsupported(enc.NewEncoder()))
	return &TextWriter{file: f, enc: tw, w: bufio.NewWriter(tw)}
}

// Write writes UTF-8 bytes, encoding them on the way out.
func (w *TextWriter) Write(p []byte) (int, error) { return w.w.Write(p) }

// WriteString writes s.
func (w *TextWriter) WriteString(s string) (int, error) { return w.w.WriteString(s) }

// WriteLine writes s followed by NewLine.
func (w *TextWriter) WriteLine(s string) error {
	if _, err := w.w.WriteString(s); err != nil {
		return err
	}
	_, err := w.w.WriteString(NewLine)
	return err
}

// Flush writes buffered text through to the file.
func (w *TextWriter) Flush() error { return w.w.Flush() }

// Close flushes buffered text and closes the file. The file is closed even
// when flushing fails.
func (w *TextWriter) Close() error {
	err := w.w.Flush()
	if encErr := w.enc.Close(); err == nil {
		err = encErr
	}
	if closeErr := w.file.Close(); err == nil {
		err = closeErr
	}
	return err
}
