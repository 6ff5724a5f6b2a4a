package telegram

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// InputFile names a local file attached to a multipart request under a given
// form field.
type InputFile struct {
	Field string
	Path  string
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// EncodeMultipart serializes fields and files into a multipart/form-data
// body with a freshly generated boundary token, returning the body and the
// matching Content-Type header value. Fields are emitted in sorted key order
// and files in the given order. No size limit is enforced here; that is the
// caller's job.
func EncodeMultipart(fields map[string]string, files []InputFile) (body []byte, contentType string, err error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.SetBoundary("TelegramBoundary" + uuid.NewString()); err != nil {
		return nil, "", fmt.Errorf("setting boundary: %w", err)
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := w.WriteField(k, fields[k]); err != nil {
			return nil, "", fmt.Errorf("writing field %q: %w", k, err)
		}
	}

	for _, file := range files {
		if err := writeFilePart(w, file); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart body: %w", err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

// writeFilePart emits one file part with a filename and a Content-Type
// guessed from the extension (application/octet-stream when unknown).
func writeFilePart(w *multipart.Writer, file InputFile) error {
	base := filepath.Base(file.Path)

	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(base)))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(file.Field), quoteEscaper.Replace(base)))
	h.Set("Content-Type", mimeType)

	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("creating part for %s: %w", base, err)
	}

	f, err := os.Open(file.Path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", base, err)
	}
	defer f.Close()

	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("reading %s: %w", base, err)
	}
	return nil
}
