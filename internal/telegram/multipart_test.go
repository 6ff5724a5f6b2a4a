package telegram

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeMultipart_FieldAndFileParts(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "Dune.pdf")
	require.NoError(t, os.WriteFile(filePath, []byte("book bytes"), 0o644))

	body, contentType, err := EncodeMultipart(
		map[string]string{"chat_id": "123"},
		[]InputFile{{Field: "document", Path: filePath}},
	)
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)

	boundary := params["boundary"]
	require.NotEmpty(t, boundary)
	assert.True(t, strings.HasPrefix(boundary, "TelegramBoundary"))
	assert.True(t, bytes.Contains(body, []byte("--"+boundary+"--")), "missing closing boundary")

	r := multipart.NewReader(bytes.NewReader(body), boundary)

	part, err := r.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "chat_id", part.FormName())
	assert.Empty(t, part.FileName())
	val, err := io.ReadAll(part)
	require.NoError(t, err)
	assert.Equal(t, "123", string(val))

	part, err = r.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "document", part.FormName())
	assert.Equal(t, "Dune.pdf", part.FileName())
	assert.Equal(t, "application/pdf", part.Header.Get("Content-Type"))
	data, err := io.ReadAll(part)
	require.NoError(t, err)
	assert.Equal(t, "book bytes", string(data))

	_, err = r.NextPart()
	assert.Equal(t, io.EOF, err, "expected exactly two parts")
}

func TestEncodeMultipart_UnknownExtensionFallsBack(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "notes.xyzzy")
	require.NoError(t, os.WriteFile(filePath, []byte("?"), 0o644))

	body, contentType, err := EncodeMultipart(nil, []InputFile{{Field: "document", Path: filePath}})
	require.NoError(t, err)

	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	r := multipart.NewReader(bytes.NewReader(body), params["boundary"])
	part, err := r.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", part.Header.Get("Content-Type"))
}

func TestEncodeMultipart_FreshBoundaryPerCall(t *testing.T) {
	_, ct1, err := EncodeMultipart(map[string]string{"a": "1"}, nil)
	require.NoError(t, err)
	_, ct2, err := EncodeMultipart(map[string]string{"a": "1"}, nil)
	require.NoError(t, err)
	assert.NotEqual(t, ct1, ct2)
}

func TestEncodeMultipart_MissingFile(t *testing.T) {
	_, _, err := EncodeMultipart(nil, []InputFile{{Field: "document", Path: "/no/such/file"}})
	assert.Error(t, err)
}
