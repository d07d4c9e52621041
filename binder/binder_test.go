package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formval"
	"github.com/dmitrymomot/formval/binder"
)

func TestFromValues(t *testing.T) {
	t.Run("keeps the first value of each field", func(t *testing.T) {
		values := url.Values{
			"login": {"john"},
			"tags":  {"a", "b"},
		}
		data := binder.FromValues(values)
		assert.Equal(t, formval.Data{"login": "john", "tags": "a"}, data)
	})

	t.Run("skips fields without values", func(t *testing.T) {
		data := binder.FromValues(url.Values{"empty": {}})
		assert.Empty(t, data)
	})
}

func TestFromRequest(t *testing.T) {
	t.Run("urlencoded body", func(t *testing.T) {
		body := strings.NewReader("login=john&age=30")
		r := httptest.NewRequest("POST", "/signup", body)
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		data, err := binder.FromRequest(r)
		require.NoError(t, err)
		assert.Equal(t, "john", data["login"])
		assert.Equal(t, "30", data["age"])
	})

	t.Run("query parameters", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/search?q=hello", nil)

		data, err := binder.FromRequest(r)
		require.NoError(t, err)
		assert.Equal(t, "hello", data["q"])
	})

	t.Run("multipart form with file metadata", func(t *testing.T) {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		require.NoError(t, w.WriteField("login", "john"))

		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="avatar"; filename="pic.png"`)
		header.Set("Content-Type", "image/png")
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("not really a png"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		r := httptest.NewRequest("POST", "/profile", &buf)
		r.Header.Set("Content-Type", w.FormDataContentType())

		data, err := binder.FromRequest(r)
		require.NoError(t, err)
		assert.Equal(t, "john", data["login"])

		file, ok := data["avatar"].(formval.File)
		require.True(t, ok)
		assert.Equal(t, "pic.png", file.Name)
		assert.Equal(t, int64(len("not really a png")), file.Size)
		assert.Equal(t, "image/png", file.Type)
	})

	t.Run("falls back to extension lookup without a part content type", func(t *testing.T) {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)

		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="doc"; filename="notes.txt"`)
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("hello"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		r := httptest.NewRequest("POST", "/upload", &buf)
		r.Header.Set("Content-Type", w.FormDataContentType())

		data, err := binder.FromRequest(r)
		require.NoError(t, err)

		file, ok := data["doc"].(formval.File)
		require.True(t, ok)
		assert.Equal(t, "notes.txt", file.Name)
		assert.True(t, strings.HasPrefix(file.Type, "text/plain"))
	})

	t.Run("bound record validates end to end", func(t *testing.T) {
		schema := formval.MustNew(
			formval.F("login", formval.Required("Login is required"), formval.Min(4, "Too short")),
			formval.F("avatar", formval.Ext("png", "Must be a png")),
		)

		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		require.NoError(t, w.WriteField("login", "jo"))

		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="avatar"; filename="pic.jpg"`)
		header.Set("Content-Type", "image/jpeg")
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("jpeg bytes"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		r := httptest.NewRequest("POST", "/profile", &buf)
		r.Header.Set("Content-Type", w.FormDataContentType())

		data, err := binder.FromRequest(r)
		require.NoError(t, err)

		report, err := schema.ValidateForm(data)
		require.NoError(t, err)
		assert.Equal(t, []string{"Too short"}, report.Messages("login"))
		assert.Equal(t, []string{"Must be a png"}, report.Messages("avatar"))
	})
}
