package formval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formval"
)

func TestParseYAML(t *testing.T) {
	t.Run("compiles a document and preserves declaration order", func(t *testing.T) {
		doc := []byte(`
login:
  required: Login is required
  min: [4, Login is too short]
  pattern: [alpha, Letters only]
age:
  gte: [18, Adults only]
role:
  in: [[admin, editor, viewer], Unknown role]
avatar:
  ext: [png, Must be a png]
  sizeLte: [1048576, Too big]
`)
		schema, err := formval.ParseYAML(doc)
		require.NoError(t, err)
		assert.Equal(t, []string{"login", "age", "role", "avatar"}, schema.Fields())

		report, err := schema.ValidateForm(formval.Data{
			"login": "ab1",
			"age":   "17",
			"role":  "editor",
			"avatar": formval.File{
				Name: "pic.png",
				Size: 2 << 20,
				Type: "image/png",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Login is too short", "Letters only"}, report.Messages("login"))
		assert.Equal(t, []string{"Adults only"}, report.Messages("age"))
		assert.False(t, report.Has("role"))
		assert.Equal(t, []string{"Too big"}, report.Messages("avatar"))
	})

	t.Run("bare string params work like the required shape", func(t *testing.T) {
		schema, err := formval.ParseYAML([]byte("login:\n  required: Required\n"))
		require.NoError(t, err)

		report, err := schema.ValidateForm(formval.Data{"login": ""})
		require.NoError(t, err)
		assert.Equal(t, formval.Report{"login": {"Required"}}, report)
	})

	t.Run("json documents parse through the same path", func(t *testing.T) {
		doc := []byte(`{"login": {"required": "Required", "min": [4, "Too short"]}}`)
		schema, err := formval.ParseYAML(doc)
		require.NoError(t, err)

		report, err := schema.ValidateForm(formval.Data{"login": "ab"})
		require.NoError(t, err)
		assert.Equal(t, formval.Report{"login": {"Too short"}}, report)
	})

	t.Run("unknown rule in a document fails compilation", func(t *testing.T) {
		_, err := formval.ParseYAML([]byte("login:\n  sparkles: msg\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, formval.ErrUnknownRule)
	})

	t.Run("function-valued rules are rejected in documents", func(t *testing.T) {
		for _, rule := range []string{"validator", "validate", "regexp"} {
			_, err := formval.ParseYAML([]byte("login:\n  " + rule + ": msg\n"))
			require.Error(t, err, rule)
			assert.ErrorIs(t, err, formval.ErrInvalidParams, rule)
		}
	})

	t.Run("non-mapping document fails", func(t *testing.T) {
		_, err := formval.ParseYAML([]byte("- a\n- b\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, formval.ErrInvalidDocument)

		_, err = formval.ParseYAML([]byte("login: [not, a, mapping]\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, formval.ErrInvalidDocument)
	})

	t.Run("empty document fails", func(t *testing.T) {
		_, err := formval.ParseYAML([]byte(""))
		require.Error(t, err)
		assert.ErrorIs(t, err, formval.ErrInvalidDocument)
	})
}
