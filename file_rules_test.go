package formval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formval"
)

func TestFileRules(t *testing.T) {
	png := formval.File{Name: "avatar.png", Size: 2048, Type: "image/png"}

	tests := []struct {
		name  string
		rule  formval.RuleDef
		file  formval.File
		valid bool
	}{
		{"ext matches", formval.Ext("png", "nope"), png, true},
		{"ext rejects mismatch", formval.Ext("png", "nope"), formval.File{Name: "a.jpg"}, false},
		{"ext uses the final dot", formval.Ext("gz", "nope"), formval.File{Name: "dump.tar.gz"}, true},
		{"extAllowed passes a member", formval.ExtAllowed([]string{"png", "jpg"}, "nope"), png, true},
		{"extAllowed rejects a non-member", formval.ExtAllowed([]string{"png", "jpg"}, "nope"), formval.File{Name: "a.gif"}, false},
		{"extNotAllowed rejects a member", formval.ExtNotAllowed([]string{"exe", "sh"}, "nope"), formval.File{Name: "run.exe"}, false},
		{"extNotAllowed passes a non-member", formval.ExtNotAllowed([]string{"exe", "sh"}, "nope"), png, true},

		{"sizeEqual passes exact size", formval.SizeEqual(2048, "nope"), png, true},
		{"sizeEqual rejects other sizes", formval.SizeEqual(1024, "nope"), png, false},
		{"sizeNotEqual rejects exact size", formval.SizeNotEqual(2048, "nope"), png, false},
		{"sizeGt passes larger file", formval.SizeGt(1024, "nope"), png, true},
		{"sizeGt fails at boundary", formval.SizeGt(2048, "nope"), png, false},
		{"sizeGte passes at boundary", formval.SizeGte(2048, "nope"), png, true},
		{"sizeLt passes smaller file", formval.SizeLt(4096, "nope"), png, true},
		{"sizeLte fails above boundary", formval.SizeLte(1024, "nope"), png, false},

		{"type matches", formval.Type("image/png", "nope"), png, true},
		{"type rejects mismatch", formval.Type("image/jpeg", "nope"), png, false},
		{"typeIn passes a member", formval.TypeIn([]string{"image/png", "image/jpeg"}, "nope"), png, true},
		{"typeIn rejects a non-member", formval.TypeIn([]string{"image/jpeg"}, "nope"), png, false},
		{"typeNotIn rejects a member", formval.TypeNotIn([]string{"image/png"}, "nope"), png, false},
		{"typeNotIn passes a non-member", formval.TypeNotIn([]string{"application/pdf"}, "nope"), png, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, err := formval.New(formval.F("file", tt.rule))
			require.NoError(t, err)

			report, err := schema.ValidateForm(formval.Data{"file": tt.file})
			require.NoError(t, err)
			assert.Equal(t, tt.valid, report.IsEmpty())
		})
	}

	t.Run("pointer file values dispatch like values", func(t *testing.T) {
		schema, err := formval.New(formval.F("file", formval.Ext("png", "Must be png")))
		require.NoError(t, err)

		report, err := schema.ValidateForm(formval.Data{"file": &formval.File{Name: "a.jpg"}})
		require.NoError(t, err)
		assert.Equal(t, formval.Report{"file": {"Must be png"}}, report)
	})
}

func TestFileExt(t *testing.T) {
	tests := []struct {
		name string
		file formval.File
		want string
	}{
		{"simple extension", formval.File{Name: "a.png"}, "png"},
		{"final dot wins", formval.File{Name: "dump.tar.gz"}, "gz"},
		{"no dot yields the whole name", formval.File{Name: "Makefile"}, "Makefile"},
		{"trailing dot yields empty", formval.File{Name: "weird."}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.file.Ext())
		})
	}
}
