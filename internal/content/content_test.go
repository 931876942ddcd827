package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample(t *testing.T) {
	doc, err := Sample()
	require.NoError(t, err)

	assert.NotEmpty(t, doc.Title)
	require.NotEmpty(t, doc.Header)
	assert.Equal(t, "name", doc.Header[0].Typing)
	for _, id := range []string{
		"section-about", "section-experience", "section-education",
		"section-projects", "section-achievements", "section-contact",
	} {
		_, ok := doc.Section(id)
		assert.True(t, ok, "sample is missing %s", id)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "page.yaml", want: FormatYAML},
		{path: "page.YML", want: FormatYAML},
		{path: "page.json", want: FormatJSON},
		{path: "dir/page.toml", want: FormatTOML},
		{path: "page.txt", wantErr: true},
		{path: "page", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{
			name:   "yaml",
			format: FormatYAML,
			data: `title: Test
header:
  - text: Sam
    typing: name
sections:
  - id: section-about
    title: About
    body: Hello
`,
		},
		{
			name:   "json",
			format: FormatJSON,
			data:   `{"title":"Test","header":[{"text":"Sam","typing":"name"}],"sections":[{"id":"section-about","title":"About","body":"Hello"}]}`,
		},
		{
			name:   "toml",
			format: FormatTOML,
			data: `title = "Test"

[[header]]
text = "Sam"
typing = "name"

[[sections]]
id = "section-about"
title = "About"
body = "Hello"
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.data), tt.format)
			require.NoError(t, err)
			assert.Equal(t, "Test", doc.Title)
			require.Len(t, doc.Header, 1)
			assert.Equal(t, HeaderLine{Text: "Sam", Typing: "name"}, doc.Header[0])
			require.Len(t, doc.Sections, 1)
			assert.Equal(t, Section{ID: "section-about", Title: "About", Body: "Hello"}, doc.Sections[0])
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("title: [unterminated"), FormatYAML)
	assert.Error(t, err)

	_, err = Parse([]byte("title = "), FormatTOML)
	assert.Error(t, err)

	_, err = Parse([]byte("{}"), Format("xml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Parse([]byte("sections:\n  - title: No id\n"), FormatYAML)
	assert.ErrorIs(t, err, ErrInvalidDocument)

	_, err = Parse([]byte("sections:\n  - id: a\n  - id: a\n"), FormatYAML)
	assert.ErrorIs(t, err, ErrInvalidDocument)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: Disk\nsections:\n  - id: section-about\n    title: About\n"), 0o600))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Disk", doc.Title)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "page.md"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadOrSample(t *testing.T) {
	doc, err := LoadOrSample("  ")
	require.NoError(t, err)
	sample, _ := Sample()
	assert.Equal(t, sample.Title, doc.Title)
}
