package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const root = "/project"

func TestStoreReadMissing(t *testing.T) {
	s := NewStore(afero.NewMemMapFs(), root)

	rec, err := s.Read()
	require.NoError(t, err)
	assert.Nil(t, rec)

	ok, err := s.Exists()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
	}{
		{
			name: "scss with aliases",
			rec: Record{
				Version:         "0.1.0",
				Aliases:         DefaultAliases(true),
				IconLibrary:     DefaultIconLibrary,
				StyleLanguage:   SCSS,
				GlobalStylePath: "src/styles/global.scss",
			},
		},
		{
			name: "css relative",
			rec: Record{
				Version:         "1.0.0",
				Aliases:         DefaultAliases(false),
				IconLibrary:     DefaultIconLibrary,
				StyleLanguage:   CSS,
				GlobalStylePath: "app/global.css",
			},
		},
		{
			name: "custom aliases",
			rec: Record{
				Version:         "2.3.4",
				Aliases:         Aliases{Styles: "~/ui/styles", Utils: "x", Components: "", Lib: "./lib", Hooks: "@/use"},
				IconLibrary:     DefaultIconLibrary,
				StyleLanguage:   CSS,
				GlobalStylePath: "styles/main.css",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(afero.NewMemMapFs(), root)
			rec := tt.rec
			require.NoError(t, s.Write(&rec))

			got, err := s.Read()
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.rec, *got)
		})
	}
}

func TestStoreWritesPrettyJSON(t *testing.T) {
	fsys := afero.NewMemMapFs()
	s := NewStore(fsys, root)
	require.NoError(t, s.Write(&Record{
		Version:         "0.1.0",
		Aliases:         DefaultAliases(true),
		IconLibrary:     DefaultIconLibrary,
		StyleLanguage:   CSS,
		GlobalStylePath: "src/styles/global.css",
	}))

	data, err := afero.ReadFile(fsys, filepath.Join(root, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"aliases\": {\n    \"styles\": \"@/styles\",")
	assert.Contains(t, string(data), "\"styleLanguage\": \"css\"")
	assert.Contains(t, string(data), "\"iconLibrary\": \"lucide\"")
}

func TestStoreReadCorrupt(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(root, FileName), []byte("{not json"), 0644))

	_, err := NewStore(fsys, root).Read()
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, filepath.Join(root, FileName), perr.Path)
}

func TestParseStyleLanguage(t *testing.T) {
	l, err := ParseStyleLanguage(" SCSS ")
	require.NoError(t, err)
	assert.Equal(t, SCSS, l)

	l, err = ParseStyleLanguage("css")
	require.NoError(t, err)
	assert.Equal(t, CSS, l)

	_, err = ParseStyleLanguage("less")
	assert.Error(t, err)
}

func TestResolveAlias(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"@/styles", filepath.Join(root, "src", "styles")},
		{"./src/styles", filepath.Join(root, "src", "styles")},
		{"src/styles/global.css", filepath.Join(root, "src", "styles", "global.css")},
		{"/abs/styles", filepath.Clean("/abs/styles")},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveAlias(root, tt.value))
		})
	}
}
