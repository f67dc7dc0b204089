package catalog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/transreview/pkg/catalog"
)

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want catalog.Format
	}{
		{name: "translations.json", want: catalog.FormatJSON},
		{name: "dir/TRANSLATIONS.JSON", want: catalog.FormatJSON},
		{name: "translations.yaml", want: catalog.FormatYAML},
		{name: "translations.yml", want: catalog.FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := catalog.FormatFromPath(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects unknown extension", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.FormatFromPath("translations.txt")
		require.ErrorIs(t, err, catalog.ErrUnsupportedFormat)
		require.ErrorIs(t, err, catalog.ErrParse)
	})
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("loads JSON catalog", func(t *testing.T) {
		t.Parallel()
		cat, err := catalog.LoadFile(filepath.Join("testdata", "translations.json"))
		require.NoError(t, err)
		require.Equal(t, []string{"en", "id"}, cat.Languages())

		en, err := cat.Flatten("en")
		require.NoError(t, err)
		require.Equal(t, catalog.Flat{
			"_meta":     "v1",
			"nav.home":  "Home",
			"nav.about": "About",
		}, en)

		id, err := cat.Flatten("id")
		require.NoError(t, err)
		require.Equal(t, catalog.Flat{"nav.home": "Beranda"}, id)
	})

	t.Run("loads YAML catalog", func(t *testing.T) {
		t.Parallel()
		cat, err := catalog.LoadFile(filepath.Join("testdata", "translations.yaml"))
		require.NoError(t, err)

		en, err := cat.Flatten("en")
		require.NoError(t, err)
		require.Equal(t, catalog.Flat{
			"nav.home":  "Home",
			"nav.about": "About",
			"count":     "5",
		}, en)
	})

	t.Run("returns ErrNotFound for missing file", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.LoadFile(filepath.Join(t.TempDir(), "missing.json"))
		require.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("returns ErrParse for malformed file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"en": {`), 0o644))

		_, err := catalog.LoadFile(path)
		require.ErrorIs(t, err, catalog.ErrParse)
	})
}

func TestLoadFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"catalog.json": {Data: []byte(`{"en": {"a": {"b": "Hello"}}, "id": {"a": {"b": "Halo"}}}`)},
		"catalog.yml":  {Data: []byte("en:\n  greet: Hi\nid:\n  greet: Hai\n")},
	}

	t.Run("loads JSON from fs.FS", func(t *testing.T) {
		t.Parallel()
		cat, err := catalog.LoadFS(fsys, "catalog.json")
		require.NoError(t, err)

		id, err := cat.Flatten("id")
		require.NoError(t, err)
		require.Equal(t, catalog.Flat{"a.b": "Halo"}, id)
	})

	t.Run("loads YAML from fs.FS", func(t *testing.T) {
		t.Parallel()
		cat, err := catalog.LoadFS(fsys, "catalog.yml")
		require.NoError(t, err)

		en, err := cat.Flatten("en")
		require.NoError(t, err)
		require.Equal(t, catalog.Flat{"greet": "Hi"}, en)
	})

	t.Run("returns ErrNotFound for missing entry", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.LoadFS(fsys, "other.json")
		require.ErrorIs(t, err, catalog.ErrNotFound)
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("ignores leading BOM", func(t *testing.T) {
		t.Parallel()
		data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`{"en": {"x": "Val"}, "id": {}}`)...)
		cat, err := catalog.Parse(data, catalog.FormatJSON)
		require.NoError(t, err)
		require.Equal(t, []string{"en", "id"}, cat.Languages())
	})

	t.Run("keeps JSON number literals", func(t *testing.T) {
		t.Parallel()
		cat, err := catalog.Parse([]byte(`{"en": {"n": 1.0, "b": false, "z": null}}`), catalog.FormatJSON)
		require.NoError(t, err)

		en, err := cat.Flatten("en")
		require.NoError(t, err)
		require.Equal(t, catalog.Flat{"n": "1.0", "b": "false", "z": ""}, en)
	})

	t.Run("rejects trailing data", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.Parse([]byte(`{"en": {}} {"id": {}}`), catalog.FormatJSON)
		require.ErrorIs(t, err, catalog.ErrParse)
	})

	t.Run("rejects non-mapping root", func(t *testing.T) {
		t.Parallel()
		for _, doc := range []string{`[]`, `"text"`, `null`} {
			_, err := catalog.Parse([]byte(doc), catalog.FormatJSON)
			require.ErrorIs(t, err, catalog.ErrParse, doc)
		}
	})

	t.Run("rejects empty YAML document", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.Parse(nil, catalog.FormatYAML)
		require.ErrorIs(t, err, catalog.ErrParse)
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.Parse([]byte("en: [unclosed"), catalog.FormatYAML)
		require.ErrorIs(t, err, catalog.ErrParse)
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.Parse([]byte(`{}`), catalog.Format("toml"))
		require.ErrorIs(t, err, catalog.ErrUnsupportedFormat)
	})
}

func TestDecode(t *testing.T) {
	t.Parallel()

	cat, err := catalog.Decode(strings.NewReader(`{"en": {"greet": "Hi"}}`), catalog.FormatJSON)
	require.NoError(t, err)
	require.Equal(t, []string{"en"}, cat.Languages())
}

func TestParseEncoding(t *testing.T) {
	t.Parallel()

	for _, format := range []catalog.Format{catalog.FormatJSON, catalog.FormatYAML} {
		t.Run("rejects invalid UTF-8 in "+string(format), func(t *testing.T) {
			t.Parallel()
			doc := []byte("{\"en\": {\"x\": \"caf\xe9\"}}")
			_, err := catalog.Parse(doc, format)
			require.ErrorIs(t, err, catalog.ErrInvalidEncoding)
			require.ErrorIs(t, err, catalog.ErrParse)
		})
	}

	t.Run("keeps valid multi-byte text", func(t *testing.T) {
		t.Parallel()
		cat, err := catalog.Parse([]byte(`{"en": {"x": "café"}}`), catalog.FormatJSON)
		require.NoError(t, err)

		en, err := cat.Flatten("en")
		require.NoError(t, err)
		require.Equal(t, "café", en["x"])
	})
}

func TestParseYAMLLiterals(t *testing.T) {
	t.Parallel()

	t.Run("scalars keep their text", func(t *testing.T) {
		t.Parallel()
		doc := "en:\n  d: 2024-01-02\n  f: 1.0\n  i: 007\n  b: yes\n  t: true\n  n: null\n  q: \"quoted\"\n"
		cat, err := catalog.Parse([]byte(doc), catalog.FormatYAML)
		require.NoError(t, err)

		en, err := cat.Flatten("en")
		require.NoError(t, err)
		require.Equal(t, catalog.Flat{
			"d": "2024-01-02",
			"f": "1.0",
			"i": "007",
			"b": "yes",
			"t": "true",
			"n": "",
			"q": "quoted",
		}, en)
	})

	t.Run("sequences become compact JSON", func(t *testing.T) {
		t.Parallel()
		cat, err := catalog.Parse([]byte("en:\n  list: [a, b]\n"), catalog.FormatYAML)
		require.NoError(t, err)

		en, err := cat.Flatten("en")
		require.NoError(t, err)
		require.Equal(t, `["a","b"]`, en["list"])
	})

	t.Run("resolves anchors and merge keys", func(t *testing.T) {
		t.Parallel()
		doc := "base: &base\n  ok: OK\n  cancel: Cancel\nen:\n  buttons:\n    <<: *base\n    cancel: Abort\n  again: *base\n"
		cat, err := catalog.Parse([]byte(doc), catalog.FormatYAML)
		require.NoError(t, err)

		en, err := cat.Flatten("en")
		require.NoError(t, err)
		require.Equal(t, catalog.Flat{
			"buttons.ok":     "OK",
			"buttons.cancel": "Abort",
			"again.ok":       "OK",
			"again.cancel":   "Cancel",
		}, en)
	})

	t.Run("keys with the same text collide", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.Parse([]byte("en:\n  1: one\n  \"1\": also one\n"), catalog.FormatYAML)
		require.ErrorIs(t, err, catalog.ErrKeyCollision)
		require.ErrorIs(t, err, catalog.ErrParse)
	})

	t.Run("rejects non-scalar keys", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.Parse([]byte("en:\n  ? [a, b]\n  : value\n"), catalog.FormatYAML)
		require.ErrorIs(t, err, catalog.ErrParse)
	})
}

func TestCatalogFlattenCollision(t *testing.T) {
	t.Parallel()

	cat, err := catalog.Parse([]byte(`{"en": {"a.b": "dotted", "a": {"b": "nested"}}}`), catalog.FormatJSON)
	require.NoError(t, err)

	_, err = cat.Flatten("en")
	require.ErrorIs(t, err, catalog.ErrKeyCollision)
}
