package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_TypeScriptNamedExport(t *testing.T) {
	source := `import type { Config } from "./type";

export const config: Config = {
    // 這是一個註解 🤗
    CONFIG_NAME: "stage",
    NEXT_PUBLIC_STORAGE_BUCKET: 'some-demo.appspot.com',
    DATABASE_URL: "https://some-demo-default-rtdb.firebaseio.com/",
    DEV_HOST_URL: "http://localhost:3001",
};
`
	res, err := ParseFile("config.tsc.ts", []byte(source))

	require.NoError(t, err)
	assert.Equal(t, ShapeESMNamed, res.Shape)
	assert.Equal(t, map[string]any{
		"CONFIG_NAME":                "stage",
		"NEXT_PUBLIC_STORAGE_BUCKET": "some-demo.appspot.com",
		"DATABASE_URL":               "https://some-demo-default-rtdb.firebaseio.com/",
		"DEV_HOST_URL":               "http://localhost:3001",
	}, res.Object)
}

func TestParseFile_TypeScriptDefaultExport(t *testing.T) {
	source := `interface Settings {
    port: number;
    name: string;
}

export default {
    port: 8080,
    name: 'svc',
    tags: ['a', 'b'] as string[],
} as Settings;
`
	res, err := ParseFile("config.dev.ts", []byte(source))

	require.NoError(t, err)
	assert.Equal(t, ShapeESMDefault, res.Shape)
	assert.Equal(t, map[string]any{
		"port": 8080.0,
		"name": "svc",
		"tags": []any{"a", "b"},
	}, res.Object)
}

func TestParseFile_TypeScriptSyntaxError(t *testing.T) {
	_, err := ParseFile("config.bad.ts", []byte("export const config: = {\n"))

	require.ErrorIs(t, err, ErrInvalidConfigFile)
	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Contains(t, se.Detail, "typescript")
	assert.Equal(t, 1, se.Line)
}

func TestParseFile_NonTypeScriptSkipsTranspile(t *testing.T) {
	// A type annotation after an unknown word is not valid JavaScript, so a
	// .js file must reach the reducer untouched and fail there.
	_, err := ParseFile("config.dev.js", []byte(`export default {port: 1 as number}`))

	require.ErrorIs(t, err, ErrInvalidConfigFile)
	assert.NotContains(t, err.Error(), "typescript")
}

func TestExtractFile_JSONC(t *testing.T) {
	obj, err := ExtractFile("config.test.jsonc", []byte("{\n // c\n \"some_key\": \"some_value\"\n}"))

	require.NoError(t, err)
	assert.Equal(t, someKey, obj)
}
