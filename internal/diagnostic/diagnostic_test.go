package diagnostic

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilswg/use-config/internal/argv"
	"github.com/nilswg/use-config/internal/extract"
	"github.com/nilswg/use-config/internal/resolve"
)

var defaultDetails = Details{Flag: "--", ConfigKey: "config"}

func TestRender_PlainSinkHasNoEscapes(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Print(resolve.ErrConfigNameUndefined, defaultDetails)

	assert.NotContains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "Config name is undefined")
}

func TestRender_ColorProfile(t *testing.T) {
	var buf bytes.Buffer
	r := lipgloss.NewRenderer(&buf)
	r.SetColorProfile(termenv.ANSI)
	p := NewWithRenderer(&buf, r)

	p.Print(&resolve.FolderNotFoundError{Dir: "/nope"}, defaultDetails)

	// highlighted values are yellow
	assert.Contains(t, buf.String(), "\x1b[33m")
	assert.Contains(t, buf.String(), "/nope")
}

func TestRender_Kinds(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		details Details
		want    []string
	}{
		{
			name: "invalid process variable",
			err:  &argv.InvalidVariableError{Token: "--test=foo=bar", Flag: "--", Delimiter: "="},
			want: []string{"Invalid process variable: --test=foo=bar", "--<key>=<value>", `"="`},
		},
		{
			name: "empty flag",
			err:  argv.ErrEmptyFlag,
			want: []string{"flag prefix is empty", "USECONFIG_FLAG"},
		},
		{
			name:    "name undefined positional",
			err:     resolve.ErrConfigNameUndefined,
			details: defaultDetails,
			want:    []string{"Config name is undefined", "--config <value>", "DefaultConfigName"},
		},
		{
			name:    "name undefined with delimiter",
			err:     resolve.ErrConfigNameUndefined,
			details: Details{Flag: "$", Delimiter: ":", ConfigKey: "profile"},
			want:    []string{"$profile:<value>"},
		},
		{
			name: "folder not found",
			err:  &resolve.FolderNotFoundError{Dir: "/srv/configurations"},
			want: []string{"Config folder not found: /srv/configurations", "USECONFIG_DIR"},
		},
		{
			name: "folder unreadable",
			err:  &resolve.FolderNotFoundError{Dir: "/srv/conf", Err: fs.ErrPermission},
			want: []string{"Config folder not found: /srv/conf", "Cause: permission denied"},
		},
		{
			name: "files not found",
			err:  &resolve.FilesNotFoundError{Name: "dev", Dir: "/srv/conf", Extensions: []string{"json", "ts"}},
			want: []string{"No config file for dev in /srv/conf", "config.dev.json, config.dev.ts"},
		},
		{
			name:    "syntax error",
			err:     &extract.SyntaxError{Detail: "spread elements are not supported", Line: 2, Column: 3, Excerpt: "...base,"},
			details: Details{Path: "/srv/conf/config.dev.js"},
			want:    []string{"/srv/conf/config.dev.js:2:3", "spread elements are not supported", "  ...base,"},
		},
		{
			name: "wrapped syntax error without path",
			err:  fmt.Errorf("loading: %w", &extract.SyntaxError{Detail: "bad", Line: 1, Column: 1}),
			want: []string{"Invalid config file 1:1", "bad"},
		},
		{
			name: "other",
			err:  errors.New("permission denied"),
			want: []string{"permission denied"},
		},
	}

	p := Discard()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := p.Render(tt.err, tt.details)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			assert.Equal(t, byte('\n'), out[len(out)-1])
		})
	}
}

func TestPrint_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Print(nil, Details{})
	require.Empty(t, buf.String())
}
