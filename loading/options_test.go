package loading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNormalizeDefaults(t *testing.T) {
	opts := Normalize("", Settings{})

	assert.Equal(t, KindText, opts.Kind)
	assert.Equal(t, "app", opts.RootElementID)
	assert.True(t, opts.DevEnable)
	assert.Equal(t, "", opts.CSS)
	assert.Equal(t, "", opts.CSSPath)
	assert.Equal(t, "Loading...", opts.TipText)
	assert.Equal(t, 150, opts.Debounce)
	assert.Equal(t, "ERROR: ", opts.ErrorTip)
	assert.Equal(t, "", opts.OnError)
}

func TestNormalizeOverrides(t *testing.T) {
	opts := Normalize(KindImg, Settings{
		RootElementID: "root",
		DevEnable:     ptr(false),
		CSS:           ".a{}",
		CSSPath:       "loading.css",
		TipText:       ptr(""),
		Debounce:      ptr(0),
		ErrorTip:      ptr("Oops"),
		OnError:       "function (e) {}",
		Src:           "data:image/png;base64,AAAA",
	})

	assert.Equal(t, KindImg, opts.Kind)
	assert.Equal(t, "root", opts.RootElementID)
	assert.False(t, opts.DevEnable)
	assert.Equal(t, ".a{}", opts.CSS)
	assert.Equal(t, "loading.css", opts.CSSPath)
	assert.Equal(t, "", opts.TipText)
	assert.Equal(t, 0, opts.Debounce)
	assert.Equal(t, "Oops", opts.ErrorTip)
	assert.Equal(t, "function (e) {}", opts.OnError)
	assert.Equal(t, "data:image/png;base64,AAAA", opts.Src)
}

func TestNormalizeClampsDebounce(t *testing.T) {
	opts := Normalize(KindText, Settings{Debounce: ptr(-20)})
	assert.Equal(t, 0, opts.Debounce)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		name    string
		want    Kind
		wantErr bool
	}{
		{"", KindText, false},
		{"text", KindText, false},
		{"IMG", KindImg, false},
		{" svg ", KindSvg, false},
		{"gif", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := ParseKind(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestModeFromCommand(t *testing.T) {
	assert.Equal(t, Production, ModeFromCommand("build"))
	assert.Equal(t, Development, ModeFromCommand("serve"))
	assert.Equal(t, Development, ModeFromCommand(""))
	assert.Equal(t, "production", Production.String())
	assert.Equal(t, "development", Development.String())
}
