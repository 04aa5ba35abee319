package translator

import (
	"testing"

	gst "github.com/richinsley/goshadertranslator"
)

func TestMappedName(t *testing.T) {
	p := &Program{Variables: map[string]gst.ShaderVariable{
		"u_model": {MappedName: "_uu_model"},
		"u_blank": {},
	}}
	tests := map[string]string{
		"u_model":   "_uu_model",
		"u_blank":   "u_blank",
		"u_missing": "u_missing",
	}
	for in, want := range tests {
		if got := p.MappedName(in); got != want {
			t.Errorf("MappedName(%q) = %q, want %q", in, got, want)
		}
	}
}
