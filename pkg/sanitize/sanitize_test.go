package sanitize_test

import (
	"testing"

	"go-fontaneria-backend/pkg/sanitize"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "Ana García", "Ana García"},
		{"script tag neutralized", "<script>", "&lt;script&gt;"},
		{"quotes neutralized", `"hola" y 'adiós'`, "&quot;hola&quot; y &#x27;adiós&#x27;"},
		{"ampersand preserved", "Pérez & Hijos", "Pérez & Hijos"},
		{"mixed", `<a href="x">`, "&lt;a href=&quot;x&quot;&gt;"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitize.Text(tt.input))
		})
	}
}

func TestTextLeavesNoActiveMarkup(t *testing.T) {
	out := sanitize.Text("<script>alert('xss')</script>")
	assert.NotContains(t, out, "<")
	assert.NotContains(t, out, ">")
}
