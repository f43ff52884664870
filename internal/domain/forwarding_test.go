package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasForwarding(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "delegates to field with same name",
			text: "public int size() { return list.size(); }",
			want: true,
		},
		{
			name: "qualified receiver across lines",
			text: "public String name(int x)\n{\n\treturn this.delegate.name(x);\n}",
			want: true,
		},
		{
			name: "generic return type",
			text: "List<String> items() { return inner.items(); }",
			want: true,
		},
		{
			name: "different method name",
			text: "int size() { return list.count(); }",
			want: false,
		},
		{
			name: "unqualified recursive call",
			text: "int size() { return size(); }",
			want: false,
		},
		{
			name: "more than a return statement",
			text: "int size() { log(); return list.size(); }",
			want: false,
		},
		{
			name: "second method forwards",
			text: "int a() { return 1; }\nint b() { return other.b(); }",
			want: true,
		},
		{
			name: "carriage return line endings",
			text: "int size()\r{\r\treturn list.size();\r}",
			want: true,
		},
		{
			name: "parameters broken by a carriage return",
			text: "int size(int a\r) { return list.size(); }",
			want: false,
		},
		{
			name: "returned call broken by a line separator",
			text: "int size() { return list.size(a\u2028); }",
			want: false,
		},
		{
			name: "returned call broken by a next line character",
			text: "int size() { return list.size(a\u0085); }",
			want: false,
		},
		{
			name: "no methods",
			text: "class A { int x; }",
			want: false,
		},
		{
			name: "empty",
			text: "",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasForwarding(tt.text))
		})
	}
}
