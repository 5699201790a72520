package format

import (
	"errors"
	"testing"
)

func TestFormatPositional(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     Positional
		want     string
	}{
		{"dollar brace", "${0}", Positional{"zzz"}, "zzz"},
		{"mixed forms", "${0}{1}", Positional{"1", "2"}, "12"},
		{"bare brace", "{0} and {1}", Positional{"a", "b"}, "a and b"},
		{"repeated index", "{0}{0}", Positional{"x"}, "xx"},
		{"out of range", "{5}", Positional{"a"}, ""},
		{"negative index", "{-1}", Positional{"a"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.template, tt.args)
			if err != nil {
				t.Fatalf("Format(%q) error: %v", tt.template, err)
			}
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestFormatNamed(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     Named
		want     string
	}{
		{"simple", "${x}", Named{"x": "1"}, "1"},
		{"case-insensitive placeholder", "{COLOR}", Named{"color": "red"}, "red"},
		{"case-insensitive key", "{color}", Named{"CoLoR": "red"}, "red"},
		{"default used when absent", "my favourite color is ${color=blue}", Named{"x": "1"}, "my favourite color is blue"},
		{"default ignored when present", "{color=blue}", Named{"color": "red"}, "red"},
		{"absent without default", "a{missing}b", Named{"x": "1"}, "ab"},
		{"value trimmed", "{x}", Named{"x": "  padded  "}, "padded"},
		{"quotes stripped", "{x}", Named{"x": `'quoted'`}, "quoted"},
		{"double quotes stripped", "{x}", Named{"x": `"quoted"`}, "quoted"},
		{"default trimmed and unquoted", "{x= 'blue' }", Named{"y": "1"}, "blue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.template, tt.args)
			if err != nil {
				t.Fatalf("Format(%q) error: %v", tt.template, err)
			}
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestFormatPercentEncoded(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     Args
		want     string
	}{
		{"encoded named", "%7Bname%7D", Named{"name": "v"}, "v"},
		{"encoded lowercase hex", "%7bname%7d", Named{"name": "v"}, "v"},
		{"encoded with dollar", "$%7B0%7D", Positional{"v"}, "v"},
		{"encoded with default", "%7Bcolor=blue%7D", Named{"x": "1"}, "blue"},
		{"both forms in one template", "{a} %7Bb%7D", Named{"a": "1", "b": "2"}, "1 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.template, tt.args)
			if err != nil {
				t.Fatalf("Format(%q) error: %v", tt.template, err)
			}
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestFormatEmptyTemplate(t *testing.T) {
	_, err := Format("", Named{"x": "1"})
	if !errors.Is(err, ErrEmptyTemplate) {
		t.Errorf("Format(\"\") error = %v, want ErrEmptyTemplate", err)
	}
}

func TestFormatNilArgs(t *testing.T) {
	got, err := Format("${x}", nil)
	if err != nil {
		t.Fatalf("Format with nil args error: %v", err)
	}
	if got != "" {
		t.Errorf("Format with nil args = %q, want empty (no substitution attempted)", got)
	}
}

// A value that trims to nothing renders as empty string and does not fall
// back to the default clause; only absent names do.
func TestFormatEmptyValueQuirk(t *testing.T) {
	got, err := Format("[{x=blue}]", Named{"x": "   "})
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if got != "[]" {
		t.Errorf("Format = %q, want %q", got, "[]")
	}
}

func TestFormatLeavesNonPlaceholdersAlone(t *testing.T) {
	tests := []struct {
		template string
		want     string
	}{
		{"no placeholders here", "no placeholders here"},
		{"{}", "{}"},
		{"a $ sign", "a $ sign"},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			got, err := Format(tt.template, Named{"x": "1"})
			if err != nil {
				t.Fatalf("Format error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}
