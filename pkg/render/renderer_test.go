package render

import (
	"strings"
	"testing"

	"github.com/JohnRodney/aframe/pkg/dom"
)

func renderCompact(t *testing.T, node *dom.Node) string {
	t.Helper()
	r := NewRenderer(RendererConfig{})
	out, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("RenderToString error: %v", err)
	}
	return out
}

func TestRenderElement(t *testing.T) {
	node := dom.New("a-box",
		dom.AttrOf("id", "player"),
		dom.AttrOf("color", "red"),
		dom.New("a-animation", dom.AttrOf("dur", 500)),
	)

	got := renderCompact(t, node)
	want := `<a-box id="player" color="red"><a-animation dur="500"></a-animation></a-box>`
	if got != want {
		t.Errorf("RenderToString = %q, want %q", got, want)
	}
}

func TestRenderAttributeOrder(t *testing.T) {
	node := dom.New("a-box",
		dom.AttrOf("z", "1"),
		dom.AttrOf("a", "2"),
		dom.AttrOf("m", "3"),
	)
	got := renderCompact(t, node)
	want := `<a-box z="1" a="2" m="3"></a-box>`
	if got != want {
		t.Errorf("attributes must render in document order: got %q, want %q", got, want)
	}
}

func TestRenderBooleanAttr(t *testing.T) {
	node := dom.New("input", dom.AttrOf("disabled", true), dom.AttrOf("type", "text"))
	got := renderCompact(t, node)
	want := `<input disabled type="text">`
	if got != want {
		t.Errorf("RenderToString = %q, want %q", got, want)
	}

	node = dom.New("input", dom.AttrOf("disabled", false))
	if got := renderCompact(t, node); got != "<input>" {
		t.Errorf("false boolean attr should be dropped: got %q", got)
	}
}

func TestRenderVoidElement(t *testing.T) {
	node := dom.New("img", dom.AttrOf("src", "x.png"))
	got := renderCompact(t, node)
	want := `<img src="x.png">`
	if got != want {
		t.Errorf("RenderToString = %q, want %q", got, want)
	}
}

func TestRenderEscaping(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		node := dom.New("p", `<script>&"'`)
		got := renderCompact(t, node)
		want := `<p>&lt;script&gt;&amp;&quot;&#39;</p>`
		if got != want {
			t.Errorf("RenderToString = %q, want %q", got, want)
		}
	})

	t.Run("attribute", func(t *testing.T) {
		node := dom.New("a-box", dom.AttrOf("title", "a\"b\nc"))
		got := renderCompact(t, node)
		want := `<a-box title="a&quot;b&#10;c"></a-box>`
		if got != want {
			t.Errorf("RenderToString = %q, want %q", got, want)
		}
	})
}

func TestRenderNil(t *testing.T) {
	if got := renderCompact(t, nil); got != "" {
		t.Errorf("rendering nil = %q, want empty", got)
	}
}

func TestRenderPretty(t *testing.T) {
	node := dom.New("div", dom.New("span", "hi"), dom.New("span"))
	r := NewRenderer(RendererConfig{Pretty: true})
	got, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("RenderToString error: %v", err)
	}

	want := strings.Join([]string{
		"<div>",
		"  <span>",
		"    hi",
		"  </span>",
		"  <span></span>",
		"</div>",
	}, "\n")
	if got != want {
		t.Errorf("pretty output = %q, want %q", got, want)
	}
}
