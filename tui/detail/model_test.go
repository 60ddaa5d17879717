package detail

import (
	"strings"
	"testing"

	"github.com/CrestNiraj12/postboard/domain"
)

func TestView_KnownPost(t *testing.T) {
	m := New(42, domain.Post{ID: 42, Title: "Answer", AuthorUsername: "deep"}, true)
	out := m.View()
	for _, want := range []string{"Post #42", "Answer", "deep"} {
		if !strings.Contains(out, want) {
			t.Fatalf("detail view missing %q: %q", want, out)
		}
	}
	if m.ID() != 42 {
		t.Fatalf("unexpected id %d", m.ID())
	}
}

func TestView_UnknownPost(t *testing.T) {
	out := New(7, domain.Post{}, false).View()
	if !strings.Contains(out, "Post #7") || !strings.Contains(out, "post not found") {
		t.Fatalf("unexpected view: %q", out)
	}
}
