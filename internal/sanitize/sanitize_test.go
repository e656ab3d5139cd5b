package sanitize

import (
	"strings"
	"testing"
)

func TestComment(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "nice shot", want: "nice shot"},
		{name: "strip_script", in: `<script>alert(1)</script>hi`, want: "hi"},
		{name: "strip_tags_keep_text", in: `<b>bold</b> move`, want: "bold move"},
		{name: "trim", in: "  spaced  ", want: "spaced"},
		{name: "link", in: "see https://example.com/a", want: `see <a href="https://example.com/a">https://example.com/a</a>`},
		{name: "bare_domain", in: "www.example.com", want: `<a href="http://www.example.com">www.example.com</a>`},
		{name: "email", in: "mail bob@example.com", want: `mail <a href="mailto:bob@example.com">bob@example.com</a>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Comment(tt.in); got != tt.want {
				t.Fatalf("Comment(%q)=%q want=%q", tt.in, got, tt.want)
			}
		})
	}
}

// 测试内容：验证注入的属性与事件处理器不会保留到输出中。
func TestComment_NoActiveContent(t *testing.T) {
	out := Comment(`<a href="javascript:alert(1)" onclick="x()">click</a><img src=x onerror=alert(1)>`)
	for _, bad := range []string{"javascript:", "onclick", "onerror", "<img"} {
		if strings.Contains(out, bad) {
			t.Fatalf("期望输出不包含 %q，实际为 %q", bad, out)
		}
	}
}
