package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBodySummary(t *testing.T) {
	nginx := `<html>
<head><title>502 Bad Gateway</title><style>body{color:red}</style></head>
<body>
<center><h1>502 Bad Gateway</h1></center>
<hr><center>nginx</center>
<script>alert("x")</script>
</body>
</html>`

	tests := []struct {
		name        string
		contentType string
		body        string
		limit       int
		want        string
	}{
		{
			name:        "empty",
			contentType: "application/json",
			body:        "",
			limit:       DefaultSummaryLimit,
			want:        "",
		},
		{
			name:        "json is collapsed",
			contentType: "application/json",
			body:        "{\n  \"detail\": \"Not Found\"\n}",
			limit:       DefaultSummaryLimit,
			want:        `{ "detail": "Not Found" }`,
		},
		{
			name:        "html by content type",
			contentType: "text/html; charset=utf-8",
			body:        nginx,
			limit:       DefaultSummaryLimit,
			want:        "502 Bad Gateway nginx",
		},
		{
			name:        "html sniffed without content type",
			contentType: "",
			body:        "<!DOCTYPE html><html><body><p>Internal &amp; broken</p></body></html>",
			limit:       DefaultSummaryLimit,
			want:        "Internal & broken",
		},
		{
			name:        "plain text",
			contentType: "text/plain",
			body:        "Internal Server Error",
			limit:       DefaultSummaryLimit,
			want:        "Internal Server Error",
		},
		{
			name:        "truncated",
			contentType: "text/plain",
			body:        strings.Repeat("ż", 10),
			limit:       4,
			want:        "żżżż...",
		},
		{
			name:        "no limit",
			contentType: "text/plain",
			body:        "abcdef",
			limit:       0,
			want:        "abcdef",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BodySummary(tt.contentType, []byte(tt.body), tt.limit)
			assert.Equal(t, tt.want, got)
		})
	}
}
