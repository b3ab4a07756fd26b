package relay

import (
	"testing"
)

func TestParseSubmission(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Submission
	}{
		{
			name: "json object",
			body: `{"name":"Jo","email":"jo@x.com","message":"Hi","website":"","projectType":"Poster","budget":"$500"}`,
			want: Submission{Name: "Jo", Email: "jo@x.com", Message: "Hi", ProjectType: "Poster", Budget: "$500"},
		},
		{
			name: "json string wrapping json",
			body: `"{\"name\":\"Jo\",\"email\":\"jo@x.com\",\"message\":\"Hi\"}"`,
			want: Submission{Name: "Jo", Email: "jo@x.com", Message: "Hi"},
		},
		{
			name: "fields are trimmed",
			body: `{"name":"  Jo  ","email":" jo@x.com ","message":"  Hi  "}`,
			want: Submission{Name: "Jo", Email: "jo@x.com", Message: "Hi"},
		},
		{
			name: "non-string scalars are coerced",
			body: `{"name":42,"email":"jo@x.com","message":true,"budget":3.5}`,
			want: Submission{Name: "42", Email: "jo@x.com", Message: "true", Budget: "3.5"},
		},
		{
			name: "non-scalar values become empty",
			body: `{"name":{"first":"Jo"},"email":["jo@x.com"],"message":null}`,
			want: Submission{},
		},
		{
			name: "malformed json becomes empty submission",
			body: `{"name":"Jo",`,
			want: Submission{},
		},
		{
			name: "empty body",
			body: "",
			want: Submission{},
		},
		{
			name: "missing fields default to empty",
			body: `{"email":"jo@x.com"}`,
			want: Submission{Email: "jo@x.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseSubmission([]byte(tt.body)); got != tt.want {
				t.Errorf("ParseSubmission() = %+v; want %+v", got, tt.want)
			}
		})
	}
}

func TestNewCorrelationTag(t *testing.T) {
	a := NewCorrelationTag()
	b := NewCorrelationTag()

	if len(a) != 8 {
		t.Errorf("tag %q should be 8 characters", a)
	}
	if a == b {
		t.Errorf("tags should be random, got %q twice", a)
	}
}
