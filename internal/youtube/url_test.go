package youtube

import "testing"

func TestVideoID(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"watch url", "https://www.youtube.com/watch?v=pMSXPgAUq_k", "pMSXPgAUq_k", true},
		{"watch url without www", "https://youtube.com/watch?v=pMSXPgAUq_k", "pMSXPgAUq_k", true},
		{"watch url with extra params", "https://www.youtube.com/watch?v=pMSXPgAUq_k&list=PL123&index=2", "pMSXPgAUq_k", true},
		{"short url", "https://youtu.be/pMSXPgAUq_k", "pMSXPgAUq_k", true},
		{"short url with query", "https://youtu.be/pMSXPgAUq_k?t=30", "pMSXPgAUq_k", true},
		{"short url with trailing path", "https://youtu.be/pMSXPgAUq_k/extra", "pMSXPgAUq_k", true},
		{"other host", "https://vimeo.com/12345", "", false},
		{"watch url without id", "https://www.youtube.com/watch", "", false},
		{"malformed id", "https://youtu.be/short", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := VideoID(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("VideoID(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTimedURL(t *testing.T) {
	got := TimedURL("pMSXPgAUq_k", 485)
	want := "https://www.youtube.com/watch?v=pMSXPgAUq_k&t=485s"
	if got != want {
		t.Errorf("TimedURL = %s, want %s", got, want)
	}
}
