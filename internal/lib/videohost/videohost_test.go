package videohost

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/course-platform/internal/errs"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "youtube watch link", url: "https://www.youtube.com/watch?v=x", wantErr: false},
		{name: "short youtu.be link", url: "https://youtu.be/x", wantErr: false},
		{name: "bare youtube.com", url: "https://youtube.com/watch?v=x", wantErr: false},
		{name: "empty value allowed", url: "", wantErr: false},
		{name: "third-party host", url: "https://example.com/x", wantErr: true},
		{name: "lookalike host", url: "https://notyoutube.com/x", wantErr: true},
		{name: "suffix trick", url: "https://youtube.com.evil.org/x", wantErr: true},
		{name: "no host", url: "not-a-url", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errs.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
