package directive

import "testing"

func TestTranslation(t *testing.T) {
	tests := []struct {
		name    string
		comment string
		want    string
		wantOK  bool
	}{
		{
			name:    "simple override",
			comment: "@Translate: Foo",
			want:    "Foo",
			wantOK:  true,
		},
		{
			name:    "override inside larger comment",
			comment: "The job finished without errors.\n@Translate: Finished\n",
			want:    "Finished",
			wantOK:  true,
		},
		{
			name:    "first match wins",
			comment: "@Translate: First and later @Translate: Second",
			want:    "First",
			wantOK:  true,
		},
		{
			name:    "token with digits and underscore",
			comment: "@Translate: v2_Ready",
			want:    "v2_Ready",
			wantOK:  true,
		},
		{
			name:    "no directive",
			comment: "Just a plain comment.",
			wantOK:  false,
		},
		{
			name:    "marker with no token",
			comment: "@Translate: ",
			wantOK:  false,
		},
		{
			name:    "marker at end of comment",
			comment: "See below. @Translate:",
			wantOK:  false,
		},
		{
			name:    "case sensitive marker",
			comment: "@translate: foo",
			wantOK:  false,
		},
		{
			name:    "token stops at non-word character",
			comment: "@Translate: Go-Time",
			want:    "Go",
			wantOK:  true,
		},
		{
			name:    "empty comment",
			comment: "",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Translation(tt.comment)
			if ok != tt.wantOK {
				t.Fatalf("Translation(%q) ok = %v, want %v", tt.comment, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Translation(%q) = %q, want %q", tt.comment, got, tt.want)
			}
		})
	}
}
