package typescript

import "testing"

func TestHumanize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"READY_TO_START", "Ready To Start"},
		{"UNSPECIFIED", "Unspecified"},
		{"ACTIVE", "Active"},
		{"DONE", "Done"},
		{"", ""},
		{"A", "A"},
		{"a", "A"},
		{"ALREADY SPACED OUT", "Already Spaced Out"},
		{"MIXED_case_Words", "Mixed Case Words"},
		{"DOUBLE__UNDERSCORE", "Double  Underscore"},
		{"_LEADING", " Leading"},
		{"TRAILING_", "Trailing "},
		{"HTTP_404", "Http 404"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Humanize(tt.in); got != tt.want {
				t.Errorf("Humanize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestHumanizeIdempotentShape(t *testing.T) {
	// Humanizing an already humanized label leaves it unchanged.
	once := Humanize("READY_TO_START")
	if twice := Humanize(once); twice != once {
		t.Errorf("Humanize(%q) = %q, want %q", once, twice, once)
	}
}
