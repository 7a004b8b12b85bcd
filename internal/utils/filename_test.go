package utils

import "testing"

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"meal.jpg", "meal.jpg"},
		{"My Lunch (1).JPG", "My_Lunch_1_.JPG"},
		{"../../etc/passwd", "passwd"},
		{"..\\..\\boot.ini", "boot.ini"},
		{"/absolute/path/pic.png", "pic.png"},
		{"...", ""},
		{"", ""},
		{"____", ""},
	}
	for _, tc := range cases {
		if got := SanitizeFilename(tc.in); got != tc.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExtAllowed(t *testing.T) {
	allowed := map[string]bool{"png": true, "jpg": true, "jpeg": true}
	cases := []struct {
		name string
		want bool
	}{
		{"meal.jpg", true},
		{"meal.JPG", true},
		{"photo.jpeg", true},
		{"pic.PNG", true},
		{"shirt.txt", false},
		{"noext", false},
		{"archive.tar.gz", false},
	}
	for _, tc := range cases {
		if got := ExtAllowed(tc.name, allowed); got != tc.want {
			t.Errorf("ExtAllowed(%q) = %t, want %t", tc.name, got, tc.want)
		}
	}
}
