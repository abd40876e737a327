package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "06:00", "08:30", "18:15", "23:59"}
	invalid := []string{"24:00", "6:00", "06:60", "0630", "06:3", "", "noon"}
	for _, s := range valid {
		if !IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = true, want false", s)
		}
	}
}

func TestIsValidWeekday(t *testing.T) {
	valid := []string{"monday", "sunday", "Saturday"}
	invalid := []string{"mon", "weekday", "", "lundi"}
	for _, s := range valid {
		if !IsValidWeekday(s) {
			t.Errorf("IsValidWeekday(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidWeekday(s) {
			t.Errorf("IsValidWeekday(%q) = true, want false", s)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"08123456789", "+919876543210", "0812 3456 789"}
	invalid := []string{"12345", "phone", "", "+12-ab-345678"}
	for _, s := range valid {
		if !IsValidPhoneNumber(s) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidPhoneNumber(s) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-02-30"); ok {
		t.Error("IsValidDate accepted an impossible date")
	}
	date, ok := IsValidDate("2025-06-15")
	if !ok {
		t.Fatal("IsValidDate rejected a valid date")
	}
	if date.Day() != 15 {
		t.Errorf("parsed day = %d, want 15", date.Day())
	}
}
