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
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
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

func TestIsValidSSN(t *testing.T) {
	valid := []string{"123-45-6789", "000-00-0000"}
	invalid := []string{"123456789", "123-456-789", "12-34-5678", "123-45-67890", "abc-de-fghi", ""}
	for _, ssn := range valid {
		if !IsValidSSN(ssn) {
			t.Errorf("IsValidSSN(%q) = false, want true", ssn)
		}
	}
	for _, ssn := range invalid {
		if IsValidSSN(ssn) {
			t.Errorf("IsValidSSN(%q) = true, want false", ssn)
		}
	}
}

func TestIsValidPhone(t *testing.T) {
	valid := []string{"(555)123-4567", "(000)000-0000"}
	invalid := []string{"555-123-4567", "5551234567", "(555) 123-4567", "(55)123-4567", ""}
	for _, phone := range valid {
		if !IsValidPhone(phone) {
			t.Errorf("IsValidPhone(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidPhone(phone) {
			t.Errorf("IsValidPhone(%q) = true, want false", phone)
		}
	}
}

func TestIsValidZip(t *testing.T) {
	valid := []string{"12345", "12345-6789"}
	invalid := []string{"1234", "123456", "12345-678", "abcde", ""}
	for _, zip := range valid {
		if !IsValidZip(zip) {
			t.Errorf("IsValidZip(%q) = false, want true", zip)
		}
	}
	for _, zip := range invalid {
		if IsValidZip(zip) {
			t.Errorf("IsValidZip(%q) = true, want false", zip)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-02-29"); !ok {
		t.Error("IsValidDate(\"2024-02-29\") = false, want true")
	}
	for _, bad := range []string{"2024-13-01", "01-02-2024", "2024/01/02", ""} {
		if _, ok := IsValidDate(bad); ok {
			t.Errorf("IsValidDate(%q) = true, want false", bad)
		}
	}
}
