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

func TestIsValidRollNo(t *testing.T) {
	valid := []string{"21CS1024", "CS601", "2024MED01", "21cs1024"}
	invalid := []string{"", "AB", "21-CS-1024", "ROLL NO 21", "VERYLONGROLLNUMBER123"}
	for _, roll := range valid {
		if !IsValidRollNo(roll) {
			t.Errorf("IsValidRollNo(%q) = false, want true", roll)
		}
	}
	for _, roll := range invalid {
		if IsValidRollNo(roll) {
			t.Errorf("IsValidRollNo(%q) = true, want false", roll)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-03-05"); !ok {
		t.Error("IsValidDate(2024-03-05) = false, want true")
	}
	for _, s := range []string{"05/03/2024", "2024-13-01", "2024-02-30", "yesterday", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"PRESENT", "ABSENT", "MEDICAL_LEAVE"}
	if !IsInSlice("ABSENT", slice) {
		t.Error("IsInSlice(ABSENT) = false, want true")
	}
	if IsInSlice("EXCUSED", slice) {
		t.Error("IsInSlice(EXCUSED) = true, want false")
	}
}
