package validators

import "testing"

func TestIsEmailValid(t *testing.T) {
	valid := []string{
		"jane@x.com",
		"jane.doe+crm@sub.example.co.in",
	}
	for _, e := range valid {
		if !IsEmailValid(e) {
			t.Errorf("IsEmailValid(%q) = false, want true", e)
		}
	}

	invalid := []string{
		"",
		"   ",
		"not-an-email",
		"jane@",
		"@x.com",
		"jane@localhost",
		"Jane Doe <jane@x.com>",
	}
	for _, e := range invalid {
		if IsEmailValid(e) {
			t.Errorf("IsEmailValid(%q) = true, want false", e)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Jane@X.COM "); got != "jane@x.com" {
		t.Errorf("NormalizeEmail = %q", got)
	}
}
