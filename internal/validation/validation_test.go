package validation

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"a@x.com",
		"first.last@example.co.uk",
		"user+tag@sub.domain.org",
	}
	for _, email := range valid {
		if err := ValidateEmail(email); err != nil {
			t.Errorf("ValidateEmail(%q) = %v, want nil", email, err)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"@no-local.com",
		"no-domain@",
		"spaces in@address.com",
		"no-tld@host",
	}
	for _, email := range invalid {
		if err := ValidateEmail(email); err == nil {
			t.Errorf("ValidateEmail(%q) = nil, want error", email)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("Password123"); err != nil {
		t.Errorf("expected valid password, got %v", err)
	}
	for _, pw := range []string{"short1", "alllettersonly", "123456789"} {
		if err := ValidatePassword(pw); err == nil {
			t.Errorf("ValidatePassword(%q) = nil, want error", pw)
		}
	}
}
