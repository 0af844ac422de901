package validate

import "testing"

func TestEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"paola@example.com", true},
		{"a@b.co", true},
		{"  paola@example.com  ", true},
		{"paola@example", false},
		{"paola.example.com", false},
		{"@example.com", false},
		{"", false},
	}
	for _, test := range tests {
		if got := Email(test.email); got != test.want {
			t.Errorf("Email(%q) = %v, want %v", test.email, got, test.want)
		}
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Secret1", true},
		{"A1bcde", true},
		{"short1A", true},
		{"secret1", false}, // no uppercase
		{"SECRETS", false}, // no digit
		{"Ab1", false},     // too short
		{"", false},
	}
	for _, test := range tests {
		if got := Password(test.password); got != test.want {
			t.Errorf("Password(%q) = %v, want %v", test.password, got, test.want)
		}
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"12345678", true},
		{"  12345678  ", true},
		{"", false},
		{"1234567", false},
		{"123456789", false},
		{"1234567a", false},
		{"+1234567", false},
	}
	for _, test := range tests {
		if got := Phone(test.phone); got != test.want {
			t.Errorf("Phone(%q) = %v, want %v", test.phone, got, test.want)
		}
	}
}

func TestCheckRegistrationValid(t *testing.T) {
	errs := CheckRegistration(Registration{
		Name:            "Paola",
		Nickname:        "paoox",
		Email:           "paola@example.com",
		Password:        "Secret1",
		ConfirmPassword: "Secret1",
		Phone:           "12345678",
	})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestCheckRegistrationRejectsEmptyPhone(t *testing.T) {
	errs := CheckRegistration(Registration{
		Name:            "Paola",
		Nickname:        "paoox",
		Email:           "paola@example.com",
		Password:        "Secret1",
		ConfirmPassword: "Secret1",
		Phone:           "",
	})
	if _, ok := ByField(errs)["phone"]; !ok {
		t.Error("expected a phone error for an empty phone")
	}
}

func TestCheckRegistrationCollectsAllFailures(t *testing.T) {
	errs := CheckRegistration(Registration{
		Email:           "bad",
		Password:        "weak",
		ConfirmPassword: "different",
		Phone:           "123",
	})

	byField := ByField(errs)
	for _, field := range []string{"name", "nickname", "email", "password", "confirmPassword", "phone"} {
		if _, ok := byField[field]; !ok {
			t.Errorf("expected an error for field %q", field)
		}
	}
}

func TestCheckRegistrationMismatchedConfirm(t *testing.T) {
	errs := CheckRegistration(Registration{
		Name:            "Paola",
		Nickname:        "paoox",
		Email:           "paola@example.com",
		Password:        "Secret1",
		ConfirmPassword: "Secret2",
	})
	if len(errs) != 1 || errs[0].Field != "confirmPassword" {
		t.Fatalf("expected only the confirmPassword error, got %v", errs)
	}
}

func TestCheckPasswordReset(t *testing.T) {
	errs := CheckPasswordReset(PasswordReset{
		Email:           "paola@example.com",
		Password:        "Secret1",
		ConfirmPassword: "Secret1",
	})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	errs = CheckPasswordReset(PasswordReset{Email: "nope", Password: "x", ConfirmPassword: "y"})
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %v", errs)
	}
}

func TestByFieldEmpty(t *testing.T) {
	if got := ByField(nil); got != nil {
		t.Errorf("ByField(nil) = %v, want nil", got)
	}
}
