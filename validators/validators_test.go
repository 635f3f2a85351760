package validators

import (
	"strings"
	"testing"
)

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"a@b.co", true},
		{"user.name+tag@example.co.uk", true},
		{"USER_1%x-y@sub.example.com", true},
		{"a@b", false},
		{"a@b.c", false},
		{"@example.com", false},
		{"user@", false},
		{"user@exa_mple.com", false},
		{"user example@example.com", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsValidEmail(tc.in); got != tc.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"Abcdef1!", true},
		{"xY9#long-enough", true},
		{"abcdef12", false}, // no upper, no symbol
		{"Abcdefg1", false}, // no symbol
		{"Abcdef!!", false}, // no digit
		{"ABCDEF1!", false}, // no lower
		{"abcdef1!", false}, // no upper
		{"Ab1!", false},     // too short
		{"", false},
	}
	for _, tc := range cases {
		if got := IsValidPassword(tc.in); got != tc.want {
			t.Errorf("IsValidPassword(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestValidateUserDataValid(t *testing.T) {
	d := UserData{
		Name:     "Test User",
		Email:    "test@example.com",
		Username: "tester1",
		Password: "Str0ng!Pass",
	}
	if err := ValidateUserData(d); err != nil {
		t.Fatalf("ValidateUserData() error: %v", err)
	}
}

func TestValidateUserDataFirstViolationWins(t *testing.T) {
	// both username and password are bad; the username rule comes first
	d := UserData{Email: "test@example.com", Username: "abc", Password: "weak"}
	err := ValidateUserData(d)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != "username length must be between 5 and 50 characters" {
		t.Fatalf("unexpected error: %q", got)
	}
}

func TestValidateUserDataViolations(t *testing.T) {
	valid := UserData{
		Name:     "Test User",
		Email:    "test@example.com",
		Username: "tester1",
		Password: "Str0ng!Pass",
	}
	cases := []struct {
		name   string
		mutate func(*UserData)
		msg    string
	}{
		{"missing username", func(d *UserData) { d.Username = "" }, "username is missing"},
		{"missing email", func(d *UserData) { d.Email = "" }, "email is missing"},
		{"missing password", func(d *UserData) { d.Password = "" }, "password is missing"},
		{"short username", func(d *UserData) { d.Username = "abcd" }, "username length must be between 5 and 50 characters"},
		{"long username", func(d *UserData) { d.Username = strings.Repeat("a", 51) }, "username length must be between 5 and 50 characters"},
		{"long email", func(d *UserData) { d.Email = strings.Repeat("a", 45) + "@ex.com" }, "email length must be between 5 and 50 characters"},
		{"long password", func(d *UserData) { d.Password = "Str0ng!" + strings.Repeat("a", 44) }, "password length must be between 8 and 50 characters"},
		{"malformed email", func(d *UserData) { d.Email = "not-an-email" }, "email address is of invalid format, please check and try again"},
		{"weak password", func(d *UserData) { d.Password = "alllowercase1" }, "Password must contain at least 1 special character, 1 upper and 1 lower case letters and 1 number, it should be minimum 8 letters long"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := valid
			tc.mutate(&d)
			err := ValidateUserData(d)
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Error() != tc.msg {
				t.Fatalf("got %q, want %q", err.Error(), tc.msg)
			}
		})
	}
}

func TestValidateUserDataCountsRunes(t *testing.T) {
	d := UserData{
		Name:     "Test User",
		Email:    "test@example.com",
		Username: strings.Repeat("ü", 48), // 96 bytes, 48 runes
		Password: "Str0ng!Pass",
	}
	if err := ValidateUserData(d); err != nil {
		t.Fatalf("48-rune username must pass: %v", err)
	}

	d.Username = strings.Repeat("ü", 51)
	err := ValidateUserData(d)
	if err == nil {
		t.Fatal("51-rune username must fail")
	}
	if got := err.Error(); got != "username length must be between 5 and 50 characters" {
		t.Fatalf("unexpected error: %q", got)
	}
}

func TestValidateTodoData(t *testing.T) {
	cases := []struct {
		name    string
		data    TodoData
		wantErr bool
	}{
		{"valid", TodoData{Title: "Buy milk", Description: "2 liters"}, false},
		{"no description", TodoData{Title: "Buy milk"}, false},
		{"missing title", TodoData{Description: "x"}, true},
		{"title length 2", TodoData{Title: "ab"}, true},
		{"title length 3", TodoData{Title: "abc"}, false},
		{"title length 100", TodoData{Title: strings.Repeat("a", 100)}, false},
		{"title length 101", TodoData{Title: strings.Repeat("a", 101)}, true},
		{"multibyte title length 100", TodoData{Title: strings.Repeat("é", 100)}, false},
		{"multibyte title length 101", TodoData{Title: strings.Repeat("é", 101)}, true},
		{"description length 1000", TodoData{Title: "abc", Description: strings.Repeat("d", 1000)}, false},
		{"description length 1001", TodoData{Title: "abc", Description: strings.Repeat("d", 1001)}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTodoData(tc.data)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateTodoData(%+v) error = %v, wantErr %v", tc.data, err, tc.wantErr)
			}
		})
	}
}
