package inputval

import "testing"

func TestIsValidObjectID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"507f1f77bcf86cd799439011", true},
		{"000000000000000000000000", true},
		{"FFFFFFFFFFFFFFFFFFFFFFFF", true},
		{"  507f1f77bcf86cd799439011  ", true},

		{"", false},
		{"   ", false},
		{"507f1f77bcf86cd79943901", false},
		{"507f1f77bcf86cd7994390111", false},
		{"507f1f77bcf86cd79943901g", false},
		{"not-a-valid-id", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := IsValidObjectID(tt.id); got != tt.want {
				t.Errorf("IsValidObjectID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	type leadInput struct {
		BusinessName string `validate:"notblank,max=10" label:"Business name"`
		Email        string `validate:"notblank" label:"Email"`
	}

	tests := []struct {
		name       string
		input      leadInput
		wantErrors bool
		wantFirst  string
	}{
		{
			name:  "valid input",
			input: leadInput{BusinessName: "Acme", Email: "a@b.com"},
		},
		{
			name:       "missing name",
			input:      leadInput{Email: "a@b.com"},
			wantErrors: true,
			wantFirst:  "Business name is required.",
		},
		{
			name:       "blank name",
			input:      leadInput{BusinessName: "   ", Email: "a@b.com"},
			wantErrors: true,
			wantFirst:  "Business name is required.",
		},
		{
			name:       "name too long",
			input:      leadInput{BusinessName: "Acme Holdings Worldwide", Email: "a@b.com"},
			wantErrors: true,
			wantFirst:  "Business name must be at most 10 characters.",
		},
		{
			name:       "missing both",
			wantErrors: true,
			wantFirst:  "Business name is required.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.input)
			if result.HasErrors() != tt.wantErrors {
				t.Fatalf("HasErrors = %v, want %v (%v)", result.HasErrors(), tt.wantErrors, result.Errors)
			}
			if tt.wantErrors && result.First() != tt.wantFirst {
				t.Errorf("First() = %q, want %q", result.First(), tt.wantFirst)
			}
		})
	}
}

func TestValidate_ObjectIDRule(t *testing.T) {
	type idInput struct {
		ID string `validate:"required,objectid" label:"Lead ID"`
	}

	if r := Validate(idInput{ID: "507f1f77bcf86cd799439011"}); r.HasErrors() {
		t.Errorf("valid id has errors: %v", r.Errors)
	}
	r := Validate(idInput{ID: "nope"})
	if !r.HasErrors() {
		t.Fatal("invalid id should fail")
	}
	if r.First() != "Lead ID is not a valid identifier." {
		t.Errorf("First() = %q", r.First())
	}
}

func TestResult_All(t *testing.T) {
	r := &Result{}
	if r.All() != "" {
		t.Errorf("All() = %q, want empty", r.All())
	}

	r = &Result{Errors: []FieldError{{Message: "Error 1"}, {Message: "Error 2"}}}
	if want := "Error 1; Error 2"; r.All() != want {
		t.Errorf("All() = %q, want %q", r.All(), want)
	}
}
