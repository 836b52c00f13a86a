package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserLogin_ValidCredentials(t *testing.T) {
	for _, tc := range []map[string]string{
		{"email": "ana@example.com", "password": "123456"},
		{"email": "  ana@example.com  ", "password": "  secret-password "},
		{"email": "a.b+c@sub.example.org", "password": strings.Repeat("x", 64)},
	} {
		res := Validate(UserLogin, tc)
		assert.True(t, res.IsValid, "%v", tc)
		assert.Empty(t, res.Errors, "%v", tc)
	}
}

func TestUserLogin_ShortPassword(t *testing.T) {
	for n := 0; n < UserPasswordMin; n++ {
		res := Validate(UserLogin, map[string]string{"email": "ana@example.com", "password": strings.Repeat("p", n)})
		require.False(t, res.IsValid)
		assert.Contains(t, res.Errors, "password", "length %d", n)
	}
}

func TestAdminLogin_StricterPassword(t *testing.T) {
	for n := 0; n < AdminPasswordMin; n++ {
		res := Validate(AdminLogin, map[string]string{"email": "admin@admin.com", "password": strings.Repeat("p", n)})
		require.False(t, res.IsValid)
		assert.Contains(t, res.Errors, "password", "length %d", n)
	}

	res := Validate(AdminLogin, map[string]string{"email": "admin@admin.com", "password": "12345678"})
	assert.True(t, res.IsValid)
}

func TestValidate_CollectsAllFields(t *testing.T) {
	res := Validate(UserLogin, map[string]string{"email": "not-an-email", "password": "123"})

	require.False(t, res.IsValid)
	assert.Equal(t, map[string]string{
		"email":    "enter a valid email",
		"password": "password must be at least 6 characters",
	}, res.Errors)
}

func TestValidate_MissingFieldsReportRequired(t *testing.T) {
	res := Validate(AdminLogin, map[string]string{})

	assert.Equal(t, map[string]string{
		"email":    "admin email is required",
		"password": "admin password is required",
	}, res.Errors)
}

func TestValidate_WhitespaceOnlyIsMissing(t *testing.T) {
	res := Validate(UserLogin, map[string]string{"email": "   ", "password": "\t\n"})
	assert.Equal(t, "email is required", res.Errors["email"])
	assert.Equal(t, "password is required", res.Errors["password"])
}

func TestUserRegister_ConfirmationMismatch(t *testing.T) {
	pairs := [][2]string{
		{"secret1", "secret2"},
		{"secret1", "Secret1"},
		{"longpassword", "longpasswor"},
		{"abcdef", ""},
	}
	for _, p := range pairs {
		res := Validate(UserRegister, map[string]string{
			"name": "Ana Silva", "email": "ana@example.com",
			"password": p[0], "password_confirmation": p[1],
		})
		require.False(t, res.IsValid, "%v", p)
		assert.Contains(t, res.Errors, "password_confirmation", "%v", p)
	}
}

func TestUserRegister_NameBounds(t *testing.T) {
	form := func(name string) map[string]string {
		return map[string]string{
			"name": name, "email": "ana@example.com",
			"password": "secret1", "password_confirmation": "secret1",
		}
	}

	assert.Equal(t, "name must be at least 3 characters", Validate(UserRegister, form("Al")).Errors["name"])
	assert.Equal(t, "name must be at most 100 characters", Validate(UserRegister, form(strings.Repeat("n", 101))).Errors["name"])
	assert.True(t, Validate(UserRegister, form("Ana")).IsValid)
	assert.True(t, Validate(UserRegister, form(strings.Repeat("é", 100))).IsValid)
}

func TestCreateTravel(t *testing.T) {
	ok := map[string]string{"name": "Conference", "departure_date": "2025-03-01", "return_date": "2025-03-01"}
	assert.True(t, Validate(CreateTravel, ok).IsValid)

	res := Validate(CreateTravel, map[string]string{"name": "", "departure_date": "01/03/2025", "return_date": "2025-02-01"})
	assert.Equal(t, map[string]string{
		"name":           "name is required",
		"departure_date": "departure date must be YYYY-MM-DD",
	}, res.Errors)

	res = Validate(CreateTravel, map[string]string{"name": "x", "departure_date": "2025-03-02", "return_date": "2025-03-01"})
	assert.Equal(t, "return date must not be before departure date", res.Errors["return_date"])
}

func TestValidate_PanickingRuleMapsToGeneral(t *testing.T) {
	schema := Schema{Fields: []Field{{Name: "x", Rules: []Rule{{
		Message: "never",
		Check:   func(string, map[string]string) bool { panic("boom") },
	}}}}}

	res := Validate(schema, map[string]string{"x": "1"})
	assert.False(t, res.IsValid)
	assert.Equal(t, map[string]string{GeneralKey: "validation error"}, res.Errors)
}

func TestTrim_DoesNotMutateInput(t *testing.T) {
	in := map[string]string{"a": " x "}
	out := Trim(in)
	assert.Equal(t, "x", out["a"])
	assert.Equal(t, " x ", in["a"])
}

func TestError(t *testing.T) {
	err := NewError(Validate(UserLogin, map[string]string{}))
	assert.Equal(t, "validation failed: email: email is required; password: password is required", err.Error())
	assert.Len(t, err.Fields(), 2)
}
