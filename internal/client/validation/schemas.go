package validation

// Minimum password lengths. Admin accounts are held to a stricter rule.
const (
	UserPasswordMin  = 6
	AdminPasswordMin = 8
)

var UserLogin = Schema{
	Name: "user-login",
	Fields: []Field{
		{Name: "email", Rules: []Rule{
			Required("email is required"),
			Email("enter a valid email"),
		}},
		{Name: "password", Rules: []Rule{
			Required("password is required"),
			MinLen(UserPasswordMin, "password must be at least 6 characters"),
		}},
	},
}

var UserRegister = Schema{
	Name: "user-register",
	Fields: []Field{
		{Name: "name", Rules: []Rule{
			Required("name is required"),
			MinLen(3, "name must be at least 3 characters"),
			MaxLen(100, "name must be at most 100 characters"),
		}},
		{Name: "email", Rules: []Rule{
			Required("email is required"),
			Email("enter a valid email"),
		}},
		{Name: "password", Rules: []Rule{
			Required("password is required"),
			MinLen(UserPasswordMin, "password must be at least 6 characters"),
		}},
		{Name: "password_confirmation", Rules: []Rule{
			Required("password confirmation is required"),
			EqualsField("password", "passwords do not match"),
		}},
	},
}

var AdminLogin = Schema{
	Name: "admin-login",
	Fields: []Field{
		{Name: "email", Rules: []Rule{
			Required("admin email is required"),
			Email("enter a valid email"),
		}},
		{Name: "password", Rules: []Rule{
			Required("admin password is required"),
			MinLen(AdminPasswordMin, "password must be at least 8 characters"),
		}},
	},
}

var CreateTravel = Schema{
	Name: "create-travel-request",
	Fields: []Field{
		{Name: "name", Rules: []Rule{
			Required("name is required"),
			MaxLen(255, "name must be at most 255 characters"),
		}},
		{Name: "departure_date", Rules: []Rule{
			Required("departure date is required"),
			Date("departure date must be YYYY-MM-DD"),
		}},
		{Name: "return_date", Rules: []Rule{
			Required("return date is required"),
			Date("return date must be YYYY-MM-DD"),
			NotBeforeField("departure_date", "return date must not be before departure date"),
		}},
	},
}
