package validation

// Field names used as keys in FieldErrors. They match the JSON names of the
// request bodies so the client can attach messages to inputs directly.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldFullName        = "full_name"
)

const (
	MsgEmailRequired    = "Email is required"
	MsgPasswordRequired = "Password is required"
	MsgFullNameRequired = "Full name is required"
	MsgConfirmRequired  = "Confirm password is required"
	MsgPasswordMismatch = "Passwords do not match"
)

// FieldErrors maps a field name to the single message shown next to it.
type FieldErrors map[string]string

func (e FieldErrors) Empty() bool { return len(e) == 0 }

func (e FieldErrors) set(field string, r Result) {
	if !r.Valid {
		e[field] = r.Message
	}
}

type SignupForm struct {
	Email           string `json:"email"`
	FullName        string `json:"full_name"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Validate checks every field and returns the first failing rule of each.
func (f SignupForm) Validate() FieldErrors {
	errs := FieldErrors{}
	errs.set(FieldEmail, requiredEmail(f.Email))

	if f.FullName == "" {
		errs[FieldFullName] = MsgFullNameRequired
	} else {
		errs.set(FieldFullName, ValidateFullName(f.FullName))
	}

	if f.Password == "" {
		errs[FieldPassword] = MsgPasswordRequired
	} else {
		errs.set(FieldPassword, ValidatePassword(f.Password))
	}

	switch {
	case f.ConfirmPassword == "":
		errs[FieldConfirmPassword] = MsgConfirmRequired
	case f.Password != f.ConfirmPassword:
		errs[FieldConfirmPassword] = MsgPasswordMismatch
	}
	return errs
}

type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (f LoginForm) Validate() FieldErrors {
	errs := FieldErrors{}
	errs.set(FieldEmail, requiredEmail(f.Email))
	if f.Password == "" {
		errs[FieldPassword] = MsgPasswordRequired
	}
	return errs
}

type ResetRequestForm struct {
	Email string `json:"email"`
}

func (f ResetRequestForm) Validate() FieldErrors {
	errs := FieldErrors{}
	errs.set(FieldEmail, ValidateEmail(f.Email))
	return errs
}

type ResetConfirmForm struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (f ResetConfirmForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if f.Password == "" {
		errs[FieldPassword] = MsgPasswordRequired
	} else {
		errs.set(FieldPassword, ValidatePassword(f.Password))
	}
	switch {
	case f.ConfirmPassword == "":
		errs[FieldConfirmPassword] = MsgConfirmRequired
	case f.Password != f.ConfirmPassword:
		errs[FieldConfirmPassword] = MsgPasswordMismatch
	}
	return errs
}

func requiredEmail(s string) Result {
	if s == "" {
		return fail(MsgEmailRequired)
	}
	return ValidateEmail(s)
}
