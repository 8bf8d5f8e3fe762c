package state

import "github.com/ErlanBelekov/fittrack/internal/validation"

// AuthForm is the signup page: current field values plus the messages
// currently displayed next to them.
type AuthForm struct {
	Values validation.SignupForm   `json:"values"`
	Errors validation.FieldErrors `json:"errors"`
}

// SetField updates one field and clears the message shown for it. Unknown
// field names leave the form unchanged.
func (f AuthForm) SetField(field, value string) AuthForm {
	switch field {
	case validation.FieldEmail:
		f.Values.Email = value
	case validation.FieldFullName:
		f.Values.FullName = value
	case validation.FieldPassword:
		f.Values.Password = value
	case validation.FieldConfirmPassword:
		f.Values.ConfirmPassword = value
	default:
		return f
	}
	if _, shown := f.Errors[field]; shown {
		errs := make(validation.FieldErrors, len(f.Errors))
		for k, v := range f.Errors {
			if k != field {
				errs[k] = v
			}
		}
		f.Errors = errs
	}
	return f
}

// Submit validates every field. ok is true when the form may be sent.
func (f AuthForm) Submit() (next AuthForm, ok bool) {
	f.Errors = f.Values.Validate()
	return f, f.Errors.Empty()
}
