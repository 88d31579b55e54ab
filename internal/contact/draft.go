// Package contact implements the contact form: the draft being edited,
// its validation and the single HTTP POST that delivers it.
package contact

// Field names a draft field. Values match the JSON keys.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// Fields lists every field in form order.
var Fields = []Field{FieldName, FieldEmail, FieldPhone, FieldSubject, FieldMessage}

// RequiredFields must be non-empty before a draft is sent.
var RequiredFields = []Field{FieldName, FieldEmail, FieldPhone, FieldMessage}

func (f Field) String() string { return string(f) }

// Label returns the human-readable field label.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldEmail:
		return "Email"
	case FieldPhone:
		return "Phone"
	case FieldSubject:
		return "Subject"
	case FieldMessage:
		return "Message"
	}
	return string(f)
}

// Required reports whether f must be filled in.
func (f Field) Required() bool {
	for _, r := range RequiredFields {
		if r == f {
			return true
		}
	}
	return false
}

// Draft is the contact inquiry as the user is typing it.
// It is also the JSON body sent to the endpoint.
type Draft struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Update sets one field. It never validates; unknown fields return false.
func (d *Draft) Update(f Field, value string) bool {
	p := d.field(f)
	if p == nil {
		return false
	}
	*p = value
	return true
}

// Get returns the value of a field.
func (d Draft) Get(f Field) string {
	if p := d.field(f); p != nil {
		return *p
	}
	return ""
}

// Reset clears every field.
func (d *Draft) Reset() {
	*d = Draft{}
}

// IsZero reports whether every field is empty.
func (d Draft) IsZero() bool {
	return d == Draft{}
}

// Missing returns the required fields that are empty, in form order.
// Whitespace counts as a value.
func (d *Draft) Missing() []Field {
	var missing []Field
	for _, f := range RequiredFields {
		if d.Get(f) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// Validate returns a *ValidationError when a required field is empty.
func (d *Draft) Validate() error {
	if missing := d.Missing(); len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

func (d *Draft) field(f Field) *string {
	switch f {
	case FieldName:
		return &d.Name
	case FieldEmail:
		return &d.Email
	case FieldPhone:
		return &d.Phone
	case FieldSubject:
		return &d.Subject
	case FieldMessage:
		return &d.Message
	}
	return nil
}
