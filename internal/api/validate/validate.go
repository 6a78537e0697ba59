package validate

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/baharkarakas/employee-backend/internal/models"
)

const CompanyDomain = "astrolitetech.com"

var (
	employeeIDRe = regexp.MustCompile(`^ATS0\d{3}$`)
	emailRe      = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._]{4,}@` + regexp.QuoteMeta(CompanyDomain) + `$`)
	shapeRe      = regexp.MustCompile(`^[A-Za-z]+( [A-Za-z]+)*$`)
)

// ErrField is a single rejected input field.
type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

func (e *ErrField) Error() string { return e.Msg }

func EmployeeIDValid(id string) bool {
	return employeeIDRe.MatchString(id) && id != "ATS0000"
}

func EmailValid(email string) bool {
	return emailRe.MatchString(email)
}

// shapeValid: letter runs split by single spaces, with at least min letters.
func shapeValid(s string, min int) bool {
	if !shapeRe.MatchString(s) {
		return false
	}
	return len(s)-strings.Count(s, " ") >= min
}

func NameValid(name string) bool { return shapeValid(name, 5) }

func RoleValid(role string) bool { return shapeValid(role, 3) }

// ProjectNameValid accepts an empty name; callers decide whether one is required.
func ProjectNameValid(projectName string) bool {
	if projectName == "" {
		return true
	}
	return shapeValid(projectName, 5)
}

// DateValid reports whether s is a calendar date no later than today and no
// earlier than today minus three calendar months, both ends inclusive.
func DateValid(s string, now time.Time) bool {
	d, ok := ParseDate(s, now.Location())
	if !ok {
		return false
	}
	today := midnight(now)
	floor := today.AddDate(0, -3, 0)
	return !d.After(today) && !d.Before(floor)
}

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp and returns local midnight.
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	if d, err := time.ParseInLocation(models.DateLayout, s, loc); err == nil {
		return d, true
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return midnight(ts.In(loc)), true
	}
	return time.Time{}, false
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

var messages = map[string]string{
	"person_name":   "Invalid name format",
	"employee_id":   "Invalid employee ID format",
	"company_email": "Invalid email format",
	"role_name":     "Invalid role format",
	"joining_date":  "Invalid joining date",
	"project_name":  "Invalid project name format",
}

// Validator runs the employee field rules over request structs.
type Validator struct {
	v   *validator.Validate
	now func() time.Time
}

func New(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	vv := &Validator{v: validator.New(), now: now}

	vv.v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	str := func(fn func(string) bool) validator.Func {
		return func(fl validator.FieldLevel) bool { return fn(fl.Field().String()) }
	}
	_ = vv.v.RegisterValidation("person_name", str(NameValid))
	_ = vv.v.RegisterValidation("employee_id", str(EmployeeIDValid))
	_ = vv.v.RegisterValidation("company_email", str(EmailValid))
	_ = vv.v.RegisterValidation("role_name", str(RoleValid))
	_ = vv.v.RegisterValidation("joining_date", func(fl validator.FieldLevel) bool {
		return DateValid(fl.Field().String(), vv.now())
	})
	_ = vv.v.RegisterValidation("project_name", func(fl validator.FieldLevel) bool {
		parent := reflect.Indirect(fl.Parent())
		status := parent.FieldByName("ProjectStatus")
		if !status.IsValid() || status.String() != models.ProjectStatusInProject {
			return true
		}
		name := fl.Field().String()
		return name != "" && ProjectNameValid(name)
	})
	return vv
}

// Now is the clock the date rule is evaluated against.
func (vv *Validator) Now() time.Time { return vv.now() }

// Check validates req and returns the first failing field as *ErrField.
func (vv *Validator) Check(req any) error {
	err := vv.v.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	first := verrs[0]
	msg, ok := messages[first.Tag()]
	if !ok {
		msg = "Invalid " + first.Field()
	}
	return &ErrField{Field: first.Field(), Msg: msg}
}
