package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"staynest/internal/dto"
	"staynest/pkg/apperrors"
)

// FieldError is one failed rule, rendered as `"listing.title" is required`.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return strconv.Quote(e.Field) + " " + e.Message
}

// FieldErrors is the result of a schema check: empty means valid.
type FieldErrors []FieldError

func (fe FieldErrors) Valid() bool {
	return len(fe) == 0
}

func (fe FieldErrors) Messages() []string {
	msgs := make([]string, len(fe))
	for i, e := range fe {
		msgs[i] = e.String()
	}
	return msgs
}

func (fe FieldErrors) Error() string {
	return strings.Join(fe.Messages(), ",")
}

// Err converts the result into a 400 AppError, or nil when valid.
func (fe FieldErrors) Err() error {
	if fe.Valid() {
		return nil
	}
	return apperrors.ValidationError(fe.Messages())
}

type Options struct {
	// AllowUnknown drops keys that are not part of a schema instead of reporting them.
	AllowUnknown bool
}

// Validator checks decoded payloads field by field.
// Individual rules are evaluated with go-playground/validator.
type Validator struct {
	validate     *validator.Validate
	allowUnknown bool
}

func New(opts Options) *Validator {
	return &Validator{
		validate:     validator.New(),
		allowUnknown: opts.AllowUnknown,
	}
}

// rule returns the failing tag and its parameter, or "" when value satisfies tags.
func (v *Validator) rule(value any, tags string) (string, string) {
	err := v.validate.Var(value, tags)
	if err == nil {
		return "", ""
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return ve[0].Tag(), ve[0].Param()
	}
	return tags, ""
}

func ruleMessage(tag, param string) string {
	switch tag {
	case "required":
		return "is not allowed to be empty"
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", param)
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", param)
	default:
		return fmt.Sprintf("failed on the '%s' rule", tag)
	}
}

// object walks one level of a payload, remembering which keys the schema knows.
type object struct {
	v     *Validator
	path  string
	body  dto.Body
	errs  *FieldErrors
	known map[string]bool
}

func (v *Validator) object(path string, body dto.Body, errs *FieldErrors) *object {
	return &object{v: v, path: path, body: body, errs: errs, known: map[string]bool{}}
}

func (o *object) field(key string) string {
	if o.path == "" {
		return key
	}
	return o.path + "." + key
}

func (o *object) fail(key, message string) {
	*o.errs = append(*o.errs, FieldError{Field: o.field(key), Message: message})
}

func (o *object) lookup(key string) (any, bool) {
	o.known[key] = true
	val, ok := o.body[key]
	return val, ok
}

func (o *object) requiredObject(key string) (*object, bool) {
	val, ok := o.lookup(key)
	if !ok {
		o.fail(key, "is required")
		return nil, false
	}
	nested, ok := val.(dto.Body)
	if !ok {
		o.fail(key, "must be of type object")
		return nil, false
	}
	return o.v.object(o.field(key), nested, o.errs), true
}

// optionalObject accepts an absent or null value as "not set".
func (o *object) optionalObject(key string) (*object, bool) {
	val, ok := o.lookup(key)
	if !ok || val == nil {
		return nil, false
	}
	nested, ok := val.(dto.Body)
	if !ok {
		o.fail(key, "must be of type object")
		return nil, false
	}
	return o.v.object(o.field(key), nested, o.errs), true
}

func (o *object) requiredString(key string) string {
	val, ok := o.lookup(key)
	if !ok {
		o.fail(key, "is required")
		return ""
	}
	s, ok := val.(string)
	if !ok {
		o.fail(key, "must be a string")
		return ""
	}
	if tag, param := o.v.rule(s, "required"); tag != "" {
		o.fail(key, ruleMessage(tag, param))
	}
	return s
}

// optionalString allows absent, null and empty values.
func (o *object) optionalString(key string) string {
	val, ok := o.lookup(key)
	if !ok || val == nil {
		return ""
	}
	s, ok := val.(string)
	if !ok {
		o.fail(key, "must be a string")
		return ""
	}
	return s
}

func (o *object) number(key string) (float64, bool) {
	val, _ := o.lookup(key)
	f, ok := toNumber(val)
	if !ok {
		o.fail(key, "must be a number")
		return 0, false
	}
	return f, true
}

// optionalNumber treats absent, null and blank values as "not set". Blank is what an empty form input posts.
func (o *object) optionalNumber(key, tags string) *float64 {
	val, ok := o.lookup(key)
	if !ok || val == nil {
		return nil
	}
	if s, isString := val.(string); isString && strings.TrimSpace(s) == "" {
		return nil
	}
	f, ok := o.number(key)
	if !ok {
		return nil
	}
	if tag, param := o.v.rule(f, tags); tag != "" {
		o.fail(key, ruleMessage(tag, param))
		return nil
	}
	return &f
}

func (o *object) requiredInteger(key, tags string) int {
	if _, ok := o.lookup(key); !ok {
		o.fail(key, "is required")
		return 0
	}
	f, ok := o.number(key)
	if !ok {
		return 0
	}
	if f != math.Trunc(f) {
		o.fail(key, "must be an integer")
		return 0
	}
	// bounds on the float: int(f) wraps for huge values
	if tag, param := o.v.rule(f, tags); tag != "" {
		o.fail(key, ruleMessage(tag, param))
		return 0
	}
	return int(f)
}

// done reports keys the schema never asked for.
func (o *object) done() {
	if o.v.allowUnknown {
		return
	}
	var unknown []string
	for k := range o.body {
		if !o.known[k] {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		o.fail(k, "is not allowed")
	}
}

func toNumber(val any) (float64, bool) {
	var f float64
	switch n := val.(type) {
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case float64:
		f = n
	case int:
		f = float64(n)
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
