package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/pthm/hxel/lib/styles"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator with the config rules
// registered.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("themecolor", func(fl validator.FieldLevel) bool {
			_, _, _, err := styles.Color(fl.Field().String()).RGB()
			return err == nil
		})

		validateInst = v
	})
	return validateInst
}

// ValidationError describes one invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks cfg against its field rules. The returned error joins a
// *ValidationError per invalid field.
func Validate(cfg *Config) error {
	err := validatorInstance().Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config: validate: %w", err)
	}

	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, &ValidationError{
			Field:   fieldPath(fe.Namespace()),
			Message: describe(fe),
		})
	}
	return errors.Join(errs...)
}

// fieldPath drops the root struct name: "Config.Server.Addr" becomes
// "server.addr".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.ToLower(ns)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fe.Value())
	case "themecolor":
		return fmt.Sprintf("%q is not a #rgb or #rrggbb color", fe.Value())
	case "hostname_port":
		return fmt.Sprintf("%q is not a host:port address", fe.Value())
	case "min":
		return fmt.Sprintf("needs at least %s entries", fe.Param())
	}
	return fmt.Sprintf("fails %q", fe.Tag())
}
