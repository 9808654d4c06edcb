package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"

	val "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"hostel/shared/constant"
	"hostel/shared/failure"
)

var (
	validate *val.Validate

	phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

func registerMimetypeValidation(field val.FieldLevel) bool {
	var contentType string

	switch file := field.Field().Interface().(type) {
	case multipart.FileHeader:
		contentType = file.Header.Get(constant.RequestHeaderContentType)
	case *multipart.FileHeader:
		if file == nil {
			return false
		}

		contentType = file.Header.Get(constant.RequestHeaderContentType)
	default:
		return false
	}

	allowedTypes := strings.Split(field.Param(), " ")

	return slices.Contains(allowedTypes, contentType)
}

func registerFileSizeValidation(field val.FieldLevel) bool {
	var fileSize int64

	switch file := field.Field().Interface().(type) {
	case multipart.FileHeader:
		fileSize = file.Size
	case *multipart.FileHeader:
		if file == nil {
			return false
		}

		fileSize = file.Size
	default:
		return false
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	bytesConversion := 1024.0
	maxSizeBytes := int64(maxSizeMB * bytesConversion * bytesConversion)

	return fileSize <= maxSizeBytes
}

// registerPhoneValidation accepts an optional leading plus and 10 to 15 digits.
func registerPhoneValidation(field val.FieldLevel) bool {
	return phonePattern.MatchString(field.Field().String())
}

// registerPositiveDecimalValidation checks amounts are strictly greater than zero.
// Decimals reach it as float64 through decimalValue.
func registerPositiveDecimalValidation(field val.FieldLevel) bool {
	switch field.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		return field.Field().Float() > 0
	case reflect.Int, reflect.Int32, reflect.Int64:
		return field.Field().Int() > 0
	default:
		return false
	}
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.InexactFloat64()
	}

	return nil
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}

		return name
	})

	validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	rules := map[string]val.Func{
		"empty": func(fl val.FieldLevel) bool {
			return fl.Field().IsZero()
		},
		"mimetypes":   registerMimetypeValidation,
		"maxfilesize": registerFileSizeValidation,
		"phone":       registerPhoneValidation,
		"positive":    registerPositiveDecimalValidation,
	}

	for tag, fn := range rules {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
