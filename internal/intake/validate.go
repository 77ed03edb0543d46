package intake

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one rejected form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when a form or section is out of bounds.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// labels are the human names used in messages, keyed by json field name.
var labels = map[string]string{
	"age":                "age",
	"gender":             "gender",
	"weight":             "weight",
	"height":             "height",
	"waistCircumference": "waist circumference",
	"lastCheckup":        "last checkup",
	"systolicBP":         "systolic blood pressure",
	"diastolicBP":        "diastolic blood pressure",
	"restingHeartRate":   "resting heart rate",
	"glucose":            "fasting glucose",
	"hba1c":              "HbA1c",
	"cholesterol":        "total cholesterol",
	"hdlCholesterol":     "HDL cholesterol",
	"ldlCholesterol":     "LDL cholesterol",
	"triglycerides":      "triglycerides",
	"exerciseFrequency":  "exercise frequency",
	"exerciseIntensity":  "exercise intensity",
	"smokingStatus":      "smoking status",
	"smokingYears":       "years smoked",
	"cigarettesPerDay":   "cigarettes per day",
	"alcoholConsumption": "alcohol consumption",
	"dietQuality":        "diet quality",
	"waterIntake":        "water intake",
	"sleepHours":         "sleep hours",
	"sleepQuality":       "sleep quality",
	"stressLevel":        "stress level",
	"mentalHealthStatus": "mental health status",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// check validates any form section struct and converts validator errors
// into a *ValidationError.
func check(section any) error {
	err := validate.Struct(section)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	label := labels[fe.Field()]
	if label == "" {
		label = fe.Field()
	}
	switch fe.Tag() {
	case "gte", "lte":
		lo, hi := bounds(fe)
		return fmt.Sprintf("%s must be between %s and %s", label, lo, hi)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

// bounds reads both ends of a gte/lte pair off the struct tag so either
// failure reports the full range.
func bounds(fe validator.FieldError) (string, string) {
	var lo, hi string
	field, ok := fieldByJSONName(fe)
	if !ok {
		return fe.Param(), fe.Param()
	}
	for _, rule := range strings.Split(field.Tag.Get("validate"), ",") {
		switch {
		case strings.HasPrefix(rule, "gte="):
			lo = strings.TrimPrefix(rule, "gte=")
		case strings.HasPrefix(rule, "lte="):
			hi = strings.TrimPrefix(rule, "lte=")
		}
	}
	return lo, hi
}

var sectionTypes = []reflect.Type{
	reflect.TypeOf(PersonalInfo{}),
	reflect.TypeOf(VitalSigns{}),
	reflect.TypeOf(Lifestyle{}),
	reflect.TypeOf(MedicalHistory{}),
	reflect.TypeOf(Wellness{}),
}

func fieldByJSONName(fe validator.FieldError) (reflect.StructField, bool) {
	for _, t := range sectionTypes {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if strings.SplitN(f.Tag.Get("json"), ",", 2)[0] == fe.Field() {
				return f, true
			}
		}
	}
	return reflect.StructField{}, false
}
