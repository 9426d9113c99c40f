package deck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
)

// ErrInvalidInput marks a request rejected before any work was done.
var ErrInvalidInput = errors.New("invalid input")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode turns raw tool arguments into an ExportRequest, filling defaults
// and rejecting structurally invalid input with ErrInvalidInput.
func Decode(args map[string]any) (*ExportRequest, error) {
	raw, ok := args["slides"]
	if !ok || raw == nil {
		return nil, invalid("slides must be provided as an array of slide objects")
	}
	slides, ok := raw.([]any)
	if !ok {
		return nil, invalid("slides must be provided as an array of slide objects")
	}
	if len(slides) == 0 {
		return nil, invalid("at least one slide must be provided")
	}

	var req ExportRequest
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &req,
		TagName: "mapstructure",
	})
	if err != nil {
		return nil, fmt.Errorf("build decoder: %w", err)
	}
	if err := dec.Decode(args); err != nil {
		return nil, invalid(decodeMessage(err))
	}

	if err := validate.Struct(&req); err != nil {
		return nil, invalid(validationMessage(err))
	}

	// An explicit empty filename is kept; only a missing one is defaulted.
	if v, ok := args["filename"]; !ok || v == nil {
		req.Filename = DefaultFilename
	}
	if req.Options.Layout == "" {
		req.Options.Layout = DefaultLayout
	}
	return &req, nil
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

func decodeMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), "decoding failed due to the following error(s):")
	var lines []string
	for _, line := range strings.Split(msg, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "; ")
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q", fieldPath(fe), fe.Param(), fe.Value()))
		case "min", "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fieldPath(fe)))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", fieldPath(fe), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

// fieldPath renders a validator namespace like ExportRequest.Options.Layout
// as options.layout.
func fieldPath(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToLower(p[:1]) + p[1:]
	}
	return strings.Join(parts, ".")
}
