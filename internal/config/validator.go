package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	lineerrors "github.com/standardbeagle/line/internal/errors"
)

// Validator validates options before a run
type Validator struct{}

// NewValidator creates a new options validator
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks the options a run cannot start without. Problems with the
// matcher arguments are not errors here; they are reported by the run.
// Every failure is collected into one *errors.MultiError.
func (v *Validator) Validate(opts *Options) error {
	if opts == nil {
		return lineerrors.NewConfigError("options", "", errors.New("options cannot be nil"))
	}

	var errs []error
	if err := v.validateStreams(opts); err != nil {
		errs = append(errs, lineerrors.NewConfigError("streams", "", err))
	}

	if err := v.validateSeparator(opts.Separator); err != nil {
		errs = append(errs, lineerrors.NewConfigError("separator", opts.Separator, err))
	}

	if opts.BufferSize < 0 {
		errs = append(errs, lineerrors.NewConfigError("buffer_size", fmt.Sprint(opts.BufferSize),
			errors.New("buffer size cannot be negative")))
	}

	if !slices.Contains(TreeFormats, opts.TreeFormat) {
		errs = append(errs, lineerrors.NewConfigError("tree_format", opts.TreeFormat,
			fmt.Errorf("must be one of %s", strings.Join(TreeFormats, ", "))))
	}

	if opts.TreeDepth < 0 {
		errs = append(errs, lineerrors.NewConfigError("tree_depth", fmt.Sprint(opts.TreeDepth),
			errors.New("tree depth cannot be negative")))
	}

	return lineerrors.NewMultiError(errs).ErrorOrNil()
}

func (v *Validator) validateStreams(opts *Options) error {
	switch {
	case opts.In == nil:
		return errors.New("input stream is not set")
	case opts.Out == nil:
		return errors.New("output stream is not set")
	case opts.Err == nil:
		return errors.New("error stream is not set")
	}
	return nil
}

func (v *Validator) validateSeparator(sep string) error {
	if strings.ContainsAny(sep, "\r\n") {
		return errors.New("separator cannot contain a line break")
	}
	return nil
}

// ValidateOptions is a convenience function for quick validation
func ValidateOptions(opts *Options) error {
	return NewValidator().Validate(opts)
}
