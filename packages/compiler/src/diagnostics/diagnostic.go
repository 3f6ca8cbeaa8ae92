package diagnostics

import (
	"fmt"
	"strings"

	"github.com/aspnet/Razor-sub002/packages/compiler/src/util"
)

// Severity represents the level of a diagnostic
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns the display name of the severity
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Kind identifies a family of diagnostics independent of message wording
type Kind string

// Descriptor describes one diagnostic shape: its id, kind, severity and message template
type Descriptor struct {
	ID       string
	Kind     Kind
	Severity Severity
	Format   string
}

// Diagnostic is a validation finding attached to a built value. It is data, never
// returned as a Go error by builders.
type Diagnostic struct {
	descriptor Descriptor
	args       []string
	span       *util.ParseSourceSpan
}

// New creates a Diagnostic for descriptor with message arguments and an optional span
func New(descriptor Descriptor, span *util.ParseSourceSpan, args ...string) Diagnostic {
	copied := make([]string, len(args))
	copy(copied, args)
	return Diagnostic{
		descriptor: descriptor,
		args:       copied,
		span:       span,
	}
}

// Descriptor returns the descriptor the diagnostic was created from
func (d Diagnostic) Descriptor() Descriptor {
	return d.descriptor
}

// ID returns the diagnostic id
func (d Diagnostic) ID() string {
	return d.descriptor.ID
}

// Kind returns the diagnostic kind
func (d Diagnostic) Kind() Kind {
	return d.descriptor.Kind
}

// Severity returns the diagnostic severity
func (d Diagnostic) Severity() Severity {
	return d.descriptor.Severity
}

// Args returns a copy of the message template arguments
func (d Diagnostic) Args() []string {
	args := make([]string, len(d.args))
	copy(args, d.args)
	return args
}

// Span returns the source span, nil when the diagnostic has no location
func (d Diagnostic) Span() *util.ParseSourceSpan {
	return d.span
}

// Message formats the message template with the diagnostic arguments
func (d Diagnostic) Message() string {
	args := make([]any, len(d.args))
	for i, arg := range d.args {
		args[i] = arg
	}
	return fmt.Sprintf(d.descriptor.Format, args...)
}

// Error implements the error interface
func (d Diagnostic) Error() string {
	return d.String()
}

// String returns "ID: message", followed by the span when one is present
func (d Diagnostic) String() string {
	if d.span == nil {
		return fmt.Sprintf("%s: %s", d.descriptor.ID, d.Message())
	}
	return fmt.Sprintf("%s: %s: %s", d.span, d.descriptor.ID, d.Message())
}

// Equal reports whether two diagnostics have the same descriptor, arguments and span
func (d Diagnostic) Equal(other Diagnostic) bool {
	if d.descriptor != other.descriptor || len(d.args) != len(other.args) {
		return false
	}
	for i := range d.args {
		if d.args[i] != other.args[i] {
			return false
		}
	}
	return d.span.Equal(other.span)
}

// List is an ordered sequence of diagnostics
type List []Diagnostic

// HasErrors reports whether any diagnostic in the list is an error
func (l List) HasErrors() bool {
	for _, d := range l {
		if d.Severity() == SeverityError {
			return true
		}
	}
	return false
}

// Errors returns the error-severity diagnostics
func (l List) Errors() List {
	var errs List
	for _, d := range l {
		if d.Severity() == SeverityError {
			errs = append(errs, d)
		}
	}
	return errs
}

// Error implements the error interface
func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no diagnostics"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", l[0].Error(), len(l)-1)
	}
}

// String renders one diagnostic per line
func (l List) String() string {
	lines := make([]string, len(l))
	for i, d := range l {
		lines[i] = d.String()
	}
	return strings.Join(lines, "\n")
}
