// asterix/decoder.go
package asterix

import (
	"fmt"

	"github.com/asterixkit/getafix/schema"
)

// Default resource limits. Exceeding any of them is a classified error,
// never silent truncation.
const (
	DefaultMaxVariableParts = 16
	DefaultMaxErrorsPerRecord = 64
)

// UnknownItemPolicy controls what happens when an FSPEC bit addresses a
// slot beyond the UAP or a declared spare. The item occupies no known
// bytes, so only the bit itself can be skipped.
type UnknownItemPolicy uint8

const (
	// UnknownItemRecord attaches an error to the record and continues
	UnknownItemRecord UnknownItemPolicy = iota
	// UnknownItemSkip attaches a warning that does not count against the
	// record's error budget
	UnknownItemSkip
	// UnknownItemAbort terminates the record (and its datablock)
	UnknownItemAbort
)

// TrailingBytesPolicy controls the handling of bytes left after the last
// FSPEC-announced item of an externally-framed record.
type TrailingBytesPolicy uint8

const (
	// TrailingWarn records the leftover bytes as a non-fatal diagnostic
	TrailingWarn TrailingBytesPolicy = iota
	// TrailingIgnore accepts leftover bytes silently
	TrailingIgnore
	// TrailingError records the diagnostic and also returns it as the
	// decode call's error
	TrailingError
)

// EditionPolicy selects the schema edition per category. The wire format
// carries no edition tag; there is no fallback beyond what the policy
// states. A Decoder built without WithEditionPolicy uses a policy with only
// PreferLatest set, so each category decodes with its most recently
// registered edition.
type EditionPolicy struct {
	PerCategory  map[schema.Category]string
	Default      string // tag tried for categories not listed, "" for none
	PreferLatest bool   // fall back to the most recently registered edition
}

type options struct {
	editions         EditionPolicy
	onUnknownItem    UnknownItemPolicy
	onTrailingBytes  TrailingBytesPolicy
	maxFspecBytes    int
	maxVariableParts int
	maxErrors        int
	stopOnFirst      bool
}

func defaultOptions() options {
	return options{
		editions:         EditionPolicy{PreferLatest: true},
		onUnknownItem:    UnknownItemRecord,
		onTrailingBytes:  TrailingWarn,
		maxFspecBytes:    DefaultMaxFspecBytes,
		maxVariableParts: DefaultMaxVariableParts,
		maxErrors:        DefaultMaxErrorsPerRecord,
	}
}

// Option configures a Decoder
type Option func(*options)

// WithEditionPolicy sets the category-to-edition mapping
func WithEditionPolicy(p EditionPolicy) Option {
	return func(o *options) { o.editions = p }
}

// WithUnknownItemPolicy sets the handling of FSPEC bits without a UAP item
func WithUnknownItemPolicy(p UnknownItemPolicy) Option {
	return func(o *options) { o.onUnknownItem = p }
}

// WithTrailingBytesPolicy sets the handling of leftover record bytes
func WithTrailingBytesPolicy(p TrailingBytesPolicy) Option {
	return func(o *options) { o.onTrailingBytes = p }
}

// WithMaxFspecBytes bounds the FSPEC bitmap length
func WithMaxFspecBytes(n int) Option {
	return func(o *options) { o.maxFspecBytes = n }
}

// WithMaxVariableParts bounds the extent chain of Variable items
func WithMaxVariableParts(n int) Option {
	return func(o *options) { o.maxVariableParts = n }
}

// WithMaxErrorsPerRecord bounds the error list before the record aborts
func WithMaxErrorsPerRecord(n int) Option {
	return func(o *options) { o.maxErrors = n }
}

// WithStopOnFirstError aborts a record at its first recoverable error
func WithStopOnFirstError() Option {
	return func(o *options) { o.stopOnFirst = true }
}

// Decoder decodes ASTERIX datablocks and records against an immutable
// schema registry. A Decoder is safe for concurrent use: each call works
// on its own state and the registry is read-only.
type Decoder struct {
	reg  *schema.Registry
	opts options
}

// NewDecoder creates a decoder over a schema registry
func NewDecoder(reg *schema.Registry, opts ...Option) (*Decoder, error) {
	if reg == nil {
		return nil, fmt.Errorf("registry cannot be nil")
	}
	d := &Decoder{reg: reg, opts: defaultOptions()}
	for _, opt := range opts {
		opt(&d.opts)
	}
	if d.opts.maxFspecBytes < 1 || d.opts.maxVariableParts < 1 || d.opts.maxErrors < 1 {
		return nil, fmt.Errorf("limits must be positive")
	}
	return d, nil
}

// Registry returns the schema registry backing this decoder
func (d *Decoder) Registry() *schema.Registry {
	return d.reg
}

// resolveEdition applies the edition policy to a category
func (d *Decoder) resolveEdition(cat schema.Category) (*schema.Edition, *DecodeError) {
	if !d.reg.Supports(cat) {
		return nil, &DecodeError{
			Kind:     ErrUnsupportedCategory,
			Category: cat,
		}
	}
	if tag, ok := d.opts.editions.PerCategory[cat]; ok {
		if ed, ok := d.reg.Edition(cat, tag); ok {
			return ed, nil
		}
		return nil, &DecodeError{
			Kind:     ErrUnsupportedEdition,
			Category: cat,
			Message:  fmt.Sprintf("edition %s not registered", tag),
		}
	}
	if tag := d.opts.editions.Default; tag != "" {
		if ed, ok := d.reg.Edition(cat, tag); ok {
			return ed, nil
		}
	}
	if d.opts.editions.PreferLatest {
		if ed, ok := d.reg.Latest(cat); ok {
			return ed, nil
		}
	}
	return nil, &DecodeError{
		Kind:     ErrUnsupportedEdition,
		Category: cat,
		Message:  "no edition selected by policy",
	}
}
