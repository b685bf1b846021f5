package itembuilder

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/df-mc/dragonfly/server/world"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Factory creates builders sharing a Resolver, Translator and logger.
// Use NewFactory() to create a factory.
//
// A Factory is safe for concurrent use if its Resolver is.
type Factory struct {
	resolver Resolver
	tr       Translator
	l        logrus.FieldLogger
	validate *validator.Validate
}

// Option configures a Factory.
type Option func(*Factory)

// WithResolver sets the material resolver. Defaults to a new Registry.
func WithResolver(r Resolver) Option {
	return func(f *Factory) {
		f.resolver = r
	}
}

// WithTranslator sets the colour translator. Defaults to DefaultTranslator.
func WithTranslator(t Translator) Option {
	return func(f *Factory) {
		f.tr = t
	}
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(l logrus.FieldLogger) Option {
	return func(f *Factory) {
		f.l = l
	}
}

// NewFactory creates a new factory.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{validate: validator.New()}
	for _, opt := range opts {
		opt(f)
	}
	if f.resolver == nil {
		f.resolver = NewRegistry(DefaultHeadCacheSize)
	}
	if f.tr == nil {
		f.tr = DefaultTranslator
	}
	if f.l == nil {
		f.l = discardLogger()
	}
	return f
}

// Resolver returns the factory's material resolver.
func (f *Factory) Resolver() Resolver {
	return f.resolver
}

// New creates a builder wrapping an existing item.
func (f *Factory) New(it Item) *Builder {
	return &Builder{item: it, tr: f.tr, l: f.l}
}

// NewType creates a builder wrapping a fresh item of the type passed with an
// amount of 1.
func (f *Factory) NewType(t world.Item) *Builder {
	return f.New(NewItem(t, 1))
}

// FromConfig creates a builder configured by a config section. It is
// equivalent to FromConfigFor with a nil actor.
//
// Recognised keys are material (required), base64, amount, display_name,
// lore, glow, item_flags, color and enchantments; see Definition. A missing
// or unknown material yields a *ResolutionError.
func (f *Factory) FromConfig(sec Section) (*Builder, error) {
	return f.FromConfigFor(sec, nil)
}

// FromConfigFor is FromConfig for a specific viewer. The actor is accepted
// for per-viewer personalisation but currently does not affect the result.
func (f *Factory) FromConfigFor(sec Section, actor Profile) (*Builder, error) {
	def, err := DecodeDefinition(sec)
	if err != nil {
		return nil, err
	}
	return f.FromDefinitionFor(def, actor)
}

// FromDefinition creates a builder configured by a decoded definition.
func (f *Factory) FromDefinition(def Definition) (*Builder, error) {
	return f.FromDefinitionFor(def, nil)
}

// FromDefinitionFor is FromDefinition for a specific viewer. See FromConfigFor.
func (f *Factory) FromDefinitionFor(def Definition, _ Profile) (*Builder, error) {
	if err := f.validate.Struct(def); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, &ResolutionError{Name: def.Material, Err: fmt.Errorf("invalid item definition: %w", err)}
		}
		return nil, fmt.Errorf("validate item definition: %w", err)
	}

	name := cases.Upper(language.Und).String(def.Material)
	t, ok := f.resolver.Resolve(name)
	if !ok {
		return nil, &ResolutionError{Name: name}
	}

	it := NewItem(t, 1)
	if IsPlayerHead(t) && def.Base64 != nil {
		head, err := f.resolver.Head(*def.Base64)
		if err != nil {
			return nil, err
		}
		it = head
	}

	b := f.New(it)
	if def.Amount != nil {
		b.WithAmount(*def.Amount)
	}
	if def.DisplayName != nil {
		b.WithName(*def.DisplayName)
	}
	if def.Lore != nil {
		b.WithLore(def.Lore...)
	}
	if def.Glow {
		b.WithGlow()
	}
	if def.ItemFlags != nil {
		var flags []Flag
		for _, n := range def.ItemFlags {
			flag, ok := ParseFlag(n)
			if !ok {
				f.l.WithField("flag", n).Debug("Skipping unknown item flag.")
				continue
			}
			flags = append(flags, flag)
		}
		b.WithFlags(flags...)
	}
	if def.Color != nil {
		if _, err := b.WithColor(*def.Color); err != nil {
			return nil, err
		}
	}
	for _, n := range slices.Sorted(maps.Keys(def.Enchantments)) {
		et, ok := ParseEnchantment(cases.Upper(language.Und).String(n))
		if !ok {
			f.l.WithField("enchantment", n).Debug("Skipping unknown enchantment.")
			continue
		}
		b.WithEnchantment(et, def.Enchantments[n])
	}
	return b, nil
}
