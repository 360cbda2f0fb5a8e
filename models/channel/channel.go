// Package channel parses and formats the private subscription channel names
// used by the user.orders and user.trades streams.
//
// A channel is a namespace followed by either two segments
// ({instrument_name}.{interval}) or three ({kind}.{currency}.{interval}).
// Segments are taken verbatim. A field that itself contains a dot cannot be
// represented; the wire format has no escaping.
package channel

import (
	"fmt"
	"strings"
)

const separator = "."

// Namespace is the fixed leading part of a channel name.
type Namespace string

const (
	UserOrders Namespace = "user.orders"
	UserTrades Namespace = "user.trades"
)

// Namespaces lists every namespace the grammar knows about.
var Namespaces = []Namespace{UserOrders, UserTrades}

// Patterns returns the accepted channel shapes for the namespace.
func (ns Namespace) Patterns() []string {
	return []string{
		string(ns) + ".{instrument_name}.{interval}",
		string(ns) + ".{kind}.{currency}.{interval}",
	}
}

func (ns Namespace) segments() []string {
	return strings.Split(string(ns), separator)
}

// Target is the scope of a channel within its namespace. It is either
// ByInstrument or ByKind.
type Target interface {
	fields() []string
}

// ByInstrument scopes a channel to a single instrument.
type ByInstrument struct {
	InstrumentName string
	Interval       string
}

func (t ByInstrument) fields() []string {
	return []string{t.InstrumentName, t.Interval}
}

// ByKind scopes a channel to every instrument of a kind in one currency.
type ByKind struct {
	Kind     string
	Currency string
	Interval string
}

func (t ByKind) fields() []string {
	return []string{t.Kind, t.Currency, t.Interval}
}

// ID is a fully qualified channel.
type ID struct {
	Namespace Namespace
	Target    Target
}

// String renders the wire form. An ID without a target renders as the bare
// namespace, which Parse rejects.
func (id ID) String() string {
	if id.Target == nil {
		return string(id.Namespace)
	}
	return strings.Join(append(id.Namespace.segments(), id.Target.fields()...), separator)
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	if id.Target == nil {
		return nil, fmt.Errorf("channel %q has no target", id.Namespace)
	}
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler over every known
// namespace.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := ParseAny(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Parse reads s as a channel in namespace ns.
func Parse(ns Namespace, s string) (ID, error) {
	target, ok := match(ns, strings.Split(s, separator))
	if !ok {
		return ID{}, &InvalidFormatError{Input: s, Patterns: ns.Patterns()}
	}
	return ID{Namespace: ns, Target: target}, nil
}

// ParseAny reads s as a channel in whichever known namespace it names.
func ParseAny(s string) (ID, error) {
	segments := strings.Split(s, separator)
	for _, ns := range Namespaces {
		if target, ok := match(ns, segments); ok {
			return ID{Namespace: ns, Target: target}, nil
		}
	}
	patterns := make([]string, 0, 2*len(Namespaces))
	for _, ns := range Namespaces {
		patterns = append(patterns, ns.Patterns()...)
	}
	return ID{}, &InvalidFormatError{Input: s, Patterns: patterns}
}

func match(ns Namespace, segments []string) (Target, bool) {
	prefix := ns.segments()
	if len(segments) < len(prefix) {
		return nil, false
	}
	for i, p := range prefix {
		if segments[i] != p {
			return nil, false
		}
	}

	rest := segments[len(prefix):]
	switch len(rest) {
	case 2:
		return ByInstrument{InstrumentName: rest[0], Interval: rest[1]}, true
	case 3:
		return ByKind{Kind: rest[0], Currency: rest[1], Interval: rest[2]}, true
	default:
		return nil, false
	}
}
