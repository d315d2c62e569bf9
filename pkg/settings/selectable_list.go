package settings

import "fmt"

// Option is one labeled alternative of a SelectableList.
// It cannot be modified after construction.
type Option struct {
	index int
	label string
	value Value
}

// NewOption creates an option at position index.
func NewOption(index int, label string, value Value) Option {
	return Option{index: index, label: label, value: value}
}

// Index returns the option's position in its list.
func (o Option) Index() int { return o.index }

// Label returns the human-readable label, e.g. "640x360".
func (o Option) Label() string { return o.label }

// Value returns the option payload.
func (o Option) Value() Value { return o.value }

// SelectableList is an ordered set of options with one active selection.
//
// The zero value has no options and no valid selection; CurrentOption
// reports ErrOutOfRange for it.
type SelectableList struct {
	selected int
	options  []Option
}

// NewSelectableList creates a list with the given selection.
// Returns ErrOutOfRange if selected is not a valid position in options or
// if an option's index differs from its position.
func NewSelectableList(selected int, options ...Option) (SelectableList, error) {
	if selected < 0 || selected >= len(options) {
		return SelectableList{}, fmt.Errorf("selected index %d of %d options: %w", selected, len(options), ErrOutOfRange)
	}
	for i, o := range options {
		if o.index != i {
			return SelectableList{}, fmt.Errorf("option %q has index %d at position %d: %w", o.label, o.index, i, ErrOutOfRange)
		}
	}
	return SelectableList{
		selected: selected,
		options:  append([]Option(nil), options...),
	}, nil
}

// SizeOptions builds sequentially indexed options labeled "WxH".
func SizeOptions(sizes ...Size) []Option {
	options := make([]Option, len(sizes))
	for i, s := range sizes {
		options[i] = NewOption(i, s.String(), s)
	}
	return options
}

// Selected returns the active index.
func (l SelectableList) Selected() int { return l.selected }

// Len returns the number of options.
func (l SelectableList) Len() int { return len(l.options) }

// Options returns a copy of the options in order.
func (l SelectableList) Options() []Option {
	return append([]Option(nil), l.options...)
}

// CurrentOption returns the option at the selected index.
func (l SelectableList) CurrentOption() (Option, error) {
	if l.selected < 0 || l.selected >= len(l.options) {
		return Option{}, fmt.Errorf("selected index %d of %d options: %w", l.selected, len(l.options), ErrOutOfRange)
	}
	return l.options[l.selected], nil
}

// IndexOf returns the position of the option with the given label.
func (l SelectableList) IndexOf(label string) (int, error) {
	for i, o := range l.options {
		if o.label == label {
			return i, nil
		}
	}
	return -1, fmt.Errorf("option %q: %w", label, ErrNotFound)
}

// withSelected returns a copy of the list selecting index.
// The receiver is left unchanged on error.
func (l SelectableList) withSelected(index int) (SelectableList, error) {
	if index < 0 || index >= len(l.options) {
		return l, fmt.Errorf("index %d of %d options: %w", index, len(l.options), ErrOutOfRange)
	}
	l.selected = index
	return l, nil
}
