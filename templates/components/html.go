// Package components renders the landing page sections as templ components.
package components

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strconv"

	"hraktech_web/logging"

	"github.com/a-h/templ"
)

// Attr is one HTML attribute. Attributes render in the order given.
type Attr struct {
	Name  string
	Value string
	// Bool renders the attribute without a value.
	Bool bool
}

// A builds a valued attribute.
func A(name, value string) Attr { return Attr{Name: name, Value: value} }

// B builds a boolean attribute.
func B(name string) Attr { return Attr{Name: name, Bool: true} }

// If returns attrs when cond holds and nothing otherwise.
func If(cond bool, attrs ...Attr) []Attr {
	if cond {
		return attrs
	}
	return nil
}

// Attrs concatenates attribute lists.
func Attrs(lists ...[]Attr) []Attr {
	var out []Attr
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

var voidElements = map[string]bool{
	"area": true, "br": true, "hr": true, "img": true, "input": true,
	"link": true, "meta": true, "source": true,
}

// El renders <tag attrs>children</tag>.
func El(tag string, attrs []Attr, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ew := &errWriter{w: w}
		ew.str("<" + tag)
		for _, a := range attrs {
			if a.Bool {
				ew.str(" " + a.Name)
				continue
			}
			ew.str(" " + a.Name + `="` + templ.EscapeString(a.Value) + `"`)
		}
		ew.str(">")
		if voidElements[tag] {
			return ew.err
		}
		for _, child := range children {
			if ew.err != nil {
				return ew.err
			}
			if child != nil {
				ew.err = child.Render(ctx, w)
			}
		}
		ew.str("</" + tag + ">")
		return ew.err
	})
}

// Text renders escaped text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Int renders an integer.
func Int(n int) templ.Component { return Text(strconv.Itoa(n)) }

// Group renders children in order.
func Group(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, child := range children {
			if child == nil {
				continue
			}
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// Each renders fn for every item.
func Each[T any](items []T, fn func(i int, item T) templ.Component) templ.Component {
	out := make([]templ.Component, 0, len(items))
	for i, item := range items {
		out = append(out, fn(i, item))
	}
	return Group(out...)
}

// Func defers building the tree to render time so it can read request
// scoped values such as the locale, nonce or CSRF token.
func Func(build func(ctx context.Context) templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return build(ctx).Render(ctx, w)
	})
}

// Trusted renders markup that is part of the binary, never user input.
func Trusted(html string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, html)
		return err
	})
}

// JSON marshals v for embedding in a <script type="application/json"> block,
// returning "{}" on error. "<", ">" and "&" are escaped by encoding/json so
// the payload cannot close the script element.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		log := logging.WithComponent("templates")
		log.Error().Err(err).Msg("Error marshaling JSON")
		return "{}"
	}
	return string(b)
}

// RenderString renders c to a string. Used by tests and the static export.
func RenderString(ctx context.Context, c templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) str(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}
