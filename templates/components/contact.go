package components

import (
	"context"
	"fmt"
	"time"

	"hraktech_web/content"
	"hraktech_web/middleware"
	"hraktech_web/services/i18n"
	"hraktech_web/ui"

	"github.com/a-h/templ"
)

// FormView is the contact form as rendered: the definition, what the user
// typed and, after a rejected submission, why.
type FormView struct {
	Definition content.ContactForm
	Draft      ui.Draft
	Errors     *ui.ValidationError
	// ErrorKey is an i18n key for a form-level message.
	ErrorKey string
	// Focus names the field that receives focus when the fragment swaps in.
	Focus string
}

func Contact(cfg content.ContactConfig, company content.CompanyConfig, view FormView) templ.Component {
	return section("contact",
		sectionHeader("contact", cfg.Badge, cfg.Title, cfg.Description),
		El("div", []Attr{A("class", "contact-grid")},
			El("div", []Attr{A("class", "contact-info")},
				El("h3", nil, Text(cfg.Info.Title)),
				El("p", nil, Text(cfg.Info.Description)),
				El("ul", []Attr{A("class", "contact-details")},
					El("li", nil, Icon("mail"), El("a", []Attr{A("href", "mailto:"+company.Contact.Email)}, Text(company.Contact.Email))),
					El("li", nil, Icon("phone"), Text(company.Contact.Phone)),
					El("li", nil, Icon("map-pin"), Text(company.Contact.Address)),
				),
				El("div", []Attr{A("class", "guarantee")},
					Icon("clock"),
					El("strong", nil, Text(cfg.Info.Guarantee.Title)),
					El("p", nil, Text(cfg.Info.Guarantee.Description)),
				),
			),
			El("div", []Attr{A("class", "contact-form-card")},
				El("h3", nil, Text(cfg.Form.Title)),
				ContactForm(view),
			),
		),
	)
}

// ContactForm renders the form fragment. Submissions replace it with either
// the same form carrying errors or the success notice.
func ContactForm(view FormView) templ.Component {
	return Func(func(ctx context.Context) templ.Component {
		var formErr templ.Component
		if view.ErrorKey != "" {
			formErr = El("p", []Attr{A("class", "form-error"), A("role", "alert")}, Text(i18n.T(ctx, view.ErrorKey)))
		}
		return El("form", []Attr{
			A("id", "contact-form"),
			A("class", "contact-form"),
			A("method", "post"),
			A("action", "/contact"),
			A("hx-post", "/contact"),
			A("hx-target", "this"),
			A("hx-swap", "outerHTML"),
			A("hx-disabled-elt", "find button[type='submit']"),
			B("novalidate"),
		},
			El("input", []Attr{A("type", "hidden"), A("name", "_csrf"), A("value", middleware.CSRFToken(ctx))}),
			El("div", []Attr{A("id", "contact-form-errors"), A("aria-live", "polite")}, formErr),
			Each(view.Definition.Fields, func(_ int, f content.FormField) templ.Component {
				return field(ctx, f, view)
			}),
			El("button", []Attr{A("type", "submit"), A("class", "btn btn-primary btn-block")},
				El("span", []Attr{A("class", "when-idle")}, Text(view.Definition.SubmitButton.Text), Icon("send")),
				El("span", []Attr{A("class", "when-busy"), A("aria-hidden", "true")}, Text(view.Definition.SubmitButton.LoadingText)),
			),
		)
	})
}

func field(ctx context.Context, f content.FormField, view FormView) templ.Component {
	value := view.Draft.Get(f.Name)
	var code string
	if view.Errors != nil {
		code = view.Errors.For(f.Name)
	}
	errID := f.Name + "-error"

	common := Attrs(
		[]Attr{A("id", f.Name), A("name", f.Name)},
		If(f.Required, B("required"), A("aria-required", "true")),
		If(code != "", A("aria-invalid", "true"), A("aria-describedby", errID)),
		If(f.Name == view.Focus, B("autofocus")),
	)

	var input templ.Component
	switch f.Type {
	case "textarea":
		input = El("textarea", Attrs(common, []Attr{A("rows", "5"), A("placeholder", f.Placeholder)}), Text(value))
	case "select":
		placeholder := f.Placeholder
		if placeholder == "" {
			placeholder = i18n.T(ctx, "contact.select_placeholder")
		}
		input = El("select", common,
			El("option", Attrs([]Attr{A("value", "")}, If(value == "", B("selected"))), Text(placeholder)),
			Each(f.Options, func(_ int, o content.FieldOption) templ.Component {
				return El("option", Attrs([]Attr{A("value", o.Value)}, If(o.Value == value, B("selected"))), Text(o.Label))
			}),
		)
	default:
		typ := f.Type
		if typ == "" {
			typ = "text"
		}
		input = El("input", Attrs(common, []Attr{A("type", typ), A("value", value), A("placeholder", f.Placeholder)}))
	}

	var msg templ.Component
	if code != "" {
		msg = El("p", []Attr{A("id", errID), A("class", "field-error")}, Text(i18n.T(ctx, "contact.errors."+code)))
	}
	label := f.Label
	if f.Required {
		label += " *"
	}
	return El("div", []Attr{A("class", "field")},
		El("label", []Attr{A("for", f.Name)}, Text(label)),
		input,
		msg,
	)
}

// ContactSuccess replaces the form after an accepted submission and asks for
// a fresh form once the display window has passed.
func ContactSuccess(cfg content.ContactConfig, window time.Duration) templ.Component {
	return El("div", []Attr{
		A("id", "contact-form"),
		A("class", "form-success"),
		A("role", "status"),
		A("hx-get", "/htmx/contact/form"),
		A("hx-trigger", fmt.Sprintf("load delay:%dms", window.Milliseconds())),
		A("hx-swap", "outerHTML"),
	},
		El("div", []Attr{A("class", "success-icon")}, Icon("check-circle")),
		El("h3", nil, Text(cfg.Success.Title)),
		El("p", nil, Text(cfg.Success.Description)),
	)
}
