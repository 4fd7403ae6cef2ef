package content

// WebsiteConfig is the full configuration document. Every field maps to one
// top-level section of website.json.
type WebsiteConfig struct {
	Company      CompanyConfig      `json:"company"`
	SEO          SEOConfig          `json:"seo"`
	Hero         HeroConfig         `json:"hero"`
	Services     ServicesConfig     `json:"services"`
	Technologies TechnologiesConfig `json:"technologies"`
	Projects     ProjectsConfig     `json:"projects"`
	Testimonials TestimonialsConfig `json:"testimonials"`
	Contact      ContactConfig      `json:"contact"`
	Footer       FooterConfig       `json:"footer"`
	Navigation   NavigationConfig   `json:"navigation"`
	Theme        ThemeConfig        `json:"theme"`
}

// CompanyConfig holds identity and contact details
type CompanyConfig struct {
	Name        string         `json:"name"`
	Tagline     string         `json:"tagline"`
	Description string         `json:"description"`
	Logo        string         `json:"logo"`
	LogoWithBg  string         `json:"logoWithBg"`
	Contact     CompanyContact `json:"contact"`
	Social      CompanySocial  `json:"social"`
	Stats       []CompanyStat  `json:"stats"`
}

type CompanyContact struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type CompanySocial struct {
	GitHub        string `json:"github"`
	LinkedIn      string `json:"linkedin"`
	Twitter       string `json:"twitter"`
	TwitterHandle string `json:"twitterHandle"`
}

type CompanyStat struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// SEOConfig holds page metadata and Open Graph details
type SEOConfig struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Keywords    []string  `json:"keywords"`
	Author      string    `json:"author"`
	URL         string    `json:"url"`
	Locale      string    `json:"locale"`
	OpenGraph   OpenGraph `json:"openGraph"`
}

type OpenGraph struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	ImageAlt    string `json:"imageAlt"`
}

// SectionTitle is the three-part heading shared by most sections.
type SectionTitle struct {
	Main      string `json:"main"`
	Highlight string `json:"highlight"`
	Subtitle  string `json:"subtitle"`
}

// CallToAction points at a section anchor.
type CallToAction struct {
	Text   string `json:"text"`
	Action string `json:"action"`
}

type HeroConfig struct {
	Badge struct {
		Text string `json:"text"`
		Icon string `json:"icon"`
	} `json:"badge"`
	Title struct {
		Words     []string `json:"words"`
		Highlight string   `json:"highlight"`
	} `json:"title"`
	Subtitle struct {
		Main      string `json:"main"`
		Secondary string `json:"secondary"`
	} `json:"subtitle"`
	CTA CallToAction `json:"cta"`
}

type ServicesConfig struct {
	Badge       string        `json:"badge"`
	Title       SectionTitle  `json:"title"`
	Description string        `json:"description"`
	Items       []ServiceItem `json:"items"`
	CTA         CallToAction  `json:"cta"`
}

type ServiceItem struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
	BgColor     string `json:"bgColor"`
}

type TechnologiesConfig struct {
	Badge          string           `json:"badge"`
	Title          SectionTitle     `json:"title"`
	Description    string           `json:"description"`
	Items          []TechnologyItem `json:"items"`
	AdditionalInfo struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		Technologies string `json:"technologies"`
	} `json:"additionalInfo"`
}

type TechnologyItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Color       string `json:"color"`
	GlowColor   string `json:"glowColor"`
	Accent      string `json:"accent"`
}

type ProjectsConfig struct {
	Badge       string            `json:"badge"`
	Title       SectionTitle      `json:"title"`
	Description string            `json:"description"`
	Categories  []ProjectCategory `json:"categories"`
	CTA         struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		ButtonText  string `json:"buttonText"`
		Action      string `json:"action"`
	} `json:"cta"`
}

// ProjectCategory groups projects. Categories are a list, not an object, so
// the document order is the rendering order.
type ProjectCategory struct {
	Key       string    `json:"key"`
	Title     string    `json:"title"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	GlowColor string    `json:"glowColor"`
	Projects  []Project `json:"projects"`
}

type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
}

type TestimonialsConfig struct {
	Badge       string        `json:"badge"`
	Title       SectionTitle  `json:"title"`
	Description string        `json:"description"`
	Items       []Testimonial `json:"items"`
}

type Testimonial struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Company  string `json:"company"`
	Image    string `json:"image"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

type ContactConfig struct {
	Badge       string       `json:"badge"`
	Title       SectionTitle `json:"title"`
	Description string       `json:"description"`
	Info        struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Guarantee   struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"guarantee"`
	} `json:"info"`
	Form    ContactForm `json:"form"`
	Success struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"success"`
}

type ContactForm struct {
	Title        string      `json:"title"`
	Fields       []FormField `json:"fields"`
	SubmitButton struct {
		Text        string `json:"text"`
		LoadingText string `json:"loadingText"`
	} `json:"submitButton"`
}

// FormField describes one input of the contact form.
type FormField struct {
	Name        string        `json:"name"`
	Type        string        `json:"type"`
	Label       string        `json:"label"`
	Placeholder string        `json:"placeholder"`
	Required    bool          `json:"required"`
	Options     []FieldOption `json:"options,omitempty"`
}

type FieldOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field returns the named field definition.
func (f ContactForm) Field(name string) (FormField, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return FormField{}, false
}

// HasOption reports whether value is one of the field's select options.
func (f FormField) HasOption(value string) bool {
	for _, opt := range f.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

type FooterConfig struct {
	Description string     `json:"description"`
	Navigation  []NavItem  `json:"navigation"`
	Services    []string   `json:"services"`
	Legal       []LegalURL `json:"legal"`
	Copyright   string     `json:"copyright"`
}

type LegalURL struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// NavItem is a label scrolling to the element whose id equals Section.
type NavItem struct {
	Label   string `json:"label"`
	Section string `json:"section"`
}

type NavigationConfig struct {
	Items []NavItem    `json:"items"`
	CTA   CallToAction `json:"cta"`
}

type ThemeConfig struct {
	Colors struct {
		Primary      string `json:"primary"`
		PrimaryLight string `json:"primaryLight"`
		PrimaryDark  string `json:"primaryDark"`
		Secondary    string `json:"secondary"`
		Accent       string `json:"accent"`
	} `json:"colors"`
	Gradients struct {
		Primary   string `json:"primary"`
		Secondary string `json:"secondary"`
		Accent    string `json:"accent"`
	} `json:"gradients"`
}
