package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"hraktech_web/content"
	"hraktech_web/services/i18n"

	"github.com/xuri/excelize/v2"
)

// ExportContent writes the site content to an .xlsx workbook for editors:
// an overview sheet listing every section, then one sheet per list section.
func ExportContent(ctx context.Context, cfg *content.WebsiteConfig, w io.Writer) error {
	buf, err := BuildContentWorkbook(ctx, cfg)
	if err != nil {
		return err
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// BuildContentWorkbook renders the workbook into memory.
func BuildContentWorkbook(ctx context.Context, cfg *content.WebsiteConfig) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	h := func(key string) string { return i18n.T(ctx, "export.headers."+key) }
	yesNo := func(b bool) string {
		if b {
			return i18n.T(ctx, "export.yes")
		}
		return i18n.T(ctx, "export.no")
	}

	// --- Overview Sheet ---
	overview := i18n.T(ctx, "export.sheets.overview")
	f.SetSheetName("Sheet1", overview)
	rows := [][]any{{h("section"), h("title"), h("description")}}
	for _, key := range content.Keys() {
		title, desc := sectionSummary(cfg, key)
		rows = append(rows, []any{string(key), title, desc})
	}
	if err := writeSheet(f, overview, rows, headerStyle); err != nil {
		return nil, err
	}

	// --- Services Sheet ---
	rows = [][]any{{h("id"), h("title"), h("description")}}
	for _, s := range cfg.Services.Items {
		rows = append(rows, []any{s.ID, s.Title, s.Description})
	}
	if err := addSheet(f, i18n.T(ctx, "export.sheets.services"), rows, headerStyle); err != nil {
		return nil, err
	}

	// --- Technologies Sheet ---
	rows = [][]any{{h("name"), h("description")}}
	for _, tech := range cfg.Technologies.Items {
		rows = append(rows, []any{tech.Name, tech.Description})
	}
	if err := addSheet(f, i18n.T(ctx, "export.sheets.technologies"), rows, headerStyle); err != nil {
		return nil, err
	}

	// --- Projects Sheet ---
	rows = [][]any{{h("category"), h("name"), h("description"), h("url")}}
	for _, cat := range cfg.Projects.Categories {
		for _, p := range cat.Projects {
			rows = append(rows, []any{cat.Title, p.Name, p.Description, p.URL})
		}
	}
	if err := addSheet(f, i18n.T(ctx, "export.sheets.projects"), rows, headerStyle); err != nil {
		return nil, err
	}

	// --- Testimonials Sheet ---
	rows = [][]any{{h("name"), h("position"), h("company"), h("rating"), h("comment")}}
	for _, t := range cfg.Testimonials.Items {
		rows = append(rows, []any{t.Name, t.Position, t.Company, t.Rating, t.Comment})
	}
	if err := addSheet(f, i18n.T(ctx, "export.sheets.testimonials"), rows, headerStyle); err != nil {
		return nil, err
	}

	// --- Contact Form Sheet ---
	rows = [][]any{{h("key"), h("type"), h("label"), h("required"), h("options")}}
	for _, field := range cfg.Contact.Form.Fields {
		opts := make([]string, 0, len(field.Options))
		for _, o := range field.Options {
			opts = append(opts, o.Value)
		}
		rows = append(rows, []any{field.Name, field.Type, field.Label, yesNo(field.Required), strings.Join(opts, ", ")})
	}
	if err := addSheet(f, i18n.T(ctx, "export.sheets.contact_fields"), rows, headerStyle); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf, nil
}

func addSheet(f *excelize.File, name string, rows [][]any, headerStyle int) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}
	return writeSheet(f, name, rows, headerStyle)
}

func writeSheet(f *excelize.File, sheet string, rows [][]any, headerStyle int) error {
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	if len(rows) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(rows[0]), 1)
		f.SetCellStyle(sheet, "A1", last, headerStyle)
		lastCol, _ := excelize.ColumnNumberToName(len(rows[0]))
		f.SetColWidth(sheet, "A", lastCol, 30)
	}
	return nil
}

func sectionSummary(cfg *content.WebsiteConfig, key content.SectionKey) (string, string) {
	joinTitle := func(t content.SectionTitle) string {
		return strings.TrimSpace(t.Main + " " + t.Highlight)
	}
	switch key {
	case content.KeyCompany:
		return cfg.Company.Name, cfg.Company.Tagline
	case content.KeySEO:
		return cfg.SEO.Title, cfg.SEO.Description
	case content.KeyHero:
		return strings.Join(cfg.Hero.Title.Words, " ") + " " + cfg.Hero.Title.Highlight, cfg.Hero.Subtitle.Main
	case content.KeyServices:
		return joinTitle(cfg.Services.Title), cfg.Services.Description
	case content.KeyTechnologies:
		return joinTitle(cfg.Technologies.Title), cfg.Technologies.Description
	case content.KeyProjects:
		return joinTitle(cfg.Projects.Title), cfg.Projects.Description
	case content.KeyTestimonials:
		return joinTitle(cfg.Testimonials.Title), cfg.Testimonials.Description
	case content.KeyContact:
		return joinTitle(cfg.Contact.Title), cfg.Contact.Description
	case content.KeyFooter:
		return cfg.Footer.Copyright, cfg.Footer.Description
	case content.KeyNavigation:
		return fmt.Sprintf("%d", len(cfg.Navigation.Items)), cfg.Navigation.CTA.Text
	case content.KeyTheme:
		return cfg.Theme.Colors.Primary, cfg.Theme.Gradients.Primary
	}
	return "", ""
}
