package services

import (
	"bytes"
	"context"
	"testing"

	"hraktech_web/content"
	"hraktech_web/services/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportContent(t *testing.T) {
	ctx := i18n.WithLocale(context.Background(), "en")
	cfg := content.GetFullConfig()

	var buf bytes.Buffer
	require.NoError(t, ExportContent(ctx, cfg, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Overview", "Services", "Technologies", "Projects", "Testimonials", "Form"}, f.GetSheetList())

	overview, err := f.GetRows("Overview")
	require.NoError(t, err)
	require.Len(t, overview, len(content.Keys())+1)
	assert.Equal(t, "company", overview[1][0])
	assert.Equal(t, cfg.Company.Name, overview[1][1])

	services, err := f.GetRows("Services")
	require.NoError(t, err)
	require.Len(t, services, len(cfg.Services.Items)+1)
	assert.Equal(t, []string{"Id", "Title", "Description"}, services[0])
	assert.Equal(t, cfg.Services.Items[0].ID, services[1][0])

	projects, err := f.GetRows("Projects")
	require.NoError(t, err)
	total := 0
	for _, cat := range cfg.Projects.Categories {
		total += len(cat.Projects)
	}
	assert.Len(t, projects, total+1)

	form, err := f.GetRows("Form")
	require.NoError(t, err)
	require.Len(t, form, len(cfg.Contact.Form.Fields)+1)
	assert.Equal(t, "name", form[1][0])
	assert.Equal(t, "Yes", form[1][3])
}

func TestExportContentUsesLocale(t *testing.T) {
	buf, err := BuildContentWorkbook(context.Background(), content.GetFullConfig())
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), "Aperçu")
	assert.Contains(t, f.GetSheetList(), "Témoignages")
}
