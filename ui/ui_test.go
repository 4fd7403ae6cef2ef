package ui

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"hraktech_web/content"
	"hraktech_web/motion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func animatedHandle() *motion.Handle {
	return &motion.Handle{Engine: &motion.Engine{Name: "gsap"}}
}

func TestNavbarEntriesFollowConfiguration(t *testing.T) {
	nav := NewNavbar(content.NavigationConfig{
		Items: []content.NavItem{
			{Label: "Services", Section: "services"},
			{Label: "Contact", Section: "contact"},
		},
		CTA: content.CallToAction{Text: "Contactez-nous", Action: "contact"},
	})

	entries := nav.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Services", entries[0].Label)
	assert.Equal(t, "#services", entries[0].Href())
	assert.Equal(t, "Contact", entries[1].Label)
	assert.Equal(t, "#contact", entries[1].Href())
	assert.Equal(t, "#contact", nav.CTA().Href())
}

func TestNavbarCTADefaultsToContact(t *testing.T) {
	nav := NewNavbar(content.NavigationConfig{CTA: content.CallToAction{Text: "Parlons-en"}})
	assert.Empty(t, nav.Entries())
	assert.Equal(t, "#contact", nav.CTA().Href())
	assert.Equal(t, "Parlons-en", nav.CTA().Label)
}

func TestCarouselRotation(t *testing.T) {
	c := NewCarousel(4)
	assert.Equal(t, 0, c.Index())
	assert.True(t, c.Autoplay())

	assert.True(t, c.Tick())
	assert.Equal(t, 1, c.Index())

	c.Tick()
	c.Tick()
	assert.Equal(t, 3, c.Index())
	c.Tick()
	assert.Equal(t, 0, c.Index(), "rotation wraps from the last entry to the first")
}

func TestCarouselManualNavigationStopsAutoplay(t *testing.T) {
	tests := []struct {
		name  string
		move  func(c *Carousel)
		index int
	}{
		{"next", func(c *Carousel) { c.Next() }, 1},
		{"prev wraps", func(c *Carousel) { c.Prev() }, 3},
		{"jump", func(c *Carousel) { c.GoTo(2) }, 2},
		{"jump out of range", func(c *Carousel) { c.GoTo(9) }, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCarousel(4)
			tt.move(c)
			assert.Equal(t, tt.index, c.Index())
			assert.False(t, c.Autoplay())
			assert.False(t, c.Tick())
			assert.Equal(t, tt.index, c.Index())
		})
	}
}

func TestCarouselRestore(t *testing.T) {
	c := RestoreCarousel(4, 5, true)
	assert.Equal(t, 1, c.Index())
	assert.True(t, c.Autoplay())

	c = RestoreCarousel(4, -1, false)
	assert.Equal(t, 3, c.Index())
	assert.False(t, c.Autoplay())

	c = RestoreCarousel(1, 0, true)
	assert.False(t, c.Autoplay(), "a single entry never rotates")

	empty := NewCarousel(0)
	assert.False(t, empty.Tick())
	empty.Next()
	assert.Equal(t, 0, empty.Index())
}

func TestCarouselMountRotatesUntilManualNavigation(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	scope := motion.NewScope(nil)
	defer scope.Revoke()

	c := NewCarousel(4)
	var changes atomic.Int32
	c.OnChange(func(int) { changes.Add(1) })
	c.Mount(scope, time.Millisecond)

	require.Eventually(t, func() bool { return changes.Load() >= 2 }, time.Second, time.Millisecond)

	c.GoTo(0)
	settled := changes.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, settled, changes.Load(), "manual navigation clears the interval")
	assert.Equal(t, 0, c.Index())
}

func TestCarouselUnmountStopsRotation(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	scope := motion.NewScope(nil)
	c := NewCarousel(4)
	c.Mount(scope, time.Millisecond)
	require.Eventually(t, func() bool { return c.Index() != 0 }, time.Second, time.Millisecond)

	scope.Revoke()
	idx := c.Index()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, idx, c.Index())
}

func TestCarouselMountAttachesControls(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	scope := motion.NewScope(nil)
	c := RestoreCarousel(3, 0, true)
	c.Mount(scope, time.Hour)

	assert.Equal(t, 1, scope.Dispatch(CarouselTarget, "tick"))
	assert.Equal(t, 1, c.Index())
	assert.True(t, c.Autoplay())

	scope.Dispatch(CarouselTarget, "prev")
	assert.Equal(t, 0, c.Index())
	assert.False(t, c.Autoplay())

	assert.Zero(t, scope.Dispatch(CarouselTarget, "shuffle"))

	scope.Revoke()
	assert.Zero(t, scope.Dispatch(CarouselTarget, "next"))
}

type recordingSubmitter struct {
	delay  time.Duration
	drafts []Draft
	err    error
}

func (r *recordingSubmitter) Submit(ctx context.Context, d Draft) error {
	select {
	case <-time.After(r.delay):
	case <-ctx.Done():
		return ctx.Err()
	}
	r.drafts = append(r.drafts, d)
	return r.err
}

func fillValid(f *ContactForm) {
	f.Set("name", "Ana")
	f.Set("email", "ana@x.com")
	f.Set("project", "app-web")
	f.Set("message", "Hello")
}

func TestContactFormSubmitThenReset(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	scope := motion.NewScope(nil)
	defer scope.Revoke()

	form := NewContactForm(content.GetSection(content.Contact).Form, 20*time.Millisecond)
	fillValid(form)
	sub := &recordingSubmitter{delay: 5 * time.Millisecond}

	require.NoError(t, form.Submit(context.Background(), scope, sub))
	assert.Equal(t, FormSucceeded, form.State())
	require.Len(t, sub.drafts, 1)
	assert.Equal(t, "Ana", sub.drafts[0].Name)
	assert.Equal(t, "ana@x.com", sub.drafts[0].Email)
	assert.Equal(t, "Ana", form.Draft().Name, "draft stays visible during the display window")

	assert.ErrorIs(t, form.Submit(context.Background(), scope, sub), ErrBusy)

	require.Eventually(t, func() bool { return form.State() == FormIdle }, time.Second, time.Millisecond)
	assert.True(t, form.Draft().IsEmpty())
}

func TestContactFormSubmittingState(t *testing.T) {
	scope := motion.NewScope(nil)
	defer scope.Revoke()

	form := NewContactForm(content.GetSection(content.Contact).Form, time.Hour)
	fillValid(form)
	sub := &recordingSubmitter{delay: 50 * time.Millisecond}

	done := make(chan error, 1)
	go func() { done <- form.Submit(context.Background(), scope, sub) }()
	require.Eventually(t, func() bool { return form.State() == FormSubmitting }, time.Second, time.Millisecond)
	require.NoError(t, <-done)
	assert.Equal(t, FormSucceeded, form.State())
}

func TestContactFormRevokeCancelsReset(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	scope := motion.NewScope(nil)
	form := NewContactForm(content.GetSection(content.Contact).Form, time.Hour)
	fillValid(form)
	require.NoError(t, form.Submit(context.Background(), scope, &recordingSubmitter{}))

	scope.Revoke()
	assert.Equal(t, FormSucceeded, form.State())
}

func TestContactFormValidation(t *testing.T) {
	def := content.GetSection(content.Contact).Form

	tests := []struct {
		name  string
		draft Draft
		want  map[string]string
	}{
		{"empty", Draft{}, map[string]string{"name": CodeRequired, "email": CodeRequired, "project": CodeRequired, "message": CodeRequired}},
		{"bad email", Draft{Name: "Ana", Email: "ana", Project: "erp", Message: "Hi"}, map[string]string{"email": CodeInvalidEmail}},
		{"display name email", Draft{Name: "Ana", Email: "Ana <ana@x.com>", Project: "erp", Message: "Hi"}, map[string]string{"email": CodeInvalidEmail}},
		{"unknown project", Draft{Name: "Ana", Email: "ana@x.com", Project: "game", Message: "Hi"}, map[string]string{"project": CodeInvalidOption}},
		{"whitespace only", Draft{Name: "  ", Email: "ana@x.com", Project: "erp", Message: "Hi"}, map[string]string{"name": CodeRequired}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDraft(def, tt.draft)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Len(t, verr.Fields, len(tt.want))
			for field, code := range tt.want {
				assert.Equal(t, code, verr.For(field), field)
			}
		})
	}

	assert.NoError(t, ValidateDraft(def, Draft{Name: "Ana", Email: "ana@x.com", Project: "app-web", Message: "Hello"}))
}

func TestContactFormInvalidSubmitKeepsDraft(t *testing.T) {
	scope := motion.NewScope(nil)
	defer scope.Revoke()

	form := NewContactForm(content.GetSection(content.Contact).Form, 0)
	assert.Equal(t, DefaultDisplayWindow, form.DisplayWindow())
	form.Set("name", "Ana")
	form.Set("unknown", "ignored")

	sub := &recordingSubmitter{}
	err := form.Submit(context.Background(), scope, sub)
	assert.Error(t, err)
	assert.Empty(t, sub.drafts)
	assert.Equal(t, FormIdle, form.State())
	assert.Equal(t, "Ana", form.Draft().Name)
}

func TestContactFormMount(t *testing.T) {
	t.Run("focus tracking", func(t *testing.T) {
		scope := motion.NewScope(nil)
		form := NewContactForm(content.GetSection(content.Contact).Form, 0)
		form.Mount(scope)

		scope.Dispatch("#email", "focus")
		assert.Equal(t, "email", form.Focused())
		scope.Dispatch("#name", "blur")
		assert.Equal(t, "email", form.Focused())
		scope.Dispatch("#email", "blur")
		assert.Equal(t, "", form.Focused())

		scope.Revoke()
		assert.Zero(t, scope.Dispatch("#email", "focus"), "listeners are detached on revoke")
	})

	t.Run("reduced motion registers no animation", func(t *testing.T) {
		h := animatedHandle()
		h.PrefersReducedMotion = true
		scope := motion.NewScope(h)
		defer scope.Revoke()

		NewContactForm(content.GetSection(content.Contact).Form, 0).Mount(scope)
		NewNavbar(content.GetSection(content.Navigation)).Mount(scope)
		assert.Empty(t, scope.Active())
	})

	t.Run("animated handle registers entrance animations", func(t *testing.T) {
		scope := motion.NewScope(animatedHandle())
		defer scope.Revoke()

		NewContactForm(content.GetSection(content.Contact).Form, 0).Mount(scope)
		NewNavbar(content.GetSection(content.Navigation)).Mount(scope)
		assert.Len(t, scope.Active(), 2)
	})
}

func TestFormStateString(t *testing.T) {
	assert.Equal(t, "idle", FormIdle.String())
	assert.Equal(t, "submitting", FormSubmitting.String())
	assert.Equal(t, "succeeded", FormSucceeded.String())
}

func TestSectionAnimations(t *testing.T) {
	scope := motion.NewScope(animatedHandle())
	defer scope.Revoke()

	MountHero(scope)
	MountSections(scope)

	tweens := scope.Active()
	require.Len(t, tweens, 7)
	assert.Equal(t, "#hero [data-word]", tweens[0].Target)
	assert.Nil(t, tweens[0].ScrollTrigger, "the hero animates on load")
	for _, tw := range tweens[2:] {
		require.NotNil(t, tw.ScrollTrigger, tw.Target)
		assert.Equal(t, "top 80%", tw.ScrollTrigger.Start)
	}

	reduced := motion.NewScope(nil)
	defer reduced.Revoke()
	MountHero(reduced)
	MountSections(reduced)
	assert.Empty(t, reduced.Active())
}
