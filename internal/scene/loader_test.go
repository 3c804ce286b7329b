package scene

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingSwitcher struct {
	names []string
}

func (r *recordingSwitcher) SwitchScene(name string) {
	r.names = append(r.names, name)
}

func newTestLoader() (*Loader, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewLoader(log.New(&buf, "", 0)), &buf
}

func TestLoader_RequestAndApply(t *testing.T) {
	l, _ := newTestLoader()
	sw := &recordingSwitcher{}

	assert.True(t, l.RequestTransition(Results))
	assert.Equal(t, Results, l.Pending())

	assert.True(t, l.Apply(sw))
	assert.Equal(t, []string{Results}, sw.names)
	assert.Empty(t, l.Pending())
	assert.False(t, l.Apply(sw), "nothing left to apply")
}

func TestLoader_DuplicateRequestIgnored(t *testing.T) {
	l, buf := newTestLoader()
	sw := &recordingSwitcher{}

	assert.True(t, l.RequestTransition(Results))
	assert.False(t, l.RequestTransition(MainMenu))
	assert.Contains(t, buf.String(), "already pending")

	l.Apply(sw)
	assert.Equal(t, []string{Results}, sw.names)

	// After applying, a new request is accepted again.
	assert.True(t, l.RequestTransition(MainMenu))
}

func TestLoader_EmptyNameRejected(t *testing.T) {
	l, buf := newTestLoader()
	assert.False(t, l.RequestTransition(""))
	assert.Empty(t, l.Pending())
	assert.Contains(t, buf.String(), "empty")
}

func TestLoader_BlankNameRejected(t *testing.T) {
	for _, name := range []string{" ", "\t", " \n "} {
		l, buf := newTestLoader()
		assert.False(t, l.RequestTransition(name), "name %q", name)
		assert.Empty(t, l.Pending())
		assert.Contains(t, buf.String(), "empty")
	}
}

func TestLoader_ApplyWithoutSwitcherDrops(t *testing.T) {
	l, buf := newTestLoader()
	l.RequestTransition(Game)
	assert.False(t, l.Apply(nil))
	assert.Empty(t, l.Pending())
	assert.Contains(t, buf.String(), "no switcher")
}
