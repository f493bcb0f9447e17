package pom

import (
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/wanmail/pom/internal/fakedriver"
	pomlog "github.com/wanmail/pom/log"
)

// testWait keeps failing waits short.
const testWait = 50 * time.Millisecond

func newTestSession(t *testing.T, doc *fakedriver.Document) (*Session, *fakedriver.Driver) {
	t.Helper()
	d := fakedriver.New(doc)
	s := NewSession(d,
		WithLogger(pomlog.ForTest(t)),
		WithFs(afero.NewMemMapFs()),
		WithWaitTimeout(testWait),
	)
	return s, d
}
