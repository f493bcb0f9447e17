package pom

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blang/semver"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/log"

	"github.com/wanmail/pom/internal/fakedriver"
)

func TestResolveURL(t *testing.T) {
	tests := []struct {
		base, in, want string
	}{
		{"", "/login", "/login"},
		{"https://the-internet.example", "/login", "https://the-internet.example/login"},
		{"https://the-internet.example/", "login", "https://the-internet.example/login"},
		{"https://host/app", "/login?next=%2F#top", "https://host/app/login?next=%2F#top"},
		{"https://host/app/", "https://other.example/x", "https://other.example/x"},
	}
	for _, tc := range tests {
		s, _ := newTestSession(t, fakedriver.NewDocument(""))
		WithBaseURL(tc.base)(s)
		if err := s.NavigateTo(tc.in); err != nil {
			t.Errorf("NavigateTo(%q) under %q returned error: %v", tc.in, tc.base, err)
			continue
		}
		if got, _ := s.URL(); got != tc.want {
			t.Errorf("NavigateTo(%q) under %q loaded %q, want %q", tc.in, tc.base, got, tc.want)
		}
	}
}

func TestHistory(t *testing.T) {
	s, d := newTestSession(t, fakedriver.NewDocument("blank"))
	d.Pages["https://a.example/"] = fakedriver.NewDocument("A")
	d.Pages["https://b.example/"] = fakedriver.NewDocument("B")

	steps := []struct {
		do    func() error
		title string
	}{
		{func() error { return s.NavigateTo("https://a.example/") }, "A"},
		{func() error { return s.NavigateTo("https://b.example/") }, "B"},
		{s.Back, "A"},
		{s.Forward, "B"},
		{s.Refresh, "B"},
	}
	for i, step := range steps {
		if err := step.do(); err != nil {
			t.Fatalf("step %d returned error: %v", i, err)
		}
		if got, _ := s.Title(); got != step.title {
			t.Errorf("step %d: Title() = %q, want %q", i, got, step.title)
		}
	}
}

func TestWindows(t *testing.T) {
	s, d := newTestSession(t, fakedriver.NewDocument(""))

	if err := s.SetWindowSize(800, 600); err != nil {
		t.Fatal(err)
	}
	size, err := s.WindowSize()
	if err != nil {
		t.Fatalf("WindowSize() returned error: %v", err)
	}
	if want := (selenium.Size{Width: 800, Height: 600}); size != want {
		t.Errorf("WindowSize() = %+v, want %+v", size, want)
	}
	if err := s.MaximizeWindow(); err != nil || !d.Maximized {
		t.Errorf("MaximizeWindow() = %v, maximized = %t", err, d.Maximized)
	}

	h, err := s.NewWindow("")
	if err != nil {
		t.Fatalf("NewWindow() returned error: %v", err)
	}
	if cur, _ := s.CurrentWindow(); cur == h {
		t.Error("NewWindow() switched to the new window")
	}
	handles, _ := s.WindowHandles()
	if diff := cmp.Diff([]string{"window-0", h}, handles); diff != "" {
		t.Errorf("WindowHandles() returned diff (-want/+got):\n%s", diff)
	}
	if err := s.SwitchToWindow(h); err != nil {
		t.Fatal(err)
	}
	if err := s.CloseWindow(); err != nil {
		t.Fatal(err)
	}
	if handles, _ := s.WindowHandles(); len(handles) != 1 {
		t.Errorf("WindowHandles() after CloseWindow() = %v", handles)
	}
	if err := s.SwitchToWindow("window-9"); !errors.Is(err, fakedriver.ErrNoSuchWindow) {
		t.Errorf("SwitchToWindow(unknown) = %v", err)
	}
}

func TestSessionFrames(t *testing.T) {
	docs := newFrameDocs()
	s, d := newTestSession(t, docs.top)

	if err := s.SwitchToFrame("outer"); err != nil {
		t.Fatalf("SwitchToFrame(outer) returned error: %v", err)
	}
	inner, err := d.FindElement(selenium.ByCSSSelector, "#inner")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SwitchToFrame(inner); err != nil {
		t.Fatalf("SwitchToFrame(element) returned error: %v", err)
	}
	if d.Current() != docs.inner || s.FrameDepth() != 2 {
		t.Fatalf("depth %d, in %q", s.FrameDepth(), d.Current().Title)
	}
	if err := s.SwitchToParentFrame(); err != nil {
		t.Fatal(err)
	}
	if d.Current() != docs.outer || s.FrameDepth() != 1 {
		t.Errorf("after SwitchToParentFrame(): depth %d, in %q", s.FrameDepth(), d.Current().Title)
	}
	if err := s.SwitchToDefaultContent(); err != nil {
		t.Fatal(err)
	}
	if d.Current() != docs.top || s.FrameDepth() != 0 {
		t.Errorf("after SwitchToDefaultContent(): depth %d, in %q", s.FrameDepth(), d.Current().Title)
	}
	if err := s.SwitchToFrame("nope"); !errors.Is(err, fakedriver.ErrNoSuchFrame) || s.FrameDepth() != 0 {
		t.Errorf("SwitchToFrame(nope) = %v, depth %d", err, s.FrameDepth())
	}
}

func TestScreenshots(t *testing.T) {
	s, _ := newTestSession(t, fakedriver.NewDocument(""))
	WithScreenshotDir("reports/screenshots")(s)

	path, err := s.SaveScreenshot("")
	if err != nil {
		t.Fatalf("SaveScreenshot() returned error: %v", err)
	}
	if dir := filepath.Dir(path); dir != filepath.Join("reports", "screenshots") {
		t.Errorf("SaveScreenshot() wrote to %q", dir)
	}
	if base := filepath.Base(path); !strings.HasPrefix(base, "screenshot-") || !strings.HasSuffix(base, ".png") {
		t.Errorf("SaveScreenshot() picked name %q", base)
	}
	got, err := afero.ReadFile(s.Fs(), path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(fakedriver.PNG, got); diff != "" {
		t.Errorf("screenshot content diff (-want/+got):\n%s", diff)
	}

	explicit := filepath.Join("out", "home.png")
	if p, err := s.SaveScreenshot(explicit); err != nil || p != explicit {
		t.Errorf("SaveScreenshot(%q) = %q, %v", explicit, p, err)
	}
}

type fakeFailer struct {
	name   string
	failed bool
	logs   []string
}

func (f *fakeFailer) Name() string { return f.name }
func (f *fakeFailer) Failed() bool { return f.failed }
func (f *fakeFailer) Logf(format string, args ...interface{}) {
	f.logs = append(f.logs, fmt.Sprintf(format, args...))
}

func TestCaptureOnFailure(t *testing.T) {
	s, _ := newTestSession(t, fakedriver.NewDocument(""))
	WithScreenshotDir("shots")(s)

	s.CaptureOnFailure(&fakeFailer{name: "TestPassing"})
	if ok, _ := afero.DirExists(s.Fs(), "shots"); ok {
		t.Error("CaptureOnFailure() saved a screenshot for a passing test")
	}

	f := &fakeFailer{name: "TestLogin/bad password", failed: true}
	s.CaptureOnFailure(f)
	files, err := afero.ReadDir(s.Fs(), "shots")
	if err != nil || len(files) != 1 {
		t.Fatalf("ReadDir(shots) = %v, %v; want one screenshot", files, err)
	}
	if name := files[0].Name(); !strings.HasPrefix(name, "TestLogin_bad_password_") {
		t.Errorf("screenshot name = %q", name)
	}
	if len(f.logs) != 1 || !strings.Contains(f.logs[0], "saved to") {
		t.Errorf("CaptureOnFailure() logged %q", f.logs)
	}
}

func TestCookies(t *testing.T) {
	s, _ := newTestSession(t, fakedriver.NewDocument(""))

	for _, name := range []string{"session", "theme"} {
		if err := s.SetCookie(selenium.Cookie{Name: name, Value: "v-" + name}); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.DeleteCookie("session"); err != nil {
		t.Fatal(err)
	}
	got, _ := s.Cookies()
	if diff := cmp.Diff([]selenium.Cookie{{Name: "theme", Value: "v-theme"}}, got); diff != "" {
		t.Errorf("Cookies() returned diff (-want/+got):\n%s", diff)
	}
	if err := s.DeleteAllCookies(); err != nil {
		t.Fatal(err)
	}
	if got, _ := s.Cookies(); len(got) != 0 {
		t.Errorf("Cookies() after DeleteAllCookies() = %v", got)
	}
}

func TestAlerts(t *testing.T) {
	s, d := newTestSession(t, fakedriver.NewDocument(""))
	d.AlertOpen, d.AlertMessage = true, "Name?"

	if text, err := s.AlertText(); err != nil || text != "Name?" {
		t.Errorf("AlertText() = %q, %v", text, err)
	}
	if err := s.SendAlertText("gopher"); err != nil || d.AlertInput != "gopher" {
		t.Errorf("SendAlertText() = %v, input = %q", err, d.AlertInput)
	}
	if err := s.AcceptAlert(); err != nil {
		t.Fatal(err)
	}
	if err := s.DismissAlert(); !errors.Is(err, fakedriver.ErrNoSuchAlert) {
		t.Errorf("DismissAlert() without an alert = %v", err)
	}
}

func TestScripts(t *testing.T) {
	s, d := newTestSession(t, fakedriver.NewDocument(""))
	var gotArgs []interface{}
	d.Script = func(script string, args []interface{}) (interface{}, error) {
		gotArgs = args
		return "done", nil
	}

	if v, err := s.Execute("return arguments[0] + arguments[1];", 1, 2); err != nil || v != "done" {
		t.Errorf("Execute() = %v, %v", v, err)
	}
	if diff := cmp.Diff([]interface{}{1, 2}, gotArgs); diff != "" {
		t.Errorf("script args diff (-want/+got):\n%s", diff)
	}
	raw, err := s.ExecuteRaw("return 1;")
	if err != nil || string(raw) != `{"value":"done"}` {
		t.Errorf("ExecuteRaw() = %s, %v", raw, err)
	}
	if err := s.Scroll(0, 500); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]interface{}{0, 500}, gotArgs); diff != "" {
		t.Errorf("Scroll() args diff (-want/+got):\n%s", diff)
	}
}

func TestWaitUntil(t *testing.T) {
	s, _ := newTestSession(t, fakedriver.NewDocument(""))

	calls := 0
	err := s.WaitUntil(func() (bool, error) {
		calls++
		return calls == 2, nil
	}, WithInterval(1))
	if err != nil || calls != 2 {
		t.Errorf("WaitUntil() = %v after %d calls", err, calls)
	}

	err = s.WaitUntil(func() (bool, error) { return false, nil }, WithInterval(1))
	var te *TimeoutError
	if !errors.As(err, &te) {
		t.Fatalf("WaitUntil() = %v, want *TimeoutError", err)
	}
	if got, want := te.Error(), `"browser": wait for condition timed out after 50ms: Condition was not met in time`; got != want {
		t.Errorf("WaitUntil() error = %q, want %q", got, want)
	}

	boom := errors.New("boom")
	if err := s.WaitUntil(func() (bool, error) { return false, boom }); !errors.Is(err, boom) {
		t.Errorf("WaitUntil() = %v, want the condition error", err)
	}
}

func TestBrowserVersion(t *testing.T) {
	tests := []struct {
		caps    selenium.Capabilities
		want    semver.Version
		wantErr bool
	}{
		{caps: selenium.Capabilities{"browserVersion": "120.0.6099.109"}, want: semver.MustParse("120.0.6099")},
		{caps: selenium.Capabilities{"version": "115.0"}, want: semver.MustParse("115.0.0")},
		{caps: selenium.Capabilities{}, wantErr: true},
	}
	for _, tc := range tests {
		s, d := newTestSession(t, fakedriver.NewDocument(""))
		d.Caps = tc.caps
		got, err := s.BrowserVersion()
		if (err != nil) != tc.wantErr {
			t.Errorf("BrowserVersion() for %v returned error %v", tc.caps, err)
			continue
		}
		if !tc.wantErr && !got.Equals(tc.want) {
			t.Errorf("BrowserVersion() for %v = %s, want %s", tc.caps, got, tc.want)
		}
	}
}

func TestLogs(t *testing.T) {
	s, d := newTestSession(t, fakedriver.NewDocument(""))
	msgs := []log.Message{{Level: log.Severe, Message: "Uncaught TypeError"}}
	d.Logs[log.Browser] = msgs

	got, err := s.Logs(log.Browser)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(msgs, got); diff != "" {
		t.Errorf("Logs() returned diff (-want/+got):\n%s", diff)
	}
}

func TestQuit(t *testing.T) {
	s, d := newTestSession(t, fakedriver.NewDocument(""))
	if err := s.Quit(); err != nil || !d.Quitted {
		t.Errorf("Quit() = %v, quitted = %t", err, d.Quitted)
	}
}
