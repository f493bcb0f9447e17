package pom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tebeka/selenium/chrome"
	"github.com/tebeka/selenium/firefox"
	"github.com/tebeka/selenium/log"
	"github.com/tebeka/selenium/sauce"
)

func newLauncher(t *testing.T, opts ...LaunchOption) *launcher {
	t.Helper()
	l := &launcher{browser: Chrome}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			t.Fatalf("option returned error: %v", err)
		}
	}
	return l
}

func TestLaunchOptionErrors(t *testing.T) {
	tests := []struct {
		desc string
		opts []LaunchOption
	}{
		{
			desc: "unknown browser",
			opts: []LaunchOption{Browser("netscape")},
		},
		{
			desc: "negative port",
			opts: []LaunchOption{Port(-1)},
		},
		{
			desc: "port out of range",
			opts: []LaunchOption{Port(70000)},
		},
		{
			desc: "remote after sauce",
			opts: []LaunchOption{Sauce("user", "key", sauce.Capabilities{}), Remote("http://grid:4444/wd/hub")},
		},
		{
			desc: "sauce after remote",
			opts: []LaunchOption{Remote("http://grid:4444/wd/hub"), Sauce("user", "key", sauce.Capabilities{})},
		},
		{
			desc: "sauce without access key",
			opts: []LaunchOption{Sauce("user", "", sauce.Capabilities{})},
		},
	}
	for _, tc := range tests {
		if _, err := Launch(tc.opts...); err == nil {
			t.Errorf("%s: Launch() returned no error", tc.desc)
		}
	}
}

func TestChromeCapabilities(t *testing.T) {
	l := newLauncher(t, Headless(), BrowserBinary("/opt/chrome"), BrowserArgs("--window-size=1280,720"))
	caps, err := l.capabilities()
	if err != nil {
		t.Fatalf("capabilities() returned error: %v", err)
	}
	if caps["browserName"] != Chrome {
		t.Errorf("browserName = %v", caps["browserName"])
	}
	got, ok := caps[chrome.CapabilitiesKey].(chrome.Capabilities)
	if !ok {
		t.Fatalf("caps[%q] = %T, want chrome.Capabilities", chrome.CapabilitiesKey, caps[chrome.CapabilitiesKey])
	}
	want := []string{"--disable-gpu", "--no-sandbox", "--disable-dev-shm-usage", "--headless", "--window-size=1280,720"}
	if diff := cmp.Diff(want, got.Args); diff != "" {
		t.Errorf("chrome args returned diff (-want/+got):\n%s", diff)
	}
	if got.Path != "/opt/chrome" || !got.W3C {
		t.Errorf("chrome capabilities = %+v", got)
	}
}

func TestFirefoxCapabilities(t *testing.T) {
	l := newLauncher(t, Browser(Firefox), HeadlessIf(true), BrowserLogLevel(log.Browser, log.Severe))
	caps, err := l.capabilities()
	if err != nil {
		t.Fatalf("capabilities() returned error: %v", err)
	}
	got, ok := caps[firefox.CapabilitiesKey].(firefox.Capabilities)
	if !ok {
		t.Fatalf("caps[%q] = %T, want firefox.Capabilities", firefox.CapabilitiesKey, caps[firefox.CapabilitiesKey])
	}
	if diff := cmp.Diff([]string{"-headless"}, got.Args); diff != "" {
		t.Errorf("firefox args returned diff (-want/+got):\n%s", diff)
	}
	levels, ok := caps[log.CapabilitiesKey].(log.Capabilities)
	if !ok || levels[log.Browser] != log.Severe {
		t.Errorf("logging prefs = %#v", caps[log.CapabilitiesKey])
	}
}

func TestSauceCapabilities(t *testing.T) {
	l := newLauncher(t, Sauce("gopher", "secret", sauce.Capabilities{BuildNumber: "42"}))
	caps, err := l.capabilities()
	if err != nil {
		t.Fatalf("capabilities() returned error: %v", err)
	}
	if caps["build"] != "42" {
		t.Errorf("caps[build] = %v, want %q", caps["build"], "42")
	}
	addr, service, err := l.start()
	if err != nil || service != nil {
		t.Fatalf("start() = %q, %v, %v", addr, service, err)
	}
	if addr != sauce.Addr("gopher", "secret") {
		t.Errorf("start() addr = %q", addr)
	}
}

func TestRemoteStart(t *testing.T) {
	l := newLauncher(t, Remote("http://grid:4444/wd/hub"))
	addr, service, err := l.start()
	if err != nil || service != nil || addr != "http://grid:4444/wd/hub" {
		t.Errorf("start() = %q, %v, %v", addr, service, err)
	}
}

func TestFindDriver(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, mode os.FileMode) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"), mode); err != nil {
			t.Fatal(err)
		}
	}
	write("chromedriver-2.40", 0755)
	write("chromedriver-2.41", 0755)
	write("chromedriver-2.42", 0644)
	if err := os.Mkdir(filepath.Join(dir, "chromedriver-2.99"), 0755); err != nil {
		t.Fatal(err)
	}

	glob := filepath.Join(dir, "chromedriver*")
	tests := []struct {
		desc   string
		binary bool
		want   string
	}{
		{"newest executable", true, "chromedriver-2.41"},
		{"newest regular file", false, "chromedriver-2.42"},
	}
	for _, tc := range tests {
		if got := FindDriver(glob, tc.binary); got != filepath.Join(dir, tc.want) {
			t.Errorf("%s: FindDriver() = %q, want %q", tc.desc, got, tc.want)
		}
	}
	if got := FindDriver(filepath.Join(dir, "geckodriver*"), true); got != "" {
		t.Errorf("FindDriver() without matches = %q", got)
	}
}

func TestPickUnusedPort(t *testing.T) {
	port, err := pickUnusedPort()
	if err != nil {
		t.Fatalf("pickUnusedPort() returned error: %v", err)
	}
	if port <= 0 || port > 65535 {
		t.Errorf("pickUnusedPort() = %d", port)
	}
}
