// Package fixtures holds the test data shared by the page tests and the
// smoke runner.
package fixtures

import (
	_ "embed"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed data.yaml
var defaultData []byte

// User is a set of login credentials.
type User struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// URLs are paths of the application under test.
type URLs struct {
	BaseURL    string `yaml:"base_url"`
	LoginPage  string `yaml:"login_page"`
	SecurePage string `yaml:"secure_page"`
}

// Messages are the flash messages the application shows.
type Messages struct {
	LoginSuccess  string `yaml:"login_success"`
	LoginFailed   string `yaml:"login_failed"`
	LogoutSuccess string `yaml:"logout_success"`
}

// Data is the full fixture set.
type Data struct {
	ValidUser   User     `yaml:"valid_user"`
	InvalidUser User     `yaml:"invalid_user"`
	URLs        URLs     `yaml:"urls"`
	Messages    Messages `yaml:"messages"`
}

// Default returns the built-in fixtures.
func Default() Data {
	d, err := parse(defaultData)
	if err != nil {
		panic(fmt.Sprintf("fixtures: built-in data: %v", err))
	}
	return d
}

// Load reads fixtures from path on fs. Keys missing from the file keep their
// built-in values.
func Load(fs afero.Fs, path string) (Data, error) {
	buf, err := afero.ReadFile(fs, path)
	if err != nil {
		return Data{}, err
	}
	d := Default()
	if err := yaml.Unmarshal(buf, &d); err != nil {
		return Data{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return d, nil
}

func parse(buf []byte) (Data, error) {
	var d Data
	err := yaml.Unmarshal(buf, &d)
	return d, err
}

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RandomString returns n random letters and digits.
func RandomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

// RandomEmail returns a unique-looking address in the test.com domain.
func RandomEmail() string {
	return "test_" + RandomString(8) + "@test.com"
}

// FormatDate formats t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// Timestamp returns the current time in RFC 3339 with milliseconds.
func Timestamp() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
