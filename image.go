package pom

import (
	"fmt"
	"time"

	"github.com/tebeka/selenium"
	"github.com/tidwall/gjson"
)

const defaultImageLoadTimeout = 10 * time.Second

// Image wraps an <img>.
type Image struct {
	*Element
}

// NewImage returns an Image. An empty name defaults to "Image".
func NewImage(s *Session, selector, name string) *Image {
	return &Image{newTyped(s, selector, name, "Image")}
}

// Src returns the src attribute.
func (i *Image) Src() (string, error) {
	i.log().Debug("Getting src")
	return i.Attribute("src")
}

// Alt returns the alt text.
func (i *Image) Alt() (string, error) { return i.Attribute("alt") }

// Title returns the title attribute.
func (i *Image) Title() (string, error) { return i.Attribute("title") }

// IsLoaded reports whether the image finished loading with a non-empty
// natural size. Failures read as not loaded.
func (i *Image) IsLoaded() bool {
	v, err := i.script("return arguments[0].complete && arguments[0].naturalHeight > 0;")
	if err != nil {
		return false
	}
	loaded, _ := v.(bool)
	return loaded
}

// Dimensions returns the natural size of the image.
func (i *Image) Dimensions() (selenium.Size, error) {
	raw, err := i.scriptRaw("return {width: arguments[0].naturalWidth, height: arguments[0].naturalHeight};")
	if err != nil {
		return selenium.Size{}, err
	}
	return selenium.Size{
		Width:  int(gjson.GetBytes(raw, "value.width").Int()),
		Height: int(gjson.GetBytes(raw, "value.height").Int()),
	}, nil
}

// Click waits for the image to be clickable and clicks it.
func (i *Image) Click() error {
	i.log().WithField("action", "click").Info("Clicking image")
	return i.click()
}

// WaitForLoad polls IsLoaded for up to timeout, 10s when zero.
func (i *Image) WaitForLoad(timeout time.Duration) error {
	if timeout <= 0 {
		timeout = defaultImageLoadTimeout
	}
	i.log().Debug("Waiting for image to load")
	c := newWaitConfig(timeout, []WaitOption{
		WithMessage(fmt.Sprintf("Image %q did not load within %v", i.name, timeout)),
	})
	err := poll(c, func() (bool, error) { return i.IsLoaded(), nil })
	return timeoutOr(err, i.name, "loaded", c)
}
