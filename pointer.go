package pom

import "github.com/tebeka/selenium"

// mouseEventsScript fires arguments[2:] as MouseEvents at the centre of
// arguments[0], pressing button arguments[1].
const mouseEventsScript = `var el = arguments[0], button = arguments[1];
var r = el.getBoundingClientRect();
var x = r.left + r.width / 2, y = r.top + r.height / 2;
for (var i = 2; i < arguments.length; i++) {
  var type = arguments[i];
  el.dispatchEvent(new MouseEvent(type, {
    bubbles: type !== 'mouseenter',
    cancelable: true,
    view: window,
    detail: type === 'dblclick' ? 2 : 1,
    button: button,
    clientX: x,
    clientY: y
  }));
}`

// Event sequences a browser fires for each gesture.
var (
	hoverEvents        = []string{"mouseover", "mouseenter", "mousemove"}
	doubleClickEvents  = []string{"mousedown", "mouseup", "click", "mousedown", "mouseup", "click", "dblclick"}
	contextClickEvents = []string{"mousedown", "mouseup", "contextmenu"}
)

// dispatchMouse fires events at we. MouseEvent.button shares its values with
// the selenium button constants.
func (e *Element) dispatchMouse(we selenium.WebElement, button int, events []string) error {
	args := []interface{}{we, button}
	for _, ev := range events {
		args = append(args, ev)
	}
	_, err := e.session.wd.ExecuteScript(mouseEventsScript, args)
	return err
}

// hover moves the pointer over we.
func (e *Element) hover(we selenium.WebElement) error {
	if e.session.legacyPointer {
		return we.MoveTo(0, 0)
	}
	return e.dispatchMouse(we, selenium.LeftButton, hoverEvents)
}

// doubleClick double clicks we with the primary button.
func (e *Element) doubleClick(we selenium.WebElement) error {
	if !e.session.legacyPointer {
		return e.dispatchMouse(we, selenium.LeftButton, doubleClickEvents)
	}
	if err := we.MoveTo(0, 0); err != nil {
		return err
	}
	return e.session.wd.DoubleClick()
}

// contextClick presses the secondary button on we.
func (e *Element) contextClick(we selenium.WebElement) error {
	if !e.session.legacyPointer {
		return e.dispatchMouse(we, selenium.RightButton, contextClickEvents)
	}
	if err := we.MoveTo(0, 0); err != nil {
		return err
	}
	return e.session.wd.Click(selenium.RightButton)
}
