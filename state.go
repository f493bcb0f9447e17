package pom

// StateQueries bundles the waits and instantaneous probes of an element.
//
// Waits return true once the condition holds and a *TimeoutError when it
// does not hold within the budget. A node that cannot be found, or goes
// stale while being probed, counts as not satisfying the condition. Probes
// never fail; lookup errors read as false.
type StateQueries struct {
	e *Element
}

// State returns the state queries of the element.
func (e *Element) State() StateQueries {
	return StateQueries{e: e}
}

func (q StateQueries) wait(action string, cond func() bool, opts []WaitOption) (bool, error) {
	q.e.log().Debugf("Waiting to be %s", action)
	c := newWaitConfig(q.e.session.waitTimeout, opts)
	err := poll(c, func() (bool, error) { return cond(), nil })
	if err != nil {
		return false, timeoutOr(err, q.e.name, action, c)
	}
	return true, nil
}

// WaitForDisplayed waits for the element to be visible.
func (q StateQueries) WaitForDisplayed(opts ...WaitOption) (bool, error) {
	return q.wait("displayed", q.IsDisplayed, opts)
}

// WaitForClickable waits for the element to be visible and enabled.
func (q StateQueries) WaitForClickable(opts ...WaitOption) (bool, error) {
	return q.wait("clickable", q.IsClickable, opts)
}

// WaitForExist waits for the element to be present in the document.
func (q StateQueries) WaitForExist(opts ...WaitOption) (bool, error) {
	return q.wait("existing", q.IsExisting, opts)
}

// WaitForEnabled waits for the element to be enabled.
func (q StateQueries) WaitForEnabled(opts ...WaitOption) (bool, error) {
	return q.wait("enabled", q.IsEnabled, opts)
}

// IsDisplayed reports whether the element is visible now.
func (q StateQueries) IsDisplayed() bool {
	we, err := q.e.Resolve()
	if err != nil {
		return false
	}
	ok, err := we.IsDisplayed()
	return err == nil && ok
}

// IsExisting reports whether at least one node matches now.
func (q StateQueries) IsExisting() bool {
	n, err := q.e.Count()
	return err == nil && n > 0
}

// IsEnabled reports whether the element is enabled now.
func (q StateQueries) IsEnabled() bool {
	we, err := q.e.Resolve()
	if err != nil {
		return false
	}
	ok, err := we.IsEnabled()
	return err == nil && ok
}

// IsClickable reports whether the element is visible and enabled now.
func (q StateQueries) IsClickable() bool {
	we, err := q.e.Resolve()
	if err != nil {
		return false
	}
	displayed, err := we.IsDisplayed()
	if err != nil || !displayed {
		return false
	}
	enabled, err := we.IsEnabled()
	return err == nil && enabled
}
