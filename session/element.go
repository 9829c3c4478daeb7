package session

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// Element is a located element of the application, addressed by its test
// identifier.
type Element struct {
	ID string

	s   *Session
	loc playwright.Locator
}

func (s *Session) selector(id string) string {
	return fmt.Sprintf(`[%s=%q]`, s.cfg.TestIDAttribute, id)
}

func (s *Session) prefixSelector(prefix string) string {
	return fmt.Sprintf(`[%s^=%q]`, s.cfg.TestIDAttribute, prefix)
}

func (s *Session) locator(id string) playwright.Locator {
	return s.page.Locator(s.selector(id)).First()
}

// waitError turns a Playwright timeout into a *TimeoutError and adds the
// identifier to anything else.
func (s *Session) waitError(op, id string, err error) error {
	if errors.Is(err, playwright.ErrTimeout) {
		return s.timedOut(&TimeoutError{Op: op, ID: id, Timeout: s.cfg.WaitTimeout, Err: err})
	}
	return fmt.Errorf("%s %q: %w", op, id, err)
}

// FindPresent waits until an element with the identifier is attached to the
// DOM. It may still be hidden.
func (s *Session) FindPresent(id string) (*Element, error) {
	loc := s.locator(id)
	err := loc.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateAttached,
		Timeout: playwright.Float(s.timeoutMS()),
	})
	if err != nil {
		return nil, s.waitError("find present", id, err)
	}
	return &Element{ID: id, s: s, loc: loc}, nil
}

// FindClickable polls until the element is attached, visible and enabled.
func (s *Session) FindClickable(id string) (*Element, error) {
	loc := s.locator(id)
	intervalMS := float64(s.cfg.PollInterval.Milliseconds())

	var lastErr error
	err := s.poll(func() (bool, error) {
		visible, err := loc.IsVisible()
		if err != nil {
			lastErr = err
			return false, nil
		}
		if !visible {
			return false, nil
		}
		enabled, err := loc.IsEnabled(playwright.LocatorIsEnabledOptions{
			Timeout: playwright.Float(intervalMS),
		})
		if err != nil {
			lastErr = err
			return false, nil
		}
		return enabled, nil
	})
	if err != nil {
		return nil, s.timedOut(&TimeoutError{Op: "find clickable", ID: id, Timeout: s.cfg.WaitTimeout, Err: lastErr})
	}
	return &Element{ID: id, s: s, loc: loc}, nil
}

// IsVisible looks the element up once. Absence and lookup errors count as
// not visible.
func (s *Session) IsVisible(id string) bool {
	visible, err := s.locator(id).IsVisible()
	return err == nil && visible
}

// WaitForVisible waits until the element is attached and visible.
func (s *Session) WaitForVisible(id string) (*Element, error) {
	loc := s.locator(id)
	err := loc.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(s.timeoutMS()),
	})
	if err != nil {
		return nil, s.waitError("wait for visible", id, err)
	}
	return &Element{ID: id, s: s, loc: loc}, nil
}

// WaitForHidden waits until the element is hidden or gone.
func (s *Session) WaitForHidden(id string) error {
	err := s.locator(id).WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateHidden,
		Timeout: playwright.Float(s.timeoutMS()),
	})
	if err != nil {
		return s.waitError("wait for hidden", id, err)
	}
	return nil
}

// WaitForText polls until the element text contains substr and returns the
// text seen last.
func (s *Session) WaitForText(id, substr string) (string, error) {
	return s.waitForText(id, fmt.Sprintf("containing %q", substr), func(text string) bool {
		return strings.Contains(text, substr)
	})
}

// WaitForTextEquals polls until the trimmed element text is want.
func (s *Session) WaitForTextEquals(id, want string) (string, error) {
	return s.waitForText(id, fmt.Sprintf("%q", want), func(text string) bool {
		return text == want
	})
}

func (s *Session) waitForText(id, want string, match func(string) bool) (string, error) {
	el, err := s.FindPresent(id)
	if err != nil {
		return "", err
	}

	var text string
	err = s.poll(func() (bool, error) {
		t, err := el.Text()
		if err != nil {
			return false, nil
		}
		text = t
		return match(text), nil
	})
	if err != nil {
		return text, s.timedOut(&TimeoutError{
			Op:      "wait for text",
			ID:      id,
			Timeout: s.cfg.WaitTimeout,
			Err:     fmt.Errorf("want text %s, last text %q", want, text),
		})
	}
	return text, nil
}

// WaitForClass polls until the element carries (present) or lacks the class.
func (s *Session) WaitForClass(id, class string, present bool) error {
	el, err := s.FindPresent(id)
	if err != nil {
		return err
	}

	err = s.poll(func() (bool, error) {
		has, err := el.HasClass(class)
		if err != nil {
			return false, nil
		}
		return has == present, nil
	})
	if err != nil {
		return s.timedOut(&TimeoutError{
			Op:      "wait for class",
			ID:      id,
			Timeout: s.cfg.WaitTimeout,
			Err:     fmt.Errorf("want class %q present=%t", class, present),
		})
	}
	return nil
}

// Count returns how many elements carry an identifier starting with prefix.
func (s *Session) Count(prefix string) (int, error) {
	n, err := s.page.Locator(s.prefixSelector(prefix)).Count()
	if err != nil {
		return 0, fmt.Errorf("count %q: %w", prefix, err)
	}
	return n, nil
}

// WaitForCount polls until exactly n elements carry an identifier starting
// with prefix.
func (s *Session) WaitForCount(prefix string, n int) error {
	var last int
	err := s.poll(func() (bool, error) {
		c, err := s.Count(prefix)
		if err != nil {
			return false, err
		}
		last = c
		return c == n, nil
	})
	if errors.Is(err, ErrTimeout) {
		return s.timedOut(&TimeoutError{
			Op:      "wait for count",
			ID:      prefix,
			Timeout: s.cfg.WaitTimeout,
			Err:     fmt.Errorf("want %d, last count %d", n, last),
		})
	}
	return err
}

func (e *Element) timeout() *float64 {
	return playwright.Float(e.s.timeoutMS())
}

func (e *Element) Click() error {
	if err := e.loc.Click(playwright.LocatorClickOptions{Timeout: e.timeout()}); err != nil {
		return e.s.waitError("click", e.ID, err)
	}
	return nil
}

// Fill replaces the value of an input. An empty value clears it.
func (e *Element) Fill(value string) error {
	if err := e.loc.Fill(value, playwright.LocatorFillOptions{Timeout: e.timeout()}); err != nil {
		return e.s.waitError("fill", e.ID, err)
	}
	return nil
}

func (e *Element) Check() error {
	return e.SetChecked(true)
}

func (e *Element) SetChecked(checked bool) error {
	if err := e.loc.SetChecked(checked, playwright.LocatorSetCheckedOptions{Timeout: e.timeout()}); err != nil {
		return e.s.waitError("set checked", e.ID, err)
	}
	return nil
}

func (e *Element) IsChecked() (bool, error) {
	checked, err := e.loc.IsChecked(playwright.LocatorIsCheckedOptions{Timeout: e.timeout()})
	if err != nil {
		return false, e.s.waitError("is checked", e.ID, err)
	}
	return checked, nil
}

// Text is the trimmed text content, hidden or not.
func (e *Element) Text() (string, error) {
	text, err := e.loc.TextContent(playwright.LocatorTextContentOptions{Timeout: e.timeout()})
	if err != nil {
		return "", e.s.waitError("text", e.ID, err)
	}
	return strings.TrimSpace(text), nil
}

// Value is the current value of an input, select or textarea.
func (e *Element) Value() (string, error) {
	value, err := e.loc.InputValue(playwright.LocatorInputValueOptions{Timeout: e.timeout()})
	if err != nil {
		return "", e.s.waitError("value", e.ID, err)
	}
	return value, nil
}

// Attribute returns the attribute value, empty if it is not set.
func (e *Element) Attribute(name string) (string, error) {
	value, err := e.loc.GetAttribute(name, playwright.LocatorGetAttributeOptions{Timeout: e.timeout()})
	if err != nil {
		return "", e.s.waitError("attribute", e.ID, err)
	}
	return value, nil
}

func (e *Element) HasClass(class string) (bool, error) {
	classes, err := e.Attribute("class")
	if err != nil {
		return false, err
	}
	return slices.Contains(strings.Fields(classes), class), nil
}

// SelectByValue selects the option of a select element with the given value.
func (e *Element) SelectByValue(value string) error {
	_, err := e.loc.SelectOption(
		playwright.SelectOptionValues{Values: &[]string{value}},
		playwright.LocatorSelectOptionOptions{Timeout: e.timeout()},
	)
	if err != nil {
		return e.s.waitError("select", e.ID, err)
	}
	return nil
}

func (e *Element) IsVisible() bool {
	visible, err := e.loc.IsVisible()
	return err == nil && visible
}
