package core

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/sirupsen/logrus"
)

// Resolve the selector once, without rod's own retry sleeper, so Poll owns the pacing.
func findElement(ctx context.Context, page *rod.Page, selector string) (*rod.Element, error) {
	return page.Context(ctx).Sleeper(rod.NotFoundSleeper).Element(selector)
}

// textContent of el with whitespace runs collapsed, ignoring CSS text transforms.
func normalizedText(el *rod.Element) (string, error) {
	res, err := el.Eval(`() => this.textContent`)
	if err != nil {
		return "", err
	}
	return collapseSpaces(res.Value.Str()), nil
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func isNotFound(err error) bool {
	var nf *rod.ErrElementNotFound
	return errors.As(err, &nf)
}

// WaitVisible waits until selector matches an element that is rendered visible.
func WaitVisible(ctx context.Context, page *rod.Page, selector string, timeout, interval time.Duration) error {
	logrus.Debugf("Expect %s to be visible (timeout %s)", selector, timeout)

	state := "not found"
	err := Poll(ctx, timeout, interval, func(ctx context.Context) (bool, error) {
		el, err := findElement(ctx, page, selector)
		if err != nil {
			if isNotFound(err) {
				state = "not found"
				return false, nil
			}
			return false, err
		}

		visible, err := el.Visible()
		if err != nil {
			return false, err
		}
		if !visible {
			state = "hidden"
		}
		return visible, nil
	})
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrTimeout) {
		return err
	}

	return &AssertionError{
		Assertion: "to be visible",
		Selector:  selector,
		Actual:    state,
		Timeout:   timeout,
		Err:       err,
	}
}

// WaitText waits until the text of selector contains substr and returns that text.
// Both sides are compared with whitespace runs collapsed to single spaces.
func WaitText(ctx context.Context, page *rod.Page, selector, substr string, timeout, interval time.Duration) (string, error) {
	logrus.Debugf("Expect %s to contain text %q (timeout %s)", selector, substr, timeout)

	want := collapseSpaces(substr)
	var actual string
	err := Poll(ctx, timeout, interval, func(ctx context.Context) (bool, error) {
		el, err := findElement(ctx, page, selector)
		if err != nil {
			if isNotFound(err) {
				return false, nil
			}
			return false, err
		}

		text, err := normalizedText(el)
		if err != nil {
			return false, err
		}
		actual = text
		return strings.Contains(text, want), nil
	})
	if err == nil {
		return actual, nil
	}
	if !errors.Is(err, ErrTimeout) {
		return actual, err
	}

	return actual, &AssertionError{
		Assertion: "to contain text",
		Selector:  selector,
		Expected:  substr,
		Actual:    actual,
		Timeout:   timeout,
		Err:       err,
	}
}
