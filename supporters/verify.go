package supporters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/karust/supporters-check/core"
	"github.com/sirupsen/logrus"
)

const (
	initialTakenMsg = "Initial screenshot taken."
	loadedTakenMsg  = "Loaded screenshot taken."
)

// Result summarises one verification run.
type Result struct {
	URL               string    `json:"url"`
	Expected          string    `json:"expected"`
	Skipped           bool      `json:"skipped"` // Name wait skipped, first list line was empty
	InitialScreenshot string    `json:"initial_screenshot"`
	LoadedScreenshot  string    `json:"loaded_screenshot,omitempty"`
	Initial           Banner    `json:"initial"`
	Loaded            *Banner   `json:"loaded,omitempty"`
	StartedAt         time.Time `json:"started_at"`
	FinishedAt        time.Time `json:"finished_at"`
}

type Verifier struct {
	Options
	browser *core.Browser
	out     io.Writer
}

// New binds a verifier to an open browser. Progress lines are printed to out.
func New(browser *core.Browser, opts Options, out io.Writer) *Verifier {
	opts.Init()
	if out == nil {
		out = io.Discard
	}
	return &Verifier{Options: opts, browser: browser, out: out}
}

// Run checks the supporters banner: it must show up, then switch its name
// to the first entry of the supporter list. The browser stays open.
func (v *Verifier) Run(ctx context.Context) (res Result, err error) {
	logrus.Tracef("Start supporters verification: %+v", v.Options)

	res = Result{URL: v.URL, StartedAt: time.Now()}
	defer func() { res.FinishedAt = time.Now() }()

	page, err := v.browser.Open(ctx, v.URL)
	if err != nil {
		return res, err
	}
	defer page.Close()

	timeout := v.GetAssertTimeout()
	interval := v.GetPollInterval()

	if err := core.WaitVisible(ctx, page, v.BannerSelector, timeout, interval); err != nil {
		return res, err
	}
	if _, err := core.WaitText(ctx, page, v.BannerSelector, v.BannerText, timeout, interval); err != nil {
		return res, err
	}
	if err := core.WaitVisible(ctx, page, v.NameSelector, timeout, interval); err != nil {
		return res, err
	}

	if err := screenshot(ctx, page, v.InitialScreenshot); err != nil {
		return res, err
	}
	res.InitialScreenshot = v.InitialScreenshot
	res.Initial = v.snapshot(ctx, page)
	fmt.Fprintln(v.out, initialTakenMsg)

	expected, err := FirstSupporter(v.ListPath)
	if err != nil {
		return res, err
	}
	res.Expected = expected

	if expected == "" {
		logrus.Infof("First line of %s is empty, skipping supporter name check", v.ListPath)
		res.Skipped = true
		return res, nil
	}
	logrus.Infof("Expecting first supporter: %s", expected)

	if _, err := core.WaitText(ctx, page, v.NameSelector, expected, v.GetNameTimeout(), interval); err != nil {
		logrus.Warnf("Banner at failure: %+v", v.snapshot(ctx, page))
		return res, err
	}

	if err := screenshot(ctx, page, v.LoadedScreenshot); err != nil {
		return res, err
	}
	res.LoadedScreenshot = v.LoadedScreenshot
	loaded := v.snapshot(ctx, page)
	res.Loaded = &loaded
	fmt.Fprintln(v.out, loadedTakenMsg)

	return res, nil
}

func (v *Verifier) snapshot(ctx context.Context, page *rod.Page) Banner {
	html, err := page.Context(ctx).HTML()
	if err != nil {
		logrus.Errorf("Cannot get page HTML: %s", err)
		return Banner{}
	}

	banner, err := ParseBanner(html, v.BannerSelector, v.NameSelector)
	if err != nil {
		logrus.Errorf("Cannot parse banner: %s", err)
		return Banner{}
	}
	logrus.Debugf("Banner: %+v", banner)
	return banner
}

// screenshot captures the viewport and replaces the file at path.
// The parent directory must already exist.
func screenshot(ctx context.Context, page *rod.Page, path string) error {
	data, err := page.Context(ctx).Screenshot(false, nil)
	if err != nil {
		return fmt.Errorf("screenshot %s: %w", path, err)
	}
	if err := replaceFile(path, data); err != nil {
		return fmt.Errorf("write screenshot: %w", err)
	}
	logrus.Debugf("Screenshot saved: %s (%d bytes)", path, len(data))
	return nil
}

// replaceFile writes data next to path and renames it into place,
// so an interrupted run never leaves a truncated file behind.
func replaceFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// WriteReport stores the result as indented JSON.
func WriteReport(path string, res Result) error {
	b, err := json.MarshalIndent(res, "", " ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
