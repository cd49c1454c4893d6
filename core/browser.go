package core

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/corpix/uarand"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
	"github.com/sirupsen/logrus"
)

type BrowserOpts struct {
	IsHeadless      bool          // Use browser interface
	IsLeakless      bool          // Force to kill browser
	IsStealth       bool          // Open pages with stealth plugin
	Timeout         time.Duration // Navigation timeout
	BinPath         string        // Browser executable, looked up if empty
	UserAgent       string        // Fixed User-Agent override
	RandomUserAgent bool          // Pick random User-Agent per page
	ProxyURL        string        // Proxy URL
	Insecure        bool          // Allow insecure TLS connections
	ViewportWidth   int
	ViewportHeight  int
}

// Initialize browser parameters with default values if they are not set
func (o *BrowserOpts) Check() {
	if o.Timeout == 0 {
		o.Timeout = DefaultNavTimeout
	}

	if o.ViewportWidth == 0 {
		o.ViewportWidth = 1280
	}

	if o.ViewportHeight == 0 {
		o.ViewportHeight = 720
	}
}

type Browser struct {
	BrowserOpts
	launcher    *launcher.Launcher
	browserAddr string
	browser     *rod.Browser
	closeOnce   sync.Once
	closeErr    error
	closed      bool
}

// NewBrowser launches a browser process and connects to it.
func NewBrowser(opts BrowserOpts) (*Browser, error) {
	opts.Check()
	logrus.Debugf("Browser options: %+v", opts)

	path := opts.BinPath
	if path == "" {
		var has bool
		path, has = launcher.LookPath()
		logrus.Debug("Browser found: ", has)
	}

	// Create launcher
	l := launcher.New().Bin(path).Leakless(opts.IsLeakless).Headless(opts.IsHeadless)

	// Configure proxy if specified
	if opts.ProxyURL != "" {
		proxyUrl, err := url.Parse(opts.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL: %v", err)
		}
		logrus.Debugf("Setting up proxy: %s", proxyUrl.Redacted())
		l = l.Proxy(proxyUrl.Scheme + "://" + proxyUrl.Host)
	}

	b := Browser{BrowserOpts: opts, launcher: l}

	var err error
	b.browserAddr, err = l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	b.browser = rod.New().ControlURL(b.browserAddr)
	if err := b.browser.Connect(); err != nil {
		l.Kill()
		l.Cleanup()
		return nil, fmt.Errorf("connect browser: %w", err)
	}

	if opts.ProxyURL != "" || opts.Insecure {
		// Proxies commonly re-sign TLS, so certificate errors are ignored with them too
		if err := b.browser.IgnoreCertErrors(true); err != nil {
			logrus.Errorf("Cannot ignore certificate errors: %s", err)
		}
	}

	if opts.ProxyURL != "" {
		proxyUrl, _ := url.Parse(opts.ProxyURL)
		if proxyUrl.User != nil {
			username := proxyUrl.User.Username()
			password, _ := proxyUrl.User.Password()
			logrus.Debugf("Using proxy authentication: %s:****", username)
			go b.browser.HandleAuth(username, password)()
		}
	}

	return &b, nil
}

// Check whether browser instance is created and not closed yet
func (b *Browser) IsInitialized() bool {
	return b.browserAddr != "" && !b.closed
}

func (b *Browser) newPage() (*rod.Page, error) {
	if b.IsStealth {
		return stealth.Page(b.browser)
	}
	return b.browser.Page(proto.TargetCreateTarget{})
}

// Open creates a page and navigates it to URL, waiting for the load event.
// The page is closed again when any step fails.
func (b *Browser) Open(ctx context.Context, URL string) (_ *rod.Page, err error) {
	logrus.Debug("Navigate to: ", URL)

	page, err := b.newPage()
	if err != nil {
		return nil, fmt.Errorf("new page: %w", err)
	}
	defer func() {
		if err != nil {
			if cerr := page.Close(); cerr != nil {
				logrus.Debugf("Cannot close page: %s", cerr)
			}
		}
	}()

	ua := b.UserAgent
	if b.RandomUserAgent {
		ua = uarand.GetRandom()
	}
	if ua != "" {
		logrus.Debugf("User-Agent: %s", ua)
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: ua}); err != nil {
			return nil, fmt.Errorf("set user agent: %w", err)
		}
	}

	err = page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             b.ViewportWidth,
		Height:            b.ViewportHeight,
		DeviceScaleFactor: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("set viewport: %w", err)
	}

	nav := page.Context(ctx).Timeout(b.Timeout)
	if err := nav.Navigate(URL); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrNavigation, URL, err)
	}
	if err := nav.WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w %s: wait load: %w", ErrNavigation, URL, err)
	}

	return page, nil
}

// Close shuts the browser down and removes its launcher profile. Safe to call repeatedly.
func (b *Browser) Close() error {
	b.closeOnce.Do(func() {
		logrus.Debug("Closing browser")
		if b.browser != nil {
			b.closeErr = b.browser.Close()
		}
		if b.launcher != nil {
			if b.closeErr != nil {
				b.launcher.Kill()
			}
			b.launcher.Cleanup()
		}
		b.closed = true
	})
	return b.closeErr
}
