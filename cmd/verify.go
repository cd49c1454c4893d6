package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/karust/supporters-check/core"
	"github.com/karust/supporters-check/supporters"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func browserOpts(app AppConfig) core.BrowserOpts {
	opts := core.BrowserOpts{
		IsHeadless:      !app.IsBrowserHead, // Disable headless if browser head mode is set
		IsLeakless:      app.IsLeakless,
		IsStealth:       app.IsStealth,
		Timeout:         time.Second * time.Duration(app.Timeout),
		BinPath:         app.BrowserBin,
		UserAgent:       app.UserAgent,
		RandomUserAgent: app.RandomUserAgent,
		ProxyURL:        app.ProxyURL,
		Insecure:        app.Insecure,
	}

	if app.IsDebug {
		opts.IsHeadless = false
	}
	return opts
}

type closer interface {
	Close() error
}

func verify(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	browser, err := core.NewBrowser(browserOpts(config.App))
	if err != nil {
		return err
	}

	verifier := supporters.New(browser, config.Verify, cmd.OutOrStdout())
	return runAndRelease(ctx, browser, verifier.Run, config.Verify.ReportPath)
}

// runAndRelease executes run and closes the browser afterwards, whether run failed or not.
func runAndRelease(ctx context.Context, browser closer, run func(context.Context) (supporters.Result, error), reportPath string) error {
	defer func() {
		if err := browser.Close(); err != nil {
			logrus.Warnf("Cannot close browser: %s", err)
		}
	}()

	res, err := run(ctx)

	if reportPath != "" {
		if err := supporters.WriteReport(reportPath, res); err != nil {
			logrus.Errorf("Cannot write report %s: %s", reportPath, err)
		}
	}

	return err
}
