package supporters

import "time"

const (
	DefaultURL               = "http://localhost:8000/index.html"
	DefaultListPath          = "supporters.list"
	DefaultInitialScreenshot = "/home/jules/verification/supporters_initial.png"
	DefaultLoadedScreenshot  = "/home/jules/verification/supporters_loaded.png"
	DefaultBannerSelector    = ".supporters-bar"
	DefaultBannerText        = "Thank you to our Supporters:"
	DefaultNameSelector      = "#supporter-name"
)

type Options struct {
	URL               string `mapstructure:"url"`
	ListPath          string `mapstructure:"list"`
	InitialScreenshot string `mapstructure:"initial_screenshot"`
	LoadedScreenshot  string `mapstructure:"loaded_screenshot"`
	BannerSelector    string `mapstructure:"banner_selector"`
	BannerText        string `mapstructure:"banner_text"`
	NameSelector      string `mapstructure:"name_selector"`
	AssertTimeout     int64  `mapstructure:"assert_timeout"` // Default assertion timeout in milliseconds
	NameTimeout       int64  `mapstructure:"name_timeout"`   // Supporter name timeout in milliseconds
	PollInterval      int64  `mapstructure:"poll_interval"`  // Assertion retry interval in milliseconds
	ReportPath        string `mapstructure:"report"`         // Optional JSON run report
}

func (o *Options) Init() {
	if o.URL == "" {
		o.URL = DefaultURL
	}
	if o.ListPath == "" {
		o.ListPath = DefaultListPath
	}
	if o.InitialScreenshot == "" {
		o.InitialScreenshot = DefaultInitialScreenshot
	}
	if o.LoadedScreenshot == "" {
		o.LoadedScreenshot = DefaultLoadedScreenshot
	}
	if o.BannerSelector == "" {
		o.BannerSelector = DefaultBannerSelector
	}
	if o.BannerText == "" {
		o.BannerText = DefaultBannerText
	}
	if o.NameSelector == "" {
		o.NameSelector = DefaultNameSelector
	}
	if o.AssertTimeout == 0 {
		o.AssertTimeout = 5000
	}
	if o.NameTimeout == 0 {
		o.NameTimeout = 10000
	}
	if o.PollInterval == 0 {
		o.PollInterval = 100
	}
}

func (o *Options) GetAssertTimeout() time.Duration {
	return time.Duration(o.AssertTimeout) * time.Millisecond
}

func (o *Options) GetNameTimeout() time.Duration {
	return time.Duration(o.NameTimeout) * time.Millisecond
}

func (o *Options) GetPollInterval() time.Duration {
	return time.Duration(o.PollInterval) * time.Millisecond
}
