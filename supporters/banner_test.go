package supporters

import "testing"

func TestParseBanner(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected Banner
	}{
		{
			name: "Loading",
			html: `<body><div class="supporters-bar">
				Thank you to our Supporters:
				<span id="supporter-name">Loading...</span>
			</div></body>`,
			expected: Banner{Present: true, Text: "Thank you to our Supporters: Loading...", Name: "Loading..."},
		},
		{
			name:     "Loaded",
			html:     `<div class="supporters-bar">Thank you to our Supporters: <span id="supporter-name">Alice</span></div>`,
			expected: Banner{Present: true, Text: "Thank you to our Supporters: Alice", Name: "Alice"},
		},
		{
			name:     "No banner",
			html:     `<html><body><p>nothing here</p></body></html>`,
			expected: Banner{},
		},
		{
			name:     "First banner only",
			html:     `<div class="supporters-bar">one</div><div class="supporters-bar">two</div>`,
			expected: Banner{Present: true, Text: "one"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBanner(tt.html, DefaultBannerSelector, DefaultNameSelector)
			if err != nil {
				t.Fatalf("ParseBanner() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("ParseBanner() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}
