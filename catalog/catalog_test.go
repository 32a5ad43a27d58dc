package catalog

import "testing"

func TestLoadEmbeddedCatalog(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("embedded catalog failed to load: %v", err)
	}
	if len(c.Shows) == 0 {
		t.Fatal("catalog has no shows")
	}
	for _, s := range c.Shows {
		if s.Name == "" {
			t.Error("show with empty name")
		}
		if s.ChannelID == 0 {
			t.Errorf("show %q has no channel", s.Name)
		}
		if s.MediaType != "series" && s.MediaType != "movie" {
			t.Errorf("show %q has media type %q", s.Name, s.MediaType)
		}
	}
}

func TestParseRejectsIncompleteEntries(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"show without name", `{"shows":[{"channelId":12}]}`},
		{"show without channel", `{"shows":[{"name":"X"}]}`},
		{"video without id", `{"videos":[{"name":"X"}]}`},
		{"bad json", `{"shows":`},
	}
	for _, tc := range cases {
		if _, err := parse([]byte(tc.data)); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestAccentColor(t *testing.T) {
	c, err := parse([]byte(`{"shows":[{"name":"X","channelId":1,"mediaType":"movie","accent":[10,20,30]}]}`))
	if err != nil {
		t.Fatal(err)
	}
	clr := c.Shows[0].Accent.Color()
	if clr.R != 10 || clr.G != 20 || clr.B != 30 || clr.A != 0xff {
		t.Errorf("unexpected accent color: %+v", clr)
	}
}
