package config

import (
	"fmt"

	"github.com/atlanticdynamic/hellolynx/internal/fancy"
)

// String returns a pretty-printed tree representation of the config
func (c *Config) String() string {
	t := fancy.Tree()
	t.Root(fancy.RootStyle.Render("hellolynx config"))

	listeners := fancy.Section("Listeners", "")
	listeners.Child(fancy.Setting("http", fancy.ListenerText(c.ListenAddr())))
	if c.MetricsEnabled() {
		listeners.Child(fancy.Setting("metrics", fancy.ListenerText(c.MetricsAddr())))
	} else {
		listeners.Child(fancy.Setting("metrics", fancy.DisabledText("disabled")))
	}
	t.Child(listeners)

	startup := fancy.Section("Startup", "")
	if c.CountdownSeconds == 0 {
		startup.Child(fancy.Setting("countdown", fancy.DisabledText("disabled")))
	} else {
		startup.Child(fancy.Setting("countdown", fmt.Sprintf("%ds", c.CountdownSeconds)))
	}
	t.Child(startup)

	logging := fancy.Section("Logging", "")
	logging.Child(fancy.Setting("level", c.LogLevel))
	logging.Child(fancy.Setting("format", c.LogFormat))
	logging.Child(fancy.Setting("output", c.LogOutput))
	t.Child(logging)

	if len(c.Fallbacks) > 0 {
		fb := fancy.Section("Defaulted", fmt.Sprintf("(%d)", len(c.Fallbacks)))
		for _, f := range c.Fallbacks {
			fb.Child(fancy.Setting(f.Name, fmt.Sprintf("%q", f.Value)))
		}
		t.Child(fb)
	}

	return t.String()
}
