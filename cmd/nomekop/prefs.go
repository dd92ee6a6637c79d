package main

import (
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const lastVariantKey = "last_variant"

// prefs keeps small per-user settings between runs of the menu.
type prefs struct {
	m      *gdata.Manager
	logger *log.Logger
}

// openPrefs never fails; without a data dir the menu simply forgets.
func openPrefs(logger *log.Logger) *prefs {
	m, err := gdata.Open(gdata.Config{AppName: "nomekop"})
	if err != nil {
		logger.Warn("preferences unavailable", "err", err)
		return &prefs{logger: logger}
	}
	return &prefs{m: m, logger: logger}
}

func (p *prefs) lastVariant() string {
	if p.m == nil {
		return ""
	}
	data, err := p.m.LoadItem(lastVariantKey)
	if err != nil {
		p.logger.Warn("could not load last variant", "err", err)
		return ""
	}
	return string(data)
}

func (p *prefs) setLastVariant(id string) {
	if p.m == nil {
		return
	}
	if err := p.m.SaveItem(lastVariantKey, []byte(id)); err != nil {
		p.logger.Warn("could not save last variant", "err", err)
	}
}
