package cmd

import (
	"context"
	"io"
	"time"

	"github.com/jimezsa/scholarcli/internal/config"
	"github.com/jimezsa/scholarcli/internal/i18n"
	"github.com/jimezsa/scholarcli/internal/store"
	"github.com/jimezsa/scholarcli/internal/ui"
	"github.com/rs/zerolog"
)

type Context struct {
	Out        io.Writer
	Err        io.Writer
	UI         *ui.UI
	Config     config.Config
	ConfigDir  string
	Logger     zerolog.Logger
	Verbose    bool
	JSONOutput bool
	PlainText  bool
	Version    string
	ColorMode  ui.ColorMode
	Translator *i18n.Translator
	// Now is overridden in tests.
	Now func() time.Time
}

func (c *Context) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Context) translator() *i18n.Translator {
	if c.Translator == nil {
		return i18n.New(c.Config.Language)
	}
	return c.Translator
}

func (c *Context) storeOptions() store.Options {
	return store.Options{
		Driver:      c.Config.Store.Driver,
		Path:        c.Config.StorePath(c.ConfigDir),
		DatabaseURL: c.Config.Store.DatabaseURL,
	}
}

// OpenStore opens the configured catalog backend. The caller closes it.
func (c *Context) OpenStore(ctx context.Context) (store.Store, error) {
	return store.Open(ctx, c.storeOptions())
}
