// Package translate formats user-facing messages for the host locale.
package translate

import (
	"os"

	"github.com/jeandeaual/go-locale"
	"github.com/sirupsen/logrus"

	"golang.org/x/text/message"
)

// LOCALE_ENV overrides the detected host locales when set.
const LOCALE_ENV = "INTCODE_LOCALE"

var printer *message.Printer

func init() {
	SetLocales(hostLocales()...)
}

func hostLocales() (locales []string) {
	if env := os.Getenv(LOCALE_ENV); env != "" {
		return []string{env}
	}

	locales, err := locale.GetLocales()
	if err != nil {
		logrus.Debugf("translate: locale: %v", err)
	}

	return
}

// SetLocales selects the message printer for the best match among locales,
// falling back to en-US when none are given.
func SetLocales(locales ...string) {
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
