package model

import (
	"errors"
	"fmt"

	"github.com/handiism/jalali-stickers/internal/jalali"
)

// ErrUnknownSeason is returned when no template is mapped to a season.
var ErrUnknownSeason = errors.New("unknown season")

// Season groups three consecutive Jalali months. It is stored as the
// strings "1" to "4", which are also the keys of the template mapping.
type Season string

const (
	SeasonSpring Season = "1"
	SeasonSummer Season = "2"
	SeasonAutumn Season = "3"
	SeasonWinter Season = "4"
)

// Seasons returns the four seasons in calendar order.
func Seasons() []Season {
	return []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}
}

// SeasonOf returns ((m-1)/3)+1 as a Season: Farvardin to Khordad is
// spring, Dey to Esfand is winter.
func SeasonOf(m jalali.Month) Season {
	return Season(fmt.Sprint((int(m)-1)/3 + 1))
}

// TemplateSet maps every season to the background image used for it.
// It is built once from configuration and only read afterwards.
type TemplateSet map[Season]string

// NewTemplateSet validates that paths has a non-empty entry for each of
// the four seasons and returns it as a TemplateSet.
func NewTemplateSet(paths map[string]string) (TemplateSet, error) {
	set := make(TemplateSet, 4)
	for _, s := range Seasons() {
		p := paths[string(s)]
		if p == "" {
			return nil, fmt.Errorf("%w: no template for season %s", ErrUnknownSeason, s)
		}
		set[s] = p
	}
	return set, nil
}

// Path returns the template path of season s.
func (t TemplateSet) Path(s Season) (string, error) {
	p, ok := t[s]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSeason, string(s))
	}
	return p, nil
}
