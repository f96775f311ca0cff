package calendar

import "fmt"

// Season is one of the six Bengali seasons (ritu), each spanning two Bengali months.
type Season int

const (
	Grishma Season = iota // summer: Boishakh, Joishtho
	Borsha                // monsoon: Asharh, Shrabon
	Sharat                // autumn: Bhadro, Ashwin
	Hemanta               // late autumn: Kartik, Agrahayan
	Sheet                 // winter: Poush, Magh
	Basanta               // spring: Falgun, Chaitra
)

var seasonNames = [6]string{"Grishma", "Borsha", "Sharat", "Hemanta", "Sheet", "Basanta"}

var seasonNative = [6]string{"গ্রীষ্মকাল", "বর্ষাকাল", "শরৎকাল", "হেমন্তকাল", "শীতকাল", "বসন্তকাল"}

var seasonEmoji = [6]string{"☀️", "🌧", "🍂", "🌾", "❄️", "🌸"}

// SeasonOf returns the season that contains the Bengali month m.
func SeasonOf(m BengaliMonth) Season {
	if !m.Valid() {
		return Grishma
	}
	return Season((int(m) - 1) / 2)
}

func (s Season) valid() bool { return s >= Grishma && s <= Basanta }

func (s Season) String() string {
	if !s.valid() {
		return fmt.Sprintf("Season(%d)", int(s))
	}
	return seasonNames[s]
}

// Bengali returns the season name in Bengali script, e.g. "শরৎকাল".
func (s Season) Bengali() string {
	if !s.valid() {
		return ""
	}
	return seasonNative[s]
}

// Emoji returns the marker shown next to the season name.
func (s Season) Emoji() string {
	if !s.valid() {
		return ""
	}
	return seasonEmoji[s]
}

// MarshalText encodes the season by its romanized name.
func (s Season) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("invalid season %d", int(s))
	}
	return []byte(s.String()), nil
}
