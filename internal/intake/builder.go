package intake

import "github.com/Skufu/vitalrisk/internal/engine"

// Section identifies one step of the intake form.
type Section int

const (
	SectionPersonal Section = iota
	SectionVitals
	SectionLifestyle
	SectionMedical
	SectionWellness
)

const sectionCount = int(SectionWellness) + 1

var sectionTitles = [sectionCount]string{
	"Personal Information",
	"Vital Signs & Lab Results",
	"Lifestyle Factors",
	"Family History & Medical",
	"Mental Health & Wellness",
}

func (s Section) String() string {
	if s < SectionPersonal || s > SectionWellness {
		return "Unknown"
	}
	return sectionTitles[s]
}

// Sections lists every step in form order.
func Sections() []Section {
	return []Section{SectionPersonal, SectionVitals, SectionLifestyle, SectionMedical, SectionWellness}
}

// Builder accumulates a Form one section at a time. It starts from
// DefaultForm, so Build succeeds even if some sections were never set.
// A Builder is not safe for concurrent use.
type Builder struct {
	form    Form
	current Section
	set     [sectionCount]bool
}

func NewBuilder() *Builder {
	return &Builder{form: DefaultForm()}
}

// SetPersonal validates and stores the personal section. An invalid
// section leaves the builder unchanged.
func (b *Builder) SetPersonal(s PersonalInfo) error {
	if err := check(s); err != nil {
		return err
	}
	b.form.PersonalInfo = s
	b.set[SectionPersonal] = true
	return nil
}

func (b *Builder) SetVitals(s VitalSigns) error {
	if err := check(s); err != nil {
		return err
	}
	b.form.VitalSigns = s
	b.set[SectionVitals] = true
	return nil
}

func (b *Builder) SetLifestyle(s Lifestyle) error {
	if err := check(s); err != nil {
		return err
	}
	b.form.Lifestyle = s
	b.set[SectionLifestyle] = true
	return nil
}

func (b *Builder) SetMedical(s MedicalHistory) error {
	if err := check(s); err != nil {
		return err
	}
	s.Medications = normalizeItems(s.Medications)
	s.ChronicConditions = normalizeItems(s.ChronicConditions)
	b.form.MedicalHistory = s
	b.set[SectionMedical] = true
	return nil
}

func (b *Builder) SetWellness(s Wellness) error {
	if err := check(s); err != nil {
		return err
	}
	b.form.Wellness = s
	b.set[SectionWellness] = true
	return nil
}

// Current returns the section the form is positioned on.
func (b *Builder) Current() Section { return b.current }

// Next moves forward one section, stopping at the last.
func (b *Builder) Next() Section {
	if b.current < SectionWellness {
		b.current++
	}
	return b.current
}

// Prev moves back one section, stopping at the first.
func (b *Builder) Prev() Section {
	if b.current > SectionPersonal {
		b.current--
	}
	return b.current
}

// IsSet reports whether s was explicitly provided.
func (b *Builder) IsSet(s Section) bool {
	if s < SectionPersonal || s > SectionWellness {
		return false
	}
	return b.set[s]
}

// Completed returns the sections explicitly provided, in form order.
func (b *Builder) Completed() []Section {
	out := []Section{}
	for _, s := range Sections() {
		if b.set[s] {
			out = append(out, s)
		}
	}
	return out
}

// Form returns a copy of the accumulated form.
func (b *Builder) Form() Form {
	f := b.form
	f.Medications = append(List{}, b.form.Medications...)
	f.ChronicConditions = append(List{}, b.form.ChronicConditions...)
	return f
}

// Build validates the accumulated form and returns the profile.
func (b *Builder) Build() (engine.Profile, error) {
	return FromForm(b.form)
}

// FromForm validates f as a whole and converts it to a profile.
func FromForm(f Form) (engine.Profile, error) {
	if err := check(f); err != nil {
		return engine.Profile{}, err
	}
	return f.Profile(), nil
}
