package patient

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// visitDateFloor is the fixed lower bound for the date of visit.
var visitDateFloor = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

const dateLayout = "2006-01-02"

// ValidationError carries per-field reasons for a rejected draft.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid fields: %s", strings.Join(names, ", "))
}

// ErrUnknownField rejects values for fields the form table doesn't define.
var ErrUnknownField = errors.New("unknown form field")

// Draft holds the in-progress values of one intake form session, keyed by
// field name. A fresh draft is seeded with the table defaults, so only the
// fields without a default need explicit input.
type Draft struct {
	values map[string]string
}

func NewDraft() *Draft {
	d := &Draft{values: make(map[string]string, len(Fields))}
	for _, f := range Fields {
		if f.Default != "" {
			d.values[f.Name] = f.Default
		}
	}
	return d
}

// Get returns the current value of a field.
func (d *Draft) Get(name string) string {
	return d.values[name]
}

// Set updates one field. Unknown fields are rejected so typos can't
// silently drop data.
func (d *Draft) Set(name, value string) error {
	if _, ok := FieldByName(name); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	d.values[name] = value
	return nil
}

// Validate checks every required field for presence and the visit date for
// range and format. It returns nil when the draft is acceptable.
func (d *Draft) Validate() *ValidationError {
	return d.validateAt(time.Now())
}

func (d *Draft) validateAt(now time.Time) *ValidationError {
	problems := make(map[string]string)

	for _, f := range Fields {
		v := strings.TrimSpace(d.values[f.Name])
		if v == "" {
			if f.Required {
				problems[f.Name] = fmt.Sprintf("%s is required", f.Label)
			}
			continue
		}
		if f.Kind == KindEnum && !contains(f.Allowed, v) {
			problems[f.Name] = fmt.Sprintf("%s must be one of the listed values", f.Label)
		}
	}

	if raw := strings.TrimSpace(d.values["visitDate"]); raw != "" {
		when, err := time.Parse(dateLayout, raw)
		switch {
		case err != nil:
			problems["visitDate"] = "Date of Visit must be a YYYY-MM-DD date"
		case when.After(now):
			problems["visitDate"] = "Date of Visit cannot be in the future"
		case when.Before(visitDateFloor):
			problems["visitDate"] = "Date of Visit cannot be before 1900-01-01"
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Fields: problems}
}

// ToRecord validates the draft and materializes a record ready for the
// store. The id is left unset; the store assigns it on append.
func (d *Draft) ToRecord() (*PatientRecord, error) {
	if verr := d.Validate(); verr != nil {
		return nil, verr
	}
	rec := &PatientRecord{
		Name:            d.values["name"],
		Age:             d.values["age"],
		Gender:          d.values["gender"],
		Weight:          d.values["weight"],
		Height:          d.values["height"],
		Diet:            d.values["diet"],
		VisitDate:       d.values["visitDate"],
		Location:        d.values["location"],
		Mal:             d.values["mal"],
		Mutra:           d.values["mutra"],
		Kshudha:         d.values["kshudha"],
		Trishna:         d.values["trishna"],
		Nidra:           d.values["nidra"],
		Jivha:           d.values["jivha"],
		ManoSwabhav:     d.values["manoSwabhav"],
		OtherComplaints: d.values["otherComplaints"],
		Arsh:            d.values["arsh"],
		Ashmari:         d.values["ashmari"],
		Kushtha:         d.values["kushtha"],
		Prameha:         d.values["prameha"],
		Grahani:         d.values["grahani"],
		Shotha:          d.values["shotha"],
		Dosha:           NoDosha,
		LastVisit:       d.values["visitDate"],
	}
	return rec, nil
}

// Collector feeds field changes into a draft and republishes the draft to
// its subscriber on every change, with no debouncing.
type Collector struct {
	draft    *Draft
	onChange func(*Draft)
}

// NewCollector starts a fresh form session. onChange may be nil.
func NewCollector(onChange func(*Draft)) *Collector {
	return &Collector{draft: NewDraft(), onChange: onChange}
}

// Set records one field change and notifies the subscriber.
func (c *Collector) Set(name, value string) error {
	if err := c.draft.Set(name, value); err != nil {
		return err
	}
	if c.onChange != nil {
		c.onChange(c.draft)
	}
	return nil
}

// Draft exposes the current draft.
func (c *Collector) Draft() *Draft {
	return c.draft
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
