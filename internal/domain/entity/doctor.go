// Package entity contains the core business objects of the clinic,
// each representing a unique, identifiable concept within the domain.
package entity

import "slices"

// Doctor is read-only reference data. It is seeded once with the catalog and never mutated.
type Doctor struct {
	ID              string   // Stable identifier, e.g. "1".
	Name            string   // Display name, e.g. "Dr. Sarah Johnson".
	Specialty       string   // Medical specialty used for search and filtering.
	ImageURL        string   // Portrait shown by the presentation layer.
	Rating          float64  // Seed rating in [0,5]; the fallback when the doctor has no reviews.
	Experience      int      // Years of practice.
	Location        string   // Clinic name and city.
	ConsultationFee int      // Fee in whole currency units.
	AvailableSlots  []string // Ordered "HH:MM" times offered on every bookable date.
	Bio             string
}

// HasSlot reports whether the given "HH:MM" time is one of the doctor's slots.
func (d *Doctor) HasSlot(time string) bool {
	return slices.Contains(d.AvailableSlots, time)
}

// DoctorFilter narrows the catalog. An empty Specialty, or "all", matches every doctor.
type DoctorFilter struct {
	Term      string
	Specialty string
}

// SpecialtyAll is the wildcard specialty.
const SpecialtyAll = "all"
