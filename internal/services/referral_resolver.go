// internal/services/referral_resolver.go
package services

import (
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/redoak/realty-backend/internal/repository"
)

// ReferralResolver decides which agent, if any, receives credit for an
// inbound lead. It is read-only and never fails a lead submission: a lookup
// miss in one tier falls through to the next, and exhausting all tiers
// yields nil, meaning the lead stays unassigned until admin triage.
type ReferralResolver struct {
	agents     repository.AgentRepository
	properties repository.PropertyRepository
}

// ReferralSubmission carries the raw attribution hints from a lead
// submission. All fields are optional free-form strings straight off the
// wire; the resolver is responsible for interpreting them.
type ReferralSubmission struct {
	RealtorSlug string
	RealtorID   string
	PropertyID  string
}

func NewReferralResolver(agents repository.AgentRepository, properties repository.PropertyRepository) *ReferralResolver {
	return &ReferralResolver{
		agents:     agents,
		properties: properties,
	}
}

// Resolve evaluates the priority chain in strict order, first match wins:
//  1. referral-link slug
//  2. direct agent id (blank or whitespace-only ids are treated as absent)
//  3. the submitted property's owning agent
//
// A tier whose lookup misses behaves exactly as if the field were absent.
func (r *ReferralResolver) Resolve(sub ReferralSubmission) *uuid.UUID {
	// Tier 1: referral link
	if slug := strings.TrimSpace(sub.RealtorSlug); slug != "" {
		agent, err := r.agents.FindBySlug(slug)
		if err == nil {
			return &agent.ID
		}
		r.logMiss("slug", slug, err)
	}

	// Tier 2: direct agent id
	if idStr := strings.TrimSpace(sub.RealtorID); idStr != "" {
		if id, err := uuid.Parse(idStr); err == nil {
			agent, err := r.agents.FindByID(id)
			if err == nil {
				return &agent.ID
			}
			r.logMiss("realtor_id", idStr, err)
		} else {
			r.logMiss("realtor_id", idStr, err)
		}
	}

	// Tier 3: property owner
	if idStr := strings.TrimSpace(sub.PropertyID); idStr != "" {
		if id, err := uuid.Parse(idStr); err == nil {
			property, err := r.properties.FindByID(id)
			if err == nil && property.AgentID != nil {
				return property.AgentID
			}
			if err != nil {
				r.logMiss("property_id", idStr, err)
			}
		} else {
			r.logMiss("property_id", idStr, err)
		}
	}

	// Unassigned is a valid terminal outcome, not a failure.
	return nil
}

func (r *ReferralResolver) logMiss(field, value string, err error) {
	logrus.WithFields(logrus.Fields{
		"field": field,
		"value": value,
	}).WithError(err).Debug("Referral tier missed, falling through")
}
