// Package fallback holds the compiled-in content shown whenever the live
// store has nothing to offer. Every accessor returns copies.
package fallback

import "github.com/aminafridi/PhysioCare-sub000/internal/core"

func Services() []core.Service {
	out := make([]core.Service, len(services))
	for i, s := range services {
		s.Benefits = append([]string(nil), s.Benefits...)
		s.Static = true
		out[i] = s
	}
	return out
}

func ServiceBySlug(slug string) *core.Service {
	for _, s := range Services() {
		if s.Slug == slug {
			return &s
		}
	}
	return nil
}

func Posts() []core.BlogPost {
	out := make([]core.BlogPost, len(posts))
	for i, p := range posts {
		p.Static = true
		out[i] = p
	}
	return out
}

func PostBySlug(slug string) *core.BlogPost {
	for _, p := range Posts() {
		if p.Slug == slug {
			return &p
		}
	}
	return nil
}

func Testimonials() []core.Testimonial {
	out := make([]core.Testimonial, len(testimonials))
	for i, t := range testimonials {
		t.Static = true
		out[i] = t
	}
	return out
}

func Conditions() []core.Condition {
	out := make([]core.Condition, len(conditions))
	for i, c := range conditions {
		c.Symptoms = append([]string(nil), c.Symptoms...)
		c.Treatments = append([]string(nil), c.Treatments...)
		out[i] = c
	}
	return out
}

func ConditionBySlug(slug string) *core.Condition {
	for _, c := range Conditions() {
		if c.Slug == slug {
			return &c
		}
	}
	return nil
}
