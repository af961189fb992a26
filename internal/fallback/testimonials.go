package fallback

import "github.com/aminafridi/PhysioCare-sub000/internal/core"

var testimonials = []core.Testimonial{
	{
		ID:      "static-testimonial-1",
		Name:    "James Carter",
		Role:    "Marathon Runner",
		Content: "After my knee injury I thought my running days were over. Six weeks later I was back training for my next race.",
		Rating:  5,
	},
	{
		ID:      "static-testimonial-2",
		Name:    "Emily Rodriguez",
		Role:    "Office Manager",
		Content: "Years of neck pain from desk work are finally under control. The home exercises made all the difference.",
		Rating:  5,
	},
	{
		ID:      "static-testimonial-3",
		Name:    "Robert Chen",
		Role:    "Retired Teacher",
		Content: "The team guided me through my hip replacement recovery with real patience. I am walking without a stick again.",
		Rating:  5,
	},
	{
		ID:      "static-testimonial-4",
		Name:    "Priya Sharma",
		Role:    "New Mother",
		Content: "Postnatal physio helped me rebuild my core safely. I felt listened to at every appointment.",
		Rating:  4,
	},
}
