package fallback

import "github.com/aminafridi/PhysioCare-sub000/internal/core"

var services = []core.Service{
	{
		ID:               "static-sports-injury",
		Title:            "Sports Injury Rehabilitation",
		Slug:             "sports-injury-rehabilitation",
		ShortDescription: "Get back to your sport faster with a structured, evidence-based recovery plan.",
		FullDescription: "From sprains and strains to post-surgical recovery, we assess how your injury " +
			"happened, treat the damaged tissue and rebuild strength, balance and confidence so you " +
			"return to training with a lower risk of re-injury.",
		WhoIsItFor: "Athletes of every level, weekend runners and anyone recovering from a sports-related injury.",
		Benefits: []string{
			"Faster return to sport",
			"Sport-specific strength and conditioning",
			"Reduced risk of re-injury",
			"Clear milestones for every phase",
		},
		IconName: "activity",
		Order:    1,
	},
	{
		ID:               "static-back-neck-pain",
		Title:            "Back & Neck Pain Treatment",
		Slug:             "back-neck-pain-treatment",
		ShortDescription: "Relief for acute and chronic spinal pain through manual therapy and targeted exercise.",
		FullDescription: "We combine hands-on mobilisation, soft tissue work and a graded exercise " +
			"programme to ease pain, restore movement and address the habits that keep pain coming back.",
		WhoIsItFor: "Desk workers, drivers, new parents and anyone living with persistent back or neck pain.",
		Benefits: []string{
			"Lasting pain relief",
			"Improved spinal mobility",
			"Posture and ergonomic advice",
			"Home exercise programme",
		},
		IconName: "bone",
		Order:    2,
	},
	{
		ID:               "static-post-surgical",
		Title:            "Post-Surgical Rehabilitation",
		Slug:             "post-surgical-rehabilitation",
		ShortDescription: "Guided recovery after joint replacement, ligament repair and other orthopaedic surgery.",
		FullDescription: "Working alongside your surgeon's protocol, we progress range of motion, " +
			"strength and function safely so you regain independence as quickly as your healing allows.",
		WhoIsItFor: "Patients recovering from knee, hip, shoulder or spinal surgery.",
		Benefits: []string{
			"Protocol-driven progression",
			"Reduced swelling and stiffness",
			"Restored strength and function",
		},
		IconName: "stethoscope",
		Order:    3,
	},
	{
		ID:               "static-neuro",
		Title:            "Neurological Physiotherapy",
		Slug:             "neurological-physiotherapy",
		ShortDescription: "Specialist rehabilitation for stroke, MS, Parkinson's and other neurological conditions.",
		FullDescription: "Task-focused training improves balance, walking, coordination and everyday " +
			"function, helping you stay as active and independent as possible.",
		WhoIsItFor: "People living with stroke, multiple sclerosis, Parkinson's disease or brain injury.",
		Benefits: []string{
			"Better balance and fewer falls",
			"Improved walking and mobility",
			"Support for carers and family",
		},
		IconName: "brain",
		Order:    4,
	},
	{
		ID:               "static-womens-health",
		Title:            "Pre & Postnatal Physiotherapy",
		Slug:             "pre-postnatal-physiotherapy",
		ShortDescription: "Care for pelvic girdle pain, diastasis recti and safe return to exercise after birth.",
		FullDescription: "Gentle, specialist assessment and treatment through pregnancy and the " +
			"postnatal period, including pelvic floor rehabilitation and core recovery.",
		WhoIsItFor: "Expectant and new mothers.",
		Benefits: []string{
			"Pelvic floor rehabilitation",
			"Safe core strengthening",
			"Relief from pregnancy-related pain",
		},
		IconName: "baby",
		Order:    5,
	},
	{
		ID:               "static-hand-therapy",
		Title:            "Hand & Wrist Therapy",
		Slug:             "hand-wrist-therapy",
		ShortDescription: "Treatment for fractures, tendon injuries, carpal tunnel and repetitive strain.",
		FullDescription: "Detailed assessment of the hand and wrist followed by splinting advice, " +
			"manual therapy and fine-motor exercises to restore grip and dexterity.",
		WhoIsItFor: "Anyone with hand, wrist or forearm pain, stiffness or weakness.",
		Benefits: []string{
			"Restored grip strength",
			"Reduced pain and swelling",
			"Workplace and activity advice",
		},
		IconName: "hand",
		Order:    6,
	},
}
